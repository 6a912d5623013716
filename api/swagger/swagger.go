package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Construction PM API",
        "description": "Gateway for construction project management: site resource summaries, payroll and approvals",
        "version": "1.0.0"
    },
    "basePath": "/api/v1",
    "schemes": [
        "http"
    ],
    "tags": [
        {"name": "Resources", "description": "Equipment, labor and material per site"},
        {"name": "Payroll", "description": "Payroll calculator and payroll sheet"},
        {"name": "Requests", "description": "Resource requests and approvals"},
        {"name": "Projects", "description": "Projects with their site"},
        {"name": "Announcements", "description": "Dashboard announcements"},
        {"name": "Exports", "description": "CSV, PDF and XLSX table downloads"},
        {"name": "System", "description": "Gateway health and metrics"}
    ],
    "paths": {
        "/sites/summary/equipment": {
            "get": {
                "tags": ["Resources"],
                "summary": "Equipment availability per site",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "502": {"description": "Backend error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/sites/summary/labor": {
            "get": {
                "tags": ["Resources"],
                "summary": "Labor allocation and activity per site",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/sites/summary/materials": {
            "get": {
                "tags": ["Resources"],
                "summary": "Material stock levels per site",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/resources/summary": {
            "get": {
                "tags": ["Resources"],
                "summary": "Resource totals across all sites",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/equipment": {
            "post": {
                "tags": ["Resources"],
                "summary": "Register equipment",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateEquipmentRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/labor": {
            "post": {
                "tags": ["Resources"],
                "summary": "Register a worker",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateLaborRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/materials": {
            "post": {
                "tags": ["Resources"],
                "summary": "Register a material line",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateMaterialRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/payroll/calculate": {
            "post": {
                "tags": ["Payroll"],
                "summary": "Compute payroll figures",
                "description": "Inputs may be numbers or numeric strings; anything else counts as 0.",
                "parameters": [
                    {"name": "payload", "in": "body", "required": false, "schema": {"$ref": "#/definitions/PayrollInput"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/payroll": {
            "get": {
                "tags": ["Payroll"],
                "summary": "Payroll sheet for a period",
                "parameters": [
                    {"name": "period", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/requests": {
            "get": {
                "tags": ["Requests"],
                "summary": "List resource requests",
                "parameters": [
                    {"name": "status", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/approvals": {
            "get": {
                "tags": ["Requests"],
                "summary": "List approvals",
                "parameters": [
                    {"name": "status", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/projects": {
            "get": {
                "tags": ["Projects"],
                "summary": "List projects with their site",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/announcements": {
            "get": {
                "tags": ["Announcements"],
                "summary": "List announcements",
                "parameters": [
                    {"name": "unread", "in": "query", "type": "boolean"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Feature disabled", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            },
            "post": {
                "tags": ["Announcements"],
                "summary": "Publish an announcement",
                "parameters": [
                    {"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateAnnouncementRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "400": {"description": "Validation error", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/announcements/{id}/read": {
            "post": {
                "tags": ["Announcements"],
                "summary": "Mark an announcement as read",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/announcements/{id}": {
            "delete": {
                "tags": ["Announcements"],
                "summary": "Remove an announcement",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"}
                ],
                "responses": {
                    "204": {"description": "Removed"},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/exports/{dataset}": {
            "get": {
                "tags": ["Exports"],
                "summary": "Download a table export",
                "produces": ["text/csv", "application/pdf", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"],
                "parameters": [
                    {"name": "dataset", "in": "path", "required": true, "type": "string", "enum": ["equipment-summary", "labor-summary", "material-summary", "payroll", "requests", "approvals"]},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf", "xlsx"]},
                    {"name": "period", "in": "query", "type": "string"},
                    {"name": "status", "in": "query", "type": "string"}
                ],
                "responses": {
                    "200": {"description": "File"},
                    "400": {"description": "Unsupported format", "schema": {"$ref": "#/definitions/ResponseEnvelope"}},
                    "404": {"description": "Unknown dataset", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        },
        "/system/metrics": {
            "get": {
                "tags": ["System"],
                "summary": "Gateway metrics snapshot",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/ResponseEnvelope"}}
                }
            }
        }
    },
    "definitions": {
        "CreateEquipmentRequest": {
            "type": "object",
            "required": ["name", "siteId", "status"],
            "properties": {
                "name": {"type": "string"},
                "type": {"type": "string"},
                "siteId": {"type": "string"},
                "status": {"type": "string", "enum": ["Available", "Unavailable"]},
                "rate": {"type": "number"},
                "rateUnit": {"type": "string"}
            }
        },
        "CreateLaborRequest": {
            "type": "object",
            "required": ["fullName", "siteId", "status", "activeStatus"],
            "properties": {
                "fullName": {"type": "string"},
                "trade": {"type": "string"},
                "siteId": {"type": "string"},
                "status": {"type": "string", "enum": ["Allocated", "Unallocated", "OnLeave"]},
                "activeStatus": {"type": "string", "enum": ["Active", "InActive"]},
                "dailyRate": {"type": "number"}
            }
        },
        "CreateMaterialRequest": {
            "type": "object",
            "required": ["name", "siteId", "status"],
            "properties": {
                "name": {"type": "string"},
                "siteId": {"type": "string"},
                "status": {"type": "string", "enum": ["Available", "LowStock", "OutOfStock"]},
                "quantity": {"type": "number"},
                "unit": {"type": "string"},
                "unitPrice": {"type": "number"}
            }
        },
        "PayrollInput": {
            "type": "object",
            "properties": {
                "basic_salary": {"type": "number"},
                "allowances": {"type": "number"}
            }
        },
        "CreateAnnouncementRequest": {
            "type": "object",
            "required": ["title", "message"],
            "properties": {
                "title": {"type": "string", "maxLength": 200},
                "message": {"type": "string"},
                "priority": {"type": "string", "enum": ["LOW", "NORMAL", "HIGH"]},
                "created_by": {"type": "string"}
            }
        },
        "Pagination": {
            "type": "object",
            "properties": {
                "page": {"type": "integer"},
                "page_size": {"type": "integer"},
                "total_count": {"type": "integer"}
            }
        },
        "APIError": {
            "type": "object",
            "properties": {
                "code": {"type": "string"},
                "message": {"type": "string"},
                "status": {"type": "integer"}
            }
        },
        "ResponseEnvelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {"type": "object"},
                "error": {"$ref": "#/definitions/APIError"},
                "pagination": {"$ref": "#/definitions/Pagination"},
                "meta": {"type": "object"}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
