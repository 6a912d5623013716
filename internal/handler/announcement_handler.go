package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/construction-pm-api/internal/dto"
	"github.com/noah-isme/construction-pm-api/internal/middleware"
	"github.com/noah-isme/construction-pm-api/internal/models"
	appErrors "github.com/noah-isme/construction-pm-api/pkg/errors"
	"github.com/noah-isme/construction-pm-api/pkg/response"
)

type announcementStore interface {
	All() []models.Announcement
	Unread() []models.Announcement
	Add(ctx context.Context, req dto.CreateAnnouncementRequest) (*models.Announcement, error)
	MarkRead(ctx context.Context, id string) (*models.Announcement, error)
	Remove(ctx context.Context, id string) error
}

// AnnouncementHandler manages announcement endpoints.
type AnnouncementHandler struct {
	store announcementStore
}

// NewAnnouncementHandler constructs the handler.
func NewAnnouncementHandler(store announcementStore) *AnnouncementHandler {
	return &AnnouncementHandler{store: store}
}

// List godoc
// @Summary List announcements
// @Tags Announcements
// @Produce json
// @Param unread query bool false "Only unread announcements"
// @Success 200 {object} response.Envelope
// @Router /announcements [get]
func (h *AnnouncementHandler) List(c *gin.Context) {
	unreadOnly, _ := strconv.ParseBool(c.Query("unread"))
	items := h.store.All()
	if unreadOnly {
		items = h.store.Unread()
	}
	middleware.SetMeta(c, "unread_count", len(h.store.Unread()))
	response.JSON(c, http.StatusOK, items, nil, middleware.ExtractMeta(c))
}

// Create godoc
// @Summary Publish an announcement
// @Tags Announcements
// @Accept json
// @Produce json
// @Param payload body dto.CreateAnnouncementRequest true "Announcement payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /announcements [post]
func (h *AnnouncementHandler) Create(c *gin.Context) {
	var req dto.CreateAnnouncementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid payload"))
		return
	}
	created, err := h.store.Add(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, created)
}

// MarkRead godoc
// @Summary Mark an announcement as read
// @Tags Announcements
// @Produce json
// @Param id path string true "Announcement ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /announcements/{id}/read [post]
func (h *AnnouncementHandler) MarkRead(c *gin.Context) {
	updated, err := h.store.MarkRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, updated, nil)
}

// Delete godoc
// @Summary Remove an announcement
// @Tags Announcements
// @Param id path string true "Announcement ID"
// @Success 204
// @Failure 404 {object} response.Envelope
// @Router /announcements/{id} [delete]
func (h *AnnouncementHandler) Delete(c *gin.Context) {
	if err := h.store.Remove(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
