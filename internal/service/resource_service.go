package service

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/construction-pm-api/internal/dto"
	"github.com/noah-isme/construction-pm-api/internal/models"
	appErrors "github.com/noah-isme/construction-pm-api/pkg/errors"
)

type resourceWriter interface {
	Create(ctx context.Context, kind models.ResourceKind, payload, dest interface{}) error
}

type snapshotInvalidationQueue interface {
	Enqueue(ctx context.Context, kinds ...models.ResourceKind)
}

// ResourceService forwards resource form submissions to the backend and schedules a snapshot
// refresh for the written collection.
type ResourceService struct {
	writer      resourceWriter
	invalidator snapshotInvalidationQueue
	validator   *validator.Validate
	logger      *zap.Logger
}

// NewResourceService constructs the service and registers the status validations.
func NewResourceService(writer resourceWriter, invalidator snapshotInvalidationQueue, validate *validator.Validate, logger *zap.Logger) *ResourceService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	svc := &ResourceService{writer: writer, invalidator: invalidator, validator: validate, logger: logger}
	mustRegisterValidation(svc.validator, "equipment_status", oneOf(models.EquipmentAvailable, models.EquipmentUnavailable))
	mustRegisterValidation(svc.validator, "labor_allocation", oneOf(models.LaborAllocated, models.LaborUnallocated, models.LaborOnLeave))
	mustRegisterValidation(svc.validator, "labor_activity", oneOf(models.LaborActive, models.LaborInActive))
	mustRegisterValidation(svc.validator, "material_status", oneOf(models.MaterialAvailable, models.MaterialLowStock, models.MaterialOutOfStock))
	return svc
}

// mustRegisterValidation panics when tag cannot be registered.
func mustRegisterValidation(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %q validation: %v", tag, err))
	}
}

func oneOf[T ~string](allowed ...T) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := T(fl.Field().String())
		for _, candidate := range allowed {
			if value == candidate {
				return true
			}
		}
		return false
	}
}

// CreateEquipment validates and submits an equipment record.
func (s *ResourceService) CreateEquipment(ctx context.Context, req dto.CreateEquipmentRequest) (*models.Equipment, error) {
	var created models.Equipment
	if err := s.create(ctx, models.ResourceEquipment, req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// CreateLabor validates and submits a worker record.
func (s *ResourceService) CreateLabor(ctx context.Context, req dto.CreateLaborRequest) (*models.Labor, error) {
	var created models.Labor
	if err := s.create(ctx, models.ResourceLabor, req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// CreateMaterial validates and submits a material line.
func (s *ResourceService) CreateMaterial(ctx context.Context, req dto.CreateMaterialRequest) (*models.Material, error) {
	var created models.Material
	if err := s.create(ctx, models.ResourceMaterials, req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *ResourceService) create(ctx context.Context, kind models.ResourceKind, req, dest interface{}) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	if err := s.writer.Create(ctx, kind, req, dest); err != nil {
		s.logger.Warn("backend create failed", zap.String("resource", string(kind)), zap.Error(err))
		return err
	}
	s.invalidator.Enqueue(ctx, kind)
	return nil
}
