package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/rvledder/inspecto/apperr"
	"github.com/rvledder/inspecto/model"
	"github.com/rvledder/inspecto/store"
	"github.com/rvledder/inspecto/validate"
)

type PropertyService struct {
	db          *sql.DB
	objects     *store.Objects
	inspections *store.Inspections
}

func NewPropertyService(db *sql.DB) *PropertyService {
	return &PropertyService{
		db:          db,
		objects:     store.NewObjects(db),
		inspections: store.NewInspections(db),
	}
}

func (s *PropertyService) List(ctx context.Context) ([]model.Property, error) {
	return s.objects.List(ctx)
}

func (s *PropertyService) ByID(ctx context.Context, id string) (*model.Property, error) {
	objectID, ok := parseID(id)
	if !ok {
		return nil, apperr.NotFound("Object not found")
	}

	property, err := s.objects.ByID(ctx, objectID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperr.NotFound("Object not found")
	}
	if err != nil {
		return nil, fmt.Errorf("get object: %w", err)
	}
	return &property, nil
}

func (s *PropertyService) Create(ctx context.Context, req model.CreatePropertyRequest) (*model.Property, error) {
	if err := validate.Property(req); err != nil {
		return nil, err
	}

	objectID, err := s.objects.Insert(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("insert object: %w", err)
	}

	property, err := s.objects.ByID(ctx, objectID)
	if err != nil {
		return nil, fmt.Errorf("get created object: %w", err)
	}
	return &property, nil
}

func (s *PropertyService) Update(ctx context.Context, req model.UpdatePropertyRequest) (*model.Property, error) {
	if err := validate.Property(req.CreatePropertyRequest); err != nil {
		return nil, err
	}

	objectID, ok := parseID(req.ID)
	if !ok {
		return nil, apperr.NotFound("Object not found")
	}

	err := s.objects.Update(ctx, objectID, req.CreatePropertyRequest)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperr.NotFound("Object not found")
	}
	if err != nil {
		return nil, fmt.Errorf("update object: %w", err)
	}

	property, err := s.objects.ByID(ctx, objectID)
	if err != nil {
		return nil, fmt.Errorf("get updated object: %w", err)
	}
	return &property, nil
}

// Delete refuses to remove an object referenced by any inspection.
func (s *PropertyService) Delete(ctx context.Context, id string) error {
	objectID, ok := parseID(id)
	if !ok {
		return apperr.NotFound("Object not found")
	}

	exists, err := s.objects.Exists(ctx, objectID)
	if err != nil {
		return fmt.Errorf("get object: %w", err)
	}
	if !exists {
		return apperr.NotFound("Object not found")
	}

	inUse, err := s.inspections.CountByObject(ctx, objectID)
	if err != nil {
		return fmt.Errorf("count object inspections: %w", err)
	}
	if inUse > 0 {
		return apperr.Conflict("Cannot delete object that is used in inspections")
	}

	err = s.objects.Delete(ctx, objectID)
	if errors.Is(err, store.ErrNotFound) {
		return apperr.NotFound("Object not found")
	}
	if err != nil {
		return fmt.Errorf("delete object: %w", err)
	}
	return nil
}
