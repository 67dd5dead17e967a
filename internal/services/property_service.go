package services

import (
	"context"
	"errors"
	"sort"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"rentfolio/internal/common"
	"rentfolio/internal/models"
	"rentfolio/internal/repositories"
	"rentfolio/internal/validation"
)

type PropertyService interface {
	Create(ctx context.Context, payload *validation.PropertyPayload) (*models.Property, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Property, error)
	Update(ctx context.Context, id uuid.UUID, payload *validation.PropertyPayload) (*models.Property, error)
	Archive(ctx context.Context, id uuid.UUID) (*models.Property, error)
	List(ctx context.Context) ([]*models.Property, error)
}

type propertyService struct {
	propertyRepo repositories.PropertyRepository
}

func NewPropertyService(propertyRepo repositories.PropertyRepository) PropertyService {
	return &propertyService{propertyRepo: propertyRepo}
}

func (s *propertyService) Create(ctx context.Context, payload *validation.PropertyPayload) (*models.Property, error) {
	property, err := validation.ValidateProperty(payload, validation.ModeCreate)
	if err != nil {
		return nil, err
	}

	property.ID = uuid.New()
	if err := s.propertyRepo.Create(ctx, property); err != nil {
		return nil, err
	}

	property.Name = property.DisplayName()
	return property, nil
}

func (s *propertyService) GetByID(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	property, err := s.propertyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NewNotFoundError("Property")
		}
		return nil, err
	}
	property.Name = property.DisplayName()
	return property, nil
}

func (s *propertyService) Update(ctx context.Context, id uuid.UUID, payload *validation.PropertyPayload) (*models.Property, error) {
	property, err := validation.ValidateProperty(payload, validation.ModeUpdate)
	if err != nil {
		return nil, err
	}

	property.ID = id
	if err := s.propertyRepo.Update(ctx, property); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NewNotFoundError("Property")
		}
		return nil, err
	}

	property.Name = property.DisplayName()
	return property, nil
}

// Archive soft-deletes the property and returns the archived record. The row
// stays retrievable by id so rental history keeps a resolvable reference.
func (s *propertyService) Archive(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	if err := s.propertyRepo.Archive(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NewNotFoundError("Property")
		}
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// List returns non-archived properties ordered by derived display name.
func (s *propertyService) List(ctx context.Context) ([]*models.Property, error) {
	properties, err := s.propertyRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, property := range properties {
		property.Name = property.DisplayName()
	}
	sort.Slice(properties, func(i, j int) bool {
		return properties[i].Name < properties[j].Name
	})
	return properties, nil
}
