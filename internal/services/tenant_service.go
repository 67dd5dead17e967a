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

type TenantService interface {
	Create(ctx context.Context, payload *validation.TenantPayload) (*models.Tenant, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Tenant, error)
	Update(ctx context.Context, id uuid.UUID, payload *validation.TenantPayload) (*models.Tenant, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*models.Tenant, error)
}

type tenantService struct {
	tenantRepo repositories.TenantRepository
}

func NewTenantService(tenantRepo repositories.TenantRepository) TenantService {
	return &tenantService{tenantRepo: tenantRepo}
}

func (s *tenantService) Create(ctx context.Context, payload *validation.TenantPayload) (*models.Tenant, error) {
	tenant, err := validation.ValidateTenant(payload)
	if err != nil {
		return nil, err
	}

	tenant.ID = uuid.New()
	if err := s.tenantRepo.Create(ctx, tenant); err != nil {
		return nil, err
	}

	tenant.Name = tenant.DisplayName()
	return tenant, nil
}

func (s *tenantService) GetByID(ctx context.Context, id uuid.UUID) (*models.Tenant, error) {
	tenant, err := s.tenantRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NewNotFoundError("Tenant")
		}
		return nil, err
	}
	tenant.Name = tenant.DisplayName()
	return tenant, nil
}

func (s *tenantService) Update(ctx context.Context, id uuid.UUID, payload *validation.TenantPayload) (*models.Tenant, error) {
	tenant, err := validation.ValidateTenant(payload)
	if err != nil {
		return nil, err
	}

	tenant.ID = id
	if err := s.tenantRepo.Update(ctx, tenant); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NewNotFoundError("Tenant")
		}
		return nil, err
	}

	tenant.Name = tenant.DisplayName()
	return tenant, nil
}

func (s *tenantService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.tenantRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return common.NewNotFoundError("Tenant")
		}
		return err
	}
	return nil
}

func (s *tenantService) List(ctx context.Context) ([]*models.Tenant, error) {
	tenants, err := s.tenantRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, tenant := range tenants {
		tenant.Name = tenant.DisplayName()
	}
	sort.Slice(tenants, func(i, j int) bool {
		return tenants[i].Name < tenants[j].Name
	})
	return tenants, nil
}
