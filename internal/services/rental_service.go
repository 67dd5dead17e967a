package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"rentfolio/internal/common"
	"rentfolio/internal/models"
	"rentfolio/internal/repositories"
	"rentfolio/internal/validation"
)

type RentalService interface {
	Create(ctx context.Context, payload *validation.RentalPayload) (*models.Rental, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Rental, error)
	Update(ctx context.Context, id uuid.UUID, payload *validation.RentalPayload) (*models.Rental, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*models.Rental, error)
	ListByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]*models.Rental, error)
}

type rentalService struct {
	rentalRepo   repositories.RentalRepository
	propertyRepo repositories.PropertyRepository
	agentRepo    repositories.AgentRepository
	tenantRepo   repositories.TenantRepository
}

func NewRentalService(rentalRepo repositories.RentalRepository, propertyRepo repositories.PropertyRepository, agentRepo repositories.AgentRepository, tenantRepo repositories.TenantRepository) RentalService {
	return &rentalService{
		rentalRepo:   rentalRepo,
		propertyRepo: propertyRepo,
		agentRepo:    agentRepo,
		tenantRepo:   tenantRepo,
	}
}

// Create validates the payload, resolves the three referenced entities and
// copies their relevant fields onto the rental as immutable snapshots. An
// archived property is not eligible for new rentals. The three lookups plus
// the write are not transactional; a reference deleted in between is an
// accepted race.
func (s *rentalService) Create(ctx context.Context, payload *validation.RentalPayload) (*models.Rental, error) {
	input, err := validation.ValidateRental(payload, validation.ModeCreate)
	if err != nil {
		return nil, err
	}

	property, err := s.propertyRepo.GetByID(ctx, input.PropertyID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NewNotFoundError("Property")
		}
		return nil, err
	}
	if property.Archived {
		return nil, common.NewNotFoundError("Property")
	}

	agent, err := s.agentRepo.GetByID(ctx, input.AgentID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NewNotFoundError("Agent")
		}
		return nil, err
	}

	tenant, err := s.tenantRepo.GetByID(ctx, input.TenantID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NewNotFoundError("Tenant")
		}
		return nil, err
	}

	rental := &models.Rental{
		ID: uuid.New(),
		Property: models.PropertySnapshot{
			ID:   property.ID,
			Name: property.DisplayName(),
		},
		Agent: models.AgentSnapshot{
			ID:                             agent.ID,
			EntityName:                     agent.EntityName,
			Name:                           agent.DisplayName(),
			Email:                          agent.Email,
			Phone:                          agent.Phone,
			VATInclManagementFeePercentage: agent.VATInclManagementFeePercentage,
		},
		Tenant: models.TenantSnapshot{
			ID:   tenant.ID,
			Name: tenant.DisplayName(),
		},
		StartDate:           input.StartDate,
		EndDate:             input.EndDate,
		MonthlyRentalAmount: input.MonthlyRentalAmount,
	}

	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		return nil, err
	}

	rental.Derive(time.Now())
	return rental, nil
}

func (s *rentalService) GetByID(ctx context.Context, id uuid.UUID) (*models.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NewNotFoundError("Rental")
		}
		return nil, err
	}
	rental.Derive(time.Now())
	return rental, nil
}

// Update changes only the dates and the monthly amount. The embedded
// snapshots stay exactly as taken at creation time.
func (s *rentalService) Update(ctx context.Context, id uuid.UUID, payload *validation.RentalPayload) (*models.Rental, error) {
	input, err := validation.ValidateRental(payload, validation.ModeUpdate)
	if err != nil {
		return nil, err
	}

	rental, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	rental.StartDate = input.StartDate
	rental.EndDate = input.EndDate
	rental.MonthlyRentalAmount = input.MonthlyRentalAmount

	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NewNotFoundError("Rental")
		}
		return nil, err
	}

	rental.Derive(time.Now())
	return rental, nil
}

func (s *rentalService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.rentalRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return common.NewNotFoundError("Rental")
		}
		return err
	}
	return nil
}

func (s *rentalService) List(ctx context.Context) ([]*models.Rental, error) {
	rentals, err := s.rentalRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	for _, rental := range rentals {
		rental.Derive(now)
	}
	return rentals, nil
}

func (s *rentalService) ListByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]*models.Rental, error) {
	rentals, err := s.rentalRepo.ListByPropertyID(ctx, propertyID)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	for _, rental := range rentals {
		rental.Derive(now)
	}
	return rentals, nil
}
