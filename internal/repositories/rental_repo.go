package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"rentfolio/internal/models"
)

type RentalRepository interface {
	Create(ctx context.Context, rental *models.Rental) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Rental, error)
	Update(ctx context.Context, rental *models.Rental) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*models.Rental, error)
	ListByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]*models.Rental, error)
}

type rentalRepo struct {
	db DB
}

func NewRentalRepository(db DB) RentalRepository {
	return &rentalRepo{db: db}
}

const rentalColumns = `id, property_id, property_name, agent_id, agent_entity_name, agent_name, agent_email, agent_phone, agent_vat_incl_management_fee_percentage, tenant_id, tenant_name, start_date, end_date, monthly_rental_amount`

func (r *rentalRepo) Create(ctx context.Context, rental *models.Rental) error {
	query := `
		INSERT INTO rentals (id, property_id, property_name, agent_id, agent_entity_name, agent_name, agent_email, agent_phone, agent_vat_incl_management_fee_percentage, tenant_id, tenant_name, start_date, end_date, monthly_rental_amount, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query,
		rental.ID,
		rental.Property.ID, rental.Property.Name,
		rental.Agent.ID, rental.Agent.EntityName, rental.Agent.Name, rental.Agent.Email, rental.Agent.Phone, rental.Agent.VATInclManagementFeePercentage,
		rental.Tenant.ID, rental.Tenant.Name,
		rental.StartDate, rental.EndDate, rental.MonthlyRentalAmount)
	return err
}

func (r *rentalRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE id = $1`
	rental := &models.Rental{}
	err := r.db.QueryRow(ctx, query, id).Scan(
		&rental.ID,
		&rental.Property.ID, &rental.Property.Name,
		&rental.Agent.ID, &rental.Agent.EntityName, &rental.Agent.Name, &rental.Agent.Email, &rental.Agent.Phone, &rental.Agent.VATInclManagementFeePercentage,
		&rental.Tenant.ID, &rental.Tenant.Name,
		&rental.StartDate, &rental.EndDate, &rental.MonthlyRentalAmount)
	if err != nil {
		return nil, err
	}
	return rental, nil
}

// Update touches only the mutable fields. The embedded property, agent and
// tenant snapshots are fixed at creation time.
func (r *rentalRepo) Update(ctx context.Context, rental *models.Rental) error {
	query := `
		UPDATE rentals
		SET start_date = $1, end_date = $2, monthly_rental_amount = $3, updated_at = NOW()
		WHERE id = $4
	`
	tag, err := r.db.Exec(ctx, query, rental.StartDate, rental.EndDate, rental.MonthlyRentalAmount, rental.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *rentalRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM rentals WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *rentalRepo) List(ctx context.Context) ([]*models.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRentals(rows)
}

func (r *rentalRepo) ListByPropertyID(ctx context.Context, propertyID uuid.UUID) ([]*models.Rental, error) {
	query := `SELECT ` + rentalColumns + ` FROM rentals WHERE property_id = $1`
	rows, err := r.db.Query(ctx, query, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRentals(rows)
}

func scanRentals(rows pgx.Rows) ([]*models.Rental, error) {
	var rentals []*models.Rental
	for rows.Next() {
		rental := &models.Rental{}
		if err := rows.Scan(
			&rental.ID,
			&rental.Property.ID, &rental.Property.Name,
			&rental.Agent.ID, &rental.Agent.EntityName, &rental.Agent.Name, &rental.Agent.Email, &rental.Agent.Phone, &rental.Agent.VATInclManagementFeePercentage,
			&rental.Tenant.ID, &rental.Tenant.Name,
			&rental.StartDate, &rental.EndDate, &rental.MonthlyRentalAmount); err != nil {
			return nil, err
		}
		rentals = append(rentals, rental)
	}
	return rentals, rows.Err()
}
