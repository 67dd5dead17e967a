package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"rentfolio/internal/models"
)

type PropertyRepository interface {
	Create(ctx context.Context, property *models.Property) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Property, error)
	Update(ctx context.Context, property *models.Property) error
	Archive(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*models.Property, error)
}

type propertyRepo struct {
	db DB
}

func NewPropertyRepository(db DB) PropertyRepository {
	return &propertyRepo{db: db}
}

func (r *propertyRepo) Create(ctx context.Context, property *models.Property) error {
	query := `
		INSERT INTO properties (id, erf, address_line1, address_line2, city, purchase_date, purchase_price, purchase_fees, sale_date, sale_price, sale_fees, archived, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, property.ID, property.Erf, property.AddressLine1, property.AddressLine2, property.City, property.PurchaseDate, property.PurchasePrice, property.PurchaseFees, property.SaleDate, property.SalePrice, property.SaleFees, property.Archived)
	return err
}

// GetByID returns the property regardless of its archived flag so that
// archived records stay reachable by direct lookup.
func (r *propertyRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Property, error) {
	property := &models.Property{}
	query := `
		SELECT id, erf, address_line1, address_line2, city, purchase_date, purchase_price, purchase_fees, sale_date, sale_price, sale_fees, archived
		FROM properties
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&property.ID, &property.Erf, &property.AddressLine1, &property.AddressLine2, &property.City, &property.PurchaseDate, &property.PurchasePrice, &property.PurchaseFees, &property.SaleDate, &property.SalePrice, &property.SaleFees, &property.Archived)
	if err != nil {
		return nil, err
	}
	return property, nil
}

func (r *propertyRepo) Update(ctx context.Context, property *models.Property) error {
	query := `
		UPDATE properties
		SET erf = $1, address_line1 = $2, address_line2 = $3, city = $4, purchase_date = $5, purchase_price = $6, purchase_fees = $7, sale_date = $8, sale_price = $9, sale_fees = $10, archived = $11, updated_at = NOW()
		WHERE id = $12
	`
	tag, err := r.db.Exec(ctx, query, property.Erf, property.AddressLine1, property.AddressLine2, property.City, property.PurchaseDate, property.PurchasePrice, property.PurchaseFees, property.SaleDate, property.SalePrice, property.SaleFees, property.Archived, property.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Archive soft-deletes the property. Rentals keep their snapshot of it, so
// the row itself is never removed.
func (r *propertyRepo) Archive(ctx context.Context, id uuid.UUID) error {
	query := `UPDATE properties SET archived = TRUE, updated_at = NOW() WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// List returns non-archived properties only.
func (r *propertyRepo) List(ctx context.Context) ([]*models.Property, error) {
	query := `
		SELECT id, erf, address_line1, address_line2, city, purchase_date, purchase_price, purchase_fees, sale_date, sale_price, sale_fees, archived
		FROM properties
		WHERE archived = FALSE
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var properties []*models.Property
	for rows.Next() {
		property := &models.Property{}
		if err := rows.Scan(&property.ID, &property.Erf, &property.AddressLine1, &property.AddressLine2, &property.City, &property.PurchaseDate, &property.PurchasePrice, &property.PurchaseFees, &property.SaleDate, &property.SalePrice, &property.SaleFees, &property.Archived); err != nil {
			return nil, err
		}
		properties = append(properties, property)
	}
	return properties, rows.Err()
}
