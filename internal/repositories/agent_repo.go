package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"rentfolio/internal/models"
)

type AgentRepository interface {
	Create(ctx context.Context, agent *models.Agent) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Agent, error)
	Update(ctx context.Context, agent *models.Agent) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*models.Agent, error)
}

type agentRepo struct {
	db DB
}

func NewAgentRepository(db DB) AgentRepository {
	return &agentRepo{db: db}
}

func (r *agentRepo) Create(ctx context.Context, agent *models.Agent) error {
	query := `
		INSERT INTO agents (id, entity_name, first_name, last_name, email, phone, logo_image, vat_incl_management_fee_percentage, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW())
	`
	_, err := r.db.Exec(ctx, query, agent.ID, agent.EntityName, agent.FirstName, agent.LastName, agent.Email, agent.Phone, agent.LogoImage, agent.VATInclManagementFeePercentage)
	return err
}

func (r *agentRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Agent, error) {
	agent := &models.Agent{}
	query := `
		SELECT id, entity_name, first_name, last_name, email, phone, logo_image, vat_incl_management_fee_percentage
		FROM agents
		WHERE id = $1
	`
	err := r.db.QueryRow(ctx, query, id).Scan(&agent.ID, &agent.EntityName, &agent.FirstName, &agent.LastName, &agent.Email, &agent.Phone, &agent.LogoImage, &agent.VATInclManagementFeePercentage)
	if err != nil {
		return nil, err
	}
	return agent, nil
}

func (r *agentRepo) Update(ctx context.Context, agent *models.Agent) error {
	query := `
		UPDATE agents
		SET entity_name = $1, first_name = $2, last_name = $3, email = $4, phone = $5, logo_image = $6, vat_incl_management_fee_percentage = $7, updated_at = NOW()
		WHERE id = $8
	`
	tag, err := r.db.Exec(ctx, query, agent.EntityName, agent.FirstName, agent.LastName, agent.Email, agent.Phone, agent.LogoImage, agent.VATInclManagementFeePercentage, agent.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *agentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM agents WHERE id = $1`
	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *agentRepo) List(ctx context.Context) ([]*models.Agent, error) {
	query := `
		SELECT id, entity_name, first_name, last_name, email, phone, logo_image, vat_incl_management_fee_percentage
		FROM agents
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var agents []*models.Agent
	for rows.Next() {
		agent := &models.Agent{}
		if err := rows.Scan(&agent.ID, &agent.EntityName, &agent.FirstName, &agent.LastName, &agent.Email, &agent.Phone, &agent.LogoImage, &agent.VATInclManagementFeePercentage); err != nil {
			return nil, err
		}
		agents = append(agents, agent)
	}
	return agents, rows.Err()
}
