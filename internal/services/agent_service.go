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

type AgentService interface {
	Create(ctx context.Context, payload *validation.AgentPayload) (*models.Agent, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Agent, error)
	Update(ctx context.Context, id uuid.UUID, payload *validation.AgentPayload) (*models.Agent, error)
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*models.Agent, error)
	SetLogo(ctx context.Context, id uuid.UUID, objectKey string) (*models.Agent, error)
}

type agentService struct {
	agentRepo repositories.AgentRepository
}

func NewAgentService(agentRepo repositories.AgentRepository) AgentService {
	return &agentService{agentRepo: agentRepo}
}

func (s *agentService) Create(ctx context.Context, payload *validation.AgentPayload) (*models.Agent, error) {
	agent, err := validation.ValidateAgent(payload)
	if err != nil {
		return nil, err
	}

	agent.ID = uuid.New()
	if err := s.agentRepo.Create(ctx, agent); err != nil {
		return nil, err
	}

	agent.Name = agent.DisplayName()
	return agent, nil
}

func (s *agentService) GetByID(ctx context.Context, id uuid.UUID) (*models.Agent, error) {
	agent, err := s.agentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NewNotFoundError("Agent")
		}
		return nil, err
	}
	agent.Name = agent.DisplayName()
	return agent, nil
}

func (s *agentService) Update(ctx context.Context, id uuid.UUID, payload *validation.AgentPayload) (*models.Agent, error) {
	agent, err := validation.ValidateAgent(payload)
	if err != nil {
		return nil, err
	}

	// Updates may not clear a previously uploaded logo.
	existing, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	agent.ID = id
	agent.LogoImage = existing.LogoImage

	if err := s.agentRepo.Update(ctx, agent); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NewNotFoundError("Agent")
		}
		return nil, err
	}

	agent.Name = agent.DisplayName()
	return agent, nil
}

func (s *agentService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.agentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return common.NewNotFoundError("Agent")
		}
		return err
	}
	return nil
}

func (s *agentService) List(ctx context.Context) ([]*models.Agent, error) {
	agents, err := s.agentRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for _, agent := range agents {
		agent.Name = agent.DisplayName()
	}
	sort.Slice(agents, func(i, j int) bool {
		return agents[i].Name < agents[j].Name
	})
	return agents, nil
}

// SetLogo records the storage object key of an uploaded agent logo.
func (s *agentService) SetLogo(ctx context.Context, id uuid.UUID, objectKey string) (*models.Agent, error) {
	agent, err := s.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	agent.LogoImage = &objectKey
	if err := s.agentRepo.Update(ctx, agent); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, common.NewNotFoundError("Agent")
		}
		return nil, err
	}
	return agent, nil
}
