package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"rentfolio/internal/common"
	"rentfolio/internal/services"
	"rentfolio/internal/validation"
)

const logoURLExpiry = 15 * time.Minute

// AgentHandlers handles agent-related HTTP requests
type AgentHandlers struct {
	agentService services.AgentService
	logoService  services.LogoService
}

// NewAgentHandlers creates a new agent handlers instance
func NewAgentHandlers(agentService services.AgentService, logoService services.LogoService) *AgentHandlers {
	return &AgentHandlers{
		agentService: agentService,
		logoService:  logoService,
	}
}

// ListAgents returns all agents ordered by display name.
func (h *AgentHandlers) ListAgents(c echo.Context) error {
	agents, err := h.agentService.List(c.Request().Context())
	if err != nil {
		return common.SendError(c, err)
	}
	return c.JSON(http.StatusOK, agents)
}

// GetAgent returns a single agent.
func (h *AgentHandlers) GetAgent(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return common.SendNotFoundError(c, "Agent")
	}

	agent, err := h.agentService.GetByID(c.Request().Context(), id)
	if err != nil {
		return common.SendError(c, err)
	}
	return c.JSON(http.StatusOK, agent)
}

// CreateAgent creates an agent.
func (h *AgentHandlers) CreateAgent(c echo.Context) error {
	var payload validation.AgentPayload
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	agent, err := h.agentService.Create(c.Request().Context(), &payload)
	if err != nil {
		return common.SendError(c, err)
	}
	return c.JSON(http.StatusOK, agent)
}

// UpdateAgent replaces the agent field set.
func (h *AgentHandlers) UpdateAgent(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return common.SendNotFoundError(c, "Agent")
	}

	var payload validation.AgentPayload
	if err := c.Bind(&payload); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	agent, err := h.agentService.Update(c.Request().Context(), id, &payload)
	if err != nil {
		return common.SendError(c, err)
	}
	return c.JSON(http.StatusOK, agent)
}

// DeleteAgent removes the agent. Existing rentals keep their snapshot copy.
func (h *AgentHandlers) DeleteAgent(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return common.SendNotFoundError(c, "Agent")
	}

	ctx := c.Request().Context()
	agent, err := h.agentService.GetByID(ctx, id)
	if err != nil {
		return common.SendError(c, err)
	}

	if err := h.agentService.Delete(ctx, id); err != nil {
		return common.SendError(c, err)
	}

	if agent.LogoImage != nil {
		if err := h.logoService.Remove(ctx, *agent.LogoImage); err != nil {
			logrus.WithError(err).Warn("orphaned logo object not removed")
		}
	}
	return c.JSON(http.StatusOK, agent)
}

// UploadLogo stores an agent logo in object storage and records its key on
// the agent record.
func (h *AgentHandlers) UploadLogo(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return common.SendNotFoundError(c, "Agent")
	}

	ctx := c.Request().Context()
	if _, err := h.agentService.GetByID(ctx, id); err != nil {
		return common.SendError(c, err)
	}

	file, err := c.FormFile("logo")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Logo file is required")
	}

	src, err := file.Open()
	if err != nil {
		return common.SendServerError(c, "Failed to read uploaded file")
	}
	defer src.Close()

	objectKey := fmt.Sprintf("agents/%s/logo%s", id, filepath.Ext(file.Filename))
	contentType := file.Header.Get("Content-Type")
	if err := h.logoService.Upload(ctx, objectKey, src, file.Size, contentType); err != nil {
		logrus.WithError(err).Error("logo upload failed")
		return common.SendServerError(c, "Failed to store logo")
	}

	agent, err := h.agentService.SetLogo(ctx, id, objectKey)
	if err != nil {
		return common.SendError(c, err)
	}
	return c.JSON(http.StatusOK, agent)
}

// GetLogo redirects to a short-lived presigned URL for the agent's logo.
func (h *AgentHandlers) GetLogo(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return common.SendNotFoundError(c, "Agent")
	}

	ctx := c.Request().Context()
	agent, err := h.agentService.GetByID(ctx, id)
	if err != nil {
		return common.SendError(c, err)
	}
	if agent.LogoImage == nil {
		return common.SendNotFoundError(c, "Logo")
	}

	url, err := h.logoService.PresignedURL(ctx, *agent.LogoImage, logoURLExpiry)
	if err != nil {
		logrus.WithError(err).Error("presigning logo URL failed")
		return common.SendServerError(c, "Failed to resolve logo")
	}
	return c.Redirect(http.StatusFound, url)
}
