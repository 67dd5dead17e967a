package validation

import (
	"rentfolio/internal/models"
)

// AgentPayload is the wire shape of agent create/update requests. The logo
// image is managed through the logo endpoints and is not client-settable here.
type AgentPayload struct {
	EntityName                     string   `json:"entityName"`
	FirstName                      string   `json:"firstName"`
	LastName                       string   `json:"lastName"`
	Email                          string   `json:"email"`
	Phone                          *string  `json:"phone"`
	VATInclManagementFeePercentage *float64 `json:"vatInclManagementFeePercentage"`
}

// ValidateAgent checks an agent payload and returns the normalized record.
// Agent rules are the same for create and update.
func ValidateAgent(payload *AgentPayload) (*models.Agent, error) {
	agent := &models.Agent{}
	var err error

	if agent.EntityName, err = requiredString("entityName", payload.EntityName, 3, 255); err != nil {
		return nil, err
	}
	if agent.FirstName, err = requiredString("firstName", payload.FirstName, 3, 255); err != nil {
		return nil, err
	}
	if agent.LastName, err = requiredString("lastName", payload.LastName, 3, 255); err != nil {
		return nil, err
	}
	if agent.Email, err = requiredEmail("email", payload.Email, 3, 255); err != nil {
		return nil, err
	}
	if agent.Phone, err = optionalString("phone", payload.Phone, 3, 15); err != nil {
		return nil, err
	}
	if agent.VATInclManagementFeePercentage, err = requiredNumber("vatInclManagementFeePercentage", payload.VATInclManagementFeePercentage, 0, 1); err != nil {
		return nil, err
	}
	return agent, nil
}
