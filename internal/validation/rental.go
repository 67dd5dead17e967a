package validation

import (
	"time"

	"github.com/google/uuid"

	"rentfolio/internal/common"
)

// RentalPayload is the wire shape of rental create/update requests.
type RentalPayload struct {
	PropertyID          *string  `json:"propertyId"`
	AgentID             *string  `json:"agentId"`
	TenantID            *string  `json:"tenantId"`
	StartDate           string   `json:"startDate"`
	EndDate             string   `json:"endDate"`
	MonthlyRentalAmount *float64 `json:"monthlyRentalAmount"`
}

// RentalInput is a validated, normalized rental request. The reference IDs
// are only set in create mode; updates never carry them because the
// embedded snapshots are immutable after creation.
type RentalInput struct {
	PropertyID          uuid.UUID
	AgentID             uuid.UUID
	TenantID            uuid.UUID
	StartDate           time.Time
	EndDate             time.Time
	MonthlyRentalAmount float64
}

// ValidateRental checks a rental payload. The property/agent/tenant
// references are required on create and forbidden on update.
func ValidateRental(payload *RentalPayload, mode Mode) (*RentalInput, error) {
	input := &RentalInput{}
	var err error

	if mode == ModeCreate {
		if input.PropertyID, err = requiredReference("propertyId", payload.PropertyID); err != nil {
			return nil, err
		}
		if input.AgentID, err = requiredReference("agentId", payload.AgentID); err != nil {
			return nil, err
		}
		if input.TenantID, err = requiredReference("tenantId", payload.TenantID); err != nil {
			return nil, err
		}
	} else {
		switch {
		case payload.PropertyID != nil:
			return nil, common.NewFieldError("propertyId", "is not allowed on update")
		case payload.AgentID != nil:
			return nil, common.NewFieldError("agentId", "is not allowed on update")
		case payload.TenantID != nil:
			return nil, common.NewFieldError("tenantId", "is not allowed on update")
		}
	}

	if input.StartDate, err = requiredDate("startDate", payload.StartDate); err != nil {
		return nil, err
	}
	if input.EndDate, err = requiredDate("endDate", payload.EndDate); err != nil {
		return nil, err
	}
	if input.EndDate.Before(input.StartDate) {
		return nil, common.NewFieldError("endDate", "must be on or after startDate")
	}
	if input.MonthlyRentalAmount, err = requiredNumber("monthlyRentalAmount", payload.MonthlyRentalAmount, 0, 1000000); err != nil {
		return nil, err
	}
	return input, nil
}

func requiredReference(field string, value *string) (uuid.UUID, error) {
	if value == nil {
		return uuid.Nil, common.NewFieldError(field, "is required")
	}
	id, err := uuid.Parse(*value)
	if err != nil {
		return uuid.Nil, common.NewFieldError(field, "must be a valid id")
	}
	return id, nil
}
