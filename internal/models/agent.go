package models

import (
	"github.com/google/uuid"
)

type Agent struct {
	ID                             uuid.UUID `json:"id" db:"id"`
	EntityName                     string    `json:"entityName" db:"entity_name"`
	FirstName                      string    `json:"firstName" db:"first_name"`
	LastName                       string    `json:"lastName" db:"last_name"`
	Email                          string    `json:"email" db:"email"`
	Phone                          *string   `json:"phone" db:"phone"`
	LogoImage                      *string   `json:"logoImage" db:"logo_image"`
	VATInclManagementFeePercentage float64   `json:"vatInclManagementFeePercentage" db:"vat_incl_management_fee_percentage"`

	// Name is derived from the contact person's names and recomputed on every read.
	Name string `json:"name" db:"-"`
}

// DisplayName derives the agent display name from the contact person's names.
func (a *Agent) DisplayName() string {
	return a.FirstName + " " + a.LastName
}
