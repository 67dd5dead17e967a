package validation

import (
	"rentfolio/internal/models"
)

// TenantPayload is the wire shape of tenant create/update requests.
type TenantPayload struct {
	FirstName string  `json:"firstName"`
	LastName  string  `json:"lastName"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone"`
}

// ValidateTenant checks a tenant payload and returns the normalized record.
func ValidateTenant(payload *TenantPayload) (*models.Tenant, error) {
	tenant := &models.Tenant{}
	var err error

	if tenant.FirstName, err = requiredString("firstName", payload.FirstName, 3, 255); err != nil {
		return nil, err
	}
	if tenant.LastName, err = requiredString("lastName", payload.LastName, 3, 255); err != nil {
		return nil, err
	}
	if tenant.Email, err = requiredEmail("email", payload.Email, 3, 255); err != nil {
		return nil, err
	}
	if tenant.Phone, err = optionalString("phone", payload.Phone, 3, 15); err != nil {
		return nil, err
	}
	return tenant, nil
}
