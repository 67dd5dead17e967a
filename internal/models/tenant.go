package models

import (
	"github.com/google/uuid"
)

type Tenant struct {
	ID        uuid.UUID `json:"id" db:"id"`
	FirstName string    `json:"firstName" db:"first_name"`
	LastName  string    `json:"lastName" db:"last_name"`
	Email     string    `json:"email" db:"email"`
	Phone     *string   `json:"phone" db:"phone"`

	Name string `json:"name" db:"-"`
}

// DisplayName derives the tenant display name.
func (t *Tenant) DisplayName() string {
	return t.FirstName + " " + t.LastName
}
