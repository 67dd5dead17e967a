package models

import (
	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id" db:"id"`
	FirstName    string    `json:"firstName" db:"first_name"`
	LastName     string    `json:"lastName" db:"last_name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"` // Never serialize in JSON
	IsAdmin      bool      `json:"isAdmin" db:"is_admin"`

	Name string `json:"name" db:"-"`
}

// DisplayName derives the user display name.
func (u *User) DisplayName() string {
	return u.FirstName + " " + u.LastName
}
