package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Property struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	Erf           string     `json:"erf" db:"erf"`
	AddressLine1  string     `json:"addressLine1" db:"address_line1"`
	AddressLine2  *string    `json:"addressLine2" db:"address_line2"`
	City          string     `json:"city" db:"city"`
	PurchaseDate  time.Time  `json:"purchaseDate" db:"purchase_date"`
	PurchasePrice *float64   `json:"purchasePrice" db:"purchase_price"`
	PurchaseFees  *float64   `json:"purchaseFees" db:"purchase_fees"`
	SaleDate      *time.Time `json:"saleDate" db:"sale_date"`
	SalePrice     *float64   `json:"salePrice" db:"sale_price"`
	SaleFees      *float64   `json:"saleFees" db:"sale_fees"`
	Archived      bool       `json:"archived" db:"archived"`

	// Name is derived from the address fields and recomputed on every read.
	Name string `json:"name" db:"-"`
}

// DisplayName derives the property display name from its address fields.
func (p *Property) DisplayName() string {
	line2 := ""
	if p.AddressLine2 != nil {
		line2 = *p.AddressLine2
	}
	return fmt.Sprintf("%s - Erf %s (%s)", line2, p.Erf, p.AddressLine1)
}
