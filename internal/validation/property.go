package validation

import (
	"rentfolio/internal/common"
	"rentfolio/internal/models"
)

// PropertyPayload is the wire shape of property create/update requests.
type PropertyPayload struct {
	Erf           string   `json:"erf"`
	AddressLine1  string   `json:"addressLine1"`
	AddressLine2  *string  `json:"addressLine2"`
	City          string   `json:"city"`
	PurchaseDate  string   `json:"purchaseDate"`
	PurchasePrice *float64 `json:"purchasePrice"`
	PurchaseFees  *float64 `json:"purchaseFees"`
	SaleDate      *string  `json:"saleDate"`
	SalePrice     *float64 `json:"salePrice"`
	SaleFees      *float64 `json:"saleFees"`
	Archived      *bool    `json:"archived"`
}

// ValidateProperty checks a property payload and returns the normalized
// record. Sale details and the archived flag may only be supplied on
// update; their presence on create rejects the request so privileged state
// cannot be smuggled through a creation call.
func ValidateProperty(payload *PropertyPayload, mode Mode) (*models.Property, error) {
	property := &models.Property{}
	var err error

	if property.Erf, err = requiredString("erf", payload.Erf, 1, 10); err != nil {
		return nil, err
	}
	if property.AddressLine1, err = requiredString("addressLine1", payload.AddressLine1, 5, 255); err != nil {
		return nil, err
	}
	if property.AddressLine2, err = optionalString("addressLine2", payload.AddressLine2, 5, 255); err != nil {
		return nil, err
	}
	if property.City, err = requiredString("city", payload.City, 5, 255); err != nil {
		return nil, err
	}
	if property.PurchaseDate, err = requiredDate("purchaseDate", payload.PurchaseDate); err != nil {
		return nil, err
	}
	if property.PurchasePrice, err = optionalNonNegative("purchasePrice", payload.PurchasePrice); err != nil {
		return nil, err
	}
	if property.PurchaseFees, err = optionalNonNegative("purchaseFees", payload.PurchaseFees); err != nil {
		return nil, err
	}

	if mode == ModeCreate {
		switch {
		case payload.SaleDate != nil:
			return nil, common.NewFieldError("saleDate", "is not allowed on create")
		case payload.SalePrice != nil:
			return nil, common.NewFieldError("salePrice", "is not allowed on create")
		case payload.SaleFees != nil:
			return nil, common.NewFieldError("saleFees", "is not allowed on create")
		case payload.Archived != nil:
			return nil, common.NewFieldError("archived", "is not allowed on create")
		}
		return property, nil
	}

	if property.SaleDate, err = optionalDate("saleDate", payload.SaleDate); err != nil {
		return nil, err
	}
	if property.SaleDate != nil && property.SaleDate.Before(property.PurchaseDate) {
		return nil, common.NewFieldError("saleDate", "must be on or after purchaseDate")
	}
	if property.SalePrice, err = optionalNonNegative("salePrice", payload.SalePrice); err != nil {
		return nil, err
	}
	if property.SaleFees, err = optionalNonNegative("saleFees", payload.SaleFees); err != nil {
		return nil, err
	}
	if payload.Archived != nil {
		property.Archived = *payload.Archived
	}
	return property, nil
}
