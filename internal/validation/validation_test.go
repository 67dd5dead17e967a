package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"rentfolio/internal/common"
)

func strPtr(s string) *string    { return &s }
func floatPtr(f float64) *float64 { return &f }
func boolPtr(b bool) *bool        { return &b }

func validPropertyPayload() *PropertyPayload {
	return &PropertyPayload{
		Erf:          "123",
		AddressLine1: "12 Long Street",
		City:         "Cape Town",
		PurchaseDate: "2020-06-15",
	}
}

func assertFieldError(t *testing.T, err error, field, message string) {
	t.Helper()
	var fieldErr *common.FieldError
	if assert.ErrorAs(t, err, &fieldErr) {
		assert.Equal(t, field, fieldErr.Field)
		assert.Equal(t, message, fieldErr.Message)
	}
}

func TestValidateProperty_Create(t *testing.T) {
	property, err := ValidateProperty(validPropertyPayload(), ModeCreate)
	assert.NoError(t, err)
	assert.Equal(t, "123", property.Erf)
	assert.Equal(t, "Cape Town", property.City)
	assert.Equal(t, time.Date(2020, 6, 15, 0, 0, 0, 0, time.UTC), property.PurchaseDate)
	assert.False(t, property.Archived)
}

func TestValidateProperty_CreateForbiddenFields(t *testing.T) {
	cases := []struct {
		field  string
		mutate func(*PropertyPayload)
	}{
		{"saleDate", func(p *PropertyPayload) { p.SaleDate = strPtr("2021-01-01") }},
		{"salePrice", func(p *PropertyPayload) { p.SalePrice = floatPtr(500000) }},
		{"saleFees", func(p *PropertyPayload) { p.SaleFees = floatPtr(1000) }},
		{"archived", func(p *PropertyPayload) { p.Archived = boolPtr(true) }},
	}
	for _, tc := range cases {
		t.Run(tc.field, func(t *testing.T) {
			payload := validPropertyPayload()
			tc.mutate(payload)
			_, err := ValidateProperty(payload, ModeCreate)
			assertFieldError(t, err, tc.field, "is not allowed on create")
		})
	}
}

func TestValidateProperty_UpdateAcceptsSaleFields(t *testing.T) {
	payload := validPropertyPayload()
	payload.SaleDate = strPtr("2021-01-01")
	payload.SalePrice = floatPtr(750000)
	payload.Archived = boolPtr(true)

	property, err := ValidateProperty(payload, ModeUpdate)
	assert.NoError(t, err)
	assert.NotNil(t, property.SaleDate)
	assert.True(t, property.Archived)
}

func TestValidateProperty_SaleBeforePurchase(t *testing.T) {
	payload := validPropertyPayload()
	payload.SaleDate = strPtr("2019-12-31")

	_, err := ValidateProperty(payload, ModeUpdate)
	assertFieldError(t, err, "saleDate", "must be on or after purchaseDate")
}

func TestValidateProperty_FieldRules(t *testing.T) {
	t.Run("erf too long", func(t *testing.T) {
		payload := validPropertyPayload()
		payload.Erf = "12345678901"
		_, err := ValidateProperty(payload, ModeCreate)
		assertFieldError(t, err, "erf", "must be between 1 and 10 characters")
	})
	t.Run("missing addressLine1", func(t *testing.T) {
		payload := validPropertyPayload()
		payload.AddressLine1 = ""
		_, err := ValidateProperty(payload, ModeCreate)
		assertFieldError(t, err, "addressLine1", "is required")
	})
	t.Run("malformed purchaseDate", func(t *testing.T) {
		payload := validPropertyPayload()
		payload.PurchaseDate = "15/06/2020"
		_, err := ValidateProperty(payload, ModeCreate)
		assertFieldError(t, err, "purchaseDate", "must be in YYYY-MM-DD format")
	})
	t.Run("negative purchasePrice", func(t *testing.T) {
		payload := validPropertyPayload()
		payload.PurchasePrice = floatPtr(-1)
		_, err := ValidateProperty(payload, ModeCreate)
		var fieldErr *common.FieldError
		if assert.ErrorAs(t, err, &fieldErr) {
			assert.Equal(t, "purchasePrice", fieldErr.Field)
		}
	})
}

func validAgentPayload() *AgentPayload {
	return &AgentPayload{
		EntityName:                     "Rawson Rentals",
		FirstName:                      "Jane",
		LastName:                       "Smith",
		Email:                          "jane@rawson.example",
		VATInclManagementFeePercentage: floatPtr(0.08),
	}
}

func TestValidateAgent(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		agent, err := ValidateAgent(validAgentPayload())
		assert.NoError(t, err)
		assert.Equal(t, "Rawson Rentals", agent.EntityName)
		assert.InDelta(t, 0.08, agent.VATInclManagementFeePercentage, 1e-9)
	})
	t.Run("missing fee", func(t *testing.T) {
		payload := validAgentPayload()
		payload.VATInclManagementFeePercentage = nil
		_, err := ValidateAgent(payload)
		assertFieldError(t, err, "vatInclManagementFeePercentage", "is required")
	})
	t.Run("fee above one", func(t *testing.T) {
		payload := validAgentPayload()
		payload.VATInclManagementFeePercentage = floatPtr(8)
		_, err := ValidateAgent(payload)
		var fieldErr *common.FieldError
		if assert.ErrorAs(t, err, &fieldErr) {
			assert.Equal(t, "vatInclManagementFeePercentage", fieldErr.Field)
		}
	})
	t.Run("bad email", func(t *testing.T) {
		payload := validAgentPayload()
		payload.Email = "not-an-email"
		_, err := ValidateAgent(payload)
		var fieldErr *common.FieldError
		if assert.ErrorAs(t, err, &fieldErr) {
			assert.Equal(t, "email", fieldErr.Field)
		}
	})
}

func validRentalPayload() *RentalPayload {
	return &RentalPayload{
		PropertyID:          strPtr("0d9c41e4-41a7-4e45-9c35-0a2f1a66f1a1"),
		AgentID:             strPtr("5f0a4f43-7f23-4e7a-bb3e-1d60cc9b7f02"),
		TenantID:            strPtr("9a7b2763-4d14-4b83-8f0e-1cdd25b6a903"),
		StartDate:           "2022-01-01",
		EndDate:             "2022-12-31",
		MonthlyRentalAmount: floatPtr(8500),
	}
}

func TestValidateRental_Create(t *testing.T) {
	input, err := ValidateRental(validRentalPayload(), ModeCreate)
	assert.NoError(t, err)
	assert.Equal(t, "0d9c41e4-41a7-4e45-9c35-0a2f1a66f1a1", input.PropertyID.String())
	assert.Equal(t, 8500.0, input.MonthlyRentalAmount)
}

func TestValidateRental_CreateReferences(t *testing.T) {
	t.Run("missing propertyId", func(t *testing.T) {
		payload := validRentalPayload()
		payload.PropertyID = nil
		_, err := ValidateRental(payload, ModeCreate)
		assertFieldError(t, err, "propertyId", "is required")
	})
	t.Run("malformed agentId", func(t *testing.T) {
		payload := validRentalPayload()
		payload.AgentID = strPtr("not-a-uuid")
		_, err := ValidateRental(payload, ModeCreate)
		assertFieldError(t, err, "agentId", "must be a valid id")
	})
}

func TestValidateRental_UpdateForbidsReferences(t *testing.T) {
	payload := &RentalPayload{
		TenantID:            strPtr("9a7b2763-4d14-4b83-8f0e-1cdd25b6a903"),
		StartDate:           "2022-01-01",
		EndDate:             "2022-12-31",
		MonthlyRentalAmount: floatPtr(8500),
	}
	_, err := ValidateRental(payload, ModeUpdate)
	assertFieldError(t, err, "tenantId", "is not allowed on update")
}

func TestValidateRental_EndBeforeStart(t *testing.T) {
	payload := validRentalPayload()
	payload.EndDate = "2021-12-31"
	_, err := ValidateRental(payload, ModeCreate)
	assertFieldError(t, err, "endDate", "must be on or after startDate")
}

func TestValidateUser(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		input, err := ValidateUser(&UserPayload{
			FirstName: "Alice",
			LastName:  "Jones",
			Email:     "alice@example.com",
			Password:  "s3cret",
		})
		assert.NoError(t, err)
		assert.Equal(t, "alice@example.com", input.Email)
	})
	t.Run("short firstName", func(t *testing.T) {
		_, err := ValidateUser(&UserPayload{
			FirstName: "Al",
			LastName:  "Jones",
			Email:     "alice@example.com",
			Password:  "s3cret",
		})
		assertFieldError(t, err, "firstName", "must be between 3 and 50 characters")
	})
}
