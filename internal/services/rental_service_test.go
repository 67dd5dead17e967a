package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"rentfolio/internal/common"
	"rentfolio/internal/models"
	"rentfolio/internal/validation"
)

type RentalServiceTestSuite struct {
	suite.Suite
	rentalRepo   *MockRentalRepository
	propertyRepo *MockPropertyRepository
	agentRepo    *MockAgentRepository
	tenantRepo   *MockTenantRepository
	service      RentalService

	property *models.Property
	agent    *models.Agent
	tenant   *models.Tenant
}

func (suite *RentalServiceTestSuite) SetupTest() {
	suite.rentalRepo = &MockRentalRepository{}
	suite.propertyRepo = &MockPropertyRepository{}
	suite.agentRepo = &MockAgentRepository{}
	suite.tenantRepo = &MockTenantRepository{}
	suite.service = NewRentalService(suite.rentalRepo, suite.propertyRepo, suite.agentRepo, suite.tenantRepo)

	suite.property = &models.Property{
		ID:           uuid.New(),
		Erf:          "123",
		AddressLine1: "10 Long Street",
		AddressLine2: stringPtr("Sea Point Villas"),
		City:         "Cape Town",
		PurchaseDate: time.Date(2020, 3, 1, 0, 0, 0, 0, time.UTC),
	}
	suite.agent = &models.Agent{
		ID:                             uuid.New(),
		EntityName:                     "Acme Rentals",
		FirstName:                      "Jane",
		LastName:                       "Smith",
		Email:                          "jane@acme.example",
		Phone:                          stringPtr("0215551234"),
		VATInclManagementFeePercentage: 0.1,
	}
	suite.tenant = &models.Tenant{
		ID:        uuid.New(),
		FirstName: "John",
		LastName:  "Brown",
		Email:     "john@tenant.example",
	}
}

func (suite *RentalServiceTestSuite) TearDownTest() {
	suite.rentalRepo.AssertExpectations(suite.T())
	suite.propertyRepo.AssertExpectations(suite.T())
	suite.agentRepo.AssertExpectations(suite.T())
	suite.tenantRepo.AssertExpectations(suite.T())
}

func TestRentalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RentalServiceTestSuite))
}

func (suite *RentalServiceTestSuite) createPayload() *validation.RentalPayload {
	return &validation.RentalPayload{
		PropertyID:          stringPtr(suite.property.ID.String()),
		AgentID:             stringPtr(suite.agent.ID.String()),
		TenantID:            stringPtr(suite.tenant.ID.String()),
		StartDate:           "2022-01-01",
		EndDate:             "2022-12-31",
		MonthlyRentalAmount: floatPtr(15000),
	}
}

func (suite *RentalServiceTestSuite) TestCreate_CopiesSnapshots() {
	ctx := context.Background()

	suite.propertyRepo.On("GetByID", ctx, suite.property.ID).Return(suite.property, nil)
	suite.agentRepo.On("GetByID", ctx, suite.agent.ID).Return(suite.agent, nil)
	suite.tenantRepo.On("GetByID", ctx, suite.tenant.ID).Return(suite.tenant, nil)
	suite.rentalRepo.On("Create", ctx, mock.AnythingOfType("*models.Rental")).Return(nil)

	rental, err := suite.service.Create(ctx, suite.createPayload())
	assert.NoError(suite.T(), err)
	assert.NotEqual(suite.T(), uuid.Nil, rental.ID)
	assert.Equal(suite.T(), suite.property.ID, rental.Property.ID)
	assert.Equal(suite.T(), "Sea Point Villas - Erf 123 (10 Long Street)", rental.Property.Name)
	assert.Equal(suite.T(), "Acme Rentals", rental.Agent.EntityName)
	assert.Equal(suite.T(), "Jane Smith", rental.Agent.Name)
	assert.Equal(suite.T(), "John Brown", rental.Tenant.Name)
	assert.InDelta(suite.T(), 12.0, rental.Duration, 1e-9)
}

func (suite *RentalServiceTestSuite) TestCreate_ArchivedPropertyRejected() {
	ctx := context.Background()
	suite.property.Archived = true
	suite.propertyRepo.On("GetByID", ctx, suite.property.ID).Return(suite.property, nil)

	rental, err := suite.service.Create(ctx, suite.createPayload())
	assert.Nil(suite.T(), rental)
	var notFound *common.NotFoundError
	assert.ErrorAs(suite.T(), err, &notFound)
	assert.Equal(suite.T(), "Property", notFound.Resource)
	suite.rentalRepo.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

func (suite *RentalServiceTestSuite) TestCreate_MissingAgentRejected() {
	ctx := context.Background()
	suite.propertyRepo.On("GetByID", ctx, suite.property.ID).Return(suite.property, nil)
	suite.agentRepo.On("GetByID", ctx, suite.agent.ID).Return(nil, pgx.ErrNoRows)

	_, err := suite.service.Create(ctx, suite.createPayload())
	var notFound *common.NotFoundError
	assert.ErrorAs(suite.T(), err, &notFound)
	assert.Equal(suite.T(), "Agent", notFound.Resource)
}

func (suite *RentalServiceTestSuite) TestUpdate_SnapshotsUnchanged() {
	ctx := context.Background()
	rentalID := uuid.New()
	existing := &models.Rental{
		ID: rentalID,
		Property: models.PropertySnapshot{
			ID:   suite.property.ID,
			Name: "Sea Point Villas - Erf 123 (10 Long Street)",
		},
		Agent: models.AgentSnapshot{
			ID:         suite.agent.ID,
			EntityName: "Acme Rentals",
			Name:       "Jane Smith",
			Email:      "jane@acme.example",
		},
		Tenant: models.TenantSnapshot{
			ID:   suite.tenant.ID,
			Name: "John Brown",
		},
		StartDate:           time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:             time.Date(2022, 12, 31, 0, 0, 0, 0, time.UTC),
		MonthlyRentalAmount: 15000,
	}

	suite.rentalRepo.On("GetByID", ctx, rentalID).Return(existing, nil)
	suite.rentalRepo.On("Update", ctx, mock.AnythingOfType("*models.Rental")).Return(nil).Run(func(args mock.Arguments) {
		updated := args.Get(1).(*models.Rental)
		assert.Equal(suite.T(), "Sea Point Villas - Erf 123 (10 Long Street)", updated.Property.Name)
		assert.Equal(suite.T(), "Jane Smith", updated.Agent.Name)
		assert.Equal(suite.T(), "John Brown", updated.Tenant.Name)
	})

	payload := &validation.RentalPayload{
		StartDate:           "2022-02-01",
		EndDate:             "2023-01-31",
		MonthlyRentalAmount: floatPtr(16000),
	}
	rental, err := suite.service.Update(ctx, rentalID, payload)
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), time.Date(2022, 2, 1, 0, 0, 0, 0, time.UTC), rental.StartDate)
	assert.Equal(suite.T(), 16000.0, rental.MonthlyRentalAmount)
}

func (suite *RentalServiceTestSuite) TestUpdate_ReferenceChangeForbidden() {
	ctx := context.Background()
	payload := &validation.RentalPayload{
		PropertyID:          stringPtr(uuid.NewString()),
		StartDate:           "2022-02-01",
		EndDate:             "2023-01-31",
		MonthlyRentalAmount: floatPtr(16000),
	}

	_, err := suite.service.Update(ctx, uuid.New(), payload)
	var fieldErr *common.FieldError
	assert.ErrorAs(suite.T(), err, &fieldErr)
	assert.Equal(suite.T(), "propertyId", fieldErr.Field)
}
