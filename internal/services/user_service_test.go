package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"

	"rentfolio/internal/common"
	"rentfolio/internal/models"
	"rentfolio/internal/validation"
)

type UserServiceTestSuite struct {
	suite.Suite
	userRepo *MockUserRepository
	service  UserService
}

func (suite *UserServiceTestSuite) SetupTest() {
	suite.userRepo = &MockUserRepository{}
	suite.service = NewUserService(suite.userRepo)
}

func (suite *UserServiceTestSuite) TearDownTest() {
	suite.userRepo.AssertExpectations(suite.T())
}

func TestUserServiceTestSuite(t *testing.T) {
	suite.Run(t, new(UserServiceTestSuite))
}

func registerPayload() *validation.UserPayload {
	return &validation.UserPayload{
		FirstName: "Alice",
		LastName:  "Jones",
		Email:     "alice@example.com",
		Password:  "s3cret",
	}
}

func (suite *UserServiceTestSuite) TestRegister_HashesPassword() {
	ctx := context.Background()
	suite.userRepo.On("GetByEmail", ctx, "alice@example.com").Return(nil, pgx.ErrNoRows)
	suite.userRepo.On("Create", ctx, mock.AnythingOfType("*models.User")).Return(nil).Run(func(args mock.Arguments) {
		user := args.Get(1).(*models.User)
		assert.NotEqual(suite.T(), "s3cret", user.PasswordHash)
		assert.NoError(suite.T(), bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret")))
		assert.False(suite.T(), user.IsAdmin)
	})

	user, err := suite.service.Register(ctx, registerPayload())
	assert.NoError(suite.T(), err)
	assert.NotEqual(suite.T(), uuid.Nil, user.ID)
	assert.Equal(suite.T(), "Alice Jones", user.Name)
}

func (suite *UserServiceTestSuite) TestRegister_DuplicateEmail() {
	ctx := context.Background()
	existing := &models.User{ID: uuid.New(), Email: "alice@example.com"}
	suite.userRepo.On("GetByEmail", ctx, "alice@example.com").Return(existing, nil)

	user, err := suite.service.Register(ctx, registerPayload())
	assert.Nil(suite.T(), user)
	var duplicate *common.DuplicateError
	assert.ErrorAs(suite.T(), err, &duplicate)
	suite.userRepo.AssertNotCalled(suite.T(), "Create", mock.Anything, mock.Anything)
}

func (suite *UserServiceTestSuite) TestRegister_ShortFirstName() {
	ctx := context.Background()
	payload := registerPayload()
	payload.FirstName = "Al"

	_, err := suite.service.Register(ctx, payload)
	var fieldErr *common.FieldError
	assert.ErrorAs(suite.T(), err, &fieldErr)
	assert.Equal(suite.T(), "firstName", fieldErr.Field)
}
