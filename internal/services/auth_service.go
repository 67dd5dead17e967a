package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	pgx "github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"

	"rentfolio/internal/middleware"
	"rentfolio/internal/models"
	"rentfolio/internal/repositories"
	"rentfolio/internal/validation"
)

// ErrInvalidCredentials is returned on a failed login. The message is the
// same for an unknown email and a wrong password.
var ErrInvalidCredentials = errors.New("invalid email or password")

type AuthService interface {
	Login(ctx context.Context, payload *validation.CredentialsPayload) (string, error)
	GenerateToken(user *models.User) (string, error)
}

type authService struct {
	userRepo  repositories.UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration
}

func NewAuthService(userRepo repositories.UserRepository, jwtSecret string, tokenTTL time.Duration) AuthService {
	return &authService{
		userRepo:  userRepo,
		jwtSecret: []byte(jwtSecret),
		tokenTTL:  tokenTTL,
	}
}

// Login exchanges email and password for a signed bearer token.
func (s *authService) Login(ctx context.Context, payload *validation.CredentialsPayload) (string, error) {
	if err := validation.ValidateCredentials(payload); err != nil {
		return "", err
	}

	user, err := s.userRepo.GetByEmail(ctx, payload.Email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(payload.Password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.GenerateToken(user)
}

// GenerateToken signs a JWT carrying the user's id and admin flag.
func (s *authService) GenerateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := middleware.AuthClaims{
		IsAdmin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.jwtSecret)
}
