package usecase

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/fleetflow/fleetflow/internal/pkg/jwt"
	"github.com/fleetflow/fleetflow/internal/pkg/logger"
	"github.com/fleetflow/fleetflow/internal/pkg/models"
	"github.com/fleetflow/fleetflow/services/fleet"
)

// ErrInvalidCredentials is returned for an unknown operator or a wrong
// password. Callers get the same error either way.
var ErrInvalidCredentials = errors.New("invalid email or password")

// authUC implements the fleet.AuthUC interface against the operator
// accounts defined in configuration.
type authUC struct {
	cfg *models.Config
}

// NewAuthUC creates a new auth use case
func NewAuthUC(cfg *models.Config) fleet.AuthUC {
	return &authUC{cfg: cfg}
}

// Login verifies operator credentials and issues a JWT
func (uc *authUC) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	var operator *models.Operator
	for i := range uc.cfg.Auth.Operators {
		if strings.EqualFold(uc.cfg.Auth.Operators[i].Email, req.Email) {
			operator = &uc.cfg.Auth.Operators[i]
			break
		}
	}
	if operator == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(operator.PasswordHash), []byte(req.Password)); err != nil {
		logger.Warn("failed login attempt", logger.String("email", req.Email))
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := jwt.GenerateToken(operator.Email, operator.Name, operator.Role, uc.cfg.JWT)
	if err != nil {
		return nil, err
	}

	logger.Info("operator logged in",
		logger.String("email", operator.Email),
		logger.String("role", string(operator.Role)))
	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Name:      operator.Name,
		Email:     operator.Email,
		Role:      operator.Role,
	}, nil
}
