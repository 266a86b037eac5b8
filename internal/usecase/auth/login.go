package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/barberias/internal/auth"
	"github.com/BruksfildServices01/barberias/internal/domain"
	barberdomain "github.com/BruksfildServices01/barberias/internal/domain/barber"
	"github.com/BruksfildServices01/barberias/internal/httperr"
	"github.com/BruksfildServices01/barberias/internal/models"
)

var (
	ErrMissingCredentials = httperr.BadRequestErr(
		"credenciales_requeridas",
		"Usuario y contraseña son requeridos.",
	)
	ErrInvalidCredentials = httperr.UnauthorizedErr(
		"credenciales_invalidas",
		"Usuario o contraseña incorrectos.",
	)
)

type LoginResult struct {
	Token  string
	Barber *models.Barber
}

type Login struct {
	barbers barberdomain.Repository
	tokens  *auth.TokenManager
}

func NewLogin(barbers barberdomain.Repository, tokens *auth.TokenManager) *Login {
	return &Login{
		barbers: barbers,
		tokens:  tokens,
	}
}

// Execute never tells the caller whether the username or the password failed.
func (uc *Login) Execute(
	ctx context.Context,
	username string,
	password string,
) (*LoginResult, error) {

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}

	b, err := uc.barbers.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if !b.Active {
		return nil, ErrInvalidCredentials
	}

	if err := auth.VerifyPassword(password, b.PasswordHash); err != nil {
		if errors.Is(err, auth.ErrInvalidPassword) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	role := b.Role
	if role == "" {
		role = models.RoleBarber
	}

	token, err := uc.tokens.Issue(auth.Identity{
		BarberID: b.ID,
		TenantID: b.TenantID,
		Name:     b.Name,
		Role:     role,
	})
	if err != nil {
		return nil, err
	}

	return &LoginResult{Token: token, Barber: b}, nil
}
