package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barberias/internal/auth"
	"github.com/BruksfildServices01/barberias/internal/httperr"
)

const ContextIdentity = "identity"

var (
	errMissingHeader = httperr.UnauthorizedErr("missing_authorization_header", "Token no proporcionado.")
	errInvalidHeader = httperr.UnauthorizedErr("invalid_authorization_header", "Formato de token inválido.")
	errInvalidToken  = httperr.UnauthorizedErr("invalid_token", "Token inválido.")
	errExpiredToken  = httperr.UnauthorizedErr("token_expired", "Token expirado.")
	errAdminOnly     = httperr.ForbiddenErr("forbidden", "Se requiere rol de administrador.")
)

// AuthMiddleware validates the bearer token and stores the caller identity.
func AuthMiddleware(tokens *auth.TokenManager, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abort(c, log, errMissingHeader)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			abort(c, log, errInvalidHeader)
			return
		}

		claims, err := tokens.Parse(strings.TrimSpace(parts[1]))
		if err != nil {
			if errors.Is(err, auth.ErrExpiredToken) {
				abort(c, log, errExpiredToken)
				return
			}
			abort(c, log, errInvalidToken)
			return
		}

		c.Set(ContextIdentity, claims.Identity())
		c.Next()
	}
}

// AdminOnly must run after AuthMiddleware.
func AdminOnly(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := IdentityFrom(c)
		if !ok || !id.IsAdmin() {
			abort(c, log, errAdminOnly)
			return
		}
		c.Next()
	}
}

func IdentityFrom(c *gin.Context) (auth.Identity, bool) {
	v, ok := c.Get(ContextIdentity)
	if !ok {
		return auth.Identity{}, false
	}
	id, ok := v.(auth.Identity)
	return id, ok
}

func abort(c *gin.Context, log *zap.Logger, err error) {
	httperr.Respond(c, log, err)
	c.Abort()
}
