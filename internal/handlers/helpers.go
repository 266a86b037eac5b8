package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barberias/internal/auth"
	"github.com/BruksfildServices01/barberias/internal/httperr"
	"github.com/BruksfildServices01/barberias/internal/middleware"
	"github.com/BruksfildServices01/barberias/internal/models"
)

var (
	errInvalidID      = httperr.BadRequestErr("id_invalido", "Identificador inválido.")
	errInvalidBarber  = httperr.BadRequestErr("barbero_id_invalido", "barbero_id inválido.")
	errBarberRequired = httperr.BadRequestErr("barbero_id_requerido", "barbero_id es requerido.")
	errInvalidRequest = httperr.BadRequestErr("invalid_request", "Datos inválidos.")
	errNoTenant       = httperr.NotFoundErr("barberia_not_found", "Barbería no encontrada.")
	errNoIdentity     = httperr.UnauthorizedErr("invalid_token", "Token inválido.")
)

// allBarbers is the value admin screens send to clear the barber filter.
const allBarbers = "todos"

// ======================================================
// CONTEXT
// ======================================================

func tenantOf(c *gin.Context, log *zap.Logger) (*models.Tenant, bool) {
	t, ok := middleware.TenantFrom(c)
	if !ok {
		httperr.Respond(c, log, errNoTenant)
	}
	return t, ok
}

func identityOf(c *gin.Context, log *zap.Logger) (auth.Identity, bool) {
	id, ok := middleware.IdentityFrom(c)
	if !ok {
		httperr.Respond(c, log, errNoIdentity)
	}
	return id, ok
}

// ======================================================
// PARAMS
// ======================================================

func parseUint(s string) (uint, bool) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}

func pathID(c *gin.Context, name string) (uint, error) {
	id, ok := parseUint(c.Param(name))
	if !ok {
		return 0, errInvalidID
	}
	return id, nil
}

// optionalBarber reads barbero_id from the query string. Empty and "todos"
// mean no filter.
func optionalBarber(c *gin.Context) (*uint, error) {
	raw := strings.TrimSpace(c.Query("barbero_id"))
	if raw == "" || raw == allBarbers {
		return nil, nil
	}
	id, ok := parseUint(raw)
	if !ok {
		return nil, errInvalidBarber
	}
	return &id, nil
}

func requiredBarber(c *gin.Context) (uint, error) {
	id, err := optionalBarber(c)
	if err != nil {
		return 0, err
	}
	if id == nil {
		return 0, errBarberRequired
	}
	return *id, nil
}
