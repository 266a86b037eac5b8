package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barberias/internal/audit"
	"github.com/BruksfildServices01/barberias/internal/httperr"
	"github.com/BruksfildServices01/barberias/internal/httpresp"
	"github.com/BruksfildServices01/barberias/internal/timezone"
)

const (
	defaultAuditLimit = 50
	maxAuditLimit     = 200
)

// ======================================================
// HANDLER
// ======================================================

type AuditLogsHandler struct {
	store audit.Store
	log   *zap.Logger
}

func NewAuditLogsHandler(store audit.Store, log *zap.Logger) *AuditLogsHandler {
	return &AuditLogsHandler{store: store, log: log}
}

// GET /api/audit-logs?action=&entity=&from=&to=&page=&limit=
func (h *AuditLogsHandler) List(c *gin.Context) {
	actor, ok := identityOf(c, h.log)
	if !ok {
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultAuditLimit)))
	if limit <= 0 || limit > maxAuditLimit {
		limit = defaultAuditLimit
	}

	// --------------------------------------------------
	// Filtros (siempre limitados a la barbería del token)
	// --------------------------------------------------
	f := audit.Filter{
		TenantID: actor.TenantID,
		Action:   strings.TrimSpace(c.Query("action")),
		Entity:   strings.TrimSpace(c.Query("entity")),
		Limit:    limit,
		Offset:   (page - 1) * limit,
	}

	if from, err := time.Parse(timezone.DateLayout, c.Query("from")); err == nil {
		f.From = &from
	}
	if to, err := time.Parse(timezone.DateLayout, c.Query("to")); err == nil {
		end := to.Add(24 * time.Hour)
		f.To = &end
	}

	logs, total, err := h.store.List(c.Request.Context(), f)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	httpresp.Page(c, logs, page, limit, total)
}
