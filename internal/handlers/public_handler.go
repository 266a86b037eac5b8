package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barberias/internal/httperr"
	"github.com/BruksfildServices01/barberias/internal/httpresp"
	ucCatalog "github.com/BruksfildServices01/barberias/internal/usecase/catalog"
)

// PublicHandler serves the tenant data the booking page needs before any
// appointment exists.
type PublicHandler struct {
	barbers  *ucCatalog.ListBarbers
	services *ucCatalog.ListServices
	log      *zap.Logger
}

func NewPublicHandler(
	barbers *ucCatalog.ListBarbers,
	services *ucCatalog.ListServices,
	log *zap.Logger,
) *PublicHandler {
	return &PublicHandler{
		barbers:  barbers,
		services: services,
		log:      log,
	}
}

type TenantConfigResponse struct {
	ID          uint           `json:"id"`
	Name        string         `json:"nombre"`
	Slug        string         `json:"slug"`
	LogoURL     string         `json:"logo_url"`
	ThemeColors map[string]any `json:"colores_tema"`
}

type BarberResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"nombre"`
}

type ServiceOption struct {
	Value string `json:"value"`
	Text  string `json:"text"`
	Image string `json:"image"`
}

// GET /api/barberia/config
func (h *PublicHandler) Config(c *gin.Context) {
	t, ok := tenantOf(c, h.log)
	if !ok {
		return
	}

	colors := map[string]any(t.ThemeColors)
	if colors == nil {
		colors = map[string]any{}
	}

	httpresp.OK(c, TenantConfigResponse{
		ID:          t.ID,
		Name:        t.Name,
		Slug:        t.Slug,
		LogoURL:     t.LogoURL,
		ThemeColors: colors,
	})
}

// GET /api/barberos
func (h *PublicHandler) Barbers(c *gin.Context) {
	t, ok := tenantOf(c, h.log)
	if !ok {
		return
	}

	list, err := h.barbers.Execute(c.Request.Context(), t.ID)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	out := make([]BarberResponse, 0, len(list))
	for _, b := range list {
		out = append(out, BarberResponse{ID: b.ID, Name: b.Name})
	}
	c.JSON(http.StatusOK, out)
}

// GET /api/barberos/:id/servicios
func (h *PublicHandler) Services(c *gin.Context) {
	t, ok := tenantOf(c, h.log)
	if !ok {
		return
	}

	barberID, err := pathID(c, "id")
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	list, err := h.services.Execute(c.Request.Context(), t.ID, barberID)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	out := make([]ServiceOption, 0, len(list))
	for _, s := range list {
		out = append(out, ServiceOption{Value: s.Name, Text: s.Name, Image: s.ImageURL})
	}
	c.JSON(http.StatusOK, out)
}
