package middleware

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barberias/internal/models"
	ucTenant "github.com/BruksfildServices01/barberias/internal/usecase/tenant"
)

const (
	ContextTenant = "tenant"

	// TenantQueryParam selects a tenant explicitly when the host does not.
	TenantQueryParam = "barberia"
)

// TenantMiddleware resolves the barbería of a public request.
func TenantMiddleware(resolve *ucTenant.Resolve, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		t, err := resolve.Execute(c.Request.Context(), c.Request.Host, c.Query(TenantQueryParam))
		if err != nil {
			abort(c, log, err)
			return
		}

		c.Set(ContextTenant, t)
		c.Next()
	}
}

func TenantFrom(c *gin.Context) (*models.Tenant, bool) {
	v, ok := c.Get(ContextTenant)
	if !ok {
		return nil, false
	}
	t, ok := v.(*models.Tenant)
	return t, ok && t != nil
}
