package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barberias/internal/auth"
	"github.com/BruksfildServices01/barberias/internal/infra/memstore"
	"github.com/BruksfildServices01/barberias/internal/models"
	ucTenant "github.com/BruksfildServices01/barberias/internal/usecase/tenant"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func securedEngine(tokens *auth.TokenManager) *gin.Engine {
	r := gin.New()
	r.Use(AuthMiddleware(tokens, zap.NewNop()))
	r.GET("/me", func(c *gin.Context) {
		id, _ := IdentityFrom(c)
		c.JSON(http.StatusOK, gin.H{"barbero_id": id.BarberID, "barberia_id": id.TenantID})
	})
	r.GET("/admin", AdminOnly(zap.NewNop()), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	tokens := auth.NewTokenManager("secret", time.Hour)
	valid, err := tokens.Issue(auth.Identity{BarberID: 7, TenantID: 3, Name: "Giovany", Role: models.RoleBarber})
	require.NoError(t, err)

	other, err := auth.NewTokenManager("other", time.Hour).Issue(auth.Identity{BarberID: 7, TenantID: 3})
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		status int
		code   string
	}{
		{name: "missing", status: http.StatusUnauthorized, code: "missing_authorization_header"},
		{name: "not bearer", header: "Basic abc", status: http.StatusUnauthorized, code: "invalid_authorization_header"},
		{name: "empty bearer", header: "Bearer ", status: http.StatusUnauthorized, code: "invalid_authorization_header"},
		{name: "garbage", header: "Bearer abc.def.ghi", status: http.StatusUnauthorized, code: "invalid_token"},
		{name: "bad signature", header: "Bearer " + other, status: http.StatusUnauthorized, code: "invalid_token"},
		{name: "valid", header: "Bearer " + valid, status: http.StatusOK},
	}

	r := securedEngine(tokens)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.code != "" {
				assert.Contains(t, w.Body.String(), tt.code)
			} else {
				assert.JSONEq(t, `{"barbero_id":7,"barberia_id":3}`, w.Body.String())
			}
		})
	}
}

func TestAuthMiddleware_Expired(t *testing.T) {
	tokens := auth.NewTokenManager("secret", -time.Minute)
	expired, err := tokens.Issue(auth.Identity{BarberID: 1, TenantID: 1})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	w := httptest.NewRecorder()
	securedEngine(tokens).ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "token_expired")
}

func TestAdminOnly(t *testing.T) {
	tokens := auth.NewTokenManager("secret", time.Hour)
	r := securedEngine(tokens)

	for role, want := range map[string]int{
		models.RoleBarber: http.StatusForbidden,
		models.RoleAdmin:  http.StatusNoContent,
	} {
		tok, err := tokens.Issue(auth.Identity{BarberID: 1, TenantID: 1, Role: role})
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/admin", nil)
		req.Header.Set("Authorization", "Bearer "+tok)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, want, w.Code, role)
	}
}

func TestTenantMiddleware(t *testing.T) {
	repo := memstore.New().Tenants()
	require.NoError(t, repo.Save(context.Background(), &models.Tenant{Name: "Giovany", Slug: "giovany", Active: true}))

	r := gin.New()
	r.Use(TenantMiddleware(ucTenant.NewResolve(repo, []string{"reservas.app"}, false, zap.NewNop()), zap.NewNop()))
	r.GET("/x", func(c *gin.Context) {
		tn, _ := TenantFrom(c)
		c.String(http.StatusOK, tn.Slug)
	})

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Host = "giovany.reservas.app"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "giovany", w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/x?barberia=giovany", nil)
	req.Host = "localhost:8080"
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, "giovany", w.Body.String())

	req = httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Host = "localhost:8080"
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "barberia_not_found")
}

func TestRequestLogger_RequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger(zap.NewNop()))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	_, err := uuid.Parse(w.Header().Get(HeaderRequestID))
	assert.NoError(t, err)

	given := uuid.NewString()
	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set(HeaderRequestID, given)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, given, w.Header().Get(HeaderRequestID))
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	tests := []struct {
		name    string
		origins []string
		origin  string
		allowed bool
	}{
		{name: "tenant subdomain", origin: "https://giovany.reservas.app", allowed: true},
		{name: "tenant subdomain with port", origin: "http://giovany.reservas.app:3000", allowed: true},
		{name: "listed origin", origins: []string{"http://localhost:5173/"}, origin: "http://localhost:5173", allowed: true},
		{name: "foreign origin", origin: "https://evil.example", allowed: false},
		{name: "suffix lookalike", origin: "https://notreservas.app", allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.Use(CORSMiddleware(tt.origins, []string{"reservas.app"}))
			r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

			req := httptest.NewRequest(http.MethodOptions, "/x", nil)
			req.Header.Set("Origin", tt.origin)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, http.StatusNoContent, w.Code)
			if tt.allowed {
				assert.Equal(t, tt.origin, w.Header().Get("Access-Control-Allow-Origin"))
			} else {
				assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
			}
		})
	}
}

func TestCORSMiddleware_OpenWithoutConfig(t *testing.T) {
	r := gin.New()
	r.Use(CORSMiddleware(nil, nil))
	r.GET("/x", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/x", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}
