package handlers

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barberias/internal/audit"
	"github.com/BruksfildServices01/barberias/internal/auth"
	"github.com/BruksfildServices01/barberias/internal/infra/memstore"
	"github.com/BruksfildServices01/barberias/internal/middleware"
	"github.com/BruksfildServices01/barberias/internal/models"
	ucCatalog "github.com/BruksfildServices01/barberias/internal/usecase/catalog"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestOptionalBarber(t *testing.T) {
	tests := []struct {
		query   string
		want    *uint
		wantErr error
	}{
		{query: "", want: nil},
		{query: "barbero_id=todos", want: nil},
		{query: "barbero_id=7", want: ptr(7)},
		{query: "barbero_id=0", wantErr: errInvalidBarber},
		{query: "barbero_id=abc", wantErr: errInvalidBarber},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/x?"+tt.query, nil)

			got, err := optionalBarber(c)
			assert.Equal(t, tt.wantErr, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRequiredBarber(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)

	_, err := requiredBarber(c)
	assert.Equal(t, errBarberRequired, err)
}

func ptr(v uint) *uint { return &v }

func uploadEngine(maxBytes int64) *gin.Engine {
	store := memstore.New()
	services := store.Services()

	h := NewCatalogHandler(
		ucCatalog.NewCreateService(store.Barbers(), services, audit.Discard{}),
		ucCatalog.NewUpdateService(services, audit.Discard{}),
		ucCatalog.NewDeleteService(services, nil, audit.Discard{}),
		ucCatalog.NewUploadServiceImage(services, nil, audit.Discard{}),
		ucCatalog.NewUploadLogo(store.Tenants(), nil, audit.Discard{}),
		maxBytes,
		zap.NewNop(),
	)

	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextIdentity, auth.Identity{BarberID: 1, TenantID: 1, Role: models.RoleAdmin})
	})
	r.POST("/servicios/:id/imagen", h.UploadServiceImage)
	return r
}

func multipartBody(t *testing.T, field string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile(field, "foto.png")
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestUploadServiceImage_MediaDisabled(t *testing.T) {
	body, ct := multipartBody(t, FormImageField, []byte("not really an image"))
	req := httptest.NewRequest(http.MethodPost, "/servicios/1/imagen", body)
	req.Header.Set("Content-Type", ct)

	w := httptest.NewRecorder()
	uploadEngine(1<<20).ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "media_disabled")
}

func TestUploadServiceImage_MissingFile(t *testing.T) {
	body, ct := multipartBody(t, "otro", []byte("x"))
	req := httptest.NewRequest(http.MethodPost, "/servicios/1/imagen", body)
	req.Header.Set("Content-Type", ct)

	w := httptest.NewRecorder()
	uploadEngine(1<<20).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "imagen_requerida")
}

func TestUploadServiceImage_TooLarge(t *testing.T) {
	body, ct := multipartBody(t, FormImageField, bytes.Repeat([]byte("a"), 2048))
	req := httptest.NewRequest(http.MethodPost, "/servicios/1/imagen", body)
	req.Header.Set("Content-Type", ct)

	w := httptest.NewRecorder()
	uploadEngine(1024).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "imagen_muy_grande")
}

func TestUploadServiceImage_BadID(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/servicios/abc/imagen", nil)

	w := httptest.NewRecorder()
	uploadEngine(1024).ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "id_invalido")
}
