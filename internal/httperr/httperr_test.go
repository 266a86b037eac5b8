package httperr

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestBusinessError_HTTPStatus(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{ErrBusiness("x"), http.StatusBadRequest},
		{NotFoundErr("x", ""), http.StatusNotFound},
		{ConflictErr("x", ""), http.StatusConflict},
		{SlotConflictErr("x", ""), http.StatusBadRequest},
		{UnauthorizedErr("x", ""), http.StatusUnauthorized},
		{ForbiddenErr("x", ""), http.StatusForbidden},
		{New(KindTooManyRequests, "x", ""), http.StatusTooManyRequests},
		{New(KindUnavailable, "x", ""), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		be, ok := AsBusiness(tt.err)
		assert.True(t, ok)
		assert.Equal(t, tt.want, be.HTTPStatus())
	}
}

func TestIsBusiness_Wrapped(t *testing.T) {
	err := fmt.Errorf("creating: %w", SlotConflictErr("slot_taken", "taken"))

	assert.True(t, IsBusiness(err, "slot_taken"))
	assert.True(t, IsKind(err, KindConflict))
	assert.False(t, IsBusiness(errors.New("slot_taken"), "slot_taken"))
}

func TestRespond_HidesInternalDetail(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)

	Respond(c, zap.NewNop(), errors.New("pq: connection refused on 10.0.0.5"))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotContains(t, w.Body.String(), "10.0.0.5")
	assert.Contains(t, w.Body.String(), "internal_error")
}

func TestRespond_BusinessMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/x", nil)

	Respond(c, zap.NewNop(), ForbiddenErr("forbidden", "No tienes permisos"))

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.JSONEq(t, `{"error_code":"forbidden","message":"No tienes permisos"}`, w.Body.String())
}
