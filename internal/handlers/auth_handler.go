package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barberias/internal/httperr"
	ucAuth "github.com/BruksfildServices01/barberias/internal/usecase/auth"
)

type AuthHandler struct {
	login *ucAuth.Login
	log   *zap.Logger
}

func NewAuthHandler(login *ucAuth.Login, log *zap.Logger) *AuthHandler {
	return &AuthHandler{login: login, log: log}
}

// --------- Requests ---------

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// --------- Responses ---------

type UserResponse struct {
	ID       uint   `json:"id"`
	BarberID uint   `json:"barbero_id"`
	TenantID uint   `json:"barberia_id"`
	Username string `json:"username"`
	Name     string `json:"nombre"`
	Role     string `json:"rol"`
}

type LoginResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

// --------- Handlers ---------

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Respond(c, h.log, ucAuth.ErrMissingCredentials)
		return
	}

	res, err := h.login.Execute(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		httperr.Respond(c, h.log, err)
		return
	}

	b := res.Barber
	c.JSON(http.StatusOK, LoginResponse{
		Success: true,
		Message: "Inicio de sesión exitoso",
		Token:   res.Token,
		User: UserResponse{
			ID:       b.ID,
			BarberID: b.ID,
			TenantID: b.TenantID,
			Username: b.Username,
			Name:     b.Name,
			Role:     b.Role,
		},
	})
}
