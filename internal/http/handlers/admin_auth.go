package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"

	"github.com/prathamesh4949/Olcademyfrontend-sub002/internal/config"
	"github.com/prathamesh4949/Olcademyfrontend-sub002/internal/http/middleware"
	"github.com/prathamesh4949/Olcademyfrontend-sub002/internal/http/render"
	"github.com/prathamesh4949/Olcademyfrontend-sub002/internal/http/sessioncookie"
	"github.com/prathamesh4949/Olcademyfrontend-sub002/internal/http/validation"
	"github.com/prathamesh4949/Olcademyfrontend-sub002/internal/shared/apperr"
)

type AdminAuthHandler struct {
	Cfg      config.AdminConfig
	Codec    *sessioncookie.Codec
	Sessions *middleware.AdminSessions
}

func NewAdminAuthHandler(cfg config.AdminConfig, codec *sessioncookie.Codec, sessions *middleware.AdminSessions) *AdminAuthHandler {
	return &AdminAuthHandler{Cfg: cfg, Codec: codec, Sessions: sessions}
}

type loginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *AdminAuthHandler) Login(c *gin.Context) {
	var in loginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperr.InvalidErr("Login details are invalid.", validation.FromBindError(err, &in)))
		return
	}

	if h.Cfg.Email == "" || h.Cfg.PasswordHash == "" {
		c.Error(errMissingAdminCredentials)
		return
	}

	if !strings.EqualFold(in.Email, h.Cfg.Email) ||
		bcrypt.CompareHashAndPassword([]byte(h.Cfg.PasswordHash), []byte(in.Password)) != nil {
		c.Error(apperr.UnauthorizedErr("Email or password is incorrect."))
		return
	}

	token := h.Sessions.Create()
	h.Codec.Set(c, token)
	render.Message(c, http.StatusOK, "Logged in")
}

func (h *AdminAuthHandler) Logout(c *gin.Context) {
	if token, ok := h.Codec.GetSessionID(c); ok {
		h.Sessions.Revoke(token)
	}
	h.Codec.Clear(c)
	render.Message(c, http.StatusOK, "Logged out")
}

var errMissingAdminCredentials = &apperr.AppError{
	Kind:      apperr.Internal,
	PublicMsg: "Admin console is not configured.",
}
