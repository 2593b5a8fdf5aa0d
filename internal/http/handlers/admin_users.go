package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/prathamesh4949/Olcademyfrontend-sub002/internal/http/render"
	"github.com/prathamesh4949/Olcademyfrontend-sub002/internal/modules/admin"
	"github.com/prathamesh4949/Olcademyfrontend-sub002/pkg/view"
)

// Users refetches the user list and returns the projection for the given
// search and category filter. The filtering itself is local; only the
// fetch hits the backend.
func (h *AdminHandler) Users(c *gin.Context) {
	h.Ctrl.SetUserSearch(strings.TrimSpace(c.Query("q")))
	h.Ctrl.SetUserFilter(admin.UserFilter(c.DefaultQuery("filter", string(admin.FilterAll))))

	if err := h.Ctrl.RefreshUsers(c.Request.Context()); err != nil {
		c.Error(toAppErr(err))
		return
	}

	render.OK(c, http.StatusOK, gin.H{
		"users": view.AdminUserRows(h.Ctrl.Users()),
		"state": h.Ctrl.State(),
	})
}

// ToggleAdmin flips one user's admin flag through the mutation coordinator.
func (h *AdminHandler) ToggleAdmin(c *gin.Context) {
	userID := c.Param("id")
	if err := h.Ctrl.Coordinator().ToggleAdminStatus(c.Request.Context(), userID); err != nil {
		c.Error(toAppErr(err))
		return
	}

	payload := gin.H{"users": view.AdminUserRows(h.Ctrl.Users())}
	if n, ok := h.Ctrl.Notices().Current(); ok {
		payload["notice"] = n
	}
	render.OK(c, http.StatusOK, payload)
}
