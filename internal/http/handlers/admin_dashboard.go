package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prathamesh4949/Olcademyfrontend-sub002/internal/gateway"
	"github.com/prathamesh4949/Olcademyfrontend-sub002/internal/http/render"
	"github.com/prathamesh4949/Olcademyfrontend-sub002/internal/modules/admin"
	"github.com/prathamesh4949/Olcademyfrontend-sub002/internal/shared/apperr"
)

// AdminHandler exposes the dashboard controller over the console's JSON
// API. Each request plays one UI intent against the controller.
type AdminHandler struct {
	Ctrl *admin.Controller
}

func NewAdminHandler(ctrl *admin.Controller) *AdminHandler {
	return &AdminHandler{Ctrl: ctrl}
}

// Dashboard activates a tab and returns the summary numbers.
func (h *AdminHandler) Dashboard(c *gin.Context) {
	tab := admin.Tab(c.DefaultQuery("tab", string(admin.TabSummary)))
	switch tab {
	case admin.TabSummary, admin.TabUsers, admin.TabOrders:
	default:
		c.Error(apperr.InvalidErr("Unknown tab.", nil))
		return
	}

	// a fetch failure still renders: the view shows the error state with
	// its retry affordance
	_ = h.Ctrl.ActivateTab(c.Request.Context(), tab)

	payload := gin.H{
		"stats": h.Ctrl.Stats(),
		"state": h.Ctrl.State(),
	}
	if n, ok := h.Ctrl.Notices().Current(); ok {
		payload["notice"] = n
	}
	render.OK(c, http.StatusOK, payload)
}

// Notice returns the transient message still on display, if any.
func (h *AdminHandler) Notice(c *gin.Context) {
	if n, ok := h.Ctrl.Notices().Current(); ok {
		render.OK(c, http.StatusOK, gin.H{"notice": n})
		return
	}
	render.OK(c, http.StatusOK, gin.H{"notice": nil})
}

// toAppErr maps subsystem errors onto the public error envelope.
func toAppErr(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := apperr.As(err); ok {
		return err
	}
	if errors.Is(err, admin.ErrMutationInFlight) {
		return apperr.ConflictErr(err.Error())
	}
	if errors.Is(err, admin.ErrConfirmationRequired) {
		return apperr.InvalidErr(err.Error(), nil)
	}

	var apiErr *gateway.APIError
	if errors.As(err, &apiErr) {
		return &apperr.AppError{
			Kind:      kindForStatus(apiErr.Status),
			PublicMsg: admin.UserMessage(err),
			Err:       err,
		}
	}
	var te *gateway.TransportError
	if errors.As(err, &te) {
		return apperr.UnavailableErr(admin.UserMessage(err), err)
	}
	return apperr.Wrap(err)
}

func kindForStatus(status int) apperr.Kind {
	switch {
	case status == http.StatusNotFound:
		return apperr.NotFound
	case status == http.StatusConflict:
		return apperr.Conflict
	case status == http.StatusUnauthorized:
		return apperr.Unauthorized
	case status == http.StatusForbidden:
		return apperr.Forbidden
	case status >= 400 && status < 500:
		return apperr.Invalid
	default:
		return apperr.Internal
	}
}
