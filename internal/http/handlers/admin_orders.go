package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/prathamesh4949/Olcademyfrontend-sub002/internal/http/render"
	"github.com/prathamesh4949/Olcademyfrontend-sub002/internal/http/validation"
	"github.com/prathamesh4949/Olcademyfrontend-sub002/internal/shared/apperr"
	"github.com/prathamesh4949/Olcademyfrontend-sub002/pkg/view"
)

// Orders serves the paginated order view. Status narrowing goes through the
// backend fetch; the text query is a local projection over the loaded page.
func (h *AdminHandler) Orders(c *gin.Context) {
	h.Ctrl.SetOrderSearch(strings.TrimSpace(c.Query("q")))

	status := strings.TrimSpace(c.Query("status"))
	page := parsePage(c.Query("page"))

	st := h.Ctrl.State()
	var err error
	switch {
	case status != st.StatusFilter:
		// filter change resets to page 1
		err = h.Ctrl.SetStatusFilter(c.Request.Context(), status)
	case page != st.Page:
		err = h.Ctrl.ChangePage(c.Request.Context(), page)
	default:
		err = h.Ctrl.RefreshOrders(c.Request.Context())
	}
	if err != nil {
		c.Error(toAppErr(err))
		return
	}

	orders, pg := h.Ctrl.Orders()
	render.OK(c, http.StatusOK, gin.H{
		"orders":     view.AdminOrderRows(orders),
		"pagination": pg,
		"state":      h.Ctrl.State(),
	})
}

type updateStatusInput struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus forwards the requested status literally; the backend is the
// sole judge of whether the transition makes sense.
func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	var in updateStatusInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperr.InvalidErr("Status update is invalid.", validation.FromBindError(err, &in)))
		return
	}

	orderNumber := c.Param("orderNumber")
	if err := h.Ctrl.Coordinator().UpdateOrderStatus(c.Request.Context(), orderNumber, in.Status); err != nil {
		c.Error(toAppErr(err))
		return
	}

	orders, pg := h.Ctrl.Orders()
	payload := gin.H{"orders": view.AdminOrderRows(orders), "pagination": pg}
	if n, ok := h.Ctrl.Notices().Current(); ok {
		payload["notice"] = n
	}
	render.OK(c, http.StatusOK, payload)
}

// Delete removes an order for good. The confirm query flag is the explicit
// confirmation step; without it nothing is sent to the backend.
func (h *AdminHandler) Delete(c *gin.Context) {
	confirmed := c.Query("confirm") == "true"
	orderNumber := c.Param("orderNumber")

	if err := h.Ctrl.Coordinator().DeleteOrder(c.Request.Context(), orderNumber, confirmed); err != nil {
		c.Error(toAppErr(err))
		return
	}

	orders, pg := h.Ctrl.Orders()
	payload := gin.H{"orders": view.AdminOrderRows(orders), "pagination": pg}
	if n, ok := h.Ctrl.Notices().Current(); ok {
		payload["notice"] = n
	}
	render.OK(c, http.StatusOK, payload)
}

func parsePage(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 1
	}
	return n
}
