package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prathamesh4949/Olcademyfrontend-sub002/internal/http/middleware"
	"github.com/prathamesh4949/Olcademyfrontend-sub002/internal/http/render"
	"github.com/prathamesh4949/Olcademyfrontend-sub002/internal/http/validation"
	"github.com/prathamesh4949/Olcademyfrontend-sub002/internal/modules/shop"
	"github.com/prathamesh4949/Olcademyfrontend-sub002/internal/shared/apperr"
)

// CheckoutHandler persists the checkout-adjacent shipment details per
// session. The actual order placement happens against the backend and is
// outside this service.
type CheckoutHandler struct {
	Shipments *shop.ShipmentStore
}

func NewCheckoutHandler(s *shop.ShipmentStore) *CheckoutHandler {
	return &CheckoutHandler{Shipments: s}
}

func (h *CheckoutHandler) GetShipment(c *gin.Context) {
	d, ok := h.Shipments.Get(middleware.SessionID(c))
	if !ok {
		render.OK(c, http.StatusOK, gin.H{"shipment": nil})
		return
	}
	render.OK(c, http.StatusOK, gin.H{"shipment": d})
}

func (h *CheckoutHandler) SaveShipment(c *gin.Context) {
	var in shop.ShipmentDetails
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperr.InvalidErr("Shipment details are invalid.", validation.FromBindError(err, &in)))
		return
	}
	if err := h.Shipments.Save(middleware.SessionID(c), in); err != nil {
		c.Error(err)
		return
	}
	render.Message(c, http.StatusOK, "Shipment details saved")
}

func (h *CheckoutHandler) ClearShipment(c *gin.Context) {
	h.Shipments.Clear(middleware.SessionID(c))
	render.Message(c, http.StatusOK, "Shipment details cleared")
}
