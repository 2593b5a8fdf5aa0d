package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/prathamesh4949/Olcademyfrontend-sub002/internal/http/middleware"
	"github.com/prathamesh4949/Olcademyfrontend-sub002/internal/http/render"
	"github.com/prathamesh4949/Olcademyfrontend-sub002/internal/http/validation"
	"github.com/prathamesh4949/Olcademyfrontend-sub002/internal/modules/catalog"
	"github.com/prathamesh4949/Olcademyfrontend-sub002/internal/modules/shop"
	"github.com/prathamesh4949/Olcademyfrontend-sub002/internal/shared/apperr"
	"github.com/prathamesh4949/Olcademyfrontend-sub002/pkg/view"
)

// displayCurrency is what the storefront quotes; the catalog fixtures all
// carry it.
const displayCurrency = "USD"

type CartHandler struct {
	Carts   *shop.CartStore
	Catalog *catalog.Service
}

func NewCartHandler(carts *shop.CartStore, cat *catalog.Service) *CartHandler {
	return &CartHandler{Carts: carts, Catalog: cat}
}

func (h *CartHandler) Get(c *gin.Context) {
	cart := h.Carts.Get(middleware.SessionID(c))
	render.OK(c, http.StatusOK, gin.H{"cart": view.CartPageFrom(cart, displayCurrency)})
}

type addCartInput struct {
	ProductID string `json:"productId" binding:"required"`
	Size      string `json:"size" binding:"required"`
	Quantity  int    `json:"quantity"`
}

func (h *CartHandler) Add(c *gin.Context) {
	var in addCartInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperr.InvalidErr("Invalid cart item.", validation.FromBindError(err, &in)))
		return
	}

	p, ok := h.Catalog.GetByID(in.ProductID)
	if !ok {
		c.Error(apperr.NotFoundErr("Product not found."))
		return
	}
	if !p.InStock {
		c.Error(apperr.ConflictErr("This fragrance is out of stock."))
		return
	}
	size, ok := p.SizeByLabel(in.Size)
	if !ok {
		c.Error(apperr.InvalidErr("Unknown size for this product.", nil))
		return
	}

	cart := h.Carts.Add(middleware.SessionID(c), shop.CartItem{
		ProductID:  p.ID,
		Slug:       p.Slug,
		Name:       p.Name,
		Size:       size.Label,
		Quantity:   in.Quantity,
		PriceCents: size.PriceCents,
		Currency:   p.Currency,
		ImageKey:   p.ImageKey,
	})
	render.OK(c, http.StatusOK, gin.H{"cart": view.CartPageFrom(cart, displayCurrency)})
}

type updateCartInput struct {
	ProductID string `json:"productId" binding:"required"`
	Size      string `json:"size" binding:"required"`
	Quantity  int    `json:"quantity" binding:"min=0"`
}

func (h *CartHandler) Update(c *gin.Context) {
	var in updateCartInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperr.InvalidErr("Invalid cart update.", validation.FromBindError(err, &in)))
		return
	}
	cart := h.Carts.SetQuantity(middleware.SessionID(c), in.ProductID, in.Size, in.Quantity)
	render.OK(c, http.StatusOK, gin.H{"cart": view.CartPageFrom(cart, displayCurrency)})
}

func (h *CartHandler) Clear(c *gin.Context) {
	h.Carts.Clear(middleware.SessionID(c))
	render.Message(c, http.StatusOK, "Cart cleared")
}
