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

type WishlistHandler struct {
	Wishlists *shop.WishlistStore
	Carts     *shop.CartStore
	Catalog   *catalog.Service
}

func NewWishlistHandler(w *shop.WishlistStore, carts *shop.CartStore, cat *catalog.Service) *WishlistHandler {
	return &WishlistHandler{Wishlists: w, Carts: carts, Catalog: cat}
}

func (h *WishlistHandler) List(c *gin.Context) {
	sid := middleware.SessionID(c)
	items := make([]view.ProductListItem, 0)
	for _, id := range h.Wishlists.List(sid) {
		if p, ok := h.Catalog.GetByID(id); ok {
			items = append(items, view.ProductListItemFrom(p))
		}
	}
	render.OK(c, http.StatusOK, gin.H{"wishlist": items})
}

type wishlistInput struct {
	ProductID string `json:"productId" binding:"required"`
}

func (h *WishlistHandler) Add(c *gin.Context) {
	var in wishlistInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperr.InvalidErr("Invalid wishlist item.", validation.FromBindError(err, &in)))
		return
	}
	if _, ok := h.Catalog.GetByID(in.ProductID); !ok {
		c.Error(apperr.NotFoundErr("Product not found."))
		return
	}
	h.Wishlists.Add(middleware.SessionID(c), in.ProductID)
	render.Message(c, http.StatusOK, "Added to wishlist")
}

func (h *WishlistHandler) Remove(c *gin.Context) {
	h.Wishlists.Remove(middleware.SessionID(c), c.Param("productId"))
	render.Message(c, http.StatusOK, "Removed from wishlist")
}

type moveToCartInput struct {
	ProductID string `json:"productId" binding:"required"`
	Size      string `json:"size" binding:"required"`
}

// MoveToCart adds the wishlisted product to the cart and drops it from the
// wishlist in the same request.
func (h *WishlistHandler) MoveToCart(c *gin.Context) {
	var in moveToCartInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.Error(apperr.InvalidErr("Invalid request.", validation.FromBindError(err, &in)))
		return
	}

	sid := middleware.SessionID(c)
	if !h.Wishlists.Contains(sid, in.ProductID) {
		c.Error(apperr.NotFoundErr("Product is not on the wishlist."))
		return
	}
	p, ok := h.Catalog.GetByID(in.ProductID)
	if !ok {
		c.Error(apperr.NotFoundErr("Product not found."))
		return
	}
	size, ok := p.SizeByLabel(in.Size)
	if !ok {
		c.Error(apperr.InvalidErr("Unknown size for this product.", nil))
		return
	}

	cart := h.Carts.Add(sid, shop.CartItem{
		ProductID:  p.ID,
		Slug:       p.Slug,
		Name:       p.Name,
		Size:       size.Label,
		Quantity:   1,
		PriceCents: size.PriceCents,
		Currency:   p.Currency,
		ImageKey:   p.ImageKey,
	})
	h.Wishlists.Remove(sid, in.ProductID)
	render.OK(c, http.StatusOK, gin.H{"cart": view.CartPageFrom(cart, displayCurrency)})
}
