package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/prathamesh4949/Olcademyfrontend-sub002/internal/http/render"
	"github.com/prathamesh4949/Olcademyfrontend-sub002/internal/modules/catalog"
	"github.com/prathamesh4949/Olcademyfrontend-sub002/internal/shared/apperr"
	"github.com/prathamesh4949/Olcademyfrontend-sub002/pkg/view"
)

type ProductsHandler struct {
	Catalog *catalog.Service
}

func NewProductsHandler(cat *catalog.Service) *ProductsHandler {
	return &ProductsHandler{Catalog: cat}
}

func (h *ProductsHandler) List(c *gin.Context) {
	q := catalog.Query{
		Text:        strings.TrimSpace(c.Query("q")),
		Collection:  strings.TrimSpace(c.Query("collection")),
		Tag:         strings.TrimSpace(c.Query("tag")),
		Sort:        strings.TrimSpace(c.Query("sort")),
		InStockOnly: c.Query("in_stock") == "true",
	}

	products := h.Catalog.List(q)
	items := make([]view.ProductListItem, 0, len(products))
	for _, p := range products {
		items = append(items, view.ProductListItemFrom(p))
	}

	render.OK(c, http.StatusOK, gin.H{"products": items, "count": len(items)})
}

func (h *ProductsHandler) Detail(c *gin.Context) {
	slug := c.Param("slug")
	p, ok := h.Catalog.Get(slug)
	if !ok {
		c.Error(apperr.NotFoundErr("Product not found."))
		return
	}
	render.OK(c, http.StatusOK, gin.H{"product": view.ProductDetailFrom(p)})
}
