// Package http wires the gin router for the storefront and the admin
// console.
package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/prathamesh4949/Olcademyfrontend-sub002/internal/config"
	"github.com/prathamesh4949/Olcademyfrontend-sub002/internal/http/handlers"
	"github.com/prathamesh4949/Olcademyfrontend-sub002/internal/http/middleware"
	"github.com/prathamesh4949/Olcademyfrontend-sub002/internal/http/sessioncookie"
	"github.com/prathamesh4949/Olcademyfrontend-sub002/internal/modules/admin"
	"github.com/prathamesh4949/Olcademyfrontend-sub002/internal/modules/catalog"
	"github.com/prathamesh4949/Olcademyfrontend-sub002/internal/modules/shop"
)

// Deps carries everything the router needs. main builds it once.
type Deps struct {
	Cfg      config.Config
	Catalog  *catalog.Service
	Carts    *shop.CartStore
	Wishes   *shop.WishlistStore
	Shipping *shop.ShipmentStore
	Ctrl     *admin.Controller
}

func NewRouter(logger *slog.Logger, d Deps) *gin.Engine {
	if !d.Cfg.Dev {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.ErrorHandler(logger),
	)

	r.GET("/healthz", handlers.Health)

	secret := []byte(d.Cfg.Session.Secret)
	secure := !d.Cfg.Dev

	shopCodec := sessioncookie.New(secret, "sf_session", secure, 30*24*time.Hour)
	adminCodec := sessioncookie.New(secret, "sf_admin", secure, d.Cfg.Admin.SessionTTL)
	adminSessions := middleware.NewAdminSessions(d.Cfg.Admin.SessionTTL)

	// storefront
	products := handlers.NewProductsHandler(d.Catalog)
	cart := handlers.NewCartHandler(d.Carts, d.Catalog)
	wishlist := handlers.NewWishlistHandler(d.Wishes, d.Carts, d.Catalog)
	checkout := handlers.NewCheckoutHandler(d.Shipping)

	api := r.Group("/api", middleware.Session(shopCodec))
	{
		api.GET("/products", products.List)
		api.GET("/products/:slug", products.Detail)

		api.GET("/cart", cart.Get)
		api.POST("/cart", cart.Add)
		api.PUT("/cart", cart.Update)
		api.DELETE("/cart", cart.Clear)

		api.GET("/wishlist", wishlist.List)
		api.POST("/wishlist", wishlist.Add)
		api.DELETE("/wishlist/:productId", wishlist.Remove)
		api.POST("/wishlist/move-to-cart", wishlist.MoveToCart)

		api.GET("/checkout/shipment", checkout.GetShipment)
		api.PUT("/checkout/shipment", checkout.SaveShipment)
		api.DELETE("/checkout/shipment", checkout.ClearShipment)
	}

	// admin console
	auth := handlers.NewAdminAuthHandler(d.Cfg.Admin, adminCodec, adminSessions)
	adm := handlers.NewAdminHandler(d.Ctrl)

	r.POST("/admin/login", auth.Login)
	r.POST("/admin/logout", auth.Logout)

	console := r.Group("/admin/api", middleware.RequireAdmin(adminCodec, adminSessions))
	{
		console.GET("/dashboard", adm.Dashboard)
		console.GET("/notice", adm.Notice)

		console.GET("/users", adm.Users)
		console.PATCH("/users/:id/admin", adm.ToggleAdmin)

		console.GET("/orders", adm.Orders)
		console.PATCH("/orders/:orderNumber/status", adm.UpdateStatus)
		console.DELETE("/orders/:orderNumber", adm.Delete)
	}

	return r
}
