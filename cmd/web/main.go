package main

import (
	"context"
	"log"
	"os"

	"log/slog"

	"github.com/joho/godotenv"

	"github.com/prathamesh4949/Olcademyfrontend-sub002/internal/config"
	"github.com/prathamesh4949/Olcademyfrontend-sub002/internal/gateway"
	apphttp "github.com/prathamesh4949/Olcademyfrontend-sub002/internal/http"
	"github.com/prathamesh4949/Olcademyfrontend-sub002/internal/modules/admin"
	"github.com/prathamesh4949/Olcademyfrontend-sub002/internal/modules/catalog"
	"github.com/prathamesh4949/Olcademyfrontend-sub002/internal/modules/shop"
	"github.com/prathamesh4949/Olcademyfrontend-sub002/internal/storage"
)

func main() {
	// Load .env file (ignore error if not found - prod uses real env vars)
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	ctx := context.Background()

	// Product catalog: embedded fixtures unless a source is configured.
	src, err := storage.FromConfig(ctx, cfg.Catalog)
	if err != nil {
		log.Fatalf("catalog source: %v", err)
	}
	cat, err := catalog.Load(ctx, src)
	if err != nil {
		log.Fatalf("load catalog: %v", err)
	}

	// Admin dashboard: gateway client + store + coordinator + controller.
	gw := gateway.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout, logger)
	store := admin.NewStore()
	notices := admin.NewNotices(admin.DefaultNoticeTTL)
	coord := admin.NewCoordinator(gw, store, notices, logger)
	ctrl := admin.NewController(gw, store, coord, notices, logger)

	r := apphttp.NewRouter(logger, apphttp.Deps{
		Cfg:      cfg,
		Catalog:  cat,
		Carts:    shop.NewCartStore(),
		Wishes:   shop.NewWishlistStore(),
		Shipping: shop.NewShipmentStore(),
		Ctrl:     ctrl,
	})

	logger.Info("listening", "addr", cfg.Addr, "backend", cfg.Backend.BaseURL)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
