package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/horizontravels/booking/api"
	"github.com/horizontravels/booking/config"
	"github.com/horizontravels/booking/internal/catalog"
	"github.com/horizontravels/booking/internal/service/booking"
)

// Run starts the HTTP API and blocks until the context is canceled or the
// server fails.
func Run(ctx context.Context, cfg *config.Config, cat catalog.CatalogUseCase, bookingSvc booking.BookingUseCase) error {
	httpSrv := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: NewRouter(cfg, cat, bookingSvc),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpSrv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

// NewRouter assembles the gin engine: CORS for the storefront origin, a
// health probe and the /api surface the SPA talks to.
func NewRouter(cfg *config.Config, cat catalog.CatalogUseCase, bookingSvc booking.BookingUseCase) *gin.Engine {
	router := gin.Default()

	corsCfg := cors.DefaultConfig()
	if cfg.HTTP.AllowedOrigin != "" {
		corsCfg.AllowOrigins = []string{cfg.HTTP.AllowedOrigin}
	} else {
		corsCfg.AllowAllOrigins = true
	}
	corsCfg.AllowMethods = []string{"GET", "POST", "DELETE", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	router.Use(cors.New(corsCfg))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	apiGroup := router.Group("/api")
	api.NewCatalogHandler(cat).Register(apiGroup)
	api.NewBookingHandler(bookingSvc).Register(apiGroup.Group("/bookings"))

	return router
}
