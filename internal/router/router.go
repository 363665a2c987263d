package router

import (
	"log/slog"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"lanchonete/internal/auth"
	"lanchonete/internal/menu"
	"lanchonete/internal/middleware"
	"lanchonete/internal/order"
	"lanchonete/internal/stats"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth       *auth.Handler
	Menu       *menu.Handler
	AdminMenu  *menu.AdminHandler
	Order      *order.Handler
	AdminOrder *order.AdminHandler
	Stats      *stats.Handler
}

func NewRouter(logger *slog.Logger, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// SSE endpoints must not be buffered by the compressor
	r.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPathsRegexs([]string{
		`.*/stream$`,
	})))

	// ───────────────────────── PUBLIC ─────────────────────────
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/menu", h.Menu.List)

	r.POST("/quote", h.Order.Quote)
	r.POST("/orders", h.Order.Create)
	r.GET("/orders/:id", h.Order.Get)
	r.GET("/orders/:id/stream", h.Order.Stream)

	// ───────────────────────── AUTH ─────────────────────────
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/login", h.Auth.Login)
	}

	// ───────────────────────── ADMIN ─────────────────────────
	admin := r.Group("/admin")
	admin.Use(
		middleware.AuthMiddleware(),
		middleware.RequireRole(auth.RoleAdmin),
	)
	{
		// Menu
		admin.GET("/menu", h.AdminMenu.List)
		admin.POST("/menu", h.AdminMenu.Create)
		admin.PUT("/menu/:id", h.AdminMenu.Update)
		admin.PATCH("/menu/:id/active", h.AdminMenu.ToggleActive)
		admin.DELETE("/menu/:id", h.AdminMenu.Delete)
		admin.POST("/menu/images", h.AdminMenu.UploadImage)

		// Orders
		admin.GET("/orders", h.AdminOrder.List)
		admin.GET("/orders/stream", h.AdminOrder.Stream)
		admin.PATCH("/orders/:id/status", h.AdminOrder.SetStatus)

		// Stats
		admin.GET("/stats", h.Stats.Get)
	}

	return r
}
