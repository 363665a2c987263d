package main

import (
	"context"
	"log"
	"os"

	"lanchonete/internal/auth"
	"lanchonete/internal/db"
	"lanchonete/internal/logger"
	"lanchonete/internal/menu"
	"lanchonete/internal/order"
	"lanchonete/internal/router"
	"lanchonete/internal/stats"
	"lanchonete/internal/storage"

	"github.com/joho/godotenv"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"DATABASE_URL",
		"ADMIN_EMAIL",
		"ADMIN_PASSWORD",
		"R2_ACCESS_KEY",
		"R2_SECRET_KEY",
		"R2_BUCKET_NAME",
		"R2_ENDPOINT",
		"R2_PUBLIC_BASE_URL",
	}

	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("missing env var: %s", k)
		}
	}

	slogger := logger.New()

	// ───────────────────────── DB ─────────────────────────
	pgDB := db.ConnectPostgres()
	defer pgDB.Close()

	// ───────────────────────── STORAGE ─────────────────────────
	r2Client, err := storage.NewR2Client(context.Background())
	if err != nil {
		log.Fatal("R2 init failed:", err)
	}

	// ───────────────────────── AUTH ─────────────────────────
	userRepo := auth.NewPostgresUserRepository(pgDB)
	authService := auth.NewService(userRepo)
	authHandler := auth.NewHandler(authService)

	adminName := os.Getenv("ADMIN_NAME")
	if adminName == "" {
		adminName = "Admin"
	}
	if err := authService.EnsureAdmin(
		context.Background(),
		adminName,
		os.Getenv("ADMIN_EMAIL"),
		os.Getenv("ADMIN_PASSWORD"),
	); err != nil {
		log.Fatal("admin seeding failed:", err)
	}

	// ───────────────────────── CORE SERVICES ─────────────────────────
	menuRepo := menu.NewPostgresRepository(pgDB)
	menuService := menu.NewService(menuRepo, r2Client)

	orderRepo := order.NewPostgresRepository(pgDB)
	orderService := order.NewService(orderRepo, menuService)

	statsRepo := stats.NewPostgresRepository(pgDB)
	statsService := stats.NewService(statsRepo)

	// ───────────────────────── ROUTER ─────────────────────────
	r := router.NewRouter(slogger, router.Handlers{
		Auth:       authHandler,
		Menu:       menu.NewHandler(menuService),
		AdminMenu:  menu.NewAdminHandler(menuService),
		Order:      order.NewHandler(orderService),
		AdminOrder: order.NewAdminHandler(orderService),
		Stats:      stats.NewHandler(statsService),
	})

	// ───────────────────────── START ─────────────────────────
	addr := os.Getenv("RUN_ADDRESS")
	if addr == "" {
		addr = ":8000"
	}

	slogger.Info("api running", "addr", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal("failed to start server:", err)
	}
}
