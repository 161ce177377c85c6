package main

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/autandojam/inventory-backend/internal/modules/activity"
	"github.com/autandojam/inventory-backend/internal/modules/auth"
	"github.com/autandojam/inventory-backend/internal/modules/category"
	"github.com/autandojam/inventory-backend/internal/modules/inventory"
	"github.com/autandojam/inventory-backend/internal/modules/user"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment")
	}

	db, err := sql.Open("postgres", os.Getenv("DATABASE_URL"))
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}
	fmt.Println("Successfully connected to the database!")

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Identity ────────────────────────────────────────────
	userRepo := user.NewPostgresRepository(db)
	userService := user.NewService(userRepo)
	userHandler := user.NewHandler(userService)

	authService := auth.NewService(userService)
	authMiddleware := auth.NewMiddleware(authService, userService)

	// ── Inventory domain ────────────────────────────────────
	activityRepo := activity.NewPostgresRepository(db)
	activityService := activity.NewService(activityRepo)

	categoryRepo := category.NewPostgresRepository(db)
	categoryService := category.NewService(categoryRepo)

	itemRepo := inventory.NewPostgresRepository(db)
	txnRepo := inventory.NewTransactionPostgresRepository(db)
	inventoryService := inventory.NewService(itemRepo, txnRepo, activityService)

	// ── Public routes ───────────────────────────────────────
	auth.NewHandler(authService).RegisterRoutes(router)
	userHandler.RegisterRoutes(router)

	// ── Protected routes ────────────────────────────────────
	router.Group(func(r chi.Router) {
		r.Use(authMiddleware.RequireAuth)
		userHandler.RegisterProtectedRoutes(r)
		category.NewHandler(categoryService).RegisterRoutes(r)
		inventory.NewHandler(inventoryService).RegisterRoutes(r)
		activity.NewHandler(activityService).RegisterRoutes(r)
	})

	// ── Start Server ─────────────────────────────────────────
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("Inventory API server starting on :%s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
