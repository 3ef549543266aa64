package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/craftroots/storefront/internal/modules/auth"
	"github.com/craftroots/storefront/internal/modules/catalog"
	"github.com/craftroots/storefront/internal/modules/checkout"
	"github.com/craftroots/storefront/internal/modules/storefront"
	"github.com/craftroots/storefront/internal/modules/user"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment defaults")
	}

	// ── Router ──────────────────────────────────────────────
	router := chi.NewRouter()
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestID)

	// ── Catalog ─────────────────────────────────────────────
	catalogRepo := catalog.NewMemoryRepository(catalog.SampleProducts())
	catalogService := catalog.NewService(catalogRepo)
	catalog.NewHandler(catalogService).RegisterRoutes(router)

	// ── Identity (mock auth) ────────────────────────────────
	userRepo := user.NewMemoryRepository()
	authService := auth.NewService(userRepo)

	// ── Storefront sessions ─────────────────────────────────
	sessions := storefront.NewManager()
	gateway := checkout.NewMockGateway()
	storefront.NewHandler(sessions, catalogService, authService, gateway).RegisterRoutes(router)

	// ── Start Server ────────────────────────────────────────
	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}
	fmt.Printf("Storefront API server starting on :%s\n", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
