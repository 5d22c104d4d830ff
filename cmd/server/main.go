// cmd/server/main.go
package main

import (
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/unclebandit/campaign-tracker/internal/controller"
	"github.com/unclebandit/campaign-tracker/internal/handler"
	"github.com/unclebandit/campaign-tracker/internal/repository"
	"github.com/unclebandit/campaign-tracker/internal/service"
	"github.com/unclebandit/campaign-tracker/internal/storage"
)

func openStorage() storage.Storage {
	backend := os.Getenv("STORAGE_BACKEND")
	switch backend {
	case "postgres":
		store, err := storage.OpenPostgres()
		if err != nil {
			log.Fatalf("failed to open postgres storage: %v", err)
		}
		log.Println("✅ Connected to postgres storage")
		return store
	case "memory":
		log.Println("⚠️ Using in-memory storage, nothing will persist")
		return storage.NewMemoryStorage()
	default:
		dataDir := os.Getenv("DATA_DIR")
		if dataDir == "" {
			dataDir = "."
		}
		store, err := storage.OpenBolt(dataDir)
		if err != nil {
			log.Fatalf("failed to open bolt storage: %v", err)
		}
		log.Println("✅ Opened bolt storage in", dataDir)
		return store
	}
}

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	store := openStorage()

	accountRepo := &repository.AccountRepository{Storage: store}
	campaignRepo := &repository.CampaignRepository{Storage: store}
	sessionRepo := &repository.SessionRepository{Storage: store}

	accountService := &service.AccountService{AccountRepo: accountRepo}
	sessionService := &service.SessionService{
		SessionRepo: sessionRepo,
		AccountRepo: accountRepo,
	}
	campaignService := &service.CampaignService{CampaignRepo: campaignRepo}

	// A session persisted by a previous run must never survive a
	// restart, so it is dropped before the first request.
	if err := sessionService.ClearAtStartup(); err != nil {
		log.Fatalf("failed to clear persisted session: %v", err)
	}
	log.Println("Cleared any persisted session from a previous run")

	authController := &controller.AuthController{
		AccountService: accountService,
		SessionService: sessionService,
	}
	campaignController := &controller.CampaignController{
		CampaignService: campaignService,
		SessionService:  sessionService,
	}
	dashboardHandler := &handler.DashboardHandler{
		CampaignService: campaignService,
		SessionService:  sessionService,
	}

	r := chi.NewRouter()

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("Server is up!\n"))
	})

	// Auth routes
	r.Post("/auth/register", authController.Register)
	r.Post("/auth/login", authController.Login)
	r.Post("/auth/logout", authController.Logout)
	r.Get("/auth/me", authController.Me)
	r.Post("/auth/forgot", authController.Forgot)
	r.Post("/auth/reset", authController.Reset)

	// Campaign routes
	r.Get("/campaigns", campaignController.ListCampaigns)
	r.Post("/campaigns", campaignController.CreateCampaign)
	r.Put("/campaigns/{id}", campaignController.UpdateCampaign)
	r.Delete("/campaigns/{id}", campaignController.DeleteCampaign)

	r.Get("/dashboard", dashboardHandler.GetDashboard)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("🚀 Server running on :" + port)
	log.Fatal(http.ListenAndServe(":"+port, r))
}
