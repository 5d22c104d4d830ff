// cmd/seeder/main.go
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/unclebandit/campaign-tracker/internal/model"
	"github.com/unclebandit/campaign-tracker/internal/repository"
	"github.com/unclebandit/campaign-tracker/internal/service"
	"github.com/unclebandit/campaign-tracker/internal/storage"
)

// openStorage picks the same backend the server would, so seeded data
// lands in the store the server will actually read.
func openStorage() (storage.Storage, func() error) {
	switch os.Getenv("STORAGE_BACKEND") {
	case "postgres":
		store, err := storage.OpenPostgres()
		if err != nil {
			log.Fatalf("failed to open postgres storage: %v", err)
		}
		return store, store.Close
	case "memory":
		log.Fatal("memory storage does not persist, nothing to seed")
		return nil, nil
	default:
		dataDir := os.Getenv("DATA_DIR")
		if dataDir == "" {
			dataDir = "."
		}
		store, err := storage.OpenBolt(dataDir)
		if err != nil {
			log.Fatalf("failed to open bolt storage: %v", err)
		}
		return store, store.Close
	}
}

// Seeds a demo account with a handful of campaigns through the same
// services the server uses.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, relying on OS environment variables")
	}

	store, closeStore := openStorage()
	defer closeStore()

	accountService := &service.AccountService{
		AccountRepo: &repository.AccountRepository{Storage: store},
	}
	campaignService := &service.CampaignService{
		CampaignRepo: &repository.CampaignRepository{Storage: store},
	}

	account, err := accountService.Register(
		"Demo User", "demo@example.com", "demo123",
		model.QuestionPet, "rex",
	)
	if err != nil {
		log.Fatalf("failed to seed account: %v", err)
	}
	fmt.Println("Seeded account:", account.Email)

	seedCampaigns := []struct {
		name, client, start, end, status string
	}{
		{"Summer Push", "Acme", "2025-07-01", "2025-07-31", model.StatusActive},
		{"Back to School", "Globex", "2025-08-15", "2025-09-15", model.StatusPaused},
		{"Holiday Teaser", "Initech", "2025-11-20", "2025-12-24", model.StatusCompleted},
	}

	for _, c := range seedCampaigns {
		campaign, err := campaignService.CreateCampaign(account.Email, c.name, c.client, c.start, c.end, c.status)
		if err != nil {
			log.Fatalf("failed to seed campaign %s: %v", c.name, err)
		}
		fmt.Printf("Seeded campaign: %s (%s)\n", campaign.Name, campaign.ID)
	}

	fmt.Println("Seeding completed successfully!")
}
