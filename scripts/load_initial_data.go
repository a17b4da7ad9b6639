// Command load_initial_data seeds a development table with demo data.
//
// Usage:
//
//	go run scripts/load_initial_data.go [seed-file]
//
// The seed file defaults to scripts/seed_data.yaml. Existing documents are
// replaced, so the script can be re-run after editing the file.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"agenthub-backend/internal/config"
	"agenthub-backend/internal/keys"
	"agenthub-backend/internal/models"
	"agenthub-backend/internal/repository"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type seedFile struct {
	Organizations []organizationData `yaml:"organizations"`
	Users         []userData         `yaml:"users"`
	MarketStats   []marketStatsData  `yaml:"market_stats"`
}

type organizationData struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	Website     string `yaml:"website,omitempty"`
	OwnerID     string `yaml:"owner_id"`
}

type userData struct {
	ID             string `yaml:"id"`
	Email          string `yaml:"email"`
	DisplayName    string `yaml:"display_name"`
	LicenseNumber  string `yaml:"license_number,omitempty"`
	IsAdmin        bool   `yaml:"is_admin,omitempty"`
	OrganizationID string `yaml:"organization_id,omitempty"`
	Role           string `yaml:"role,omitempty"`
}

type marketStatsData struct {
	AreaCode            string  `yaml:"area_code"`
	MedianPrice         int64   `yaml:"median_price"`
	AverageDaysOnMarket float64 `yaml:"average_days_on_market"`
	ActiveListings      int     `yaml:"active_listings"`
}

func main() {
	_ = godotenv.Load()

	path := "scripts/seed_data.yaml"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	if cfg.IsProduction() {
		log.Fatal("refusing to seed a production environment")
	}

	ctx := context.Background()
	client, err := repository.NewClient(ctx, cfg)
	if err != nil {
		log.Fatalf("failed to create store client: %v", err)
	}
	if err := repository.EnsureTable(ctx, client, cfg.DynamoDBTable); err != nil {
		log.Fatalf("failed to ensure table: %v", err)
	}
	store := repository.NewRepository(client, cfg.DynamoDBTable)

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("failed to read seed file %s: %v", path, err)
	}
	var seed seedFile
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		log.Fatalf("failed to parse seed file %s: %v", path, err)
	}

	if err := loadSeed(ctx, store, &seed); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	fmt.Printf("Seeded %d organizations, %d users, %d market areas into %s\n",
		len(seed.Organizations), len(seed.Users), len(seed.MarketStats), cfg.DynamoDBTable)
}

func loadSeed(ctx context.Context, store repository.Store, seed *seedFile) error {
	now := time.Now().UTC()

	for _, data := range seed.Organizations {
		org := &models.Organization{
			ID:          data.ID,
			Name:        data.Name,
			Description: data.Description,
			Website:     data.Website,
			OwnerID:     data.OwnerID,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
		key := keys.Organization(org.ID)
		if err := store.Put(ctx, keys.Projected{PK: key.PK, SK: key.SK}, models.EntityTypeOrganization, org); err != nil {
			return fmt.Errorf("organization %s: %w", org.ID, err)
		}
	}

	for _, data := range seed.Users {
		profile := &models.UserProfile{
			UserID:         data.ID,
			Email:          keys.NormalizeEmail(data.Email),
			DisplayName:    data.DisplayName,
			LicenseNumber:  data.LicenseNumber,
			IsAdmin:        data.IsAdmin,
			OrganizationID: data.OrganizationID,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		key := keys.UserProfile(profile.UserID)
		if err := store.Put(ctx, keys.Projected{PK: key.PK, SK: key.SK}, models.EntityTypeUserProfile, profile); err != nil {
			return fmt.Errorf("user %s: %w", profile.UserID, err)
		}

		if data.OrganizationID == "" {
			continue
		}
		role := models.MemberRole(data.Role)
		if !role.IsValid() {
			role = models.RoleMember
		}
		member := &models.TeamMember{
			UserID:         profile.UserID,
			OrganizationID: data.OrganizationID,
			Role:           role,
			Status:         models.MemberStatusActive,
			JoinedAt:       now,
			UpdatedAt:      now,
		}
		if err := store.Put(ctx, keys.TeamMember(data.OrganizationID, profile.UserID), models.EntityTypeTeamMember, member); err != nil {
			return fmt.Errorf("membership %s/%s: %w", data.OrganizationID, profile.UserID, err)
		}
	}

	for _, data := range seed.MarketStats {
		stats := &models.MarketStats{
			AreaCode:            data.AreaCode,
			MedianPrice:         data.MedianPrice,
			AverageDaysOnMarket: data.AverageDaysOnMarket,
			ActiveListings:      data.ActiveListings,
			FetchedAt:           now,
		}
		key := keys.MarketStats(data.AreaCode)
		if err := store.Put(ctx, keys.Projected{PK: key.PK, SK: key.SK}, models.EntityTypeMarketStats, stats); err != nil {
			return fmt.Errorf("market stats %s: %w", data.AreaCode, err)
		}
	}

	return nil
}
