package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	_ "time/tzdata"

	"github.com/classdesk/classbot/internal/config"
	"github.com/classdesk/classbot/internal/database"
	"github.com/classdesk/classbot/internal/domain"
	"github.com/classdesk/classbot/internal/domain/contract"
	"github.com/classdesk/classbot/internal/domain/entity"
	"github.com/classdesk/classbot/internal/domain/service"
	"github.com/classdesk/classbot/internal/handlers"
	slackgw "github.com/classdesk/classbot/internal/slack"
	"github.com/classdesk/classbot/migrator/sqlite"
	"github.com/joho/godotenv"
	slackapi "github.com/slack-go/slack"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	log.Println("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	dm := database.NewInstance(db)

	if err := seedAdmin(dm, cfg.AdminUserID); err != nil {
		log.Fatalf("Failed to seed admin user: %v", err)
	}

	slackClient := slackapi.New(cfg.SlackBotToken)
	sender := slackgw.NewSender(slackClient)

	services := service.New(dm, sender)
	defer services.Scheduler.Stop()

	// Re-arm persisted future jobs before the command intake starts, so a
	// concurrently created assignment cannot race a duplicate registration.
	if err := services.Scheduler.Rehydrate(context.Background()); err != nil {
		log.Fatalf("Failed to rehydrate reminder jobs: %v", err)
	}

	handler := handlers.New(services.Classroom, cfg.SlackSigningSecret)

	http.HandleFunc("/slack/commands", handler.HandleSlashCommand)
	http.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "OK")
	})

	log.Printf("Server starting on port %s", cfg.Port)
	if err := http.ListenAndServe(":"+cfg.Port, nil); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// seedAdmin makes sure the configured bootstrap user exists as a global
// administrator, so a fresh install has someone allowed to run commands.
func seedAdmin(dm contract.DataManager, address string) error {
	if address == "" {
		return nil
	}

	existing, err := dm.Member().GetByAddress(address)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	admin := &entity.Member{
		DisplayName: "Administrator",
		Address:     address,
		Role:        domain.RoleGlobalAdmin,
		IsActive:    true,
	}
	if err := dm.Member().Create(admin); err != nil {
		return err
	}

	log.Printf("Seeded global administrator %s", address)
	return nil
}
