package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/Paintedstork28/fitness-tracker/config"
	"github.com/Paintedstork28/fitness-tracker/routes"
	"github.com/Paintedstork28/fitness-tracker/services"
	"github.com/Paintedstork28/fitness-tracker/utils"
)

func main() {
	cfg := config.Load()
	db := config.InitDB()

	if cfg.S3Enabled {
		utils.InitS3()
	}

	slots := services.NewGormSlotStore(db)
	store := services.NewStore()

	// Sample data first; a persisted snapshot replaces it wholesale.
	services.SeedSampleData(store, time.Now())

	bridge := services.NewPersistenceBridge(store, slots, cfg.AutosaveInterval)
	if err := bridge.Load(); err != nil {
		log.Printf("stored fitness data unreadable, keeping sample data: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	bridge.StartAutosave(ctx)

	r := routes.SetupRouter(routes.Deps{
		Store:     store,
		Bridge:    bridge,
		Sessions:  services.NewSessionService(slots),
		Hub:       services.NewNotificationHub(),
		LoginPath: cfg.LoginPath,
	})

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
