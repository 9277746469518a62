package config

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Paintedstork28/fitness-tracker/models"
)

// Config carries everything main wires together.
type Config struct {
	Addr             string
	LoginPath        string
	AutosaveInterval time.Duration
	S3Enabled        bool
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, relying on environment")
	}

	return Config{
		Addr:             getEnv("APP_ADDR", ":8080"),
		LoginPath:        getEnv("LOGIN_URL", "/login.html"),
		AutosaveInterval: getDurationEnv("AUTOSAVE_INTERVAL", 30*time.Second),
		S3Enabled:        os.Getenv("S3_BUCKET") != "",
	}
}

// InitDB connects to Postgres and migrates the storage_slots table that
// backs the key-value slot store.
func InitDB() *gorm.DB {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.StorageSlot{}); err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	return db
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("invalid %s %q, using %s", key, value, fallback)
		return fallback
	}
	return d
}
