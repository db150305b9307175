package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"gorm.io/gorm"

	"campusevents/internal/auth"
	"campusevents/internal/config"
	"campusevents/internal/db"
	"campusevents/internal/model"
	"campusevents/internal/repository"
)

// SeedAdminData represents one entry of the admin seed file.
type SeedAdminData struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Admin accounts have no public registration endpoint; this tool provisions
// them from a JSON file of {username, password} pairs.
func main() {
	log.Println("Starting admin seed...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(&model.Admin{}); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	admins, err := loadAdminsFromFile(cfg.AdminSeedFile)
	if err != nil {
		log.Fatalf("Failed to load seed file: %v", err)
	}
	log.Printf("Loaded %d admins from %s", len(admins), cfg.AdminSeedFile)

	adminRepo := repository.NewAdminRepository(gormDB)
	created, updated, err := seedAdmins(context.Background(), adminRepo, admins)
	if err != nil {
		log.Fatalf("Failed to seed admins: %v", err)
	}

	log.Printf("Seed completed: %d created, %d updated", created, updated)
}

// loadAdminsFromFile reads and parses the seed file.
func loadAdminsFromFile(path string) ([]SeedAdminData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}

	var admins []SeedAdminData
	if err := json.Unmarshal(data, &admins); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	for _, admin := range admins {
		if admin.Username == "" || admin.Password == "" {
			return nil, fmt.Errorf("seed entries require both username and password")
		}
	}
	return admins, nil
}

// seedAdmins upserts admins by username, hashing passwords on the way in.
func seedAdmins(ctx context.Context, repo repository.AdminRepository, admins []SeedAdminData) (created int, updated int, err error) {
	for _, entry := range admins {
		hash, err := auth.HashPassword(entry.Password)
		if err != nil {
			return created, updated, fmt.Errorf("hash password for %s: %w", entry.Username, err)
		}

		existing, err := repo.FindByUsername(ctx, entry.Username)
		if err != nil && err != gorm.ErrRecordNotFound {
			return created, updated, fmt.Errorf("check admin %s: %w", entry.Username, err)
		}

		if existing != nil {
			existing.PasswordHash = hash
			if err := repo.Update(ctx, existing); err != nil {
				return created, updated, fmt.Errorf("update admin %s: %w", entry.Username, err)
			}
			updated++
		} else {
			admin := &model.Admin{Username: entry.Username, PasswordHash: hash}
			if err := repo.Create(ctx, admin); err != nil {
				return created, updated, fmt.Errorf("create admin %s: %w", entry.Username, err)
			}
			created++
		}
	}
	return created, updated, nil
}
