package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"blogspace/config"
	"blogspace/internal/domain/entity"
	pginfra "blogspace/internal/infrastructure/postgres"
	"blogspace/pkg/helpers"
)

// Seeds the admin account from SEED_ADMIN_* env vars. Idempotent: an existing
// email is left untouched.
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	ctx := context.Background()

	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	hash, err := helpers.HashPassword(cfg.SeedAdminPassword)
	if err != nil {
		log.Fatalf("failed to hash admin password: %v", err)
	}

	tag, err := pool.Exec(ctx, `
		INSERT INTO users (name, email, password_hash, role)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (email) DO NOTHING
	`, cfg.SeedAdminName, cfg.SeedAdminEmail, hash, entity.RoleAdmin)
	if err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}

	if tag.RowsAffected() == 0 {
		log.Printf("admin %s already exists, nothing to do", cfg.SeedAdminEmail)
		return
	}
	log.Printf("admin %s created", cfg.SeedAdminEmail)
}
