package main

import (
	"context"
	"flag"
	"log"
	"os"

	"fitness-center/internal/repositories"
	"fitness-center/pkg/config"
	"fitness-center/pkg/database/mongodb"
	applogger "fitness-center/pkg/logger"
	"fitness-center/seeders"
)

func main() {
	log.Println("======================================================")
	log.Println("       🌱 Seeders                                     ")
	log.Println("======================================================")

	runAdmin := flag.Bool("admin", false, "Create the super admin account")
	runSettings := flag.Bool("settings", false, "Write default rate limit settings")
	runAll := flag.Bool("all", false, "Run every seeder (same as -admin -settings)")
	flag.Parse()

	if !*runAdmin && !*runSettings && !*runAll {
		log.Println("❌ No seeder selected.")
		log.Println("")
		log.Println("Flags:")
		flag.PrintDefaults()
		log.Println("")
		log.Println("Examples:")
		log.Println("  ADMIN_EMAIL=root@example.com ADMIN_PASSWORD=... go run ./seeders/cmd/seed -admin")
		log.Println("  go run ./seeders/cmd/seed -all")
		return
	}

	ctx := context.Background()
	cfg := config.New()
	logger := applogger.NewLogger(cfg.Log.Level, cfg.Log.FilePath)

	client, db, err := mongodb.ConnectDB(ctx, cfg.Mongo.URI, cfg.Mongo.Database, logger)
	if err != nil {
		log.Fatalf("❌ MongoDB connection failed: %v", err)
	}
	defer func() { _ = client.Disconnect(ctx) }()

	if *runAll || *runAdmin {
		accounts := repositories.NewAccountRepository(db, logger)
		if err := accounts.EnsureIndexes(ctx); err != nil {
			log.Fatalf("❌ Account indexes: %v", err)
		}
		account, err := seeders.SeedSuperAdmin(ctx, accounts, seeders.AdminSeed{
			Name:     getEnv("ADMIN_NAME", "Super Admin"),
			Email:    os.Getenv("ADMIN_EMAIL"),
			Phone:    os.Getenv("ADMIN_PHONE"),
			Password: os.Getenv("ADMIN_PASSWORD"),
		})
		if err != nil {
			log.Fatalf("❌ Super admin: %v", err)
		}
		log.Printf("    - Super admin id: %s", account.ID)
	}

	if *runAll || *runSettings {
		if err := seeders.SeedRateLimitSettings(ctx, repositories.NewSettingsRepository(db), cfg.RateLimit); err != nil {
			log.Fatalf("❌ Rate limit settings: %v", err)
		}
	}

	log.Println("✅ Done.")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}
