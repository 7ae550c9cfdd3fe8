package main

import (
	"log"
	"time"

	"carparts-store/cmd"
	"carparts-store/internal/data/repository"
	"carparts-store/internal/wire"
	"carparts-store/pkg/auth"
	"carparts-store/pkg/cache"
	"carparts-store/pkg/database"
	"carparts-store/pkg/payment"
	"carparts-store/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("port", config.App.Port),
		zap.Bool("debug", config.App.Debug),
	)

	// Connect to database
	db, err := database.InitDB(config.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logger.Info("Database connected successfully")

	// Optional Redis catalog cache; empty REDIS_ADDR runs without it
	store := cache.New(config.Redis.Addr, time.Duration(config.Redis.TTLSeconds)*time.Second, logger)
	defer store.Close()

	// Initialize all repositories
	repos := repository.NewRepository(db, logger)

	// Session tokens and the card processor adapter
	tokens := auth.NewTokenManager(config.JWT)
	gateway := payment.NewStripeGateway(config.Stripe, logger)

	// Wire all dependencies
	app := wire.Wiring(repos, tokens, gateway, store, logger)

	// Start server
	cmd.APIServer(app.Router, config.App.Port, logger)
}
