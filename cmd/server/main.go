package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"newssense/internal/server"
	"newssense/internal/server/config"
)

func main() {
	// A missing .env is fine; the environment may be set by the deployment.
	_ = godotenv.Load()

	ctx := context.Background()

	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("%v", err)
	}

	app, err := server.NewApp(cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)
}
