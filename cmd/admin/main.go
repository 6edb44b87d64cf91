package main

import (
	"context"
	"os"

	"github.com/dishu-studio/studio-backend/internal/admin"
	"github.com/dishu-studio/studio-backend/logger"
	"github.com/dishu-studio/studio-backend/pkg/studioapi"
)

func main() {
	logger.InitLogger()
	log := logger.GetLogger()
	defer logger.Close()

	baseURL := os.Getenv("STUDIO_API_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	client := studioapi.NewClient(baseURL)
	console := admin.NewConsole(client, os.Stdin, os.Stdout)

	if err := console.Run(context.Background()); err != nil {
		log.Fatalf("Console exited with error: %v", err)
	}
}
