package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"controlsync/models"
)

func maskPassword(password string) string {
	if password == "" {
		return "<empty>"
	}
	if len(password) <= 2 {
		return password
	}
	masked := make([]byte, len(password))
	for i := range masked {
		masked[i] = '*'
	}
	masked[0] = password[0]
	masked[len(masked)-1] = password[len(password)-1]
	return string(masked)
}

func main() {
	// .env is optional; deployments usually set the environment directly.
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	var cfg *models.Config
	var err error
	switch len(os.Args) {
	case 1:
		log.Println("No configuration file given, using built-in defaults")
		cfg = GetDefaultConfig()
	case 2:
		cfg, err = LoadConfig(os.Args[1])
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	default:
		log.Fatalf("usage: %s [config.json]", os.Args[0])
	}

	fillCredentials(cfg)
	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	baseURL := os.Getenv("REPORTSERVER_URL")
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}

	password := ""
	if len(cfg.Orgs) > 0 {
		password = cfg.Orgs[0].Password
	}
	log.Println("=== Report Server Connection Details ===")
	log.Printf("URL: %s", baseURL)
	log.Printf("Orgs: %d", len(cfg.Orgs))
	log.Printf("Reports: %d", len(cfg.Reports))
	log.Printf("Password: %s", maskPassword(password))
	log.Println("========================================")

	client := NewReportServerClient(baseURL, cfg.Orgs)
	pipeline := NewPipeline(client)

	summary, err := pipeline.Run(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Run failed: %v", err)
	}
	fmt.Println(summary)
}
