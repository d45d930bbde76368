package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/autoluxe/autoluxe-migrate/internal/cli"
	"github.com/autoluxe/autoluxe-migrate/internal/config"
	"github.com/autoluxe/autoluxe-migrate/pkg/logger"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	cfg := config.Load()
	logger.Init(cfg.Environment.Value, cfg.SeqURL.Value, cfg.SeqToken.Value)

	rootCmd := cli.NewRootCmd(cfg)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
