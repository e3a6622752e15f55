package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/osse101/Shardlands_Go/internal/bootstrap"
	"github.com/osse101/Shardlands_Go/internal/config"
	"github.com/osse101/Shardlands_Go/internal/logger"
)

func main() {
	slot := flag.String("slot", "", "save slot to delete (defaults to SAVE_SLOT)")
	flag.Parse()

	logger.InitLoggerWithWriter(logger.DefaultConfig(), os.Stderr)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *slot != "" {
		cfg.SaveSlot = *slot
	}

	ctx := context.Background()
	repos, err := bootstrap.InitializeRepositories(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to open save store: %v", err)
	}
	defer repos.Close()

	if err := repos.Profile.Delete(ctx); err != nil {
		log.Fatalf("Failed to delete save: %v", err)
	}

	if cfg.UsePostgres() {
		log.Printf("Save slot %q deleted from %s.\n", cfg.SaveSlot, cfg.DBName)
	} else {
		log.Printf("Save file %s deleted.\n", cfg.SavePath)
	}
	log.Println("The next run starts with a fresh profile.")
}
