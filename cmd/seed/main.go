// Command seed loads the site's catalog, portfolio and partner brands from a
// YAML file into an empty database.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"maisonweb/config"
	"maisonweb/database"
	"maisonweb/logger"

	"go.uber.org/zap"
)

func main() {
	file := flag.String("file", "content.yaml", "YAML file with services, projects and brands")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.App.LogLevel, !cfg.IsProduction())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	f, err := os.Open(*file)
	if err != nil {
		log.Fatal("Failed to open content file", zap.Error(err))
	}
	defer f.Close()

	c, err := parseContent(f)
	if err != nil {
		log.Fatal("Invalid content file", zap.String("file", *file), zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	db, err := database.Connect(ctx, cfg.Database.URL, log)
	if err != nil {
		log.Fatal("Failed to connect", zap.Error(err))
	}
	defer db.Close()

	if err := db.InsertServices(ctx, c.services()); err != nil {
		log.Fatal("Failed to seed services", zap.Error(err))
	}
	if err := db.InsertProjects(ctx, c.projects()); err != nil {
		log.Fatal("Failed to seed projects", zap.Error(err))
	}
	if err := db.InsertBrands(ctx, c.brands()); err != nil {
		log.Fatal("Failed to seed brands", zap.Error(err))
	}

	log.Info("Seed completed",
		zap.Int("services", len(c.Services)),
		zap.Int("projects", len(c.Projects)),
		zap.Int("brands", len(c.Brands)),
	)
}
