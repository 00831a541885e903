package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/pathways/internal/config"
	"github.com/MKhiriev/pathways/internal/logger"
	"github.com/MKhiriev/pathways/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("pathways-config")

	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	checkDB := fs.Bool("check-db", false, "Ping the configured database")
	dbTimeout := fs.Duration("db-timeout", 10*time.Second, "Database check timeout (e.g., 5s, 1m)")

	cfg, err := config.GetConfiguration(fs, os.Args[1:],
		config.WithEnvProvider(config.OSEnv{}),
		config.WithLogger(log.Component("config")),
	)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log = log.WithDebug(cfg.Debug)
	log.Info().Object("config", cfg).Msg("received configs")

	if missing := cfg.MissingFields(); len(missing) > 0 {
		log.Warn().Strs("fields", missing).Str("environment", cfg.Environment).Msg("configuration has empty fields")
	}

	if !*checkDB {
		return
	}

	opts := store.DefaultOptions()
	opts.PingTimeout = *dbTimeout

	db, err := store.NewConnectPostgres(context.Background(), cfg, opts, log.Component("store"))
	if err != nil {
		log.Fatal().Err(err).Msg("error checking database")
	}
	defer db.Close()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
