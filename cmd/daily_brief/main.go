package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/2beens/fitstats/internal/analytics"
	"github.com/2beens/fitstats/internal/config"
	"github.com/2beens/fitstats/internal/health"
	"github.com/2beens/fitstats/internal/logging"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// daily_brief prints the briefing of the latest recorded day.
func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	source := flag.String("source", "", "dashboard_data.json path or url, overrides the config data_source")
	flag.Parse()

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warnf("load .env: %s", err)
	}

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %s\n", err)
		os.Exit(1)
	}

	// the report goes to stdout, logs stay out of its way
	logging.Setup(logging.LoggerSetupParams{
		LogLevel:    "warn",
		Environment: cfg.Environment,
	})
	log.SetOutput(os.Stderr)

	dataSource := cfg.DataSource
	if *source != "" {
		dataSource = *source
	}

	timeout := time.Duration(cfg.DataLoadTimeoutSeconds) * time.Second
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	records, err := health.NewLoader(timeout).Load(ctx, dataSource)
	if err != nil {
		log.Fatalf("load dataset from [%s]: %s", dataSource, err)
	}

	ds, err := health.NewDataset(records, time.Now())
	if err != nil {
		log.Fatalf("dataset: %s", err)
	}

	brief, ok := analytics.DailyBrief(ds.Records())
	if !ok {
		fmt.Println("No records, nothing to brief.")
		return
	}

	if err := brief.WriteText(os.Stdout); err != nil {
		log.Fatalf("write brief: %s", err)
	}
}
