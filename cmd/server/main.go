package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/subosito/gotenv"

	"github.com/Thomson-dev/bank-summary-agent/pkg/config"
	"github.com/Thomson-dev/bank-summary-agent/pkg/server"
)

func main() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		Prefix:          "bank-summary",
	})

	// Environment overrides live in .env during local development.
	_ = gotenv.Load()

	var (
		cfgFile = flag.String("config", "", "Config file path")
		port    = flag.String("port", "", "Server port (overrides config)")
	)
	flag.Parse()

	cfg, err := config.Build(*cfgFile, nil)
	if err != nil {
		logger.Fatal("failed to load config", "error", err)
	}
	if *port != "" {
		cfg.Port = *port
	}

	srv, err := server.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to create server", "error", err)
	}

	addr := fmt.Sprintf("0.0.0.0:%s", cfg.Port)
	logger.Info("starting server", "addr", addr, "agent", server.AgentID)
	if err := srv.Start(addr); err != nil {
		logger.Fatal("server error", "err", err)
	}
}
