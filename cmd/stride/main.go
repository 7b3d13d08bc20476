package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/stride/internal/cli"
	"github.com/alexanderramin/stride/internal/config"
	"github.com/alexanderramin/stride/internal/db"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	logCfg := zap.NewProductionConfig()
	if cfg.Debug {
		logCfg = zap.NewDevelopmentConfig()
		logCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	// Keep log output off the interactive chat screen.
	logCfg.OutputPaths = []string{"stderr"}
	logger, err := logCfg.Build()
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer logger.Sync()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	app := &cli.App{
		Cfg: cfg,
		DB:  database,
		Log: logger,
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}
