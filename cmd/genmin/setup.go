package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"genmin/internal/config"
	"genmin/internal/logger"
)

// appState is filled once by setupApp before any subcommand runs.
type appState struct {
	cfg   config.Config
	log   logger.Logger
	color bool
	quiet bool
}

var app appState

func setupApp(cmd *cobra.Command, _ []string) error {
	// .env необязателен
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	colorFlag, err := cmd.Flags().GetString("color")
	if err != nil {
		return err
	}
	switch colorFlag {
	case "on":
		app.color = true
	case "off":
		app.color = false
	case "auto":
		app.color = isTerminal(os.Stdout)
	default:
		return fmt.Errorf("unsupported color mode %q (must be auto, on or off)", colorFlag)
	}
	color.NoColor = !app.color

	if app.quiet, err = cmd.Flags().GetBool("quiet"); err != nil {
		return err
	}

	logLevel, logJSON, err := logger.GetLoggerConfig(cmd)
	if err != nil {
		return err
	}
	app.log = logger.SetupLogger(os.Stderr, logLevel, logJSON)
	cmd.SetContext(logger.ContextWithLogger(cmd.Context(), app.log))

	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	if app.cfg, err = loadConfig(configPath); err != nil {
		return err
	}
	app.cfg, err = app.cfg.ApplyEnv(os.LookupEnv)
	if err != nil {
		return err
	}
	if app.cfg.Source != "" {
		app.log.Debug("configuration loaded", "path", app.cfg.Source)
	}
	return nil
}

func loadConfig(explicit string) (config.Config, error) {
	if explicit != "" {
		return config.Load(explicit)
	}
	wd, err := os.Getwd()
	if err != nil {
		return config.Config{}, err
	}
	path, ok, err := config.Find(wd)
	if err != nil {
		return config.Config{}, err
	}
	if !ok {
		return config.Default(), nil
	}
	return config.Load(path)
}
