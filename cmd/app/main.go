package main

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"restaurant/cmd"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
)

func main() {
	os.Exit(run())
}

func run() int {
	logger := log.New("restaurant")
	logger.SetOutput(os.Stderr)

	if err := loadDotEnv(".env"); err != nil {
		logger.Errorf("Error loading .env file: %v", err)
		return 1
	}

	configs := getConfigs()
	if err := configs.Validate(); err != nil {
		logger.Errorf("Invalid configuration: %v", err)
		return 1
	}
	level, _ := configs.LoggerLevel()
	logger.SetLevel(level)

	app := cmd.NewCompositionRoot(configs, logger)
	if err := app.CreateConsole().Run(context.Background(), os.Stdin, os.Stdout); err != nil {
		logger.Errorf("%v", err)
		return 1
	}

	return 0
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		PendingStorePath:   os.Getenv("ORDERS_PENDING_STORE"),
		FulfilledStorePath: os.Getenv("ORDERS_FULFILLED_STORE"),
		LogLevel:           os.Getenv("ORDERS_LOG_LEVEL"),
	}
	return config.WithDefaults()
}

// loadDotEnv seeds the environment from path. A missing file is not an error and
// variables already set in the environment win.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}
