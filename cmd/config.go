package cmd

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"restaurant/internal/pkg/errs"

	"github.com/labstack/gommon/log"
)

const (
	DefaultPendingStorePath   = "orders.json"
	DefaultFulfilledStorePath = "output_orders.json"
	DefaultLogLevel           = "warn"
)

type Config struct {
	PendingStorePath   string
	FulfilledStorePath string
	LogLevel           string
}

// WithDefaults fills empty fields with their default values.
func (c Config) WithDefaults() Config {
	if c.PendingStorePath == "" {
		c.PendingStorePath = DefaultPendingStorePath
	}
	if c.FulfilledStorePath == "" {
		c.FulfilledStorePath = DefaultFulfilledStorePath
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	return c
}

// Validate checks that both stores are set and distinct and that the log level is known.
func (c Config) Validate() error {
	var errList []error
	if c.PendingStorePath == "" {
		errList = append(errList, errs.NewValueIsRequiredError("pending store path"))
	}
	if c.FulfilledStorePath == "" {
		errList = append(errList, errs.NewValueIsRequiredError("fulfilled store path"))
	}
	if c.PendingStorePath != "" && filepath.Clean(c.PendingStorePath) == filepath.Clean(c.FulfilledStorePath) {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause(
			"fulfilled store path",
			fmt.Errorf("%s is also the pending store", c.FulfilledStorePath),
		))
	}
	if _, err := c.LoggerLevel(); err != nil {
		errList = append(errList, err)
	}
	return errors.Join(errList...)
}

// LoggerLevel maps LogLevel to a gommon level. An empty value means warn.
func (c Config) LoggerLevel() (log.Lvl, error) {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return log.DEBUG, nil
	case "info":
		return log.INFO, nil
	case "", "warn":
		return log.WARN, nil
	case "error":
		return log.ERROR, nil
	case "off":
		return log.OFF, nil
	default:
		return log.WARN, errs.NewValueIsInvalidErrorWithCause(
			"log level",
			fmt.Errorf("%q is not one of debug, info, warn, error, off", c.LogLevel),
		)
	}
}
