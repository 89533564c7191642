package logging

import (
	"log"
	"os"
	"sync"
)

var (
	instance *Logger
	mu       sync.RWMutex
)

// InitLogger initializes the global logger with the given configuration.
// It should be called once at process startup, before any logger usage.
func InitLogger(config *Config) error {
	if err := config.Validate(); err != nil {
		return err
	}

	logger, err := NewLogger(config)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()
	instance = logger
	return nil
}

// GetGlobalLogger returns the global logger instance.
// If InitLogger was never called (e.g. in tests), it falls back to a
// stdout-only logger so callers never have to nil-check.
func GetGlobalLogger() *Logger {
	mu.RLock()
	if instance != nil {
		defer mu.RUnlock()
		return instance
	}
	mu.RUnlock()

	mu.Lock()
	defer mu.Unlock()
	if instance == nil {
		instance = &Logger{Logger: log.New(os.Stdout, "", log.LstdFlags)}
	}
	return instance
}
