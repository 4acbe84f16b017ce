// Package config provides process-level solver settings from the
// environment.
package config

import (
	"os"
	"runtime"
	"strconv"
)

// Config holds settings that apply to every solve in the process.
type Config struct {
	Workers  int    // expansion goroutines per search round
	LogLevel string // zerolog level name
}

// Default returns the built-in settings, overridden by the ZOYSII_WORKERS
// and ZOYSII_LOG environment variables when set.
func Default() Config {
	c := Config{Workers: runtime.NumCPU(), LogLevel: "info"}
	if v, err := strconv.Atoi(os.Getenv("ZOYSII_WORKERS")); err == nil && v > 0 {
		c.Workers = v
	}
	if v := os.Getenv("ZOYSII_LOG"); v != "" {
		c.LogLevel = v
	}
	return c
}
