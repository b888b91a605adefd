package config_test

import (
	"fmt"

	"github.com/wonny/cagrlab/pkg/config"
)

// Example demonstrates how to use the config package
func Example() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		return
	}

	fmt.Printf("Environment: %s\n", cfg.Env)
	fmt.Printf("Source: %s\n", cfg.Source)
	fmt.Printf("Log level: %s\n", cfg.LogLevel)
}
