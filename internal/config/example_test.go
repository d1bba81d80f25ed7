package config_test

import (
	"fmt"

	"github.com/actionsum/xdotool/internal/config"
)

// Example of creating a default configuration
func ExampleDefault() {
	cfg := config.Default()
	fmt.Println("Xdotool:", cfg.Exec.Xdotool)
	fmt.Println("Shell:", cfg.Exec.Shell)
	fmt.Println("History retention:", cfg.History.Retention)
	// Output:
	// Xdotool: xdotool
	// Shell: false
	// History retention: 720h0m0s
}

// Example of setting the display with validation
func ExampleConfig_SetDisplay() {
	cfg := config.Default()

	if err := cfg.SetDisplay("7"); err != nil {
		fmt.Println("Error:", err)
	} else {
		fmt.Println("Display set to:", cfg.DisplayString())
	}

	if err := cfg.SetDisplay("localhost:10.0"); err == nil {
		fmt.Println("Display set to:", cfg.DisplayString())
	}

	if err := cfg.SetDisplay("seven"); err != nil {
		fmt.Println("Error: invalid display")
	}

	// Output:
	// Display set to: :7
	// Display set to: :10
	// Error: invalid display
}

// Example of validating configuration
func ExampleConfig_Validate() {
	cfg := config.Default()

	if err := cfg.Validate(); err != nil {
		fmt.Println("Invalid config:", err)
	} else {
		fmt.Println("Configuration is valid")
	}

	cfg.Logging.Level = "loud"
	fmt.Println(cfg.Validate())

	// Output:
	// Configuration is valid
	// invalid log level "loud" (valid: debug, info, warn, error, fatal)
}
