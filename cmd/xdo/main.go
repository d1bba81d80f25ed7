package main

import (
	"errors"
	"os"

	"github.com/actionsum/xdotool/internal/cli"
	"github.com/actionsum/xdotool/internal/logger"
)

func main() {
	err := cli.Execute(os.Args[1:], os.Stdout, os.Stderr)
	if err == nil {
		return
	}

	var exitErr *cli.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Code <= 0 {
			os.Exit(1)
		}
		os.Exit(exitErr.Code)
	}

	logger.Error(err)
	os.Exit(1)
}
