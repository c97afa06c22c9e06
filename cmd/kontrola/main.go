package main

import (
	"fmt"
	"os"

	"kontrola/internal/app"
	"kontrola/internal/platform/config"
	"kontrola/internal/platform/logger"
)

var version = "0.1.0"

func main() {
	root := newRootCmd(os.Stdout, func() (*app.App, error) {
		cfg, err := config.Load()
		if err != nil {
			return nil, err
		}
		log := logger.NewWithWriter(os.Stderr, cfg.LogLevel, "text")
		return app.New(cfg, log, nil), nil
	})
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
