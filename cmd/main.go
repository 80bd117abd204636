package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"abk/internal/book"
	"abk/internal/shared"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		}
	}
	shared.SetLogLevel(logger, config.Log.Level)

	runner := NewRunner(RunnerOpts{
		Config: config,
		Book:   book.NewAddressBook(),
		Clock:  book.RealClock{},
		Logger: logger,
	})

	app := &cli.Command{
		Name:           "abk",
		Usage:          "Interactive in-memory contact manager",
		Version:        "0.1.0",
		DefaultCommand: "repl",
		Commands:       runner.register(),
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logger.Fatalf("application error: %v", err)
	}
}
