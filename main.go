package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/sadopc/todo/internal/cli"
	"github.com/sadopc/todo/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: cfg.NoColor}).
		Level(cfg.Level()).
		With().Timestamp().Logger()

	app := cli.NewApp(cfg, logger)
	os.Exit(cli.Execute(context.Background(), app, os.Args[1:]))
}
