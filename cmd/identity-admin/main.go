package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/dmitrijs2005/identitypg/internal/cli"
	"github.com/dmitrijs2005/identitypg/internal/config"
	"github.com/dmitrijs2005/identitypg/internal/flagx"
	"github.com/dmitrijs2005/identitypg/internal/logging"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logging.ParseLevel(cfg.LogLevel),
	})))

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer app.Close()

	args := flagx.StripArgs(os.Args[1:], []string{"-d", "-s", "-t", "-l", "-c", "-config"})
	if err := app.Run(ctx, args); err != nil {
		log.Fatalf("%v", err)
	}
}
