package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"weblarek/internal/application/appstate"
	"weblarek/internal/config"
	"weblarek/internal/event"
	"weblarek/internal/infrastructure/http/larek"
	"weblarek/internal/interfaces/cli"
	"weblarek/internal/interfaces/cli/presenter"
	"weblarek/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}

	appLogger, err := logger.NewZapLogger(cfg.App.Env)
	if err != nil {
		log.Fatalf("create logger failed: %v", err)
	}
	defer appLogger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	bus := event.NewEmitter()
	state := appstate.New(bus)
	client := larek.NewClient(cfg.Larek, appLogger)
	p := presenter.New(bus, state, client, appLogger)

	// a failed catalog load is logged and the store opens empty
	_ = p.Start(ctx)

	terminal := cli.NewTerminal(os.Stdin, os.Stdout, p.Page(), p.Modal(),
		cli.WithPrompt(term.IsTerminal(int(os.Stdin.Fd()))),
		cli.WithLogger(appLogger),
	)
	if err := terminal.Run(ctx); err != nil {
		appLogger.Error("terminal stopped", logger.Error(err))
	}
}
