package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/librelibrary/librelibrary/internal/card"
	"github.com/librelibrary/librelibrary/internal/openlibrary"
	"github.com/librelibrary/librelibrary/internal/webserver"
	log "github.com/sirupsen/logrus"
)

const shutdownTimeout = 5 * time.Second

func run(cfg Config, secret []byte) {
	client := openlibrary.NewClient(openlibrary.Config{
		Endpoint:          cfg.SearchEndpoint,
		UserAgent:         cfg.UserAgent,
		RequestsPerSecond: cfg.RequestsPerSecond,
		Timeout:           cfg.FetchTimeout,
	})

	webserverCfg := webserver.Config{
		Version:        version,
		SessionSecret:  secret,
		SessionTimeout: cfg.SessionTimeout,
		FetchLimit:     cfg.FetchLimit,
		PageSize:       cfg.PageSize,
		Genres:         cfg.Genres,
		Cards: card.Options{
			CoverHost:   cfg.CoverHost,
			Placeholder: cfg.PlaceholderCover,
		},
	}

	controllers := webserver.SetupControllers(webserverCfg, client)
	app := webserver.New(webserverCfg, controllers)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		log.Info("Shutting down")
		if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
			log.Error(err)
		}
	}()

	log.Infof("LibreLibrary version %s started listening on port %d", version, cfg.Port)
	if err := app.Listen(fmt.Sprintf(":%d", cfg.Port)); err != nil {
		log.Fatal(err)
	}
}
