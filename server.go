package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"itemserver/config"
	"itemserver/database"
	"itemserver/logging"
	"itemserver/restapi"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger, logFile := logging.New("items: ", cfg.LogFile)
	defer logFile.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := database.Connect(ctx, cfg.MongoURI, cfg.Database, logger); err != nil {
		return fmt.Errorf("could not connect to database: %w", err)
	}

	defer func() {
		if err := database.Disconnect(context.Background()); err != nil {
			logger.Printf("ERROR: could not disconnect from database: %v", err)
		}
	}()

	repository := database.NewItemRepository(database.DBConnect, logger)
	api := restapi.New(repository, database.Ping, logger)

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           api.Router(),
		IdleTimeout:       3 * time.Minute,
		ReadHeaderTimeout: time.Minute,
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Printf("Listening on %s", cfg.ListenAddr)
		if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)

	select {
	case s := <-sig:
		logger.Printf("Signal (%s) received, stopping", s)
	case err := <-serveErr:
		return err
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	return srv.Shutdown(shutdownCtx)
}
