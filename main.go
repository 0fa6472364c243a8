package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/haresh-sai06/class-poll-mate/app"
	"github.com/haresh-sai06/class-poll-mate/cliparse"
	"github.com/haresh-sai06/class-poll-mate/kv"
	"github.com/haresh-sai06/class-poll-mate/storage"
)

func main() {
	// Optional .env for local overrides
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Open the persistent store
	var store kv.Store
	switch cfg.StoreType {
	case "postgres":
		store, err = kv.OpenPostgres(cfg.StorePath)
	default:
		store, err = kv.OpenSQLite(cfg.StorePath)
	}
	if err != nil {
		slog.Error("store open failed", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	// Seed the roster on first run
	data := storage.New(store, cfg.Namespace)
	if err := data.Seed(); err != nil {
		slog.Error("seeding failed", "error", err)
		store.Close()
		os.Exit(1)
	}
	slog.Info("store ready", "type", cfg.StoreType, "namespace", cfg.Namespace)

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C, flush the store, and leave
		<-ctrlc
		store.Close()
		os.Exit(0)
	}()

	if err := app.New(data, os.Stdin, os.Stdout).Run(); err != nil {
		slog.Error("app closed", "error", err)
		store.Close()
		os.Exit(1)
	}
}
