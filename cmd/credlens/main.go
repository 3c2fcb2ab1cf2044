// cmd/credlens/main.go
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	LoadEnv()
	cfg := LoadEnvConfig()

	if err := InitLogger(cfg.LogPath, cfg.LogLevel); err != nil {
		log.Printf("Warning: file logging unavailable: %v", err)
	}

	fmt.Println("credlens v" + cfg.Version + " starting up...")

	history, err := NewHistoryStore(cfg.HistoryPath)
	if err != nil {
		Logger().Error("Failed to open history store: %v", err)
		os.Exit(1)
	}

	pipeline := NewPipeline(cfg)
	notifier := NewNotifier(cfg.DiscordBotToken, cfg.DiscordChannelID, cfg.AlertMinConfidence)
	defer notifier.Close()

	scheduler := NewScheduler(cfg, history)
	if err := scheduler.Start(); err != nil {
		Logger().Warning("Scheduler unavailable: %v", err)
	} else {
		defer scheduler.Stop()
	}

	server := NewServer(cfg, pipeline, history, notifier)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			Logger().Error("HTTP server failed: %v", err)
			os.Exit(1)
		}
	case sig := <-stop:
		Logger().Info("Received %v, shutting down", sig)
	}
}
