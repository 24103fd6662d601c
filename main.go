// Package main provides the entry point for the Discord tennis ladder bot.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/brookhaven-tennis/go-discord-ladder/internal/app"
	"github.com/brookhaven-tennis/go-discord-ladder/internal/assistant"
	"github.com/brookhaven-tennis/go-discord-ladder/internal/bot"
	"github.com/brookhaven-tennis/go-discord-ladder/internal/commands"
	"github.com/brookhaven-tennis/go-discord-ladder/internal/config"
	"github.com/brookhaven-tennis/go-discord-ladder/internal/discord"
	"github.com/brookhaven-tennis/go-discord-ladder/internal/infrastructure"
	"github.com/brookhaven-tennis/go-discord-ladder/internal/ladder"
	"github.com/brookhaven-tennis/go-discord-ladder/internal/openai"
	"github.com/brookhaven-tennis/go-discord-ladder/internal/scheduler"
	pkginfra "github.com/brookhaven-tennis/go-discord-ladder/pkg/infrastructure"

	"go.uber.org/fx"
)

func main() {
	// Set a default config path. This can be overridden by environment variables or flags if needed.
	configPath := "config.yaml"

	// Create the application with all modules
	application := app.New(
		// Core modules
		config.Module,
		infrastructure.LoggerModule,

		// External service modules
		discord.Module,
		openai.Module,

		// Application modules
		ladder.Module,
		assistant.Module,
		commands.Module,
		bot.Module,
		scheduler.Module,

		// Supply the config path
		fx.Supply(configPath),

		// Configure Fx to use our Zap logger for its own internal logging
		fx.WithLogger(pkginfra.NewFxLoggerAdapter),
	)

	// Set up a channel to listen for OS signals (like Ctrl+C)
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// Start the application in a goroutine
	go application.Run()

	// Block until a signal is received
	sig := <-sigCh
	fmt.Printf("Received signal: %s, initiating shutdown.\n", sig)

	// Give the application 30 seconds to shut down gracefully
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)

	err := application.Stop(shutdownCtx)
	cancel()

	if err != nil {
		fmt.Printf("Error during shutdown: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Application has shut down gracefully.")
}
