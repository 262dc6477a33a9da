// Command server runs the Platrr Business HTTP API.
//
// Configuration is read from config.yaml (or CONFIG_PATH) and the
// environment; see internal/config.
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/AFTLlimited25/Platrr-Business/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Printf("server: %v", err)
		os.Exit(1)
	}
}
