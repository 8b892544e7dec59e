package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ASecCraft/anniv-fetch/internal/cli"
)

func main() {
	// A full run takes several minutes; an interrupt stops the fetch loop
	// cleanly at the next day boundary instead of mid-request.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.Execute(ctx)
}
