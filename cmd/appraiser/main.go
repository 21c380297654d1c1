package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/law-makers/appraiser/internal/cli"
)

func main() {
	// cancel in-flight parcels on interrupt; the run index is still closed
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cli.Execute(ctx)
}
