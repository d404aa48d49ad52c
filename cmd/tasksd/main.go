package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"task-tracker/internal/cli"
)

func main() {
	// Cancelled on SIGINT/SIGTERM so a running server drains and the store is closed
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCommand(nil)
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(cli.NewErrorHandler().ExitCode(err))
	}
}
