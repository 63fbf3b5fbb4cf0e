package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"wogger/internal/cli"
)

func main() {
	// Ctrl+C stops watch cleanly and cancels one-shot commands
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	root := cli.NewRootCommand(cli.DefaultAppFactory(os.Stdout))
	if err := root.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		stop()
		os.Exit(1)
	}
}
