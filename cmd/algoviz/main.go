package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/khaclbit/algorithm-visualizer/cli"
)

var version = "dev"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cli.Execute(ctx, version)
}
