// Package main checks the configured content source from the command line.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	contentcheckcmd "github.com/louisbranch/aicopilot/internal/cmd/contentcheck"
	entrypoint "github.com/louisbranch/aicopilot/internal/platform/cmd"
	"github.com/louisbranch/aicopilot/internal/platform/config"
)

func main() {
	cfg, err := contentcheckcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[CONTENTCHECK] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceContentCheck, func(ctx context.Context) error {
		return contentcheckcmd.Run(ctx, cfg, os.Stdout)
	})
	if err != nil {
		config.Exitf("contentcheck: %v", err)
	}
}
