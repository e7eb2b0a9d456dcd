// Package main starts the CO2 explorer dashboard process lifecycle.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	explorercmd "github.com/louisbranch/co2explorer/internal/cmd/explorer"
	"github.com/louisbranch/co2explorer/internal/platform/config"
)

func main() {
	cfg, err := explorercmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse flags: %v", err)
	}
	log.SetPrefix("[EXPLORER] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := explorercmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
