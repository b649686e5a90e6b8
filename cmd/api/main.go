package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/yigit/alumniconnect/internal/bootstrap"
	"github.com/yigit/alumniconnect/internal/pkg/logger"
	"github.com/yigit/alumniconnect/internal/server"
)

func main() {
	configPath := flag.String("config", bootstrap.DefaultConfigPath, "path to the YAML config file")
	flag.Parse()

	srv, err := server.Open(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to initialize server")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		logger.Error().Err(err).Msg("Server stopped with errors")
		stop()
		os.Exit(1)
	}
}
