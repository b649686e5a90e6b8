package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/chzyer/readline"

	"github.com/yigit/alumniconnect/internal/app/dashboard"
	"github.com/yigit/alumniconnect/internal/bootstrap"
	"github.com/yigit/alumniconnect/internal/client/cli"
	"github.com/yigit/alumniconnect/internal/client/forms"
	"github.com/yigit/alumniconnect/internal/client/session"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "alumni:", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", bootstrap.DefaultConfigPath, "path to the YAML config file")
	logPath := flag.String("log", "alumniconnect.log", "log file; empty logs to stderr")
	flag.Parse()

	// stdout belongs to the terminal UI
	logOut := os.Stderr
	if *logPath != "" {
		f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}

	cfg, lgr, err := bootstrap.LoadConfigAndSetupLogger(*configPath, logOut)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	core, err := bootstrap.BuildCore(ctx, cfg, lgr)
	if err != nil {
		return err
	}
	defer func() {
		if err := core.Close(); err != nil {
			lgr.Error().Err(err).Msg("Failed to close activity publisher")
		}
	}()

	storage, closer, err := session.OpenStorage(ctx, cfg, lgr)
	if err != nil {
		return fmt.Errorf("failed to open session storage: %w", err)
	}
	defer closer.Close()

	store := session.NewStore(storage, lgr)
	gw := bootstrap.NewGateway(core, cfg)

	home, _ := os.UserHomeDir()
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "alumni> ",
		HistoryFile:     filepath.Join(home, ".alumniconnect_history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return fmt.Errorf("failed to start terminal: %w", err)
	}
	defer rl.Close()

	app := cli.New(cli.Deps{
		Gateway:  gw,
		Forms:    forms.New(gw, store, lgr),
		Session:  store,
		Composer: dashboard.NewComposer(gw, cfg.Dashboard.FundraisingTarget, lgr),
		Logger:   lgr,
	}, rl, rl.Stdout())

	lgr.Info().Str("session", cfg.Session.Driver).Msg("Terminal client started")
	return app.Run(ctx)
}
