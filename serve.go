package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/kennylevinsen/gophotograph/config"
	"github.com/kennylevinsen/gophotograph/server"
)

type ServeCommand struct {
	*pflag.FlagSet

	ConfigPath string
	Addr       string
	Verbose    bool
	LogJSON    bool
}

func NewServeCommand() (cmd *ServeCommand) {
	cmd = &ServeCommand{
		FlagSet: pflag.NewFlagSet("serve", pflag.ContinueOnError),
	}

	cmd.StringVarP(&cmd.ConfigPath, "config", "c", "", "YAML profile to load")
	cmd.StringVarP(&cmd.Addr, "addr", "a", "", "Listen address (default :8091)")
	cmd.BoolVarP(&cmd.Verbose, "verbose", "v", false, "Log every photograph")
	cmd.BoolVar(&cmd.LogJSON, "log-json", false, "Log as JSON")

	return
}

func serve(args []string) int {
	cmd := NewServeCommand()
	if err := cmd.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return 1
	}

	cfg, err := config.Load(cmd.ConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return 3
	}
	if cmd.Changed("addr") {
		cfg.Addr = cmd.Addr
	}
	if cmd.Verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		return 3
	}
	level, _ := cfg.Level()
	log := newLogger(level, cmd.LogJSON)
	settings, _ := cfg.Settings()

	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      server.New(cfg, log),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	signals := make(chan string, 1)
	registerSignals(signals)
	go func() {
		sig := <-signals
		log.Info("shutting down...", "signal", sig)

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		httpServer.Shutdown(ctx)
	}()

	log.Info("starting photograph server", "addr", cfg.Addr, "procedure", settings.Procedure.Title(), "stamp", settings.Stamp)
	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("server error", "error", err)
		return 2
	}
	return 0
}
