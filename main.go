package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/danielhkuo/school-admin/cliparse"
	"github.com/danielhkuo/school-admin/commands"
	"github.com/danielhkuo/school-admin/db"
)

func main() {
	router := commands.NewRouter()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		if errors.Is(err, cliparse.ErrNoCommand) || errors.Is(err, flag.ErrHelp) {
			fmt.Fprint(os.Stderr, router.Usage())
			os.Exit(2)
		}
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Logs go to stderr so stdout only carries command output
	level := slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	// Connect to the database
	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer conn.Close()

	// Cancel on Ctrl-C
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env := commands.NewEnv(conn, os.Stdout, cfg.JSON)
	err = router.Run(ctx, env, cfg.Command, cfg.Args)
	if err != nil {
		slog.Error("command failed", "command", cfg.Command, "error", err)
		if errors.Is(err, commands.ErrUsage) || errors.Is(err, commands.ErrUnknownCommand) {
			fmt.Fprint(os.Stderr, router.Usage())
		}
		stop()
		conn.Close()
		os.Exit(1)
	}
}
