// Command migrate applies or rolls back the codecamp schema.
//
//	migrate up
//	migrate down [-steps N]
package main

import (
	"flag"
	"fmt"
	"os"

	"codecamp/config"
	"codecamp/internal/repository/postgres"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: migrate up|down [-steps N]")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	logger := config.NewLogger()

	switch os.Args[1] {
	case "up":
		err = postgres.MigrateUp(cfg.DBUrl, cfg.MigrationsPath)
	case "down":
		fs := flag.NewFlagSet("down", flag.ExitOnError)
		steps := fs.Int("steps", 1, "number of migrations to roll back")
		_ = fs.Parse(os.Args[2:])
		err = postgres.MigrateDown(cfg.DBUrl, cfg.MigrationsPath, *steps)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", os.Args[1])
		os.Exit(2)
	}
	if err != nil {
		logger.Error("migration failed", "command", os.Args[1], "err", err)
		os.Exit(1)
	}
	logger.Info("migration complete", "command", os.Args[1])
}
