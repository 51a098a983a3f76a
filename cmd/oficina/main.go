package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/diewo77/oficina/i18n"
	"github.com/diewo77/oficina/internal/config"
	"github.com/diewo77/oficina/internal/repository"
	"github.com/diewo77/oficina/internal/share"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	_ = godotenv.Load()

	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a := newApp(cfg, os.Stdout)
	if err := a.cli().RunContext(ctx, os.Args); err != nil {
		printError(a.lang, err)
		stop()
		os.Exit(1)
	}
}

// printError reports err on stderr, translating validation failures.
func printError(lang string, err error) {
	var verr *repository.ValidationError
	switch {
	case errors.As(err, &verr):
		fmt.Fprintln(os.Stderr, i18n.T(lang, "errors.invalid_input"))
		for _, f := range verr.Violations.Fields() {
			fmt.Fprintf(os.Stderr, "  %s: %s\n", f, i18n.T(lang, verr.Violations[f]))
		}
	case errors.Is(err, share.ErrNoPhone):
		fmt.Fprintln(os.Stderr, i18n.T(lang, "share.no_phone"))
	case errors.Is(err, repository.ErrNotFound):
		fmt.Fprintf(os.Stderr, "%s: %v\n", i18n.T(lang, "errors.not_found"), err)
	default:
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
}
