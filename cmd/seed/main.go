package main

import (
	"context"
	"flag"
	"os"
	"time"

	"pulpito/internal/seeder"
	"pulpito/pkg/logger"
)

// Default configuration constants.
const (
	defaultNumSubmissions = 200
	defaultTimeout        = 10 * time.Second
	defaultRunTimeout     = 5 * time.Minute
)

func main() {
	var (
		baseURL = flag.String("url", "http://localhost:9080", "Base URL of the service")
		num     = flag.Int("submissions", defaultNumSubmissions, "Number of submissions to generate and post")
		timeout = flag.Duration("timeout", defaultTimeout, "HTTP request timeout")
		verbose = flag.Bool("verbose", false, "Enable verbose logging")
	)
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		return
	}
	if *verbose {
		_ = logger.SetLevelString("debug")
	}

	ctx, cancel := context.WithTimeout(context.Background(), defaultRunTimeout)
	defer cancel()

	cfg := &seeder.Config{
		BaseURL:        *baseURL,
		NumSubmissions: *num,
		Timeout:        *timeout,
		Verbose:        *verbose,
	}
	if _, err := seeder.Run(ctx, cfg); err != nil {
		logger.Get().Error(ctx, "seeding failed", logger.Error(err))
		os.Exit(1)
	}
}
