package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/ringsidehq/boxing-platform/internal/smoketest"
)

func main() {
	echoJSON, err := smoketest.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\nUsage: %s [--echo-json]\n", err, os.Args[0])
		os.Exit(1)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	baseURL := os.Getenv("SMOKETEST_BASE_URL")
	if baseURL == "" {
		baseURL = smoketest.DefaultBaseURL
	}

	runner := smoketest.New(smoketest.Options{
		BaseURL:  baseURL,
		EchoJSON: echoJSON,
	}, logger, os.Stdout)

	if err := runner.Run(context.Background()); err != nil {
		logger.Error().Err(err).Msg("smoketest failed")
		os.Exit(1)
	}
}
