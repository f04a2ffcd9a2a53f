// Command attributor runs the attribution signing service. It signs request
// metadata with the builder's API credentials for callers presenting a
// known bearer token.
//
// Configuration comes from the environment (a .env file is honored):
//
//	POLYMARKET_API_KEY     builder API key
//	POLYMARKET_SECRET      builder API secret (base64)
//	POLYMARKET_PASSPHRASE  builder API passphrase
//	ATTRIBUTOR_TOKENS      comma-separated bearer token allow-list
package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/dicedhq/go-polymarket/server"
	"github.com/dicedhq/go-polymarket/signer"
)

func main() {
	listenAddr := flag.String("listen", ":8080", "address to listen on")
	pretty := flag.Bool("pretty", false, "human-readable log output")
	flag.Parse()

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if *pretty {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn().Err(err).Msg("could not load .env file")
	}

	credentials := signer.Credentials{
		Key:        os.Getenv("POLYMARKET_API_KEY"),
		Secret:     os.Getenv("POLYMARKET_SECRET"),
		Passphrase: os.Getenv("POLYMARKET_PASSPHRASE"),
	}
	if credentials.Key == "" || credentials.Secret == "" || credentials.Passphrase == "" {
		logger.Fatal().Msg("POLYMARKET_API_KEY, POLYMARKET_SECRET and POLYMARKET_PASSPHRASE are required")
	}

	tokens := splitTokens(os.Getenv("ATTRIBUTOR_TOKENS"))
	if len(tokens) == 0 {
		logger.Fatal().Msg("ATTRIBUTOR_TOKENS must list at least one bearer token")
	}

	svc := server.New(server.Config{
		Credentials: credentials,
		Tokens:      tokens,
		Logger:      &logger,
	})

	httpServer := &http.Server{
		Addr:              *listenAddr,
		Handler:           svc.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", *listenAddr).Int("tokens", len(tokens)).Msg("attribution service listening")
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info().Msg("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("shutdown failed")
	}
}

func splitTokens(raw string) []string {
	var tokens []string
	for _, token := range strings.Split(raw, ",") {
		if token = strings.TrimSpace(token); token != "" {
			tokens = append(tokens, token)
		}
	}
	return tokens
}
