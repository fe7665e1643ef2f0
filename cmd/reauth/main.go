// Command reauth runs the OAuth2 installed-app flow once and writes the Gmail
// token file that cmd/watch consumes. Run it locally where a browser is
// available, then copy the token file to wherever the watcher runs.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"golang.org/x/oauth2"

	"github.com/seanyeoh/dbs-alerts/internal/gmail"
	"github.com/seanyeoh/dbs-alerts/internal/logger"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	log := logger.New()

	credentialsFile := flag.String("gmail-credentials", envOr("GMAIL_CREDENTIALS_FILE", "secrets/credentials.json"), "Google OAuth2 client credentials file")
	tokenFile := flag.String("gmail-token", envOr("GMAIL_TOKEN_FILE", "secrets/gmail_token.json"), "Where to write the minted token")
	flag.Parse()

	cfg, err := gmail.LoadConfig(*credentialsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load OAuth2 credentials")
	}

	// AccessTypeOffline requests a refresh token so the watcher can renew
	// access tokens unattended.
	authURL := cfg.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	fmt.Printf("Open the following link in your browser, then paste the authorization code:\n%v\n> ", authURL)

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatal().Err(err).Msg("Failed to read authorization code")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	tok, err := cfg.Exchange(ctx, code)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to exchange authorization code")
	}

	if err := gmail.SaveToken(*tokenFile, tok); err != nil {
		log.Fatal().Err(err).Msg("Failed to save token")
	}

	log.Info().Str("path", *tokenFile).Msg("Gmail token saved")
}
