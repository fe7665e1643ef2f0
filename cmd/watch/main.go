package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/seanyeoh/dbs-alerts/internal/dispatch"
	"github.com/seanyeoh/dbs-alerts/internal/gmail"
	"github.com/seanyeoh/dbs-alerts/internal/logger"
	"github.com/seanyeoh/dbs-alerts/internal/notion"
	"github.com/seanyeoh/dbs-alerts/internal/telegram"
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func main() {
	// Initialize structured logger
	log := logger.New()

	// Flags default to the matching environment variables so the binary runs
	// under cron without a wrapper script.
	notionToken := flag.String("notion-token", os.Getenv("NOTION_API_TOKEN"), "Notion integration token")
	notionDBID := flag.String("notion-db-id", os.Getenv("NOTION_DB_ID"), "Notion database ID")
	telegramToken := flag.String("telegram-token", os.Getenv("TELEGRAM_BOT_TOKEN"), "Telegram bot token")
	telegramChatID := flag.String("telegram-chat-id", os.Getenv("TELEGRAM_CHAT_ID"), "Telegram chat ID")
	credentialsFile := flag.String("gmail-credentials", envOr("GMAIL_CREDENTIALS_FILE", "secrets/credentials.json"), "Google OAuth2 client credentials file")
	tokenFile := flag.String("gmail-token", envOr("GMAIL_TOKEN_FILE", "secrets/gmail_token.json"), "Gmail OAuth2 token file, minted by cmd/reauth")
	knownLimit := flag.Int("known-limit", 20, "How many recent store rows to load for dedup")
	dryRun := flag.Bool("dry-run", false, "Classify and log only - no notifications or writes")
	flag.Parse()

	// Validate required configuration
	if *notionToken == "" {
		log.Fatal().Msg("Error: --notion-token or NOTION_API_TOKEN is required")
	}
	if *notionDBID == "" {
		log.Fatal().Msg("Error: --notion-db-id or NOTION_DB_ID is required")
	}
	if *telegramToken == "" {
		log.Fatal().Msg("Error: --telegram-token or TELEGRAM_BOT_TOKEN is required")
	}
	if *telegramChatID == "" {
		log.Fatal().Msg("Error: --telegram-chat-id or TELEGRAM_CHAT_ID is required")
	}

	// Create context with timeout so a cron run doesn't hang
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	// Add logger to context
	ctx = logger.WithContext(ctx, log)

	log.Info().
		Int("known_limit", *knownLimit).
		Bool("dry_run", *dryRun).
		Msg("Starting alert watch")

	// Initialize the Gmail client
	mail, err := gmail.NewService(ctx, *credentialsFile, *tokenFile)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize Gmail client")
	}

	// Initialize the Notion record store and load the dedup snapshot
	store := notion.NewStore(notion.NewClient(*notionToken), *notionDBID)
	known, err := store.LoadKnownRecords(ctx, *knownLimit)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load known records")
	}
	log.Info().
		Int("dates", len(known.Dates)).
		Int("amounts", len(known.Amounts)).
		Int("names", len(known.Names)).
		Msg("Loaded known records")

	// Initialize the Telegram notifier
	notifier := telegram.NewClient(*telegramToken, *telegramChatID)

	res, err := dispatch.Run(ctx, mail, store, notifier, known, *dryRun)
	if err != nil {
		log.Fatal().Err(err).Msg("Run failed")
	}

	fmt.Printf("OK. Messages fetched: %d, matched: %d, persisted: %d\n", res.Fetched, res.Matched, res.Persisted)
}
