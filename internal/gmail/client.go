// Package gmail fetches DBS alert emails through the Gmail REST API and
// recovers their HTML bodies. Authentication uses an OAuth2 token file minted
// once by cmd/reauth; this package only refreshes it.
package gmail

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gmailapi "google.golang.org/api/gmail/v1"
	"google.golang.org/api/option"
)

const userID = "me"

// Service wraps the Gmail API client used to fetch alert messages.
type Service struct {
	svc *gmailapi.Service
}

// NewService builds a Gmail client from an OAuth2 client-credentials file and
// a previously saved token file. Token refresh happens transparently through
// the oauth2 HTTP client.
func NewService(ctx context.Context, credentialsFile, tokenFile string) (*Service, error) {
	cfg, err := LoadConfig(credentialsFile)
	if err != nil {
		return nil, err
	}

	tok, err := TokenFromFile(tokenFile)
	if err != nil {
		return nil, err
	}

	svc, err := gmailapi.NewService(ctx, option.WithHTTPClient(cfg.Client(ctx, tok)))
	if err != nil {
		return nil, fmt.Errorf("NewService: gmail client: %w", err)
	}

	return &Service{svc: svc}, nil
}

// LoadConfig reads a Google OAuth2 client-credentials JSON file and scopes it
// to read-only Gmail access.
func LoadConfig(credentialsFile string) (*oauth2.Config, error) {
	b, err := os.ReadFile(credentialsFile)
	if err != nil {
		return nil, fmt.Errorf("LoadConfig: read credentials: %w", err)
	}

	cfg, err := google.ConfigFromJSON(b, gmailapi.GmailReadonlyScope)
	if err != nil {
		return nil, fmt.Errorf("LoadConfig: parse credentials: %w", err)
	}
	return cfg, nil
}

// TokenFromFile reads a saved OAuth2 token.
func TokenFromFile(path string) (*oauth2.Token, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("TokenFromFile: %w", err)
	}
	defer f.Close()

	tok := &oauth2.Token{}
	if err := json.NewDecoder(f).Decode(tok); err != nil {
		return nil, fmt.Errorf("TokenFromFile: decode %s: %w", path, err)
	}
	return tok, nil
}

// SaveToken writes an OAuth2 token to path with owner-only permissions.
// Used by cmd/reauth after the installed-app flow completes.
func SaveToken(path string, tok *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("SaveToken: %w", err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		return fmt.Errorf("SaveToken: encode: %w", err)
	}
	return nil
}
