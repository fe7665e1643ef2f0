package gmail

import (
	"context"
	"encoding/base64"
	"fmt"
	"html"
	"strings"

	gmailapi "google.golang.org/api/gmail/v1"
)

const maxResults = 100

// Message is one fetched alert email: its Gmail id and decoded HTML body.
type Message struct {
	ID   string
	HTML string
}

// FetchAlerts runs every alert query and concatenates the results in query
// order. Cross-query duplicates are not collapsed; each occurrence is
// processed independently downstream.
func (s *Service) FetchAlerts(ctx context.Context) ([]Message, error) {
	var out []Message
	for _, q := range AlertQueries() {
		msgs, err := s.ListMessages(ctx, q)
		if err != nil {
			return nil, err
		}
		out = append(out, msgs...)
	}
	return out, nil
}

// ListMessages lists message ids matching the query, then fetches each full
// message and extracts its HTML body.
func (s *Service) ListMessages(ctx context.Context, query string) ([]Message, error) {
	resp, err := s.svc.Users.Messages.List(userID).Q(query).MaxResults(maxResults).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("ListMessages: list %q: %w", query, err)
	}

	out := make([]Message, 0, len(resp.Messages))
	for _, ref := range resp.Messages {
		full, err := s.svc.Users.Messages.Get(userID, ref.Id).Format("full").Context(ctx).Do()
		if err != nil {
			return nil, fmt.Errorf("ListMessages: get %s: %w", ref.Id, err)
		}
		out = append(out, Message{ID: ref.Id, HTML: htmlFromPayload(full.Payload)})
	}
	return out, nil
}

// htmlFromPayload walks a MIME part tree looking for a text/html body. When a
// message only carries text/plain, the text is escaped and wrapped in <pre>
// so the downstream extractors still receive HTML.
func htmlFromPayload(p *gmailapi.MessagePart) string {
	if p == nil {
		return ""
	}
	mime := strings.ToLower(p.MimeType)

	if mime == "text/html" {
		if body := decodeBody(p); body != "" {
			return body
		}
	}

	for _, part := range p.Parts {
		if body := htmlFromPayload(part); body != "" {
			return body
		}
	}

	if mime == "text/plain" {
		if body := decodeBody(p); body != "" {
			return "<pre>" + html.EscapeString(body) + "</pre>"
		}
	}

	return ""
}

// decodeBody decodes the base64url part body. Gmail emits unpadded base64url,
// but padded data shows up in the wild, so both forms are accepted.
func decodeBody(p *gmailapi.MessagePart) string {
	if p.Body == nil || p.Body.Data == "" {
		return ""
	}
	b, err := base64.RawURLEncoding.DecodeString(p.Body.Data)
	if err != nil {
		b, err = base64.URLEncoding.DecodeString(p.Body.Data)
		if err != nil {
			return ""
		}
	}
	return string(b)
}
