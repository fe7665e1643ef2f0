// Package dispatch runs one polling pass: fetch alert emails, classify each
// message against the three known templates, notify the chat channel, and
// persist novel expense rows to the record store.
package dispatch

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/seanyeoh/dbs-alerts/internal/extract"
	"github.com/seanyeoh/dbs-alerts/internal/gmail"
	"github.com/seanyeoh/dbs-alerts/internal/logger"
	"github.com/seanyeoh/dbs-alerts/internal/notion"
)

// MailService lists alert emails. Implemented by gmail.Service.
type MailService interface {
	FetchAlerts(ctx context.Context) ([]gmail.Message, error)
}

// RecordStore persists novel expense rows. Implemented by notion.Store.
type RecordStore interface {
	AppendRecord(ctx context.Context, counterparty string, amount float64, canonicalDate string) error
}

// Notifier delivers chat notifications. Implemented by telegram.Client.
type Notifier interface {
	SendMessage(ctx context.Context, text string) error
}

// Result summarizes one polling pass.
type Result struct {
	Fetched   int // messages returned by the mail queries
	Matched   int // messages recognized by one of the templates
	Notified  int // notifications delivered
	Persisted int // novel rows appended to the store
}

// Classify runs the three extractors in fixed precedence order: tabular
// payment, then prose income, then card transaction. The first populated
// result wins; a message matching no template returns an unpopulated
// Transaction and is not an error.
func Classify(htmlStr string) extract.Transaction {
	if tx := extract.ExtractPayment(htmlStr); tx.Populated() {
		return tx
	}
	if tx := extract.ExtractIncome(htmlStr); tx.Populated() {
		return tx
	}
	if tx := extract.ExtractCard(htmlStr); tx.Populated() {
		return tx
	}
	return extract.Transaction{}
}

// isNew applies the novelty rule against the snapshot: any single unseen
// field marks the record new. A nil amount never matches a known amount.
func isNew(known notion.KnownRecordSet, canonicalDate string, amount *float64, counterparty string) bool {
	if !known.HasDate(canonicalDate) {
		return true
	}
	if amount == nil || !known.HasAmount(*amount) {
		return true
	}
	return !known.HasName(counterparty)
}

// Run executes one sequential polling pass against an immutable known-record
// snapshot. Per-message collaborator failures are logged and the pass
// continues; only the initial fetch is fatal. With dryRun set, matches are
// logged but nothing is notified or persisted.
func Run(ctx context.Context, mail MailService, store RecordStore, notifier Notifier, known notion.KnownRecordSet, dryRun bool) (Result, error) {
	log := logger.FromContext(ctx).With().Str("run_id", uuid.NewString()).Logger()

	msgs, err := mail.FetchAlerts(ctx)
	if err != nil {
		return Result{}, fmt.Errorf("Run: fetch alerts: %w", err)
	}

	res := Result{Fetched: len(msgs)}
	log.Info().Int("messages", len(msgs)).Bool("dry_run", dryRun).Msg("Fetched alert emails")

	for _, msg := range msgs {
		tx := Classify(msg.HTML)
		if !tx.Populated() {
			log.Debug().Str("message_id", msg.ID).Msg("No template matched, skipping")
			continue
		}
		res.Matched++

		mlog := log.With().Str("message_id", msg.ID).Str("kind", string(tx.Kind)).Logger()
		mlog.Info().
			Str("date_time", tx.DateTime).
			Str("amount", tx.AmountRaw).
			Str("counterparty", tx.Counterparty()).
			Bool("low_confidence", tx.ToLowConfidence).
			Msg("Transaction extracted")

		if dryRun {
			continue
		}

		// Every recognized message notifies, new or not.
		if err := notifier.SendMessage(ctx, NotificationText(tx)); err != nil {
			mlog.Warn().Err(err).Msg("Notification failed")
		} else {
			res.Notified++
		}

		// Income has no persistence path; only outgoing kinds are
		// deduplicated and stored.
		if tx.Kind == extract.KindIncome {
			continue
		}

		canonical := extract.NormalizeDate(tx.DateTime)
		if canonical == "" {
			mlog.Warn().Str("date_time", tx.DateTime).Msg("Cannot determine record date, not persisting")
			continue
		}
		if !isNew(known, canonical, tx.AmountNum, tx.Counterparty()) {
			mlog.Info().Str("date", canonical).Msg("Record already known, not persisting")
			continue
		}
		if tx.AmountNum == nil {
			mlog.Warn().Str("amount", tx.AmountRaw).Msg("No numeric amount, not persisting")
			continue
		}

		if err := store.AppendRecord(ctx, tx.Counterparty(), *tx.AmountNum, canonical); err != nil {
			mlog.Error().Err(err).Msg("Persist failed")
			continue
		}
		res.Persisted++
		mlog.Info().Str("date", canonical).Msg("New record persisted")
	}

	log.Info().
		Int("fetched", res.Fetched).
		Int("matched", res.Matched).
		Int("notified", res.Notified).
		Int("persisted", res.Persisted).
		Msg("Run complete")
	return res, nil
}
