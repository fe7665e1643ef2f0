package notion

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jomei/notionapi"
)

// Column names of the expense database schema.
const (
	propTitle  = "Expense Record"
	propAmount = "Amount"
	propDate   = "Date"
)

// pageSize caps a single query request; Notion paginates beyond it.
const pageSize = 50

// canonicalDateLayout is the only date form the store accepts.
const canonicalDateLayout = "2006-01-02"

// KnownRecordSet is a snapshot of previously recorded transactions, used for
// membership tests only. It is loaded once per run and never mutated
// in-process, so two identical new transactions arriving in the same run are
// each checked against the same snapshot.
type KnownRecordSet struct {
	Dates   []string // canonical YYYY-MM-DD
	Amounts []float64
	Names   []string
}

// HasDate reports whether the canonical date was already recorded.
func (k KnownRecordSet) HasDate(date string) bool {
	for _, d := range k.Dates {
		if d == date {
			return true
		}
	}
	return false
}

// HasAmount reports whether the numeric amount was already recorded.
func (k KnownRecordSet) HasAmount(amount float64) bool {
	for _, a := range k.Amounts {
		if a == amount {
			return true
		}
	}
	return false
}

// HasName reports whether the counterparty name was already recorded.
func (k KnownRecordSet) HasName(name string) bool {
	for _, n := range k.Names {
		if n == name {
			return true
		}
	}
	return false
}

// Store reads and appends expense records in one Notion database.
type Store struct {
	svc        RecordService
	databaseID string
}

// NewStore creates a Store over the given database.
func NewStore(svc RecordService, databaseID string) *Store {
	return &Store{svc: svc, databaseID: databaseID}
}

// LoadKnownRecords fetches up to limit of the most recently dated rows
// (rows without a date are filtered out) and collects their date, title and
// number values into a KnownRecordSet.
func (s *Store) LoadKnownRecords(ctx context.Context, limit int) (KnownRecordSet, error) {
	var known KnownRecordSet
	var cursor notionapi.Cursor

	seen := 0
	for seen < limit {
		size := pageSize
		if remaining := limit - seen; remaining < size {
			size = remaining
		}

		req := &notionapi.DatabaseQueryRequest{
			Filter: notionapi.PropertyFilter{
				Property: propDate,
				Date:     &notionapi.DateFilterCondition{IsNotEmpty: true},
			},
			Sorts: []notionapi.SortObject{
				{Property: propDate, Direction: notionapi.SortOrderDESC},
			},
			PageSize:    size,
			StartCursor: cursor,
		}

		resp, err := s.svc.QueryDatabase(ctx, s.databaseID, req)
		if err != nil {
			return KnownRecordSet{}, fmt.Errorf("LoadKnownRecords: %w", err)
		}

		for _, page := range resp.Results {
			collectKnown(&known, page.Properties)
			seen++
			if seen >= limit {
				return known, nil
			}
		}

		if !resp.HasMore {
			break
		}
		cursor = resp.NextCursor
	}

	return known, nil
}

// collectKnown pulls the date, title and number values out of a row by
// property type, so the collection works regardless of column names.
func collectKnown(k *KnownRecordSet, props notionapi.Properties) {
	for _, prop := range props {
		switch p := prop.(type) {
		case *notionapi.DateProperty:
			if p.Date != nil && p.Date.Start != nil {
				k.Dates = append(k.Dates, time.Time(*p.Date.Start).Format(canonicalDateLayout))
			}
		case *notionapi.TitleProperty:
			k.Names = append(k.Names, richTextPlain(p.Title))
		case *notionapi.NumberProperty:
			k.Amounts = append(k.Amounts, p.Number)
		}
	}
}

func richTextPlain(parts []notionapi.RichText) string {
	var b strings.Builder
	for _, part := range parts {
		b.WriteString(part.PlainText)
	}
	return b.String()
}

// AppendRecord creates one row: title = counterparty, number = amount and
// date = canonicalDate, which must be in YYYY-MM-DD form.
func (s *Store) AppendRecord(ctx context.Context, counterparty string, amount float64, canonicalDate string) error {
	parsed, err := time.Parse(canonicalDateLayout, canonicalDate)
	if err != nil {
		return fmt.Errorf("AppendRecord: date %q: %w", canonicalDate, err)
	}
	date := notionapi.Date(parsed)

	props := notionapi.Properties{
		propTitle: notionapi.TitleProperty{
			Title: []notionapi.RichText{
				{
					Type: notionapi.ObjectTypeText,
					Text: &notionapi.Text{
						Content: counterparty,
					},
				},
			},
		},
		propAmount: notionapi.NumberProperty{
			Number: amount,
		},
		propDate: notionapi.DateProperty{
			Date: &notionapi.DateObject{
				Start: &date,
			},
		},
	}

	if _, err := s.svc.CreatePage(ctx, s.databaseID, props); err != nil {
		return fmt.Errorf("AppendRecord: %w", err)
	}
	return nil
}
