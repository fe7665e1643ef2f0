package extract

import (
	"strings"
	"time"
)

// dateLayouts are the known date/time formats used across the notification
// templates, tried in order. The last layout carries no year.
var dateLayouts = []string{
	"2 Jan 2006 15:04", // 26 Sep 2025 11:56
	"2 Jan 15:04 2006", // 26 Sep 11:56 2025
	"2 Jan 15:04",      // 26 Sep 11:56
}

var sgtStripper = strings.NewReplacer("(SGT)", "", "SGT", "")

// NormalizeDate converts a free-form date/time string, optionally suffixed
// with "SGT" or "(SGT)", into canonical YYYY-MM-DD form. Layouts are tried in
// order and the first successful parse wins; a layout without a year is
// backfilled with the current calendar year. An unparseable input yields ""
// so callers can treat it as "recency unknown" instead of an error.
func NormalizeDate(raw string) string {
	return normalizeDateAt(raw, time.Now())
}

func normalizeDateAt(raw string, now time.Time) string {
	cleaned := strings.TrimSpace(sgtStripper.Replace(raw))
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, cleaned)
		if err != nil {
			continue
		}
		if t.Year() == 0 {
			t = time.Date(now.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), 0, 0, t.Location())
		}
		return t.Format("2006-01-02")
	}
	return ""
}
