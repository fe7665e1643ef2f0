package dispatch

import (
	"fmt"

	"github.com/seanyeoh/dbs-alerts/internal/extract"
)

// NotificationText renders the chat message for an extracted transaction.
// Income reports the payer; the outgoing kinds report the recipient.
func NotificationText(tx extract.Transaction) string {
	switch tx.Kind {
	case extract.KindIncome:
		return fmt.Sprintf("⬆️ New INCOME:\n🗓️DATE: %s\n💰AMOUNT: %s\nPAYEE: %s",
			tx.DateTime, tx.AmountRaw, tx.From)
	case extract.KindCard:
		return fmt.Sprintf("💳️ New expense:\n🗓️DATE: %s\n💵AMOUNT: %s\n🧍RECIPIENT: %s",
			tx.DateTime, tx.AmountRaw, tx.To)
	default:
		return fmt.Sprintf("⬇️ New expense:\n🗓️DATE: %s\n💵AMOUNT: %s\n🧍RECIPIENT: %s",
			tx.DateTime, tx.AmountRaw, tx.To)
	}
}
