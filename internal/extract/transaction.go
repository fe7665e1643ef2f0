// Package extract pulls structured transaction fields out of the HTML bodies
// of DBS notification emails. Three templates are recognized: the tabular
// PayLah payment alert, the prose "funds received" alert, and the card
// transaction alert. Extractors are total functions: malformed or unrelated
// markup yields absent fields, never an error.
package extract

// Kind identifies which notification template produced a transaction.
type Kind string

const (
	KindPayment Kind = "payment"
	KindIncome  Kind = "income"
	KindCard    Kind = "card"
)

// Transaction is the unified output shape shared by all three extractors.
// Empty strings and a nil AmountNum mean "not found in this template".
type Transaction struct {
	Kind      Kind
	DateTime  string   // date/time text as it appeared in the email
	AmountRaw string   // display string, may include a currency code
	AmountNum *float64 // parsed magnitude, nil when unparseable
	From      string   // payer, only set by the income template
	To        string   // recipient

	// ToLowConfidence marks a recipient recovered by the raw-markup
	// fallback scan rather than a structured tree lookup.
	ToLowConfidence bool
}

// Populated reports whether the extractor actually matched its template.
// The date/time field is the discriminator: a template that matched always
// carries one.
func (t Transaction) Populated() bool {
	return t.DateTime != ""
}

// Counterparty returns the other party of the transaction: the recipient for
// outgoing kinds, the payer for income.
func (t Transaction) Counterparty() string {
	if t.Kind == KindIncome {
		return t.From
	}
	return t.To
}
