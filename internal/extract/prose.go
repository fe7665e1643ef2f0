package extract

import "regexp"

var (
	// "Amount: SGD 10.00" — a 3-letter currency code followed by a signed
	// decimal with optional comma grouping. The "received SGD 10.00" form is
	// the fallback when no explicit Amount: label is present.
	amountLabelRe    = regexp.MustCompile(`Amount:(\s*[A-Z]{3}\s*-?\d[\d,]*(?:\.\d+)?)`)
	amountReceivedRe = regexp.MustCompile(`received(\s*[A-Z]{3}\s*-?\d[\d,]*(?:\.\d+)?)`)

	// "on 24 Sep 2025 18:09 SGT"
	incomeDateRe = regexp.MustCompile(`(?i)\bon\s+(\d{1,2}\s+\w{3}\s+\d{4}\s+\d{2}:\d{2}\s+SGT)\b`)
)

// ExtractIncome parses the prose "funds received" template. The payer and
// recipient hang off bold "From:" / "To:" labels; the amount and the
// date/time are matched out of the flattened document text.
func ExtractIncome(htmlStr string) Transaction {
	out := Transaction{Kind: KindIncome}
	doc := parseDoc(htmlStr)
	if doc == nil {
		return out
	}

	out.From = textAfterLabel(doc, "From:")
	out.To = textAfterLabel(doc, "To:")

	txt := Clean(flatText(doc))

	m := amountLabelRe.FindStringSubmatch(txt)
	if m == nil {
		m = amountReceivedRe.FindStringSubmatch(txt)
	}
	if m != nil {
		amt := ParseAmount(m[1])
		out.AmountRaw = amt.Raw
		out.AmountNum = amt.Num
	}

	if m := incomeDateRe.FindStringSubmatch(txt); m != nil {
		out.DateTime = m[1]
	}

	return out
}
