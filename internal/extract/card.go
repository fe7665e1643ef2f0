package extract

import "regexp"

var (
	// "Date & Time: 26 Sep 11:56 (SGT)" — the ampersand is optional and the
	// timezone code sits in brackets with no year given.
	cardDateRe = regexp.MustCompile(`Date\s*&?\s*Time:\s*([0-9]{1,2}\s+[A-Za-z]{3}\s+\d{2}:\d{2}\s*\([A-Z]+\))`)

	// Raw-markup fallback for the recipient: "To:" up to the next tag
	// boundary. The card template nests the recipient inside inline markup
	// that the flattened-text view merges with the surrounding sentence.
	cardRecipientRe = regexp.MustCompile(`To\s*:\s*([^<]+?)\s*<`)
)

// ExtractCard parses the card transaction template. Date/time and amount are
// matched out of the flattened document text. The recipient is looked up
// structurally first ("To:" label sibling); only when that fails does the
// raw-markup scan run, and its result is tagged low confidence.
func ExtractCard(htmlStr string) Transaction {
	out := Transaction{Kind: KindCard}
	doc := parseDoc(htmlStr)
	if doc == nil {
		return out
	}

	txt := Clean(flatText(doc))

	if m := cardDateRe.FindStringSubmatch(txt); m != nil {
		out.DateTime = Clean(m[1])
	}

	if m := amountLabelRe.FindStringSubmatch(txt); m != nil {
		amt := ParseAmount(m[1])
		out.AmountRaw = amt.Raw
		out.AmountNum = amt.Num
	}

	out.To = textAfterLabel(doc, "To:")
	if out.To == "" {
		if m := cardRecipientRe.FindStringSubmatch(htmlStr); m != nil {
			out.To = Clean(m[1])
			out.ToLowConfidence = true
		}
	}

	return out
}
