package extract

import "golang.org/x/net/html"

// ExtractPayment parses the tabular PayLah payment template: a two-column
// table whose label cells read "Date & Time:", "Amount:" and "To:". Rows with
// unrecognized labels are ignored and a duplicated label overwrites the
// earlier value. Any input that is not this template simply returns an
// unpopulated Transaction.
func ExtractPayment(htmlStr string) Transaction {
	out := Transaction{Kind: KindPayment}
	doc := parseDoc(htmlStr)
	if doc == nil {
		return out
	}

	eachElement(doc, "tr", func(row *html.Node) {
		cells := childElements(row, "td")
		if len(cells) == 0 {
			return
		}
		label := NormalizeLabel(flatText(cells[0]))

		var value string
		if len(cells) > 1 {
			value = Clean(flatText(cells[1]))
		}

		switch label {
		case "date & time":
			out.DateTime = value
		case "amount":
			out.AmountRaw = value
			out.AmountNum = ParseAmount(value).Num
		case "to":
			out.To = value
		}
	})

	return out
}
