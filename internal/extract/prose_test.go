package extract

import "testing"

const incomeHTML = `
<html><body>
<p>You have received SGD 10.00 on 24 Sep 2025 18:09 SGT.</p>
<p><strong>From:</strong> JOHN TAN</p>
<p><strong>To:</strong> My Account</p>
<p>Amount: SGD 10.00</p>
</body></html>`

func TestExtractIncome(t *testing.T) {
	got := ExtractIncome(incomeHTML)

	if !got.Populated() {
		t.Fatal("expected a populated transaction")
	}
	if got.Kind != KindIncome {
		t.Errorf("Kind = %q, want %q", got.Kind, KindIncome)
	}
	if got.DateTime != "24 Sep 2025 18:09 SGT" {
		t.Errorf("DateTime = %q, want %q", got.DateTime, "24 Sep 2025 18:09 SGT")
	}
	if got.AmountRaw != "SGD 10.00" {
		t.Errorf("AmountRaw = %q, want %q", got.AmountRaw, "SGD 10.00")
	}
	if got.AmountNum == nil || *got.AmountNum != 10.00 {
		t.Errorf("AmountNum = %v, want 10.00", got.AmountNum)
	}
	if got.From != "JOHN TAN" {
		t.Errorf("From = %q, want %q", got.From, "JOHN TAN")
	}
	if got.To != "My Account" {
		t.Errorf("To = %q, want %q", got.To, "My Account")
	}
	if got.Counterparty() != "JOHN TAN" {
		t.Errorf("Counterparty() = %q, want payer for income", got.Counterparty())
	}
}

func TestExtractIncome_ReceivedFallback(t *testing.T) {
	// No "Amount:" label anywhere; the "received <code> <number>" sentence
	// is the fallback pattern.
	htmlStr := `<p>You have received SGD 1,250.00 on 24 Sep 2025 18:09 SGT.</p>`

	got := ExtractIncome(htmlStr)
	if got.AmountRaw != "SGD 1,250.00" {
		t.Errorf("AmountRaw = %q, want %q", got.AmountRaw, "SGD 1,250.00")
	}
	if got.AmountNum == nil || *got.AmountNum != 1250.00 {
		t.Errorf("AmountNum = %v, want 1250.00", got.AmountNum)
	}
}

func TestExtractIncome_AmountLabelPreferred(t *testing.T) {
	htmlStr := `<p>You have received SGD 99.99 on 24 Sep 2025 18:09 SGT.</p>
	<p>Amount: SGD 10.00</p>`

	got := ExtractIncome(htmlStr)
	if got.AmountRaw != "SGD 10.00" {
		t.Errorf("AmountRaw = %q, want the Amount: form to win", got.AmountRaw)
	}
}

func TestExtractIncome_CaseInsensitiveDate(t *testing.T) {
	htmlStr := `<p>received SGD 5.00 ON 24 Sep 2025 18:09 sgt.</p>`

	got := ExtractIncome(htmlStr)
	if got.DateTime != "24 Sep 2025 18:09 sgt" {
		t.Errorf("DateTime = %q, want case-insensitive match", got.DateTime)
	}
}

func TestExtractIncome_NoMatch(t *testing.T) {
	got := ExtractIncome("<p>Your statement is ready.</p>")
	if got.Populated() {
		t.Errorf("expected unpopulated transaction, got %+v", got)
	}
	if got.From != "" || got.To != "" || got.AmountNum != nil {
		t.Errorf("expected absent fields, got %+v", got)
	}
}
