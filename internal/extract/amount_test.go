package extract

import "testing"

func TestParseAmount(t *testing.T) {
	num := func(f float64) *float64 { return &f }

	tests := []struct {
		name    string
		input   string
		wantRaw string
		wantNum *float64
	}{
		{"currency code and comma grouping", "SGD 1,234.50", "SGD 1,234.50", num(1234.50)},
		{"negative amount", "SGD -10.00", "SGD -10.00", num(-10.00)},
		{"plain number", "25.00", "25.00", num(25.00)},
		{"empty input", "", "", nil},
		{"no digits at all", "SGD", "SGD", nil},
		{"malformed residue", "1.2.3", "1.2.3", nil},
		{"whitespace normalized in raw", "  SGD\t10.00 ", "SGD 10.00", num(10.00)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseAmount(tt.input)
			if got.Raw != tt.wantRaw {
				t.Errorf("ParseAmount(%q).Raw = %q, want %q", tt.input, got.Raw, tt.wantRaw)
			}
			switch {
			case tt.wantNum == nil && got.Num != nil:
				t.Errorf("ParseAmount(%q).Num = %v, want nil", tt.input, *got.Num)
			case tt.wantNum != nil && got.Num == nil:
				t.Errorf("ParseAmount(%q).Num = nil, want %v", tt.input, *tt.wantNum)
			case tt.wantNum != nil && *got.Num != *tt.wantNum:
				t.Errorf("ParseAmount(%q).Num = %v, want %v", tt.input, *got.Num, *tt.wantNum)
			}
		})
	}
}
