package extract

import "testing"

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"interior runs collapse", "  a\t\tb\n", "a b"},
		{"already clean", "a b", "a b"},
		{"empty", "", ""},
		{"only whitespace", " \t\n ", ""},
		{"newlines and tabs", "SGD\n10.00\t(SGT)", "SGD 10.00 (SGT)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clean(tt.input)
			if got != tt.want {
				t.Errorf("Clean(%q) = %q, want %q", tt.input, got, tt.want)
			}
			if again := Clean(got); again != got {
				t.Errorf("Clean is not idempotent: Clean(%q) = %q", got, again)
			}
		})
	}
}

func TestNormalizeLabel(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Amount:", "amount"},
		{" amount ", "amount"},
		{"  Date & Time : ", "date & time"},
		{"To:", "to"},
		{"TO::", "to"},
		{"", ""},
	}

	for _, tt := range tests {
		got := NormalizeLabel(tt.input)
		if got != tt.want {
			t.Errorf("NormalizeLabel(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
