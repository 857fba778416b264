package pipeline

import "testing"

func TestExtractAmount(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain integer",
			input: "150",
			want:  "150",
		},
		{
			name:  "decimal comma with currency symbol",
			input: "R$ 1,50",
			want:  "1.50",
		},
		{
			name:  "small crypto amount",
			input: "R$ 0,0123",
			want:  "0.0123",
		},
		{
			name:  "thousands comma with dot decimal",
			input: "+ 1,234.56",
			want:  "1234.56",
		},
		{
			name:  "negative with space after sign",
			input: "- 1,234",
			want:  "-1.234",
		},
		{
			name:  "approximation parenthetical stripped first",
			input: "(≈R$50,00) -89,10",
			want:  "-89.10",
		},
		{
			name:  "parenthetical after the amount",
			input: "0,00052 BTC (≈R$123,45)",
			want:  "0.00052",
		},
		{
			name:  "only a parenthetical",
			input: "(≈R$50,00)",
			want:  "",
		},
		{
			name:  "first of several numbers wins",
			input: "12,5 then 99,9",
			want:  "12.5",
		},
		{
			name:  "thousands dots with comma decimal",
			input: "1.234.567,89",
			want:  "1234567.89",
		},
		{
			// Known source-format ambiguity: a bare two-part number keeps
			// its last segment as the decimal part, so "1.234" stays
			// "1.234" even if the export meant one thousand.
			name:  "bare two-part number keeps last segment as decimal",
			input: "1.234",
			want:  "1.234",
		},
		{
			name:  "no numbers",
			input: "no numbers here",
			want:  "",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractAmount(tt.input)
			if got != tt.want {
				t.Errorf("ExtractAmount(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
