package pipeline

import "testing"

func TestConvertDate(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "valid timestamp",
			input: "25/12/2023 14:30:00",
			want:  "2023-12-25 14:30 UTC",
		},
		{
			name:  "seconds truncated not rounded",
			input: "25/12/2023 14:30:59",
			want:  "2023-12-25 14:30 UTC",
		},
		{
			name:  "midnight on new year",
			input: "01/01/2024 00:00:00",
			want:  "2024-01-01 00:00 UTC",
		},
		{
			name:  "wrong delimiters",
			input: "25-12-2023 14:30:00",
			want:  InvalidDate,
		},
		{
			name:  "missing zero padding",
			input: "1/1/2024 00:00:00",
			want:  InvalidDate,
		},
		{
			name:  "day out of range",
			input: "32/01/2024 10:00:00",
			want:  InvalidDate,
		},
		{
			name:  "month out of range",
			input: "25/13/2023 10:00:00",
			want:  InvalidDate,
		},
		{
			name:  "non-numeric fields",
			input: "aa/bb/cccc dd:ee:ff",
			want:  InvalidDate,
		},
		{
			name:  "date without time",
			input: "25/12/2023",
			want:  InvalidDate,
		},
		{
			name:  "empty string",
			input: "",
			want:  InvalidDate,
		},
		{
			name:  "sentinel is idempotent",
			input: InvalidDate,
			want:  InvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConvertDate(tt.input)
			if got != tt.want {
				t.Errorf("ConvertDate(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
