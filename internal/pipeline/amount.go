package pipeline

import (
	"regexp"
	"strings"
)

// approxAnnotationRe matches the "(≈R$…)" converted-value parenthetical
// NovaDAX appends to crypto amounts. It is stripped before scanning so the
// converted fiat value is never mistaken for the primary amount.
var approxAnnotationRe = regexp.MustCompile(`\(≈R\$[^)]*\)`)

// numericRunRe matches a signed numeric run: optional sign, optional
// whitespace after the sign, then a digit followed by digits, dots and
// commas in any mix.
var numericRunRe = regexp.MustCompile(`[+-]?\s*\d[\d.,]*`)

var innerSpaceRe = regexp.MustCompile(`\s+`)

// ExtractAmount pulls the first numeric literal out of a free-text NovaDAX
// amount field and renders it with a dot decimal separator. Only the first
// numeric run counts; in this export format the primary transaction amount
// always comes first. The textual precision is kept exactly as exported,
// nothing is parsed into a float. Returns "" when the text carries no
// number.
func ExtractAmount(text string) string {
	// Step 1: drop the approximation annotation.
	stripped := approxAnnotationRe.ReplaceAllString(text, "")

	// Step 2: take the first numeric run, if any.
	raw := numericRunRe.FindString(stripped)
	if raw == "" {
		return ""
	}

	raw = innerSpaceRe.ReplaceAllString(raw, "")
	raw = strings.ReplaceAll(raw, ",", ".")

	// More than one dot means everything before the last one is a
	// thousands separator: "1.234.56" -> "1234.56". For a bare two-part
	// value like "1.234" the last segment is taken as the decimal part,
	// a known ambiguity of the source format.
	if parts := strings.Split(raw, "."); len(parts) > 2 {
		raw = strings.Join(parts[:len(parts)-1], "") + "." + parts[len(parts)-1]
	}

	// An explicit plus adds nothing to a ledger amount.
	return strings.TrimPrefix(raw, "+")
}
