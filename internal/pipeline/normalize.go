package pipeline

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// NormalizeLabel returns a lowercase, accent-stripped view of a transaction
// type label for rule matching: the text is decomposed (NFD), combining
// marks are dropped, and the result is recomposed. "Taxa de Transação"
// becomes "taxa de transacao". Total over any input, including "".
func NormalizeLabel(s string) string {
	// Transformers carry internal state, so build the chain per call
	// instead of sharing one across records.
	folder := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

	folded, _, err := transform.String(folder, s)
	if err != nil {
		// The chain has no failure mode for valid UTF-8; keep the raw
		// text so the label still reaches the classifier.
		folded = s
	}
	return strings.ToLower(folded)
}
