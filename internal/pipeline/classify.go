package pipeline

import "strings"

// rule pairs a label phrase with the field effect it applies. Rules are
// evaluated in order and the first match wins. Order matters: matching is
// plain substring containment, so "taxa de saque de criptomoedas" has to
// be tried before "saque de criptomoedas", and both fee rules before the
// buy/sell/withdrawal rules they overlap with.
type rule struct {
	phrase string
	apply  func(t *TargetRecord, amount, currency, fiat string)
}

var classificationRules = []rule{
	{"taxa de transacao", func(t *TargetRecord, amount, currency, fiat string) {
		t.FeeAmount = amount
		t.FeeCurrency = currency
	}},
	{"taxa de saque de criptomoedas", func(t *TargetRecord, amount, currency, fiat string) {
		t.FeeAmount = amount
		t.FeeCurrency = currency
	}},
	{"deposito em reais", func(t *TargetRecord, amount, currency, fiat string) {
		t.ReceivedAmount = amount
		t.ReceivedCurrency = currency
	}},
	{"redeemed bonus", func(t *TargetRecord, amount, currency, fiat string) {
		t.ReceivedAmount = amount
		t.ReceivedCurrency = currency
		t.Label = "reward"
	}},
	{"compra", func(t *TargetRecord, amount, currency, fiat string) {
		// Buying with fiat sends fiat out; a crypto-denominated buy is
		// the crypto coming in.
		if strings.EqualFold(currency, fiat) {
			t.SentAmount = amount
			t.SentCurrency = fiat
		} else {
			t.ReceivedAmount = amount
			t.ReceivedCurrency = currency
		}
	}},
	{"venda", func(t *TargetRecord, amount, currency, fiat string) {
		if strings.EqualFold(currency, fiat) {
			t.ReceivedAmount = amount
			t.ReceivedCurrency = fiat
		} else {
			t.SentAmount = amount
			t.SentCurrency = currency
		}
	}},
	{"saque de criptomoedas", func(t *TargetRecord, amount, currency, fiat string) {
		t.SentAmount = amount
		t.SentCurrency = currency
	}},
}

// MapRow converts one raw NovaDAX record into the 12-field Koinly row.
// Records narrower than five fields are structurally invalid and map to a
// full row of InvalidRow sentinels; every other problem degrades per field
// (InvalidDate sentinel, empty amount) and the row is still emitted.
func MapRow(record []string, fiat string) []string {
	if len(record) < minSourceFields {
		row := make([]string, len(koinlyHeader))
		for i := range row {
			row[i] = InvalidRow
		}
		return row
	}

	src := SourceRecord{
		Timestamp:  record[0],
		TypeLabel:  record[1],
		Currency:   record[2],
		AmountText: record[3],
		Status:     record[4],
	}
	return classify(src, fiat).fields()
}

// classify builds the target record by applying the first matching rule.
// A label matching no rule leaves all amount fields empty; the record is
// still a valid row. Pure function of its inputs, safe to call from
// anywhere.
func classify(src SourceRecord, fiat string) *TargetRecord {
	t := &TargetRecord{
		Date: ConvertDate(src.Timestamp),
		// Description always carries the original label, accents intact.
		Description: src.TypeLabel,
	}

	label := NormalizeLabel(src.TypeLabel)
	amount := ExtractAmount(src.AmountText)

	for _, r := range classificationRules {
		if strings.Contains(label, r.phrase) {
			r.apply(t, amount, src.Currency, fiat)
			break
		}
	}

	return t
}
