package pipeline

// Sentinel values used for recoverable per-record failures. They ride
// in-band in the output so a bad record never aborts the batch.
const (
	InvalidDate = "Invalid Date"
	InvalidRow  = "Invalid Row"
)

// DefaultFiat is the local-currency code used when none is configured.
// NovaDAX settles its fiat legs in Brazilian reais.
const DefaultFiat = "BRL"

// minSourceFields is the structural minimum for a NovaDAX export row.
// Anything narrower cannot be mapped and yields a full sentinel row.
const minSourceFields = 5

// koinlyHeader is the fixed 12-column header of the output ledger.
var koinlyHeader = []string{
	"Date", "Sent Amount", "Sent Currency",
	"Received Amount", "Received Currency",
	"Fee Amount", "Fee Currency",
	"Net Worth Amount", "Net Worth Currency",
	"Label", "Description", "TxHash",
}

// SourceRecord holds the first five fields of one NovaDAX export row.
// Trailing fields beyond these are ignored.
type SourceRecord struct {
	Timestamp  string // "DD/MM/YYYY HH:MM:SS"
	TypeLabel  string // e.g. "Compra", "Taxa de Transação"
	Currency   string // currency code of the amount
	AmountText string // free text, e.g. "R$ 1,50" or "0,0123 (≈R$50,00)"
	Status     string
}

// TargetRecord is one row of the Koinly ledger CSV. It is built once per
// source record, serialized, and discarded; nothing is retained between
// records. NetWorthAmount, NetWorthCurrency and TxHash are always empty
// because the NovaDAX export carries no data for them.
type TargetRecord struct {
	Date             string
	SentAmount       string
	SentCurrency     string
	ReceivedAmount   string
	ReceivedCurrency string
	FeeAmount        string
	FeeCurrency      string
	NetWorthAmount   string
	NetWorthCurrency string
	Label            string
	Description      string
	TxHash           string
}

// fields renders the record in Koinly column order.
func (t *TargetRecord) fields() []string {
	return []string{
		t.Date,
		t.SentAmount, t.SentCurrency,
		t.ReceivedAmount, t.ReceivedCurrency,
		t.FeeAmount, t.FeeCurrency,
		t.NetWorthAmount, t.NetWorthCurrency,
		t.Label, t.Description, t.TxHash,
	}
}
