package pipeline

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/andremq/novaconv/internal/logger"
)

// Options carries the per-run parameters of a conversion. The zero value
// uses the BRL fiat code.
type Options struct {
	// Fiat is the local-currency code that decides the sent/received
	// direction of buy and sell rows. Compared case-insensitively.
	Fiat string
}

// Report summarizes one conversion run for the end-of-run confirmation.
type Report struct {
	RowsRead     int // data records read, header excluded
	RowsWritten  int // data rows written, header excluded
	InvalidRows  int // records with fewer than five fields
	InvalidDates int // records whose timestamp did not parse
	Unclassified int // records whose label matched no rule
}

// Convert reads a NovaDAX CSV export from r and writes the Koinly ledger
// CSV to w. The first input record is the source header and is discarded;
// every following record maps to exactly one output row, in input order.
// Per-record problems degrade to sentinel or empty fields and never abort
// the run; only I/O failures return an error.
func Convert(ctx context.Context, r io.Reader, w io.Writer, opts Options) (*Report, error) {
	log := logger.FromContext(ctx)

	fiat := strings.ToUpper(opts.Fiat)
	if fiat == "" {
		fiat = DefaultFiat
	}

	reader := csv.NewReader(r)
	// Short and long rows must reach the mapper, not error out here.
	reader.FieldsPerRecord = -1

	writer := csv.NewWriter(w)

	// 1. Skip the source header. An empty export still produces a valid
	// (header-only) output file.
	if _, err := reader.Read(); err != nil && err != io.EOF {
		return nil, fmt.Errorf("Convert: read source header: %w", err)
	}

	// 2. Write the fixed Koinly header.
	if err := writer.Write(koinlyHeader); err != nil {
		return nil, fmt.Errorf("Convert: write header: %w", err)
	}

	report := &Report{}

	// 3. Map records one to one, in input order.
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("Convert: read record %d: %w", report.RowsRead+1, err)
		}
		report.RowsRead++

		row := MapRow(record, fiat)
		report.tally(row)

		if row[0] == InvalidRow {
			log.Warn().Int("record", report.RowsRead).Int("fields", len(record)).
				Msg("Structurally invalid record, emitting sentinel row")
		} else if row[0] == InvalidDate {
			log.Debug().Int("record", report.RowsRead).Str("timestamp", record[0]).
				Msg("Unparseable timestamp")
		}

		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("Convert: write record %d: %w", report.RowsRead, err)
		}
		report.RowsWritten++
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("Convert: flush output: %w", err)
	}

	return report, nil
}

// ConvertFile converts inputPath into outputPath, creating or truncating
// the destination. File handling is the only fatal error path; everything
// per-record degrades inside Convert.
func ConvertFile(ctx context.Context, inputPath, outputPath string, opts Options) (*Report, error) {
	log := logger.FromContext(ctx)

	in, err := os.Open(inputPath)
	if err != nil {
		return nil, fmt.Errorf("ConvertFile: open input: %w", err)
	}
	defer in.Close()

	out, err := os.Create(outputPath)
	if err != nil {
		return nil, fmt.Errorf("ConvertFile: create output: %w", err)
	}

	report, err := Convert(ctx, in, out, opts)
	if cerr := out.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("ConvertFile: close output: %w", cerr)
	}
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("input", inputPath).
		Str("output", outputPath).
		Int("rows", report.RowsWritten).
		Int("invalid_rows", report.InvalidRows).
		Int("invalid_dates", report.InvalidDates).
		Int("unclassified", report.Unclassified).
		Msg("Conversion finished")

	return report, nil
}

// tally updates the run counters from one mapped row.
func (rep *Report) tally(row []string) {
	if row[0] == InvalidRow {
		rep.InvalidRows++
		return
	}
	if row[0] == InvalidDate {
		rep.InvalidDates++
	}
	// Columns 1-6 are the sent/received/fee amount and currency pairs;
	// a matched rule always populates at least one of them.
	for _, col := range row[1:7] {
		if col != "" {
			return
		}
	}
	rep.Unclassified++
}
