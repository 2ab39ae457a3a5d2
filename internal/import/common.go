package import_pkg

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/llpg-simpleaddress/internal/address"
	"github.com/llpg-simpleaddress/internal/debug"
)

// Stats summarises one import run
type Stats struct {
	Read    int
	Written int
	Skipped int
}

// CSVImporter composes simple addresses for every row of a PAF or BS7666 CSV file
type CSVImporter struct {
	composer   *address.Composer
	localDebug bool
}

// NewCSVImporter creates a new CSV importer
func NewCSVImporter(c *address.Composer, localDebug bool) *CSVImporter {
	return &CSVImporter{composer: c, localDebug: localDebug}
}

// ImportFile composes the source CSV at in and writes the result to out.
// Output goes to a temporary file beside out and is renamed into place only
// once the import succeeds, so a failed run leaves no partial file.
func (ci *CSVImporter) ImportFile(in, out string, schema Schema) (Stats, error) {
	src, err := os.Open(in)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to open file %s: %w", in, err)
	}
	defer src.Close()

	dst, err := os.CreateTemp(filepath.Dir(out), "."+filepath.Base(out)+".*.tmp")
	if err != nil {
		return Stats{}, fmt.Errorf("failed to create file for %s: %w", out, err)
	}
	tmp := dst.Name()

	stats, err := ci.Import(src, dst, schema)
	if cerr := dst.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("failed to close %s: %w", tmp, cerr)
	}
	if err == nil {
		if rerr := os.Rename(tmp, out); rerr != nil {
			err = fmt.Errorf("failed to write %s: %w", out, rerr)
		}
	}
	if err != nil {
		os.Remove(tmp)
		return stats, err
	}
	return stats, nil
}

// Each reads a source CSV and calls fn with the key and composed lines of
// every row that holds an address. Malformed and empty rows are skipped.
func (ci *CSVImporter) Each(r io.Reader, schema Schema, fn func(key string, sa address.SimpleAddress) error) (Stats, error) {
	var stats Stats

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return stats, fmt.Errorf("failed to read header: %w", err)
	}
	debug.DebugOutput(ci.localDebug, "CSV columns: %v", header)

	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		stats.Read++

		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			debug.DebugOutput(ci.localDebug, "Error reading CSV record %d: %v", stats.Read, err)
			stats.Skipped++
			continue
		}
		if err != nil {
			return stats, fmt.Errorf("failed to read record %d: %w", stats.Read, err)
		}

		key, src := schema.adapt(stats.Read, toRecord(header, row))
		if !src.HasAddress() {
			debug.DebugOutput(ci.localDebug, "Skipping record %d: no address", stats.Read)
			stats.Skipped++
			continue
		}

		sa := ci.composer.Compose(src)
		debug.DebugLines(ci.localDebug, key, sa.Lines())

		if err := fn(key, sa); err != nil {
			return stats, fmt.Errorf("record %d: %w", stats.Read, err)
		}
		stats.Written++
	}

	debug.DebugOutput(ci.localDebug, "Import complete: %d read, %d written, %d skipped",
		stats.Read, stats.Written, stats.Skipped)
	return stats, nil
}

// Import composes every row of r and writes key, line1..line7 to w
func (ci *CSVImporter) Import(r io.Reader, w io.Writer, schema Schema) (Stats, error) {
	writer := csv.NewWriter(w)
	if err := writer.Write(outputHeader(schema.keyColumn())); err != nil {
		return Stats{}, fmt.Errorf("failed to write header: %w", err)
	}

	stats, err := ci.Each(r, schema, func(key string, sa address.SimpleAddress) error {
		slots := sa.Slots()
		return writer.Write(append([]string{key}, slots[:]...))
	})
	if err != nil {
		return stats, err
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return stats, fmt.Errorf("failed to flush output: %w", err)
	}
	return stats, nil
}

// toRecord pairs header names with row values; short rows leave keys empty
func toRecord(header, row []string) address.Record {
	record := make(address.Record, len(header))
	for i, col := range header {
		col = strings.TrimSpace(col)
		if i < len(row) {
			record[col] = row[i]
		} else {
			record[col] = ""
		}
	}
	return record
}

func outputHeader(keyColumn string) []string {
	header := []string{keyColumn}
	for i := 1; i <= address.MaxLines; i++ {
		header = append(header, "line"+strconv.Itoa(i))
	}
	return header
}
