package import_pkg

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/llpg-simpleaddress/internal/address"
)

// Schema names the layout of a source CSV file
type Schema string

const (
	// SchemaPAF is an ADDRESS-POINT extract whose header uses the PAF field
	// mnemonics (ON, DP, PB, BN, SB, BD, TN, DR, DD, DL, PT, CN, PC).
	// Rows are keyed by the OSAPR column, or by row number when it is absent.
	SchemaPAF Schema = "paf"

	// SchemaBS7666 is a gazetteer extract with uprn, usrn, saon, paon,
	// street_name, locality, town, administrative_area and postcode columns.
	SchemaBS7666 Schema = "bs7666"
)

// ParseSchema accepts "paf" or "bs7666" in any case
func ParseSchema(s string) (Schema, error) {
	switch schema := Schema(strings.ToLower(strings.TrimSpace(s))); schema {
	case SchemaPAF, SchemaBS7666:
		return schema, nil
	}
	return "", fmt.Errorf("unknown schema %q (want paf or bs7666)", s)
}

func (s Schema) keyColumn() string {
	if s == SchemaBS7666 {
		return "uprn"
	}
	return "osapr"
}

func (s Schema) adapt(row int, record address.Record) (string, address.Source) {
	if s == SchemaBS7666 {
		addr := address.BS7666FromRecord(record)
		return addr.Uprn, addr
	}

	key := record.Get("osapr")
	if key == "" {
		key = strconv.Itoa(row)
	}
	return key, address.PAFFromRecord(record)
}

// ImportPAF composes an ADDRESS-POINT CSV
func (ci *CSVImporter) ImportPAF(r io.Reader, w io.Writer) (Stats, error) {
	return ci.Import(r, w, SchemaPAF)
}

// ImportBS7666 composes a gazetteer CSV
func (ci *CSVImporter) ImportBS7666(r io.Reader, w io.Writer) (Stats, error) {
	return ci.Import(r, w, SchemaBS7666)
}
