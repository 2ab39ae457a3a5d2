package llpg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/llpg-simpleaddress/internal/address"
	"github.com/llpg-simpleaddress/internal/debug"
)

// ErrNotFound is returned when no gazetteer record has the requested UPRN.
var ErrNotFound = errors.New("llpg: address not found")

// Store reads BS7666 addresses from the gazetteer and keeps their
// composed simple address lines.
type Store struct {
	db *sql.DB
}

// NewStore creates a gazetteer store over db
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

const addressColumns = `uprn, usrn, saon, paon, street_name, locality, town,
	administrative_area, postcode, easting, northing, latitude, longitude`

// InitSchema creates the gazetteer and simple address tables if they don't exist
func (s *Store) InitSchema(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS llpg_address (
		uprn                text PRIMARY KEY,
		usrn                text,
		saon                text,
		paon                text,
		street_name         text,
		locality            text,
		town                text,
		administrative_area text,
		postcode            text,
		easting             integer,
		northing            integer,
		latitude            double precision,
		longitude           double precision
	);

	CREATE INDEX IF NOT EXISTS idx_llpg_address_postcode
		ON llpg_address (upper(replace(postcode, ' ', '')));

	CREATE TABLE IF NOT EXISTS llpg_simple_address (
		uprn         text PRIMARY KEY REFERENCES llpg_address(uprn),
		line1        text NOT NULL DEFAULT '',
		line2        text NOT NULL DEFAULT '',
		line3        text NOT NULL DEFAULT '',
		line4        text NOT NULL DEFAULT '',
		line5        text NOT NULL DEFAULT '',
		line6        text NOT NULL DEFAULT '',
		line7        text NOT NULL DEFAULT '',
		address_text text NOT NULL DEFAULT '',
		updated_at   timestamptz NOT NULL DEFAULT now()
	);
	`

	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create llpg tables: %w", err)
	}
	return nil
}

// Get loads the gazetteer address for uprn
func (s *Store) Get(ctx context.Context, uprn string) (address.BS7666Address, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+addressColumns+` FROM llpg_address WHERE uprn = $1`,
		strings.TrimSpace(uprn))

	addr, err := scanAddress(row)
	if errors.Is(err, sql.ErrNoRows) {
		return address.BS7666Address{}, ErrNotFound
	}
	if err != nil {
		return address.BS7666Address{}, fmt.Errorf("failed to load uprn %s: %w", uprn, err)
	}
	return addr, nil
}

// ByPostcode lists the gazetteer addresses in a postcode, however the
// postcode was spaced or cased on input.
func (s *Store) ByPostcode(ctx context.Context, postcode string, limit int) ([]address.BS7666Address, error) {
	if limit <= 0 {
		limit = 100
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT `+addressColumns+` FROM llpg_address
		WHERE upper(replace(postcode, ' ', '')) = $1
		ORDER BY street_name, paon, saon
		LIMIT $2`,
		compactPostcode(postcode), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query postcode %s: %w", postcode, err)
	}
	defer rows.Close()

	var addrs []address.BS7666Address
	for rows.Next() {
		addr, err := scanAddress(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan address: %w", err)
		}
		addrs = append(addrs, addr)
	}
	return addrs, rows.Err()
}

const upsertSimpleAddress = `
	INSERT INTO llpg_simple_address (
		uprn, line1, line2, line3, line4, line5, line6, line7, address_text, updated_at
	) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, now())
	ON CONFLICT (uprn) DO UPDATE SET
		line1 = EXCLUDED.line1, line2 = EXCLUDED.line2, line3 = EXCLUDED.line3,
		line4 = EXCLUDED.line4, line5 = EXCLUDED.line5, line6 = EXCLUDED.line6,
		line7 = EXCLUDED.line7, address_text = EXCLUDED.address_text,
		updated_at = now()
`

// Save stores the composed lines for uprn
func (s *Store) Save(ctx context.Context, uprn string, sa address.SimpleAddress) error {
	if _, err := s.db.ExecContext(ctx, upsertSimpleAddress, simpleAddressArgs(uprn, sa)...); err != nil {
		return fmt.Errorf("failed to save simple address for %s: %w", uprn, err)
	}
	return nil
}

// RenderAll composes every gazetteer address and stores the lines,
// committing every batchSize records. It returns the number rendered.
func (s *Store) RenderAll(ctx context.Context, c *address.Composer, batchSize int, localDebug bool) (int, error) {
	debug.DebugHeader(localDebug, "render llpg")
	defer debug.DebugFooter(localDebug, "render llpg")
	defer debug.DebugTiming(localDebug, "render llpg")()

	if batchSize <= 0 {
		batchSize = 1000
	}

	rendered := 0
	lastUPRN := ""
	for {
		batch, err := s.page(ctx, lastUPRN, batchSize)
		if err != nil {
			return rendered, err
		}
		if len(batch) == 0 {
			break
		}

		if err := s.saveBatch(ctx, c, batch, localDebug); err != nil {
			return rendered, err
		}

		rendered += len(batch)
		lastUPRN = batch[len(batch)-1].key
		debug.DebugOutput(localDebug, "Rendered %d addresses (last uprn %s)", rendered, lastUPRN)

		if len(batch) < batchSize {
			break
		}
	}

	return rendered, nil
}

// storedAddress is a gazetteer address with its uprn exactly as stored.
// The address itself carries the trimmed uprn.
type storedAddress struct {
	key  string
	addr address.BS7666Address
}

// page reads the next batch of addresses after lastUPRN in key order.
// lastUPRN must be a stored key, not a trimmed one.
func (s *Store) page(ctx context.Context, lastUPRN string, limit int) ([]storedAddress, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+addressColumns+` FROM llpg_address
		WHERE uprn > $1 ORDER BY uprn LIMIT $2`,
		lastUPRN, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to read gazetteer page: %w", err)
	}
	defer rows.Close()

	batch := make([]storedAddress, 0, limit)
	for rows.Next() {
		addr, key, err := scanStoredAddress(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan address: %w", err)
		}
		batch = append(batch, storedAddress{key: key, addr: addr})
	}
	return batch, rows.Err()
}

func (s *Store) saveBatch(ctx context.Context, c *address.Composer, batch []storedAddress, localDebug bool) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, upsertSimpleAddress)
	if err != nil {
		return fmt.Errorf("failed to prepare upsert: %w", err)
	}
	defer stmt.Close()

	for _, row := range batch {
		sa := c.Compose(row.addr)
		debug.DebugLines(localDebug, row.addr.Uprn, sa.Lines())
		// The foreign key needs the uprn as stored.
		if _, err := stmt.ExecContext(ctx, simpleAddressArgs(row.key, sa)...); err != nil {
			return fmt.Errorf("failed to save simple address for %s: %w", row.addr.Uprn, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit batch: %w", err)
	}
	return nil
}

// scanner is satisfied by *sql.Row and *sql.Rows
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanAddress(row scanner) (address.BS7666Address, error) {
	addr, _, err := scanStoredAddress(row)
	return addr, err
}

// scanStoredAddress also returns the uprn column untrimmed
func scanStoredAddress(row scanner) (address.BS7666Address, string, error) {
	var (
		uprn                                     string
		usrn, saon, paon, street, locality, town sql.NullString
		area, postcode                           sql.NullString
		easting, northing                        sql.NullInt64
		latitude, longitude                      sql.NullFloat64
	)

	err := row.Scan(&uprn, &usrn, &saon, &paon, &street, &locality, &town,
		&area, &postcode, &easting, &northing, &latitude, &longitude)
	if err != nil {
		return address.BS7666Address{}, "", err
	}

	addr := address.NewBS7666Address(uprn, usrn.String, paon.String, saon.String,
		street.String, locality.String, town.String, area.String, postcode.String)
	addr.GeoCoordinate = address.GeoCoordinate{
		Easting:   int(easting.Int64),
		Northing:  int(northing.Int64),
		Latitude:  latitude.Float64,
		Longitude: longitude.Float64,
	}
	return addr, uprn, nil
}

// simpleAddressArgs flattens composed lines into upsert parameters
func simpleAddressArgs(uprn string, sa address.SimpleAddress) []interface{} {
	args := make([]interface{}, 0, address.MaxLines+2)
	args = append(args, uprn)
	for _, line := range sa.Slots() {
		args = append(args, line)
	}
	return append(args, sa.String())
}

func compactPostcode(postcode string) string {
	return strings.ReplaceAll(address.FormatPostcode(postcode), " ", "")
}
