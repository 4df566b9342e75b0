package trips

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/andareed/siftly-bikeshare/logging"

	_ "modernc.org/sqlite"
)

// Frame is a raw table as read from a source: a header row plus data rows.
type Frame struct {
	Header []string
	Rows   [][]string
}

// Source reads the full trip table of one city.
type Source interface {
	Read(ctx context.Context, city string) (*Frame, error)
}

// CSVSource reads one CSV file per city from Dir.
type CSVSource struct {
	Dir   string
	Files map[string]string // city key -> file name, relative to Dir unless absolute
}

func (s *CSVSource) Read(_ context.Context, city string) (*Frame, error) {
	name, ok := s.Files[city]
	if !ok {
		return nil, fmt.Errorf("%w: no file configured for city %q", ErrDataAccess, city)
	}
	path := name
	if s.Dir != "" && !filepath.IsAbs(name) {
		path = filepath.Join(s.Dir, name)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: error opening file: %w", ErrDataAccess, err)
	}
	defer f.Close()

	frame, err := readCSV(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logging.Infof("Loaded %d rows from %s", len(frame.Rows), path)
	return frame, nil
}

func readCSV(r io.Reader) (*Frame, error) {
	cr := csv.NewReader(r)
	// Some exports pad short rows; column lookup tolerates it.
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: CSV has no header row", ErrSchema)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: error reading CSV: %w", ErrDataAccess, err)
	}

	frame := &Frame{Header: header}
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: error reading CSV: %w", ErrDataAccess, err)
		}
		frame.Rows = append(frame.Rows, record)
	}
	return frame, nil
}

// SQLiteSource reads each city from its own table in a single SQLite file.
// Table names are the city key with spaces replaced by underscores.
type SQLiteSource struct {
	Path string
}

// TableName returns the table a city is stored in.
func TableName(city string) string {
	return strings.ReplaceAll(city, " ", "_")
}

func (s *SQLiteSource) Read(ctx context.Context, city string) (*Frame, error) {
	if _, err := os.Stat(s.Path); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDataAccess, err)
	}
	db, err := sql.Open("sqlite", s.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to open database: %w", ErrDataAccess, err)
	}
	defer db.Close()

	table := TableName(city)
	rows, err := db.QueryContext(ctx, `SELECT * FROM "`+table+`"`)
	if err != nil {
		return nil, fmt.Errorf("%w: query %s: %w", ErrDataAccess, table, err)
	}
	defer rows.Close()

	header, err := rows.Columns()
	if err != nil {
		return nil, fmt.Errorf("%w: columns of %s: %w", ErrSchema, table, err)
	}

	frame := &Frame{Header: header}
	vals := make([]sql.NullString, len(header))
	dest := make([]any, len(header))
	for i := range vals {
		dest[i] = &vals[i]
	}
	for rows.Next() {
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("%w: scan %s: %w", ErrDataAccess, table, err)
		}
		record := make([]string, len(vals))
		for i, v := range vals {
			if v.Valid {
				record[i] = v.String
			}
		}
		frame.Rows = append(frame.Rows, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrDataAccess, table, err)
	}
	logging.Infof("Loaded %d rows from %s table %s", len(frame.Rows), s.Path, table)
	return frame, nil
}
