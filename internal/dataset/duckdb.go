package dataset

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/marcboeker/go-duckdb" // duckdb driver
)

// ReadDuckDB decodes launch records by staging the CSV body to a temporary
// file and reading it back through DuckDB's read_csv_auto in an in-memory
// database. Column types are inferred by DuckDB; values are then validated
// with the same rules as ParseCSV.
func ReadDuckDB(ctx context.Context, r io.Reader) ([]LaunchRecord, error) {
	path, err := stageCSV(r)
	if err != nil {
		return nil, err
	}
	defer func() { _ = os.Remove(path) }()

	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, fmt.Errorf("failed to open duckdb connection: %w", err)
	}
	defer func() { _ = db.Close() }()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping duckdb: %w", err)
	}

	// read_csv_auto does not take bind parameters for the path.
	query := fmt.Sprintf(
		"SELECT * FROM read_csv_auto('%s', header=true)",
		strings.ReplaceAll(path, "'", "''"),
	)

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to read csv: %w", err)
	}
	defer func() { _ = rows.Close() }()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	idx, err := newColumnIndex(cols)
	if err != nil {
		return nil, err
	}

	var records []LaunchRecord
	line := 1 // header
	for rows.Next() {
		line++

		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("failed to scan line %d: %w", line, err)
		}

		cells := make([]string, len(values))
		for i, v := range values {
			cells[i] = formatCell(v)
		}

		rec, err := idx.decode(line, cells)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(records) == 0 {
		return nil, ErrEmpty
	}
	return records, nil
}

func stageCSV(r io.Reader) (string, error) {
	f, err := os.CreateTemp("", "launchdash-*.csv")
	if err != nil {
		return "", fmt.Errorf("failed to create staging file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		_ = f.Close()
		_ = os.Remove(f.Name())
		return "", fmt.Errorf("failed to stage csv: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}

// formatCell renders a scanned DuckDB value the way it would appear in CSV.
func formatCell(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case int64:
		return strconv.FormatInt(val, 10)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int16:
		return strconv.FormatInt(int64(val), 10)
	case int8:
		return strconv.FormatInt(int64(val), 10)
	case int:
		return strconv.Itoa(val)
	case bool:
		if val {
			return "1"
		}
		return "0"
	case time.Time:
		return val.Format(time.RFC3339)
	default:
		return fmt.Sprintf("%v", val)
	}
}
