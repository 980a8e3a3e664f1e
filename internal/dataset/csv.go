package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

var (
	errNegativePayload = errors.New("payload mass must be non-negative")
	errInvalidClass    = errors.New("class must be 0 or 1")
	errNotFinite       = errors.New("value must be a finite number")
)

// columnIndex maps header names to cell positions.
type columnIndex map[string]int

// newColumnIndex indexes a header row and checks the required columns.
func newColumnIndex(header []string) (columnIndex, error) {
	idx := make(columnIndex, len(header))
	for i, name := range header {
		name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
		if _, dup := idx[name]; !dup {
			idx[name] = i
		}
	}
	for _, col := range RequiredColumns {
		if _, ok := idx[col]; !ok {
			return nil, missingColumn(col)
		}
	}
	return idx, nil
}

func (c columnIndex) cell(cells []string, name string) (string, bool) {
	i, ok := c[name]
	if !ok || i >= len(cells) {
		return "", false
	}
	return strings.TrimSpace(cells[i]), true
}

// decode converts one row of cells into a LaunchRecord.
func (c columnIndex) decode(line int, cells []string) (LaunchRecord, error) {
	var rec LaunchRecord

	rec.Site, _ = c.cell(cells, ColumnLaunchSite)
	rec.BoosterCategory, _ = c.cell(cells, ColumnBoosterCategory)
	rec.BoosterVersion, _ = c.cell(cells, ColumnBoosterVersion)

	raw, _ := c.cell(cells, ColumnPayloadMass)
	payload, err := parseFinite(raw)
	if err != nil {
		return rec, &RowError{Line: line, Column: ColumnPayloadMass, Value: raw, Err: err}
	}
	if payload < 0 {
		return rec, &RowError{Line: line, Column: ColumnPayloadMass, Value: raw, Err: errNegativePayload}
	}
	rec.PayloadMassKg = payload

	raw, _ = c.cell(cells, ColumnClass)
	class, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return rec, &RowError{Line: line, Column: ColumnClass, Value: raw, Err: err}
	}
	if class != ClassFailure && class != ClassSuccess {
		return rec, &RowError{Line: line, Column: ColumnClass, Value: raw, Err: errInvalidClass}
	}
	rec.Class = int(class)

	if raw, ok := c.cell(cells, ColumnFlightNumber); ok && raw != "" {
		n, err := parseFinite(raw)
		if err != nil {
			return rec, &RowError{Line: line, Column: ColumnFlightNumber, Value: raw, Err: err}
		}
		rec.FlightNumber = int(n)
	}

	return rec, nil
}

// ParseCSV decodes launch records from CSV with a header row. Columns are
// located by name; unknown columns are ignored.
func ParseCSV(r io.Reader) ([]LaunchRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmpty
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	idx, err := newColumnIndex(header)
	if err != nil {
		return nil, err
	}

	var records []LaunchRecord
	for {
		cells, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv: %w", err)
		}

		line, _ := reader.FieldPos(0)
		rec, err := idx.decode(line, cells)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, ErrEmpty
	}
	return records, nil
}

// parseFinite parses a float and rejects NaN and infinities, which
// strconv.ParseFloat accepts.
func parseFinite(raw string) (float64, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNotFinite
	}
	return v, nil
}
