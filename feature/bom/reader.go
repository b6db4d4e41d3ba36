package bom

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Row is one component group of the BOM.
type Row struct {
	Line                  int      `json:"line"`
	GroupID               string   `json:"group_id"`
	Description           string   `json:"description"`
	Part                  string   `json:"part"`
	ComponentIDs          []string `json:"component_ids"`
	Value                 string   `json:"value"`
	Footprint             string   `json:"footprint"`
	Quantity              int      `json:"quantity"`
	Manufacturer          string   `json:"manufacturer"`
	MPN                   string   `json:"mpn"`
	DistributorPartNumber string   `json:"distributor_part_number"`
}

// ErrLayout is matched by every *LayoutError.
var ErrLayout = errors.New("bom layout error")

// LayoutError reports a line that does not fit the configured column layout.
type LayoutError struct {
	Line   int
	Fields int
	Want   int
}

// Error implements the error interface
func (e *LayoutError) Error() string {
	return fmt.Sprintf("line %d has %d fields, layout needs at least %d; check the separator and column configuration",
		e.Line, e.Fields, e.Want)
}

// Is implements errors.Is support
func (e *LayoutError) Is(target error) bool {
	return target == ErrLayout
}

// Reader reads rows from a BOM file.
type Reader struct {
	cfg     Config
	scanner *bufio.Scanner
	line    int
	done    bool
}

// NewReader creates a reader with the given layout.
func NewReader(r io.Reader, cfg Config) *Reader {
	if cfg.Separator == "" {
		cfg.Separator = "|"
	}
	return &Reader{
		cfg:     cfg,
		scanner: bufio.NewScanner(r),
	}
}

// Next returns the next row, or io.EOF once the input or the first blank line is reached.
func (r *Reader) Next() (Row, error) {
	if r.done {
		return Row{}, io.EOF
	}

	if r.line == 0 && r.cfg.SkipHeader {
		if !r.scan() {
			return Row{}, r.finish()
		}
	}

	if !r.scan() {
		return Row{}, r.finish()
	}

	text := strings.TrimSpace(r.scanner.Text())
	if text == "" {
		r.done = true
		return Row{}, io.EOF
	}

	fields := strings.Split(text, r.cfg.Separator)
	if want := r.cfg.requiredColumns(); len(fields) < want {
		r.done = true
		return Row{}, &LayoutError{Line: r.line, Fields: len(fields), Want: want}
	}

	field := func(idx int) string {
		if idx < 0 || idx >= len(fields) {
			return ""
		}
		return strings.TrimSpace(fields[idx])
	}

	qty, _ := strconv.Atoi(field(r.cfg.ColumnQuantity))

	return Row{
		Line:                  r.line,
		GroupID:               field(r.cfg.ColumnRow),
		Description:           field(r.cfg.ColumnDescription),
		Part:                  field(r.cfg.ColumnPart),
		ComponentIDs:          splitIDs(field(r.cfg.ColumnIDs)),
		Value:                 field(r.cfg.ColumnValue),
		Footprint:             field(r.cfg.ColumnFootprint),
		Quantity:              qty,
		Manufacturer:          field(r.cfg.ColumnManufacturer),
		MPN:                   field(r.cfg.ColumnMPN),
		DistributorPartNumber: field(r.cfg.ColumnDistributorPN),
	}, nil
}

// ReadAll reads every remaining row.
func (r *Reader) ReadAll() ([]Row, error) {
	var rows []Row
	for {
		row, err := r.Next()
		if errors.Is(err, io.EOF) {
			return rows, nil
		}
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
}

func (r *Reader) scan() bool {
	if !r.scanner.Scan() {
		return false
	}
	r.line++
	return true
}

func (r *Reader) finish() error {
	r.done = true
	if err := r.scanner.Err(); err != nil {
		return fmt.Errorf("failed to read BOM: %w", err)
	}
	return io.EOF
}

func splitIDs(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
}
