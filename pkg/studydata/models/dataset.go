// Package models defines the in-memory dataset and patch document types.
package models

import (
	"fmt"

	"github.com/tiendc/go-deepcopy"
)

// Row is a single record keyed by normalized column name. Cell values are
// string, int64, or float64; an empty cell is the empty string.
type Row map[string]any

// String returns the cell value rendered as a string. Missing or nil cells
// render as "".
func (r Row) String(col string) string {
	v, ok := r[col]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}

// Empty reports whether every cell in the row is empty.
func (r Row) Empty() bool {
	for _, v := range r {
		if v != nil && v != "" {
			return false
		}
	}
	return true
}

// Sheet is one named table: an ordered column list plus data rows. Columns
// are normalized header names; every row key is expected to appear in
// Columns.
type Sheet struct {
	Columns []string
	Rows    []Row
}

// Dataset holds the workbook's tables in a stable order: registry order when
// built from scratch, source order when loaded from a file or document.
type Dataset struct {
	names  []string
	sheets map[string]*Sheet
}

// NewDataset returns an empty dataset.
func NewDataset() *Dataset {
	return &Dataset{sheets: make(map[string]*Sheet)}
}

// Names returns the table names in insertion order.
func (d *Dataset) Names() []string {
	out := make([]string, len(d.names))
	copy(out, d.names)
	return out
}

// Has reports whether a table with the given name exists.
func (d *Dataset) Has(name string) bool {
	_, ok := d.sheets[name]
	return ok
}

// Sheet returns the named table, or nil if it does not exist.
func (d *Dataset) Sheet(name string) *Sheet {
	return d.sheets[name]
}

// Rows returns the named table's rows, or nil if the table is absent.
func (d *Dataset) Rows(name string) []Row {
	if s := d.sheets[name]; s != nil {
		return s.Rows
	}
	return nil
}

// Set stores a table. The first Set for a name fixes its position in the
// table order; later calls replace the contents in place.
func (d *Dataset) Set(name string, columns []string, rows []Row) {
	if _, ok := d.sheets[name]; !ok {
		d.names = append(d.names, name)
	}
	d.sheets[name] = &Sheet{Columns: columns, Rows: rows}
}

// Clone returns a deep copy of the dataset. Mutating the clone never affects
// the original.
func (d *Dataset) Clone() (*Dataset, error) {
	out := NewDataset()
	for _, name := range d.names {
		src := d.sheets[name]
		var cols []string
		var rows []Row
		if err := deepcopy.Copy(&cols, src.Columns); err != nil {
			return nil, fmt.Errorf("clone %s columns: %w", name, err)
		}
		if err := deepcopy.Copy(&rows, src.Rows); err != nil {
			return nil, fmt.Errorf("clone %s rows: %w", name, err)
		}
		out.Set(name, cols, rows)
	}
	return out, nil
}
