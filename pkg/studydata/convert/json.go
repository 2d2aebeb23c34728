// Package convert transforms datasets to and from the flat JSON document the
// study-app frontend consumes.
package convert

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/studyhub-app/studydata-go/pkg/studydata/models"
	"github.com/studyhub-app/studydata-go/pkg/studydata/schema"
)

// ToJSON serializes the dataset as one JSON object keyed by table name, in
// the dataset's table order. Rows whose cells are all empty are dropped.
// Empty or missing cells serialize as "" so every row in a table carries the
// same field set. Column keys are normalized; an empty header becomes a
// positional col_<index> placeholder.
func ToJSON(ds *models.Dataset, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for ti, name := range ds.Names() {
		if ti > 0 {
			buf.WriteByte(',')
		}
		if err := writeString(&buf, name); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeTable(&buf, ds.Sheet(name)); err != nil {
			return nil, fmt.Errorf("table %s: %w", name, err)
		}
	}

	buf.WriteByte('}')

	if !pretty {
		return buf.Bytes(), nil
	}
	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "  "); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func writeTable(buf *bytes.Buffer, sheet *models.Sheet) error {
	cols := make([]string, len(sheet.Columns))
	for i, col := range sheet.Columns {
		if col == "" {
			cols[i] = "col_" + strconv.Itoa(i)
		} else {
			cols[i] = schema.Normalize(col)
		}
	}

	buf.WriteByte('[')
	first := true
	for _, row := range sheet.Rows {
		if row.Empty() {
			continue
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false

		buf.WriteByte('{')
		for i, col := range cols {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeString(buf, col); err != nil {
				return err
			}
			buf.WriteByte(':')
			v := row[sheet.Columns[i]]
			if v == nil {
				v = ""
			}
			cell, err := json.Marshal(v)
			if err != nil {
				return err
			}
			buf.Write(cell)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte(']')
	return nil
}

func writeString(buf *bytes.Buffer, s string) error {
	b, err := json.Marshal(s)
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}

// FromJSON rebuilds a dataset from an exported document. Table order and the
// column order of each table follow the document. Numeric cells become int64
// when integral, float64 otherwise; null cells become "".
func FromJSON(data []byte) (*models.Dataset, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	if err := expectDelim(dec, '{'); err != nil {
		return nil, fmt.Errorf("document root: %w", err)
	}

	ds := models.NewDataset()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		name, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("expected table name, got %v", tok)
		}
		cols, rows, err := decodeTable(dec)
		if err != nil {
			return nil, fmt.Errorf("table %s: %w", name, err)
		}
		ds.Set(name, cols, rows)
	}

	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	return ds, nil
}

func decodeTable(dec *json.Decoder) ([]string, []models.Row, error) {
	if err := expectDelim(dec, '['); err != nil {
		return nil, nil, err
	}

	var cols []string
	seen := make(map[string]bool)
	var rows []models.Row

	for dec.More() {
		if err := expectDelim(dec, '{'); err != nil {
			return nil, nil, fmt.Errorf("row %d: %w", len(rows)+1, err)
		}
		row := make(models.Row)
		for dec.More() {
			tok, err := dec.Token()
			if err != nil {
				return nil, nil, err
			}
			key, ok := tok.(string)
			if !ok {
				return nil, nil, fmt.Errorf("expected field name, got %v", tok)
			}
			val, err := dec.Token()
			if err != nil {
				return nil, nil, err
			}
			cell, err := scalarValue(val)
			if err != nil {
				return nil, nil, fmt.Errorf("field %s: %w", key, err)
			}
			if !seen[key] {
				seen[key] = true
				cols = append(cols, key)
			}
			row[key] = cell
		}
		if _, err := dec.Token(); err != nil { // closing }
			return nil, nil, err
		}
		rows = append(rows, row)
	}

	if _, err := dec.Token(); err != nil { // closing ]
		return nil, nil, err
	}
	return cols, rows, nil
}

func scalarValue(tok json.Token) (any, error) {
	switch v := tok.(type) {
	case string:
		return v, nil
	case json.Number:
		if i, err := strconv.ParseInt(v.String(), 10, 64); err == nil {
			return i, nil
		}
		f, err := v.Float64()
		if err != nil {
			return nil, err
		}
		return f, nil
	case bool:
		return v, nil
	case nil:
		return "", nil
	default:
		return nil, errors.New("nested values are not supported in table cells")
	}
}

func expectDelim(dec *json.Decoder, want json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != want {
		return fmt.Errorf("expected %q, got %v", want.String(), tok)
	}
	return nil
}
