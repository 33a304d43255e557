// Package repository reads contact rows from a CSV file and writes the
// enriched rows back to it.
package repository

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"skiptrace/internal/skiptrace/transport"
	"skiptrace/platform/apperr"
)

const utf8BOM = "\ufeff"

// Table is an in-memory copy of a CSV file. Column order, unrelated columns
// and row order survive a Save.
type Table struct {
	path    string
	columns Columns
	header  []string
	rows    [][]string
	index   map[string]int
}

// Open loads the CSV at path. All input columns except middle name must be
// present; missing output columns are appended with empty values.
func Open(path string, columns Columns) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, apperr.Wrap(apperr.KindNotFound, fmt.Sprintf("%s not found", path), err).WithOp("repository.open")
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	t, err := read(f, columns)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	t.path = path
	return t, nil
}

func read(r io.Reader, columns Columns) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, apperr.Validation("missing header row")
	}

	t := &Table{
		columns: columns,
		header:  records[0],
		rows:    records[1:],
	}
	if len(t.header) > 0 {
		t.header[0] = strings.TrimPrefix(t.header[0], utf8BOM)
	}
	t.reindex()

	var missing []string
	for _, name := range columns.inputs() {
		if _, ok := t.index[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, apperr.Validation(fmt.Sprintf("missing columns: %s", strings.Join(missing, ", ")))
	}

	for _, name := range columns.outputs() {
		if _, ok := t.index[name]; !ok {
			t.header = append(t.header, name)
		}
	}
	t.reindex()

	width := len(t.header)
	for i, row := range t.rows {
		if len(row) < width {
			t.rows[i] = append(row, make([]string, width-len(row))...)
		}
	}

	return t, nil
}

func (t *Table) reindex() {
	t.index = make(map[string]int, len(t.header))
	for i, name := range t.header {
		if _, dup := t.index[name]; !dup {
			t.index[name] = i
		}
	}
}

// Path returns the file the table was loaded from.
func (t *Table) Path() string {
	return t.path
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Header returns a copy of the header row.
func (t *Table) Header() []string {
	return append([]string(nil), t.header...)
}

// Contact extracts the contact stored in row i.
func (t *Table) Contact(i int) transport.Contact {
	return transport.Contact{
		FirstName:  t.cell(i, t.columns.FirstName),
		MiddleName: t.cell(i, t.columns.MiddleName),
		LastName:   t.cell(i, t.columns.LastName),
		Address:    t.cell(i, t.columns.Address),
		City:       t.cell(i, t.columns.City),
		State:      t.cell(i, t.columns.State),
		Zip:        t.cell(i, t.columns.Zip),
	}
}

// Result reads back the output columns of row i.
func (t *Table) Result(i int) transport.ContactResult {
	return transport.ContactResult{
		MobilePhone: t.cell(i, t.columns.MobilePhone),
		Landline:    t.cell(i, t.columns.Landline),
		Email:       t.cell(i, t.columns.Email),
	}
}

// Apply writes a lookup result into the output columns of row i.
func (t *Table) Apply(i int, result transport.ContactResult) {
	t.set(i, t.columns.MobilePhone, result.MobilePhone)
	t.set(i, t.columns.Landline, result.Landline)
	t.set(i, t.columns.Email, result.Email)
}

// Save rewrites the source file. The new content is written to a temporary
// file in the same directory and renamed over the source file.
func (t *Table) Save() error {
	dir := filepath.Dir(t.path)
	tmp, err := os.CreateTemp(dir, ".skiptrace-*.csv")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if info, err := os.Stat(t.path); err == nil {
		_ = tmp.Chmod(info.Mode().Perm())
	}

	w := csv.NewWriter(tmp)
	if err := w.Write(t.header); err != nil {
		tmp.Close()
		return fmt.Errorf("write header: %w", err)
	}
	if err := w.WriteAll(t.rows); err != nil {
		tmp.Close()
		return fmt.Errorf("write rows: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpName, t.path); err != nil {
		return fmt.Errorf("replace %s: %w", t.path, err)
	}
	return nil
}

func (t *Table) cell(i int, column string) string {
	col, ok := t.index[column]
	if !ok || i < 0 || i >= len(t.rows) || col >= len(t.rows[i]) {
		return ""
	}
	return t.rows[i][col]
}

func (t *Table) set(i int, column, value string) {
	col, ok := t.index[column]
	if !ok || i < 0 || i >= len(t.rows) {
		return
	}
	t.rows[i][col] = value
}

// Reload reads the file again with the same column mapping.
func (t *Table) Reload() (*Table, error) {
	return Open(t.path, t.columns)
}
