package sheetstore

import "strings"

// Entity describes one logical tabular dataset: its remote worksheet, its
// local fallback file and the canonical column order used on both paths.

type Entity struct {
	// Key identifies the entity in cache keys and log lines.
	Key string
	// Worksheet is the tab name in the remote workbook.
	Worksheet string
	// LocalFile is the fallback CSV file name, resolved against the store's
	// local directory.
	LocalFile string
	// Columns is the canonical column order.
	Columns []string
}

// Record is one row keyed by lowercase column name. Columns outside the
// entity's canonical schema are kept under their own keys.
type Record map[string]string

// reconcile normalizes a raw header-keyed row against the entity schema:
// keys are lowercased, missing canonical columns are backfilled with the
// empty string and unexpected columns are preserved.
func (e Entity) reconcile(raw map[string]string) Record {
	rec := make(Record, len(e.Columns))
	for k, v := range raw {
		rec[strings.ToLower(strings.TrimSpace(k))] = v
	}
	for _, col := range e.Columns {
		if _, ok := rec[col]; !ok {
			rec[col] = ""
		}
	}
	return rec
}

// row serializes a record into the canonical column order. Missing fields
// default to empty; extra keys do not travel on the write path.
func (e Entity) row(rec Record) []string {
	row := make([]string, len(e.Columns))
	for i, col := range e.Columns {
		row[i] = rec[col]
	}
	return row
}
