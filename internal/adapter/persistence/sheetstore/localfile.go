package sheetstore

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"sort"
)

// Local fallback files are plain CSV with a header row matching the entity's
// canonical columns. Appending is read-modify-write: the whole file is parsed,
// the new row concatenated and everything rewritten. That is not safe under
// concurrent writers; local mode is a single-writer deployment.

func (s *Store) localPath(e Entity) string {
	return filepath.Join(s.localDir, e.LocalFile)
}

// readLocal loads the fallback file. A missing or unparseable file is an
// empty dataset, never an error surfaced to callers.
func (s *Store) readLocal(e Entity) []Record {
	f, err := os.Open(s.localPath(e))
	if err != nil {
		return nil
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil || len(rows) == 0 {
		return nil
	}

	header := rows[0]
	records := make([]Record, 0, len(rows)-1)
	for _, row := range rows[1:] {
		raw := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(row) {
				raw[col] = row[i]
			}
		}
		records = append(records, e.reconcile(raw))
	}
	return records
}

// appendLocal rewrites the fallback file with the existing rows plus the new
// one. The header is the canonical columns followed by any extra columns
// already persisted in the file, so columns outside the canonical schema
// survive the rewrite.
func (s *Store) appendLocal(e Entity, row []string) error {
	existing := s.readLocal(e)
	header := localHeader(e, existing)

	f, err := os.Create(s.localPath(e))
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, rec := range existing {
		out := make([]string, len(header))
		for i, col := range header {
			out[i] = rec[col]
		}
		if err := w.Write(out); err != nil {
			return err
		}
	}
	if err := w.Write(fitRow(row, len(header))); err != nil {
		return err
	}
	w.Flush()
	return w.Error()
}

// localHeader is the canonical column order plus every non-canonical column
// present in the existing records, the extras sorted for a stable layout.
func localHeader(e Entity, records []Record) []string {
	canonical := make(map[string]bool, len(e.Columns))
	for _, col := range e.Columns {
		canonical[col] = true
	}

	seen := map[string]bool{}
	var extras []string
	for _, rec := range records {
		for k := range rec {
			if !canonical[k] && !seen[k] {
				seen[k] = true
				extras = append(extras, k)
			}
		}
	}
	sort.Strings(extras)

	header := make([]string, 0, len(e.Columns)+len(extras))
	header = append(header, e.Columns...)
	return append(header, extras...)
}
