package sheetstore

import (
	"context"
	"log"
	"time"
)

// RemoteTabular is the abstract remote spreadsheet contract: append a row to
// a named worksheet, or read every row with the first row as header.
type RemoteTabular interface {
	AppendRow(ctx context.Context, worksheet string, values []string) error
	GetAllRecords(ctx context.Context, worksheet string) ([]map[string]string, error)
}

const DefaultReadTTL = 60 * time.Second

// Store reads and appends entity rows against the remote service, degrading
// to the local CSV fallback when the remote is unavailable or a call fails.
//
// Failure policy:
//   - ReadAll never returns an error: remote failure falls back to the local
//     file, a missing local file is an empty dataset.
//   - Append tries the remote first; only on remote failure does it write the
//     local file, so a record is never persisted twice and never silently
//     lost while the local filesystem is writable.

type Store struct {
	remote   RemoteTabular
	localDir string
	cache    *TTLCache
	readTTL  time.Duration
}

// New builds a store. remote may be nil, which forces local-only mode for the
// process lifetime.
func New(remote RemoteTabular, localDir string, readTTL time.Duration) *Store {
	if readTTL <= 0 {
		readTTL = DefaultReadTTL
	}
	return &Store{
		remote:   remote,
		localDir: localDir,
		cache:    NewTTLCache(),
		readTTL:  readTTL,
	}
}

// ReadAll returns every row of the entity in storage order. Reads within the
// TTL window are served from cache; Invalidate forces the next read through.
func (s *Store) ReadAll(ctx context.Context, e Entity) []Record {
	v, err := s.cache.GetOrFetch(e.Key, s.readTTL, func() (any, error) {
		return s.fetchAll(ctx, e), nil
	})
	if err != nil {
		return nil
	}
	records, _ := v.([]Record)
	return records
}

func (s *Store) fetchAll(ctx context.Context, e Entity) []Record {
	if s.remote != nil {
		rows, err := s.remote.GetAllRecords(ctx, e.Worksheet)
		if err == nil {
			records := make([]Record, 0, len(rows))
			for _, raw := range rows {
				records = append(records, e.reconcile(raw))
			}
			return records
		}
		log.Printf("[sheetstore][read] worksheet %q failed, using local fallback err=%v", e.Worksheet, err)
	}
	return s.readLocal(e)
}

// Append writes one record, supplied as a field mapping. Missing fields are
// defaulted to empty and serialized in canonical column order. Returns
// whether the record was persisted anywhere.
func (s *Store) Append(ctx context.Context, e Entity, rec Record) bool {
	return s.AppendRow(ctx, e, e.row(rec))
}

// AppendRow is the positional variant of Append. Rows shorter than the
// canonical column count are padded with empty fields; longer rows pass
// through unchanged.
func (s *Store) AppendRow(ctx context.Context, e Entity, row []string) bool {
	row = fitRow(row, len(e.Columns))

	if s.remote != nil {
		if err := s.remote.AppendRow(ctx, e.Worksheet, row); err == nil {
			s.cache.Invalidate(e.Key)
			return true
		} else {
			log.Printf("[sheetstore][append] worksheet %q failed, using local fallback err=%v", e.Worksheet, err)
		}
	}

	if err := s.appendLocal(e, row); err != nil {
		log.Printf("[sheetstore][append] local file %q failed err=%v", e.LocalFile, err)
		return false
	}
	s.cache.Invalidate(e.Key)
	return true
}

// Invalidate drops the cached read for one entity.
func (s *Store) Invalidate(e Entity) {
	s.cache.Invalidate(e.Key)
}

// InvalidateAll drops every cached read.
func (s *Store) InvalidateAll() {
	s.cache.InvalidateAll()
}

func fitRow(row []string, n int) []string {
	if len(row) >= n {
		return row
	}
	out := make([]string, n)
	copy(out, row)
	return out
}
