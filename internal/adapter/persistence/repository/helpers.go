package repository

import (
	"errors"
	"strconv"
	"time"
)

// ErrAppendFailed signals that a row could not be persisted on the remote
// service nor on the local fallback file.
var ErrAppendFailed = errors.New("append failed on remote and local fallback")

// Timestamps are written as RFC 3339; older rows may carry a bare local
// timestamp without offset, so parsing is lenient.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}

func parseTimestamp(v string) time.Time {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t
		}
	}
	return time.Time{}
}

func parseQuantity(v string) int {
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 1
	}
	return n
}
