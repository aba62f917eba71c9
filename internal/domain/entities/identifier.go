package entities

import (
	"fmt"
	"time"
)

// Report numbers follow CVT-YYYYMMDD-HHMMSS in Brasília wall time, matching
// the format agreed with the field teams. Resolution is one second, so two
// reports created within the same second receive the same number. Known
// defect, kept until the format can be renegotiated with the supply desk.

const reportNumberLayout = "20060102-150405"

// Brasília fixed offset. The original deployment adjusted UTC by -3h with no
// DST handling; this keeps the same behavior.
var brasilia = time.FixedZone("-03", -3*60*60)

// BrasiliaNow returns the current instant in Brasília wall time.
func BrasiliaNow() time.Time {
	return time.Now().In(brasilia)
}

// NewReportNumber derives the report identifier from the creation instant.
func NewReportNumber(t time.Time) string {
	return fmt.Sprintf("CVT-%s", t.In(brasilia).Format(reportNumberLayout))
}
