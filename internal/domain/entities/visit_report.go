package entities

import "time"

// ReportStatus is the status tag written on a visit report row.
//
// Reports are append-only: a saved report is never updated, so SALVO is the
// only status this service writes. The type exists because reference data
// maintained outside this service may carry other tags.

type ReportStatus string

const ReportStatusSalvo ReportStatus = "SALVO"

// VisitReport is the primary record of one field-service visit (CVT).
//
// Storage model (CVT worksheet / cvt_local.csv):
//   - one row per report, header-keyed columns in ReportColumns order
//   - Number is the generated CVT identifier and is unique per report
//
// RequestedParts is a denormalized summary ("COD(qty), COD(qty)") of the part
// requests written in the same commit. It is built once, at commit time, and
// never recomputed from storage.

type VisitReport struct {
	Number           string       `json:"numero_cvt"`
	CreatedAt        time.Time    `json:"created_at"`
	Technician       string       `json:"tecnico"`
	Client           string       `json:"cliente"`
	Address          string       `json:"endereco"`
	Elevator         string       `json:"elevador"`
	ServicePerformed string       `json:"servico_realizado"`
	Notes            string       `json:"obs"`
	RequestedParts   string       `json:"pecas_requeridas"`
	Status           ReportStatus `json:"status_cvt"`

	// Extra holds columns present in storage that are not part of the
	// canonical schema. They are preserved on read, never dropped.
	Extra map[string]string `json:"extra,omitempty"`
}
