package entities

import "time"

// RequestStatus is the processing status of a part request. This service only
// writes PENDENTE; later stages of the supply flow are maintained elsewhere.

type RequestStatus string

const RequestStatusPendente RequestStatus = "PENDENTE"

type Priority string

const (
	PriorityNormal  Priority = "NORMAL"
	PriorityUrgente Priority = "URGENTE"
)

// PartRequest is one requested catalog part, linked to a visit report by
// ReportNumber. The link is a soft reference: storage does not enforce it.
//
// Storage model (REQUISICOES worksheet / requisicoes_local.csv):
//   - one row per request, header-keyed columns in PartRequestColumns order

type PartRequest struct {
	CreatedAt       time.Time     `json:"created_at"`
	Technician      string        `json:"tecnico"`
	ReportNumber    string        `json:"numero_cvt"`
	OrderID         string        `json:"ordem_id"`
	PartCode        string        `json:"peca_codigo"`
	PartDescription string        `json:"peca_descricao"`
	Quantity        int           `json:"quantidade"`
	Status          RequestStatus `json:"status"`
	Priority        Priority      `json:"prioridade"`
	Notes           string        `json:"observacoes"`

	Extra map[string]string `json:"extra,omitempty"`
}
