package response

import (
	"time"

	"sistema_cvt/internal/domain/entities"
)

type VisitReportResponse struct {
	Number           string    `json:"numero_cvt"`
	CreatedAt        time.Time `json:"created_at"`
	Technician       string    `json:"tecnico"`
	Client           string    `json:"cliente"`
	Address          string    `json:"endereco"`
	Elevator         string    `json:"elevador"`
	ServicePerformed string    `json:"servico_realizado"`
	Notes            string    `json:"obs"`
	RequestedParts   string    `json:"pecas_requeridas"`
	Status           string    `json:"status_cvt"`
}

func FromVisitReport(r entities.VisitReport) VisitReportResponse {
	return VisitReportResponse{
		Number:           r.Number,
		CreatedAt:        r.CreatedAt,
		Technician:       r.Technician,
		Client:           r.Client,
		Address:          r.Address,
		Elevator:         r.Elevator,
		ServicePerformed: r.ServicePerformed,
		Notes:            r.Notes,
		RequestedParts:   r.RequestedParts,
		Status:           string(r.Status),
	}
}

func FromVisitReports(reports []entities.VisitReport) []VisitReportResponse {
	out := make([]VisitReportResponse, 0, len(reports))
	for _, r := range reports {
		out = append(out, FromVisitReport(r))
	}
	return out
}

type PartRequestResponse struct {
	CreatedAt       time.Time `json:"created_at"`
	Technician      string    `json:"tecnico"`
	ReportNumber    string    `json:"numero_cvt"`
	OrderID         string    `json:"ordem_id"`
	PartCode        string    `json:"peca_codigo"`
	PartDescription string    `json:"peca_descricao"`
	Quantity        int       `json:"quantidade"`
	Status          string    `json:"status"`
	Priority        string    `json:"prioridade"`
	Notes           string    `json:"observacoes"`
}

func FromPartRequest(p entities.PartRequest) PartRequestResponse {
	return PartRequestResponse{
		CreatedAt:       p.CreatedAt,
		Technician:      p.Technician,
		ReportNumber:    p.ReportNumber,
		OrderID:         p.OrderID,
		PartCode:        p.PartCode,
		PartDescription: p.PartDescription,
		Quantity:        p.Quantity,
		Status:          string(p.Status),
		Priority:        string(p.Priority),
		Notes:           p.Notes,
	}
}

func FromPartRequests(reqs []entities.PartRequest) []PartRequestResponse {
	out := make([]PartRequestResponse, 0, len(reqs))
	for _, p := range reqs {
		out = append(out, FromPartRequest(p))
	}
	return out
}

type ReportDetailResponse struct {
	Report VisitReportResponse   `json:"cvt"`
	Parts  []PartRequestResponse `json:"pecas"`
}

type StatsResponse struct {
	Total       int `json:"total"`
	Technicians int `json:"tecnicos"`
	Urgent      int `json:"urgentes"`
}
