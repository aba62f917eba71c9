package request

import (
	"strings"

	"sistema_cvt/internal/domain/entities"
	"sistema_cvt/internal/usecase"
)

// DraftRequest carries the report fields being composed. All fields are
// optional at update time; completeness is validated on commit.
type DraftRequest struct {
	Client           string `json:"cliente"`
	Address          string `json:"endereco"`
	Elevator         string `json:"elevador"`
	ServicePerformed string `json:"servico_realizado"`
	Notes            string `json:"obs"`
}

// ToDraft builds the workflow draft. The technician always comes from the
// session, never from the payload.
func (r DraftRequest) ToDraft(technician string) usecase.ReportDraft {
	return usecase.ReportDraft{
		Technician:       technician,
		Client:           strings.TrimSpace(r.Client),
		Address:          strings.TrimSpace(r.Address),
		Elevator:         strings.TrimSpace(r.Elevator),
		ServicePerformed: strings.TrimSpace(r.ServicePerformed),
		Notes:            strings.TrimSpace(r.Notes),
	}
}

type ExtraFieldRequest struct {
	Name  string `json:"nome" binding:"required"`
	Value string `json:"valor"`
}

// PartEntryRequest is one part added to the buffer. Code may be a catalog
// code or a free-form manual code; description is filled from the catalog
// when left empty.
type PartEntryRequest struct {
	Code        string              `json:"codigo" binding:"required"`
	Description string              `json:"descricao"`
	Quantity    int                 `json:"quantidade" binding:"required"`
	Priority    string              `json:"prioridade"`
	Notes       string              `json:"observacoes"`
	ExtraFields []ExtraFieldRequest `json:"campos_extras"`
}

func (r PartEntryRequest) ToEntry() usecase.PartEntry {
	entry := usecase.PartEntry{
		Code:        strings.TrimSpace(r.Code),
		Description: strings.TrimSpace(r.Description),
		Quantity:    r.Quantity,
		Priority:    entities.Priority(strings.TrimSpace(r.Priority)),
		Notes:       strings.TrimSpace(r.Notes),
	}
	if entry.Priority == "" {
		entry.Priority = entities.PriorityNormal
	}
	for _, f := range r.ExtraFields {
		entry.ExtraFields = append(entry.ExtraFields, usecase.FieldValue{
			Name:  strings.TrimSpace(f.Name),
			Value: strings.TrimSpace(f.Value),
		})
	}
	return entry
}
