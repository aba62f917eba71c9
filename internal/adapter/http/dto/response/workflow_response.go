package response

import "sistema_cvt/internal/usecase"

type ExtraFieldResponse struct {
	Name  string `json:"nome"`
	Value string `json:"valor"`
}

type PartEntryResponse struct {
	Index       int                  `json:"indice"`
	Code        string               `json:"codigo"`
	Description string               `json:"descricao"`
	Quantity    int                  `json:"quantidade"`
	Priority    string               `json:"prioridade"`
	Notes       string               `json:"observacoes"`
	ExtraFields []ExtraFieldResponse `json:"campos_extras,omitempty"`
}

// WorkflowResponse is the full composition state returned after every
// transition, so the client never tracks state on its own.
type WorkflowResponse struct {
	State       string               `json:"estado"`
	Draft       usecase.ReportDraft  `json:"rascunho"`
	Parts       []PartEntryResponse  `json:"pecas"`
	SavedNumber string               `json:"numero_salvo,omitempty"`
}

func FromWorkflow(wctx usecase.WorkflowContext) WorkflowResponse {
	parts := make([]PartEntryResponse, 0, len(wctx.Parts))
	for i, p := range wctx.Parts {
		parts = append(parts, FromPartEntry(i, p))
	}
	return WorkflowResponse{
		State:       string(wctx.State),
		Draft:       wctx.Draft,
		Parts:       parts,
		SavedNumber: wctx.SavedNumber,
	}
}

func FromPartEntry(index int, p usecase.PartEntry) PartEntryResponse {
	resp := PartEntryResponse{
		Index:       index,
		Code:        p.Code,
		Description: p.Description,
		Quantity:    p.Quantity,
		Priority:    string(p.Priority),
		Notes:       p.Notes,
	}
	for _, f := range p.ExtraFields {
		resp.ExtraFields = append(resp.ExtraFields, ExtraFieldResponse{Name: f.Name, Value: f.Value})
	}
	return resp
}

type PartEntryEditResponse struct {
	Workflow WorkflowResponse  `json:"workflow"`
	Entry    PartEntryResponse `json:"peca"`
}

type CommitFailureResponse struct {
	Index int               `json:"indice"`
	Entry PartEntryResponse `json:"peca"`
	Error string            `json:"erro"`
}

// CommitResponse reports a commit outcome. Failed entries stay in the
// workflow buffer for retry.
type CommitResponse struct {
	Report   VisitReportResponse     `json:"cvt"`
	Saved    []PartRequestResponse   `json:"pecas_salvas"`
	Failed   []CommitFailureResponse `json:"pecas_com_falha,omitempty"`
	Workflow WorkflowResponse        `json:"workflow"`
}

func FromCommitResult(res usecase.CommitResult, wctx usecase.WorkflowContext) CommitResponse {
	resp := CommitResponse{
		Report:   FromVisitReport(res.Report),
		Saved:    FromPartRequests(res.Saved),
		Workflow: FromWorkflow(wctx),
	}
	for _, f := range res.Failed {
		resp.Failed = append(resp.Failed, CommitFailureResponse{
			Index: f.Index,
			Entry: FromPartEntry(f.Index, f.Entry),
			Error: f.Err.Error(),
		})
	}
	return resp
}
