package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"sistema_cvt/internal/domain/entities"
	"sistema_cvt/internal/usecase/interfaces"
)

var (
	ErrNotEditing         = errors.New("workflow is not in editing state")
	ErrNotPartsPending    = errors.New("workflow is not in parts-pending state")
	ErrMissingClient      = errors.New("client is required")
	ErrMissingDraftFields = errors.New("mandatory report fields missing")
	ErrEmptyPartsBuffer   = errors.New("parts buffer is empty")
	ErrInvalidPartEntry   = errors.New("invalid part entry")
	ErrInvalidPartIndex   = errors.New("invalid part index")
	ErrUnknownExtraField  = errors.New("extra field not declared for part")
)

// WorkflowState tags one step of the report-composition session.
//
// EDITANDO -> SALVO_SEM_PECAS              (direct commit)
// EDITANDO -> PECAS_PENDENTES -> SALVO_COM_PECAS
//
// The saved states are terminal; updating the draft from one of them starts a
// fresh session.

type WorkflowState string

const (
	StateEditing        WorkflowState = "EDITANDO"
	StatePartsPending   WorkflowState = "PECAS_PENDENTES"
	StateSavedNoParts   WorkflowState = "SALVO_SEM_PECAS"
	StateSavedWithParts WorkflowState = "SALVO_COM_PECAS"
)

// ReportDraft carries the visit report fields while the technician is still
// composing.
type ReportDraft struct {
	Technician       string `json:"tecnico"`
	Client           string `json:"cliente"`
	Address          string `json:"endereco"`
	Elevator         string `json:"elevador"`
	ServicePerformed string `json:"servico_realizado"`
	Notes            string `json:"obs"`
}

// FieldValue is one captured extra field of a part entry, in declaration
// order.
type FieldValue struct {
	Name  string `json:"nome"`
	Value string `json:"valor"`
}

// PartEntry is one row of the parts buffer, validated on AddPart.
type PartEntry struct {
	Code        string            `json:"codigo"`
	Description string            `json:"descricao"`
	ExtraFields []FieldValue      `json:"campos_extras,omitempty"`
	Quantity    int               `json:"quantidade"`
	Priority    entities.Priority `json:"prioridade"`
	Notes       string            `json:"observacoes"`
}

// WorkflowContext is the full session state of one report composition. It is
// a value: every transition returns a new context and the caller persists it
// in the per-user session store. SavedNumber and SavedSummary are set once
// the VisitReport row is appended, so a retry of failed part rows never
// re-appends the report and always echoes the persisted parts summary.
type WorkflowContext struct {
	State        WorkflowState `json:"state"`
	Draft        ReportDraft   `json:"draft"`
	Parts        []PartEntry   `json:"parts"`
	SavedNumber  string        `json:"saved_number,omitempty"`
	SavedSummary string        `json:"saved_summary,omitempty"`
}

// PartCommitFailure reports one buffer entry whose PartRequest row could not
// be persisted. Index refers to the buffer position at commit time.
type PartCommitFailure struct {
	Index int
	Entry PartEntry
	Err   error
}

// CommitResult is the outcome of a commit-with-parts. Failed entries remain
// in the returned context's buffer for manual retry; the already-appended
// VisitReport is never rolled back, so its parts summary may list parts whose
// own rows are still missing.
type CommitResult struct {
	Report entities.VisitReport
	Saved  []entities.PartRequest
	Failed []PartCommitFailure
}

type IReportWorkflowUseCase interface {
	NewContext() WorkflowContext
	UpdateDraft(wctx WorkflowContext, draft ReportDraft) (WorkflowContext, error)
	RequestParts(wctx WorkflowContext) (WorkflowContext, error)
	AddPart(ctx context.Context, wctx WorkflowContext, entry PartEntry) (WorkflowContext, error)
	EditPart(wctx WorkflowContext, index int) (WorkflowContext, PartEntry, error)
	RemovePart(wctx WorkflowContext, index int) (WorkflowContext, error)
	Back(wctx WorkflowContext) (WorkflowContext, error)
	Cancel(wctx WorkflowContext) (WorkflowContext, error)
	CommitWithoutParts(ctx context.Context, wctx WorkflowContext) (entities.VisitReport, WorkflowContext, error)
	CommitWithParts(ctx context.Context, wctx WorkflowContext) (CommitResult, WorkflowContext, error)
}

type ReportWorkflowUseCase struct {
	reports  interfaces.IVisitReportRepository
	requests interfaces.IPartRequestRepository
	catalog  interfaces.IPartRepository
	now      func() time.Time
}

var _ IReportWorkflowUseCase = (*ReportWorkflowUseCase)(nil)

func NewReportWorkflowUseCase(
	reports interfaces.IVisitReportRepository,
	requests interfaces.IPartRequestRepository,
	catalog interfaces.IPartRepository,
) *ReportWorkflowUseCase {
	return &ReportWorkflowUseCase{
		reports:  reports,
		requests: requests,
		catalog:  catalog,
		now:      entities.BrasiliaNow,
	}
}

func (u *ReportWorkflowUseCase) NewContext() WorkflowContext {
	return WorkflowContext{State: StateEditing}
}

// UpdateDraft replaces the draft fields. From a saved state it starts a fresh
// session with the new draft.
func (u *ReportWorkflowUseCase) UpdateDraft(wctx WorkflowContext, draft ReportDraft) (WorkflowContext, error) {
	switch wctx.State {
	case StateEditing:
		wctx.Draft = draft
		return wctx, nil
	case StateSavedNoParts, StateSavedWithParts:
		next := u.NewContext()
		next.Draft = draft
		return next, nil
	default:
		return wctx, ErrNotEditing
	}
}

// RequestParts enters the parts-attachment sub-flow. A buffer kept from an
// earlier Back transition is retained.
func (u *ReportWorkflowUseCase) RequestParts(wctx WorkflowContext) (WorkflowContext, error) {
	if wctx.State != StateEditing {
		return wctx, ErrNotEditing
	}
	if strings.TrimSpace(wctx.Draft.Client) == "" {
		return wctx, ErrMissingClient
	}
	wctx.State = StatePartsPending
	return wctx, nil
}

// AddPart validates and appends one entry to the buffer. When the code
// resolves in the catalog, the description is filled from it and captured
// extra fields must match the part's declared field names. Codes outside the
// catalog stay allowed for manual entries.
func (u *ReportWorkflowUseCase) AddPart(ctx context.Context, wctx WorkflowContext, entry PartEntry) (WorkflowContext, error) {
	if wctx.State != StatePartsPending {
		return wctx, ErrNotPartsPending
	}

	entry.Code = strings.TrimSpace(entry.Code)
	if entry.Code == "" || entry.Quantity < 1 {
		return wctx, ErrInvalidPartEntry
	}
	switch entry.Priority {
	case "":
		entry.Priority = entities.PriorityNormal
	case entities.PriorityNormal, entities.PriorityUrgente:
	default:
		return wctx, ErrInvalidPartEntry
	}

	part, err := u.catalog.GetByCode(ctx, entry.Code)
	if err != nil {
		return wctx, err
	}
	if part.Code != "" {
		if entry.Description == "" {
			entry.Description = part.Description
		}
		declared := map[string]bool{}
		for _, name := range part.ExtraFieldNames() {
			declared[name] = true
		}
		for _, fv := range entry.ExtraFields {
			if !declared[fv.Name] {
				return wctx, fmt.Errorf("%w: %s", ErrUnknownExtraField, fv.Name)
			}
		}
	} else if entry.Description == "" {
		entry.Description = entry.Code
	}

	wctx.Parts = append(append([]PartEntry{}, wctx.Parts...), entry)
	return wctx, nil
}

// EditPart removes the entry at index and returns its values so the caller
// can pre-populate the entry form. There is no in-place mutation; editing is
// remove then re-add.
func (u *ReportWorkflowUseCase) EditPart(wctx WorkflowContext, index int) (WorkflowContext, PartEntry, error) {
	if wctx.State != StatePartsPending {
		return wctx, PartEntry{}, ErrNotPartsPending
	}
	if index < 0 || index >= len(wctx.Parts) {
		return wctx, PartEntry{}, ErrInvalidPartIndex
	}
	entry := wctx.Parts[index]
	next, err := u.RemovePart(wctx, index)
	return next, entry, err
}

func (u *ReportWorkflowUseCase) RemovePart(wctx WorkflowContext, index int) (WorkflowContext, error) {
	if wctx.State != StatePartsPending {
		return wctx, ErrNotPartsPending
	}
	if index < 0 || index >= len(wctx.Parts) {
		return wctx, ErrInvalidPartIndex
	}
	parts := make([]PartEntry, 0, len(wctx.Parts)-1)
	parts = append(parts, wctx.Parts[:index]...)
	parts = append(parts, wctx.Parts[index+1:]...)
	wctx.Parts = parts
	return wctx, nil
}

// Back returns to editing keeping the buffer, so re-entering the parts flow
// does not lose entries. No storage side effects.
func (u *ReportWorkflowUseCase) Back(wctx WorkflowContext) (WorkflowContext, error) {
	if wctx.State != StatePartsPending {
		return wctx, ErrNotPartsPending
	}
	wctx.State = StateEditing
	return wctx, nil
}

// Cancel returns to editing and discards the buffer. No storage side effects.
func (u *ReportWorkflowUseCase) Cancel(wctx WorkflowContext) (WorkflowContext, error) {
	if wctx.State != StatePartsPending {
		return wctx, ErrNotPartsPending
	}
	wctx.State = StateEditing
	wctx.Parts = nil
	return wctx, nil
}

// CommitWithoutParts appends one VisitReport row with an empty parts summary.
func (u *ReportWorkflowUseCase) CommitWithoutParts(ctx context.Context, wctx WorkflowContext) (entities.VisitReport, WorkflowContext, error) {
	if wctx.State != StateEditing {
		return entities.VisitReport{}, wctx, ErrNotEditing
	}
	if err := validateDraft(wctx.Draft); err != nil {
		return entities.VisitReport{}, wctx, err
	}

	now := u.now()
	report := buildReport(wctx.Draft, entities.NewReportNumber(now), now, "")
	if err := u.reports.Append(ctx, report); err != nil {
		log.Printf("[workflow][commit] report append failed number=%s err=%v", report.Number, err)
		return entities.VisitReport{}, wctx, err
	}

	wctx.State = StateSavedNoParts
	wctx.SavedNumber = report.Number
	return report, wctx, nil
}

// CommitWithParts appends the VisitReport row (summary built from the buffer
// in insertion order) and then one PartRequest row per entry. Entries whose
// row fails stay in the buffer with the context still parts-pending and the
// saved number and summary recorded, so a retry appends only the missing
// rows and reports the summary the persisted row actually carries.
func (u *ReportWorkflowUseCase) CommitWithParts(ctx context.Context, wctx WorkflowContext) (CommitResult, WorkflowContext, error) {
	if wctx.State != StatePartsPending {
		return CommitResult{}, wctx, ErrNotPartsPending
	}
	if len(wctx.Parts) == 0 {
		return CommitResult{}, wctx, ErrEmptyPartsBuffer
	}
	if err := validateDraft(wctx.Draft); err != nil {
		return CommitResult{}, wctx, err
	}

	now := u.now()
	number := wctx.SavedNumber
	summary := wctx.SavedSummary
	if number == "" {
		number = entities.NewReportNumber(now)
		summary = partsSummary(wctx.Parts)
	}
	report := buildReport(wctx.Draft, number, now, summary)
	if wctx.SavedNumber == "" {
		if err := u.reports.Append(ctx, report); err != nil {
			log.Printf("[workflow][commit] report append failed number=%s err=%v", number, err)
			return CommitResult{}, wctx, err
		}
	}

	result := CommitResult{Report: report}
	var remaining []PartEntry
	for i, entry := range wctx.Parts {
		req := buildPartRequest(wctx.Draft.Technician, number, entry, now)
		if err := u.requests.Append(ctx, req); err != nil {
			log.Printf("[workflow][commit] part request append failed number=%s codigo=%s err=%v", number, entry.Code, err)
			result.Failed = append(result.Failed, PartCommitFailure{Index: i, Entry: entry, Err: err})
			remaining = append(remaining, entry)
			continue
		}
		result.Saved = append(result.Saved, req)
	}

	wctx.SavedNumber = number
	wctx.SavedSummary = summary
	if len(remaining) == 0 {
		wctx.State = StateSavedWithParts
		wctx.Parts = nil
	} else {
		wctx.State = StatePartsPending
		wctx.Parts = remaining
	}
	return result, wctx, nil
}

func validateDraft(d ReportDraft) error {
	if strings.TrimSpace(d.Client) == "" ||
		strings.TrimSpace(d.Address) == "" ||
		strings.TrimSpace(d.Elevator) == "" ||
		strings.TrimSpace(d.ServicePerformed) == "" {
		return ErrMissingDraftFields
	}
	return nil
}

func buildReport(d ReportDraft, number string, createdAt time.Time, summary string) entities.VisitReport {
	return entities.VisitReport{
		Number:           number,
		CreatedAt:        createdAt,
		Technician:       d.Technician,
		Client:           d.Client,
		Address:          d.Address,
		Elevator:         d.Elevator,
		ServicePerformed: d.ServicePerformed,
		Notes:            d.Notes,
		RequestedParts:   summary,
		Status:           entities.ReportStatusSalvo,
	}
}

func buildPartRequest(technician, number string, entry PartEntry, createdAt time.Time) entities.PartRequest {
	return entities.PartRequest{
		CreatedAt:       createdAt,
		Technician:      technician,
		ReportNumber:    number,
		PartCode:        entry.Code,
		PartDescription: entry.Description,
		Quantity:        entry.Quantity,
		Status:          entities.RequestStatusPendente,
		Priority:        entry.Priority,
		Notes:           joinEntryNotes(entry),
	}
}

// partsSummary concatenates "COD(qty)" in buffer insertion order.
func partsSummary(parts []PartEntry) string {
	items := make([]string, len(parts))
	for i, p := range parts {
		items[i] = fmt.Sprintf("%s(%d)", p.Code, p.Quantity)
	}
	return strings.Join(items, ", ")
}

// joinEntryNotes folds the captured extra fields into the request notes,
// since the REQUISICOES schema has no dedicated columns for them.
func joinEntryNotes(entry PartEntry) string {
	if len(entry.ExtraFields) == 0 {
		return entry.Notes
	}
	pairs := make([]string, len(entry.ExtraFields))
	for i, fv := range entry.ExtraFields {
		pairs[i] = fmt.Sprintf("%s: %s", fv.Name, fv.Value)
	}
	extra := strings.Join(pairs, "; ")
	if strings.TrimSpace(entry.Notes) == "" {
		return extra
	}
	return entry.Notes + " | " + extra
}
