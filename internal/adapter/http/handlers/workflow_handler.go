package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "sistema_cvt/internal/adapter/http/dto/request"
	response "sistema_cvt/internal/adapter/http/dto/response"
	"sistema_cvt/internal/adapter/http/middleware"
	"sistema_cvt/internal/adapter/session"
	"sistema_cvt/internal/usecase"
	"sistema_cvt/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidWorkflowPayload = pkg.NewDomainErrorSimple("INVALID_WORKFLOW_INPUT", "Invalid workflow payload", http.StatusBadRequest)
	errInvalidPartIndex       = pkg.NewDomainErrorSimple("INVALID_PART_INDEX", "Invalid part index", http.StatusBadRequest)
	errSessionGone            = pkg.NewDomainErrorSimple("SESSION_REQUIRED", "Missing or invalid session token", http.StatusUnauthorized)
)

// WorkflowHandler drives the report composition state machine. Every
// endpoint loads the caller's workflow context from the session, applies one
// transition and stores the result back, so the session is always the single
// source of truth for the composition state.
type WorkflowHandler struct {
	usecase  usecase.IReportWorkflowUseCase
	sessions *session.Store
}

func NewWorkflowHandler(uc usecase.IReportWorkflowUseCase, sessions *session.Store) *WorkflowHandler {
	return &WorkflowHandler{usecase: uc, sessions: sessions}
}

// GetWorkflow returns the current composition state.
func (h *WorkflowHandler) GetWorkflow(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	if sess == nil {
		c.JSON(errSessionGone.HTTPStatus, errSessionGone.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorkflow(sess.Workflow))
}

// UpdateDraft replaces the report draft fields.
func (h *WorkflowHandler) UpdateDraft(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	if sess == nil {
		c.JSON(errSessionGone.HTTPStatus, errSessionGone.ToHTTPError())
		return
	}

	var payload request.DraftRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkflowPayload.HTTPStatus, errInvalidWorkflowPayload.ToHTTPError())
		return
	}

	next, err := h.usecase.UpdateDraft(sess.Workflow, payload.ToDraft(sess.User.Name))
	h.respond(c, sess, next, err)
}

// RequestParts moves the composition into parts capture.
func (h *WorkflowHandler) RequestParts(c *gin.Context) {
	h.transition(c, func(wctx usecase.WorkflowContext) (usecase.WorkflowContext, error) {
		return h.usecase.RequestParts(wctx)
	})
}

// AddPart validates and appends one part entry to the buffer.
func (h *WorkflowHandler) AddPart(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	if sess == nil {
		c.JSON(errSessionGone.HTTPStatus, errSessionGone.ToHTTPError())
		return
	}

	var payload request.PartEntryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidWorkflowPayload.HTTPStatus, errInvalidWorkflowPayload.ToHTTPError())
		return
	}

	next, err := h.usecase.AddPart(c.Request.Context(), sess.Workflow, payload.ToEntry())
	h.respond(c, sess, next, err)
}

// EditPart removes the entry at the index and returns it for re-entry.
func (h *WorkflowHandler) EditPart(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	if sess == nil {
		c.JSON(errSessionGone.HTTPStatus, errSessionGone.ToHTTPError())
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(errInvalidPartIndex.HTTPStatus, errInvalidPartIndex.ToHTTPError())
		return
	}

	next, entry, err := h.usecase.EditPart(sess.Workflow, index)
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if err := h.sessions.SetWorkflow(sess.Token, next); err != nil {
		c.JSON(errSessionGone.HTTPStatus, errSessionGone.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.PartEntryEditResponse{
		Workflow: response.FromWorkflow(next),
		Entry:    response.FromPartEntry(index, entry),
	})
}

// RemovePart drops the entry at the index.
func (h *WorkflowHandler) RemovePart(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	if sess == nil {
		c.JSON(errSessionGone.HTTPStatus, errSessionGone.ToHTTPError())
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(errInvalidPartIndex.HTTPStatus, errInvalidPartIndex.ToHTTPError())
		return
	}

	next, err := h.usecase.RemovePart(sess.Workflow, index)
	h.respond(c, sess, next, err)
}

// Back returns from parts capture to editing, keeping the buffer.
func (h *WorkflowHandler) Back(c *gin.Context) {
	h.transition(c, func(wctx usecase.WorkflowContext) (usecase.WorkflowContext, error) {
		return h.usecase.Back(wctx)
	})
}

// Cancel returns to editing and discards the buffer.
func (h *WorkflowHandler) Cancel(c *gin.Context) {
	h.transition(c, func(wctx usecase.WorkflowContext) (usecase.WorkflowContext, error) {
		return h.usecase.Cancel(wctx)
	})
}

// CommitWithoutParts persists the report with no part requests.
func (h *WorkflowHandler) CommitWithoutParts(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	if sess == nil {
		c.JSON(errSessionGone.HTTPStatus, errSessionGone.ToHTTPError())
		return
	}

	report, next, err := h.usecase.CommitWithoutParts(c.Request.Context(), sess.Workflow)
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if err := h.sessions.SetWorkflow(sess.Token, next); err != nil {
		c.JSON(errSessionGone.HTTPStatus, errSessionGone.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.CommitResponse{
		Report:   response.FromVisitReport(report),
		Saved:    []response.PartRequestResponse{},
		Workflow: response.FromWorkflow(next),
	})
}

// CommitWithParts persists the report and every buffered part request.
// Entries that fail stay in the buffer; the response lists them and the
// workflow stays in parts capture so the caller can retry.
func (h *WorkflowHandler) CommitWithParts(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	if sess == nil {
		c.JSON(errSessionGone.HTTPStatus, errSessionGone.ToHTTPError())
		return
	}

	result, next, err := h.usecase.CommitWithParts(c.Request.Context(), sess.Workflow)
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if err := h.sessions.SetWorkflow(sess.Token, next); err != nil {
		c.JSON(errSessionGone.HTTPStatus, errSessionGone.ToHTTPError())
		return
	}

	status := http.StatusCreated
	if len(result.Failed) > 0 {
		status = http.StatusMultiStatus
	}
	c.JSON(status, response.FromCommitResult(result, next))
}

func (h *WorkflowHandler) transition(c *gin.Context, step func(usecase.WorkflowContext) (usecase.WorkflowContext, error)) {
	sess := middleware.SessionFrom(c)
	if sess == nil {
		c.JSON(errSessionGone.HTTPStatus, errSessionGone.ToHTTPError())
		return
	}

	next, err := step(sess.Workflow)
	h.respond(c, sess, next, err)
}

func (h *WorkflowHandler) respond(c *gin.Context, sess *session.Session, next usecase.WorkflowContext, err error) {
	if err != nil {
		appErr := mapWorkflowError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if err := h.sessions.SetWorkflow(sess.Token, next); err != nil {
		c.JSON(errSessionGone.HTTPStatus, errSessionGone.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromWorkflow(next))
}

func mapWorkflowError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNotEditing), errors.Is(err, usecase.ErrNotPartsPending):
		return pkg.NewDomainErrorSimple("INVALID_WORKFLOW_STATE", "Operation not allowed in the current workflow state", http.StatusConflict)
	case errors.Is(err, usecase.ErrMissingClient),
		errors.Is(err, usecase.ErrMissingDraftFields),
		errors.Is(err, usecase.ErrEmptyPartsBuffer),
		errors.Is(err, usecase.ErrInvalidPartEntry),
		errors.Is(err, usecase.ErrUnknownExtraField):
		return pkg.NewDomainError("INVALID_WORKFLOW_INPUT", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPartIndex):
		return pkg.NewDomainErrorSimple("INVALID_PART_INDEX", "Invalid part index", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
