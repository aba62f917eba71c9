package handlers

import (
	"errors"
	"fmt"
	"net/http"

	response "sistema_cvt/internal/adapter/http/dto/response"
	"sistema_cvt/internal/adapter/http/middleware"
	"sistema_cvt/internal/domain/entities"
	"sistema_cvt/internal/usecase"
	"sistema_cvt/internal/usecase/interfaces"
	"sistema_cvt/pkg"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves the read views over saved reports and part requests.
// Technicians only see their own records; supervisors see everything and may
// filter by technician or status.
type ReportHandler struct {
	usecase  usecase.IReportQueryUseCase
	renderer interfaces.IReportRenderer
}

func NewReportHandler(uc usecase.IReportQueryUseCase, renderer interfaces.IReportRenderer) *ReportHandler {
	return &ReportHandler{usecase: uc, renderer: renderer}
}

// ListReports lists saved reports newest first.
func (h *ReportHandler) ListReports(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	if sess == nil {
		c.JSON(errSessionGone.HTTPStatus, errSessionGone.ToHTTPError())
		return
	}

	technician := c.Query("tecnico")
	if sess.User.Role != entities.RoleSupervisor {
		technician = sess.User.Name
	}

	reports, err := h.usecase.ListReports(c.Request.Context(), technician, c.Query("status"))
	if err != nil {
		appErr := mapQueryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromVisitReports(reports))
}

// GetReport returns one report with its part requests.
func (h *ReportHandler) GetReport(c *gin.Context) {
	report, parts, ok := h.fetchOwned(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, response.ReportDetailResponse{
		Report: response.FromVisitReport(report),
		Parts:  response.FromPartRequests(parts),
	})
}

// GetReportPDF renders the printable receipt for one report.
func (h *ReportHandler) GetReportPDF(c *gin.Context) {
	report, parts, ok := h.fetchOwned(c)
	if !ok {
		return
	}

	data, err := h.renderer.Render(report, parts)
	if err != nil {
		appErr := pkg.NewDomainError("PDF_RENDER_FAILED", "Could not render the report document", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", report.Number))
	c.Data(http.StatusOK, "application/pdf", data)
}

// ListRequests lists part requests, optionally filtered by technician.
// Supervisor only.
func (h *ReportHandler) ListRequests(c *gin.Context) {
	reqs, err := h.usecase.ListRequests(c.Request.Context(), c.Query("tecnico"))
	if err != nil {
		appErr := mapQueryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPartRequests(reqs))
}

// GetStats returns the request counters for the supervisor panel.
func (h *ReportHandler) GetStats(c *gin.Context) {
	stats, err := h.usecase.Stats(c.Request.Context())
	if err != nil {
		appErr := mapQueryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.StatsResponse{
		Total:       stats.Total,
		Technicians: stats.Technicians,
		Urgent:      stats.Urgent,
	})
}

// fetchOwned loads the report by path number and enforces that technicians
// can only access their own reports.
func (h *ReportHandler) fetchOwned(c *gin.Context) (entities.VisitReport, []entities.PartRequest, bool) {
	sess := middleware.SessionFrom(c)
	if sess == nil {
		c.JSON(errSessionGone.HTTPStatus, errSessionGone.ToHTTPError())
		return entities.VisitReport{}, nil, false
	}

	report, parts, err := h.usecase.GetReportWithParts(c.Request.Context(), c.Param("number"))
	if err != nil {
		appErr := mapQueryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return entities.VisitReport{}, nil, false
	}

	if sess.User.Role != entities.RoleSupervisor && report.Technician != sess.User.Name {
		appErr := pkg.NewDomainErrorSimple("REPORT_NOT_FOUND", "Visit report not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return entities.VisitReport{}, nil, false
	}
	return report, parts, true
}

func mapQueryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidReportNumber):
		return pkg.NewDomainErrorSimple("INVALID_REPORT_NUMBER", "Invalid report number", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrReportNotFound):
		return pkg.NewDomainErrorSimple("REPORT_NOT_FOUND", "Visit report not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
