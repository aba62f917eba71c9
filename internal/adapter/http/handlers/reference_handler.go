package handlers

import (
	"errors"
	"net/http"

	response "sistema_cvt/internal/adapter/http/dto/response"
	"sistema_cvt/internal/usecase"
	"sistema_cvt/pkg"

	"github.com/gin-gonic/gin"
)

// ReferenceHandler serves the client and parts catalogs used to fill the
// report form.
type ReferenceHandler struct {
	usecase usecase.IReferenceUseCase
}

func NewReferenceHandler(uc usecase.IReferenceUseCase) *ReferenceHandler {
	return &ReferenceHandler{usecase: uc}
}

// ListClients lists active clients.
func (h *ReferenceHandler) ListClients(c *gin.Context) {
	clients, err := h.usecase.ActiveClients(c.Request.Context())
	if err != nil {
		appErr := mapReferenceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromClients(clients))
}

// GetClient returns one active client by name.
func (h *ReferenceHandler) GetClient(c *gin.Context) {
	client, err := h.usecase.ClientByName(c.Request.Context(), c.Param("name"))
	if err != nil {
		appErr := mapReferenceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromClient(client))
}

// ListParts lists the active parts catalog.
func (h *ReferenceHandler) ListParts(c *gin.Context) {
	parts, err := h.usecase.ActiveParts(c.Request.Context())
	if err != nil {
		appErr := mapReferenceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromParts(parts))
}

// GetPart returns one active catalog part by code.
func (h *ReferenceHandler) GetPart(c *gin.Context) {
	part, err := h.usecase.PartByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		appErr := mapReferenceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPart(part))
}

func mapReferenceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidClientName), errors.Is(err, usecase.ErrInvalidPartCode):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPartNotFound):
		return pkg.NewDomainErrorSimple("PART_NOT_FOUND", "Part not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
