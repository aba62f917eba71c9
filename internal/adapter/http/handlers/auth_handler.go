package handlers

import (
	"errors"
	"net/http"

	request "sistema_cvt/internal/adapter/http/dto/request"
	response "sistema_cvt/internal/adapter/http/dto/response"
	"sistema_cvt/internal/adapter/http/middleware"
	"sistema_cvt/internal/adapter/session"
	"sistema_cvt/internal/usecase"
	"sistema_cvt/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidLoginPayload = pkg.NewDomainErrorSimple("INVALID_LOGIN_INPUT", "Invalid login payload", http.StatusBadRequest)

// AuthHandler opens and closes sessions. A fresh login always starts with an
// empty report composition.
type AuthHandler struct {
	auth     usecase.IAuthUseCase
	workflow usecase.IReportWorkflowUseCase
	sessions *session.Store
}

func NewAuthHandler(auth usecase.IAuthUseCase, workflow usecase.IReportWorkflowUseCase, sessions *session.Store) *AuthHandler {
	return &AuthHandler{auth: auth, workflow: workflow, sessions: sessions}
}

// Login authenticates a technician or supervisor and returns a session token.
func (h *AuthHandler) Login(c *gin.Context) {
	var payload request.LoginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidLoginPayload.HTTPStatus, errInvalidLoginPayload.ToHTTPError())
		return
	}

	user, err := h.auth.Authenticate(c.Request.Context(), payload.ResolveUsername(), payload.Password)
	if err != nil {
		appErr := mapAuthError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	sess := h.sessions.Create(user, h.workflow.NewContext())
	c.JSON(http.StatusOK, response.FromSession(sess.Token, sess.User))
}

// Logout closes the current session.
func (h *AuthHandler) Logout(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	if sess != nil {
		h.sessions.Delete(sess.Token)
	}
	c.Status(http.StatusNoContent)
}

// Me returns the authenticated user of the current session.
func (h *AuthHandler) Me(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	if sess == nil {
		appErr := pkg.NewDomainErrorSimple("SESSION_REQUIRED", "Missing or invalid session token", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSession(sess.Token, sess.User))
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid username or password", http.StatusUnauthorized)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
