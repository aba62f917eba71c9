package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sistema_cvt/internal/adapter/http/handlers/mocks"
	"sistema_cvt/internal/adapter/http/middleware"
	"sistema_cvt/internal/adapter/session"
	"sistema_cvt/internal/domain/entities"
	"sistema_cvt/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAuthHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		auth := mocks.NewMockIAuthUseCase(ctrl)
		workflow := mocks.NewMockIReportWorkflowUseCase(ctrl)
		h := NewAuthHandler(auth, workflow, session.New(time.Hour))

		r := gin.New()
		r.POST("/v1/auth/login", h.Login)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("wrong credentials", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		auth := mocks.NewMockIAuthUseCase(ctrl)
		workflow := mocks.NewMockIReportWorkflowUseCase(ctrl)
		h := NewAuthHandler(auth, workflow, session.New(time.Hour))

		r := gin.New()
		r.POST("/v1/auth/login", h.Login)

		auth.EXPECT().Authenticate(gomock.Any(), "tecnico1", "errada").Return(entities.User{}, usecase.ErrInvalidCredentials)

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString(`{"usuario":"tecnico1","senha":"errada"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		auth := mocks.NewMockIAuthUseCase(ctrl)
		workflow := mocks.NewMockIReportWorkflowUseCase(ctrl)
		store := session.New(time.Hour)
		h := NewAuthHandler(auth, workflow, store)

		r := gin.New()
		r.POST("/v1/auth/login", h.Login)

		auth.EXPECT().Authenticate(gomock.Any(), "tecnico1", "123").Return(entities.User{Username: "tecnico1", Name: "João Silva", Role: entities.RoleTecnico}, nil)
		workflow.EXPECT().NewContext().Return(usecase.WorkflowContext{State: usecase.StateEditing})

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString(`{"usuario":"tecnico1","senha":"123"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}

		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		token, _ := body["token"].(string)
		if token == "" {
			t.Fatalf("expected a token, got %s", w.Body.String())
		}
		if body["nome"] != "João Silva" || body["perfil"] != "TECNICO" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}

		sess, err := store.Get(token)
		if err != nil {
			t.Fatalf("session was not stored: %v", err)
		}
		if sess.Workflow.State != usecase.StateEditing {
			t.Fatalf("expected a fresh composition, got %+v", sess.Workflow)
		}
	})

	t.Run("repository failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		auth := mocks.NewMockIAuthUseCase(ctrl)
		workflow := mocks.NewMockIReportWorkflowUseCase(ctrl)
		h := NewAuthHandler(auth, workflow, session.New(time.Hour))

		r := gin.New()
		r.POST("/v1/auth/login", h.Login)

		auth.EXPECT().Authenticate(gomock.Any(), "tecnico1", "123").Return(entities.User{}, errors.New("boom"))

		req := httptest.NewRequest(http.MethodPost, "/v1/auth/login", bytes.NewBufferString(`{"usuario":"tecnico1","senha":"123"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	auth := mocks.NewMockIAuthUseCase(ctrl)
	workflow := mocks.NewMockIReportWorkflowUseCase(ctrl)
	store := session.New(time.Hour)
	h := NewAuthHandler(auth, workflow, store)

	sess := store.Create(entities.User{Username: "tecnico1"}, usecase.WorkflowContext{})

	r := gin.New()
	r.POST("/v1/auth/logout", middleware.RequireSession(store), h.Logout)

	req := httptest.NewRequest(http.MethodPost, "/v1/auth/logout", nil)
	req.Header.Set(middleware.TokenHeader, sess.Token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
	if _, err := store.Get(sess.Token); err == nil {
		t.Fatal("session should have been removed")
	}
}

func TestAuthHandler_Me(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	auth := mocks.NewMockIAuthUseCase(ctrl)
	workflow := mocks.NewMockIReportWorkflowUseCase(ctrl)
	store := session.New(time.Hour)
	h := NewAuthHandler(auth, workflow, store)

	sess := store.Create(entities.User{Username: "supervisor", Name: "Carlos Oliveira", Role: entities.RoleSupervisor}, usecase.WorkflowContext{})

	r := gin.New()
	r.GET("/v1/auth/me", middleware.RequireSession(store), h.Me)

	t.Run("without token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("with token", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/auth/me", nil)
		req.Header.Set(middleware.TokenHeader, sess.Token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["usuario"] != "supervisor" || body["perfil"] != "SUPERVISOR" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
