package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"freelance_marketplace/internal/adapter/http/handlers/mocks"
	"freelance_marketplace/internal/domain/entities"
	"freelance_marketplace/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestAdminHandler_ForceDispute(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing actor headers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAdminUseCase(ctrl)
		h := NewAdminHandler(uc)

		r := gin.New()
		r.PATCH("/v1/projects/:project_id/dispute", h.ForceDispute)

		req := httptest.NewRequest(http.MethodPatch, "/v1/projects/p-1/dispute", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("non-admin forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAdminUseCase(ctrl)
		h := NewAdminHandler(uc)

		r := gin.New()
		r.PATCH("/v1/projects/:project_id/dispute", h.ForceDispute)

		uc.EXPECT().ForceDispute(gomock.Any(), "p-1", usecase.Actor{ID: "c-1", Role: usecase.RoleClient}, "").
			Return(entities.Project{}, usecase.ErrUnauthorized)

		req := httptest.NewRequest(http.MethodPatch, "/v1/projects/p-1/dispute", nil)
		req.Header.Set(HeaderActorID, "c-1")
		req.Header.Set(HeaderActorRole, usecase.RoleClient)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("success with reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAdminUseCase(ctrl)
		h := NewAdminHandler(uc)

		r := gin.New()
		r.PATCH("/v1/projects/:project_id/dispute", h.ForceDispute)

		uc.EXPECT().ForceDispute(gomock.Any(), "p-1", usecase.Actor{ID: "adm-1", Role: usecase.RoleAdmin}, "fraud report").
			Return(entities.Project{ID: "p-1", Status: entities.ProjectStatusDisputed}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/projects/p-1/dispute", bytes.NewBufferString(`{"reason":"fraud report"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderActorID, "adm-1")
		req.Header.Set(HeaderActorRole, usecase.RoleAdmin)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "disputed" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestAdminHandler_CancelProject(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("terminal project conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAdminUseCase(ctrl)
		h := NewAdminHandler(uc)

		r := gin.New()
		r.PATCH("/v1/projects/:project_id/cancel", h.CancelProject)

		uc.EXPECT().CancelProject(gomock.Any(), "p-1", gomock.Any(), "").
			Return(entities.Project{}, usecase.ErrInvalidState)

		req := httptest.NewRequest(http.MethodPatch, "/v1/projects/p-1/cancel", nil)
		req.Header.Set(HeaderActorID, "adm-1")
		req.Header.Set(HeaderActorRole, usecase.RoleAdmin)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("owner cancels open project", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIAdminUseCase(ctrl)
		h := NewAdminHandler(uc)

		r := gin.New()
		r.PATCH("/v1/projects/:project_id/cancel", h.CancelProject)

		uc.EXPECT().CancelProject(gomock.Any(), "p-1", usecase.Actor{ID: "c-1", Role: usecase.RoleClient}, "scope changed").
			Return(entities.Project{ID: "p-1", Status: entities.ProjectStatusCancelled}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/projects/p-1/cancel", bytes.NewBufferString(`{"reason":"scope changed"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderActorID, "c-1")
		req.Header.Set(HeaderActorRole, usecase.RoleClient)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "cancelled" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}
