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

func TestWorkReviewHandler_SubmitWork(t *testing.T) {
	gin.SetMode(gin.TestMode)

	build := func(uc usecase.IWorkReviewUseCase) *gin.Engine {
		h := NewWorkReviewHandler(uc)
		r := gin.New()
		r.POST("/v1/projects/:project_id/submissions", h.SubmitWork)
		return r
	}

	t.Run("empty file list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkReviewUseCase(ctrl)
		r := build(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/p-1/submissions", bytes.NewBufferString(`{"files":[]}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderActorID, "f-1")
		req.Header.Set(HeaderActorRole, usecase.RoleFreelancer)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("file missing url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkReviewUseCase(ctrl)
		r := build(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/p-1/submissions", bytes.NewBufferString(`{"files":[{"filename":"final.zip"}]}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderActorID, "f-1")
		req.Header.Set(HeaderActorRole, usecase.RoleFreelancer)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkReviewUseCase(ctrl)
		r := build(uc)

		files := []entities.SubmissionFile{{Filename: "final.zip", URL: "https://cdn.example.com/final.zip", Size: 1024}}
		uc.EXPECT().SubmitWork(gomock.Any(), "p-1", usecase.Actor{ID: "f-1", Role: usecase.RoleFreelancer}, files, "first pass").
			Return(entities.WorkSubmission{ID: "s-1", ProjectID: "p-1", Version: 1, Files: files, Notes: "first pass"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/p-1/submissions", bytes.NewBufferString(`{"files":[{"filename":"final.zip","url":"https://cdn.example.com/final.zip","size":1024}],"notes":"first pass"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderActorID, "f-1")
		req.Header.Set(HeaderActorRole, usecase.RoleFreelancer)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "s-1" || body["version"] != 1.0 {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestWorkReviewHandler_Review(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("revision without feedback body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkReviewUseCase(ctrl)
		h := NewWorkReviewHandler(uc)

		r := gin.New()
		r.PATCH("/v1/projects/:project_id/revision", h.RequestRevision)

		uc.EXPECT().RequestRevision(gomock.Any(), "p-1", usecase.Actor{ID: "c-1", Role: usecase.RoleClient}, "").
			Return(entities.Project{ID: "p-1", Status: entities.ProjectStatusInProgress}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/projects/p-1/revision", nil)
		req.Header.Set(HeaderActorID, "c-1")
		req.Header.Set(HeaderActorRole, usecase.RoleClient)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["status"] != "in_progress" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("approve requires submission id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkReviewUseCase(ctrl)
		h := NewWorkReviewHandler(uc)

		r := gin.New()
		r.PATCH("/v1/projects/:project_id/approve", h.ApproveWork)

		req := httptest.NewRequest(http.MethodPatch, "/v1/projects/p-1/approve", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderActorID, "c-1")
		req.Header.Set(HeaderActorRole, usecase.RoleClient)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("approve stale submission conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkReviewUseCase(ctrl)
		h := NewWorkReviewHandler(uc)

		r := gin.New()
		r.PATCH("/v1/projects/:project_id/approve", h.ApproveWork)

		uc.EXPECT().ApproveWork(gomock.Any(), "p-1", usecase.Actor{ID: "c-1", Role: usecase.RoleClient}, "s-1").
			Return(entities.Project{}, usecase.ErrInvalidState)

		req := httptest.NewRequest(http.MethodPatch, "/v1/projects/p-1/approve", bytes.NewBufferString(`{"submission_id":"s-1"}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(HeaderActorID, "c-1")
		req.Header.Set(HeaderActorRole, usecase.RoleClient)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("approve success keeps project awaiting settlement", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIWorkReviewUseCase(ctrl)
		h := NewWorkReviewHandler(uc)

		r := gin.New()
		r.PATCH("/v1/projects/:project_id/approve", h.ApproveWork)

		uc.EXPECT().ApproveWork(gomock.Any(), "p-1", usecase.Actor{ID: "c-1", Role: usecase.RoleClient}, "s-2").
			Return(entities.Project{ID: "p-1", Status: entities.ProjectStatusAwaitingReview, ApprovedSubmissionID: "s-2"}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/projects/p-1/approve", bytes.NewBufferString(`{"submission_id":"s-2"}`))
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
		if body["approved_submission_id"] != "s-2" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}
