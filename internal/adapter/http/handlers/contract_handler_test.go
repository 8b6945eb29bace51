package handlers

import (
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

func TestContractHandler_AcceptBid(t *testing.T) {
	gin.SetMode(gin.TestMode)

	build := func(uc usecase.IContractUseCase) *gin.Engine {
		h := NewContractHandler(uc)
		r := gin.New()
		r.POST("/v1/projects/:project_id/bids/:bid_id/accept", h.AcceptBid)
		return r
	}

	t.Run("missing actor headers", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		r := build(uc)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/p-1/bids/b-1/accept", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("lost accept race", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		r := build(uc)

		uc.EXPECT().AcceptBid(gomock.Any(), "p-1", "b-1", usecase.Actor{ID: "c-1", Role: usecase.RoleClient}).
			Return(entities.Contract{}, usecase.ErrInvalidState)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/p-1/bids/b-1/accept", nil)
		req.Header.Set(HeaderActorID, "c-1")
		req.Header.Set(HeaderActorRole, usecase.RoleClient)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		r := build(uc)

		uc.EXPECT().AcceptBid(gomock.Any(), "p-1", "b-1", usecase.Actor{ID: "c-1", Role: usecase.RoleClient}).
			Return(entities.Contract{ID: "ct-1", ProjectID: "p-1", ClientID: "c-1", FreelancerID: "f-1", AgreedAmount: 450, Status: entities.ContractStatusActive}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/projects/p-1/bids/b-1/accept", nil)
		req.Header.Set(HeaderActorID, "c-1")
		req.Header.Set(HeaderActorRole, usecase.RoleClient)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "ct-1" || body["status"] != "active" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestContractHandler_Lookups(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("outsider cannot read a contract", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		h := NewContractHandler(uc)

		r := gin.New()
		r.GET("/v1/contracts/:contract_id", h.GetContract)

		uc.EXPECT().GetContract(gomock.Any(), "ct-1", usecase.Actor{ID: "f-2", Role: usecase.RoleFreelancer}).
			Return(entities.Contract{}, usecase.ErrContractNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/contracts/ct-1", nil)
		req.Header.Set(HeaderActorID, "f-2")
		req.Header.Set(HeaderActorRole, usecase.RoleFreelancer)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("list contracts for actor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIContractUseCase(ctrl)
		h := NewContractHandler(uc)

		r := gin.New()
		r.GET("/v1/contracts", h.ListContracts)

		uc.EXPECT().ListContractsByActor(gomock.Any(), usecase.Actor{ID: "f-1", Role: usecase.RoleFreelancer}).
			Return([]entities.Contract{{ID: "ct-1"}, {ID: "ct-2"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/contracts", nil)
		req.Header.Set(HeaderActorID, "f-1")
		req.Header.Set(HeaderActorRole, usecase.RoleFreelancer)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 2 {
			t.Fatalf("expected 2 contracts, got %s", w.Body.String())
		}
	})
}
