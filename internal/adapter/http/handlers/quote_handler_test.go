package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"realnest_crm/internal/adapter/http/handlers/mocks"
	"realnest_crm/internal/domain/entities"
	"realnest_crm/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestQuoteHandler_GenerateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.GenerateQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing unit id fails binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.GenerateQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"lead_id":"lead-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase returns mapped error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.GenerateQuote)

		uc.EXPECT().GenerateQuote(gomock.Any(), gomock.Any()).Return(entities.Quote{}, usecase.ErrUnitNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"lead_id":"lead-1","unit_id":"unit-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.GenerateQuote)

		now := time.Now().UTC()
		uc.EXPECT().GenerateQuote(gomock.Any(), usecase.GenerateQuoteCommand{
			LeadID: "lead-1", UnitID: "unit-1", DiscountPerSqft: 100, ParkingCount: 1, PaymentPlan: "CLP",
		}).Return(entities.Quote{
			ID: "q-1", LeadID: "lead-1", UnitID: "unit-1", UnitNo: "A-1204", Version: 1,
			Status: entities.QuoteStatusApproved, CreatedAt: now, ValidUntil: now.Add(entities.QuoteValidity),
			CostSheet: entities.CostSheet{FinalPrice: 9076000},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(
			`{"lead_id":"lead-1","unit_id":"unit-1","discount_per_sqft":100,"parking_count":1,"payment_plan":"CLP"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["quote_id"] != "q-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_PatchStatus(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("approve success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotes/approve", h.ApproveQuote)

		uc.EXPECT().ApproveQuote(gomock.Any(), "lead-1", "q-1").Return(entities.Quote{ID: "q-1", Status: entities.QuoteStatusApproved}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/approve", bytes.NewBufferString(`{"lead_id":"lead-1","quote_id":"q-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("reject illegal transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.PATCH("/v1/quotes/reject", h.RejectQuote)

		uc.EXPECT().RejectQuote(gomock.Any(), "lead-1", "q-1").Return(entities.Quote{}, usecase.ErrIllegalQuoteTransition)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/reject", bytes.NewBufferString(`{"lead_id":"lead-1","quote_id":"q-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_ShareQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuoteUseCase(ctrl)
	h := NewQuoteHandler(uc)

	r := gin.New()
	r.POST("/v1/quotes/share", h.ShareQuote)

	uc.EXPECT().ShareQuote(gomock.Any(), "lead-1", "q-1").Return("https://wa.me/919812345678?text=hi", nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/quotes/share", bytes.NewBufferString(`{"lead_id":"lead-1","quote_id":"q-1"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if body["share_link"] != "https://wa.me/919812345678?text=hi" {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestQuoteHandler_ListQuotesByLead(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuoteUseCase(ctrl)
	h := NewQuoteHandler(uc)

	r := gin.New()
	r.GET("/v1/leads/:lead_id/quotes", h.ListQuotesByLead)

	uc.EXPECT().ListQuotesByLead(gomock.Any(), "lead-1").Return([]entities.Quote{{ID: "q-1", Version: 1}, {ID: "q-2", Version: 2}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/leads/lead-1/quotes", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body) != 2 {
		t.Fatalf("expected 2 quotes, got %s", w.Body.String())
	}
}

func TestMapQuoteError(t *testing.T) {
	if got := mapQuoteError(usecase.ErrInvalidLeadID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapQuoteError(usecase.ErrLeadNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapQuoteError(usecase.ErrPricingConfigNotFound); got.HTTPStatus != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422")
	}
	if got := mapQuoteError(usecase.ErrUnitNotSellable); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapQuoteError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
