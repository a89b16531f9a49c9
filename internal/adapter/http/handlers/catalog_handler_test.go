package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"monhajj/internal/adapter/http/handlers/mocks"
	"monhajj/internal/domain/entities"
	"monhajj/internal/domain/pricing"
	"monhajj/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestCatalogHandler_ListOfferings(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid travel type", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.GET("/v1/offerings", h.ListOfferings)

		uc.EXPECT().ListOfferings(gomock.Any(), "cruise").Return(nil, usecase.ErrInvalidTravelType)

		req := httptest.NewRequest(http.MethodGet, "/v1/offerings?travel_type=cruise", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.GET("/v1/offerings", h.ListOfferings)

		uc.EXPECT().ListOfferings(gomock.Any(), "hajj").Return([]entities.Offering{{
			ID:            "hajj-2027-comfort",
			TravelType:    entities.TravelTypeHajj,
			Category:      entities.CategoryComfort,
			BasePrice:     pricing.HajjBasePrice,
			DepartureDate: time.Date(2027, time.May, 10, 0, 0, 0, 0, time.UTC),
		}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/offerings?travel_type=hajj", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 1 || body[0]["price"] != 8450.0 || body[0]["departure_label"] != "10 mai 2027" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestCatalogHandler_GetOffering(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.GET("/v1/offerings/:id", h.GetOffering)

		uc.EXPECT().GetOffering(gomock.Any(), "nope").Return(entities.Offering{}, usecase.ErrOfferingNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/offerings/nope", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_ListRoomTypes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICatalogUseCase(ctrl)
	h := NewCatalogHandler(uc)

	r := gin.New()
	r.GET("/v1/room-types", h.ListRoomTypes)

	uc.EXPECT().RoomTypes(gomock.Any()).Return(pricing.RoomOptions())

	req := httptest.NewRequest(http.MethodGet, "/v1/room-types", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	if len(body) != 3 {
		t.Fatalf("unexpected body: %s", w.Body.String())
	}
}

func TestCatalogHandler_CreateQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("resolver rejects", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		uc.EXPECT().Quote(gomock.Any(), gomock.Any()).Return(pricing.Quote{}, fmt.Errorf("%w: %v", usecase.ErrInvalidQuoteRequest, pricing.ErrUnknownCategory))

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"travel_type":"omra","category":"gold","quantity":1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.CreateQuote)

		want := pricing.Request{TravelType: entities.TravelTypeOmra, Category: entities.CategoryComfort, RoomType: entities.RoomTypeDouble, Quantity: 2}
		uc.EXPECT().Quote(gomock.Any(), want).Return(pricing.Quote{TravelType: entities.TravelTypeOmra, Category: entities.CategoryComfort, RoomType: entities.RoomTypeDouble, Quantity: 2, UnitPrice: 2000, RoomMultiplier: 1.3, Total: 5200}, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"travel_type":"Omra","category":"comfort","room_type":"double","quantity":2}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["total"] != 5200.0 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
