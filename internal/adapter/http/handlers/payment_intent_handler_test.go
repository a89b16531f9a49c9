package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"monhajj/internal/adapter/http/handlers/mocks"
	"monhajj/internal/domain/entities"
	"monhajj/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

type cardDeclined struct{}

func (cardDeclined) Error() string         { return "stripe: card_declined: Your card was declined." }
func (cardDeclined) PublicMessage() string { return "Your card was declined." }

func TestPaymentIntentHandler_CreatePaymentIntent(t *testing.T) {
	gin.SetMode(gin.TestMode)

	post := func(h *PaymentIntentHandler, body string) *httptest.ResponseRecorder {
		r := gin.New()
		r.POST("/create-payment-intent", h.CreatePaymentIntent)
		req := httptest.NewRequest(http.MethodPost, "/create-payment-intent", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		h := NewPaymentIntentHandler(mocks.NewMockIPaymentIntentUseCase(ctrl), nil)

		w := post(h, "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["error"] == "" {
			t.Fatalf("expected error body, got %s", w.Body.String())
		}
	})

	t.Run("invalid amount", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentIntentUseCase(ctrl)
		h := NewPaymentIntentHandler(uc, nil)

		uc.EXPECT().Create(gomock.Any(), 0.0, "eur").Return(entities.PaymentIntent{}, usecase.ErrInvalidPaymentAmount)

		w := post(h, `{"amount":0,"currency":"EUR"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("provider message is shown verbatim", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentIntentUseCase(ctrl)
		h := NewPaymentIntentHandler(uc, nil)

		uc.EXPECT().Create(gomock.Any(), 4875.0, "eur").Return(entities.PaymentIntent{}, cardDeclined{})

		w := post(h, `{"amount":4875,"currency":"eur"}`)
		if w.Code != http.StatusPaymentRequired {
			t.Fatalf("expected 402, got %d", w.Code)
		}
		var body map[string]string
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["error"] != "Your card was declined." {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("unexpected failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentIntentUseCase(ctrl)
		h := NewPaymentIntentHandler(uc, nil)

		uc.EXPECT().Create(gomock.Any(), 10.0, "").Return(entities.PaymentIntent{}, errors.New("timeout"))

		w := post(h, `{"amount":10}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIPaymentIntentUseCase(ctrl)
		h := NewPaymentIntentHandler(uc, nil)

		uc.EXPECT().Create(gomock.Any(), 4875.0, "eur").Return(entities.PaymentIntent{ID: "pi_1", ClientSecret: "pi_1_secret"}, nil)

		w := post(h, `{"amount":4875,"currency":"eur"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != `{"clientSecret":"pi_1_secret"}` {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
