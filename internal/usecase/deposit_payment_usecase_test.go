package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"monhajj/internal/config"
	"monhajj/internal/domain/entities"
	"monhajj/internal/usecase/interfaces"
	mock_interfaces "monhajj/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func awaitingBooking(amount float64) entities.Booking {
	return entities.Booking{
		ID:            "bk-1",
		Status:        entities.BookingStatusAwaitingPayment,
		PaymentAmount: amount,
		Clients:       []entities.ClientRecord{{Email: "lead@example.fr"}},
	}
}

func TestDepositPaymentUseCase_CreateForBooking_Validations(t *testing.T) {
	t.Run("empty booking id", func(t *testing.T) {
		uc := NewDepositPaymentUseCase(nil, nil, nil, config.PaymentsConfig{}, nil)
		_, err := uc.CreateForBooking(context.Background(), " ", json.RawMessage(`{}`))
		if !errors.Is(err, ErrInvalidBookingID) {
			t.Fatalf("expected ErrInvalidBookingID, got %v", err)
		}
	})

	t.Run("empty payload", func(t *testing.T) {
		uc := NewDepositPaymentUseCase(nil, nil, nil, config.PaymentsConfig{}, nil)
		_, err := uc.CreateForBooking(context.Background(), "bk-1", nil)
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("invalid json payload", func(t *testing.T) {
		uc := NewDepositPaymentUseCase(nil, nil, nil, config.PaymentsConfig{}, nil)
		_, err := uc.CreateForBooking(context.Background(), "bk-1", json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookingRepo := mock_interfaces.NewMockIBookingRepository(ctrl)
		uc := NewDepositPaymentUseCase(nil, bookingRepo, nil, config.PaymentsConfig{}, nil)

		_, err := uc.CreateForBooking(context.Background(), "bk-1", json.RawMessage(`{"payment_method_id":"visa"}`))
		if err == nil || err.Error() != "payment gateway not configured" {
			t.Fatalf("expected gateway not configured error, got %v", err)
		}
	})

	t.Run("booking repository not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewDepositPaymentUseCase(nil, nil, gateway, config.PaymentsConfig{}, nil)

		_, err := uc.CreateForBooking(context.Background(), "bk-1", json.RawMessage(`{"payment_method_id":"visa"}`))
		if err == nil || err.Error() != "booking repository not configured" {
			t.Fatalf("expected booking repository not configured error, got %v", err)
		}
	})
}

func TestDepositPaymentUseCase_CreateForBooking_BookingChecks(t *testing.T) {
	cases := []struct {
		name    string
		booking entities.Booking
		repoErr error
		want    error
	}{
		{name: "repo error", repoErr: errors.New("db"), want: nil},
		{name: "not found", booking: entities.Booking{}, want: ErrBookingNotFound},
		{name: "already paid", booking: entities.Booking{ID: "bk-1", Status: entities.BookingStatusDepositPaid}, want: ErrBookingNotAwaitingPayment},
		{name: "cancelled", booking: entities.Booking{ID: "bk-1", Status: entities.BookingStatusCancelled}, want: ErrBookingNotAwaitingPayment},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIDepositPaymentRepository(ctrl)
			bookingRepo := mock_interfaces.NewMockIBookingRepository(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewDepositPaymentUseCase(repo, bookingRepo, gateway, config.PaymentsConfig{}, nil)

			bookingRepo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(tc.booking, tc.repoErr)

			_, err := uc.CreateForBooking(context.Background(), "bk-1", json.RawMessage(`{"payment_method_id":"visa"}`))
			if tc.repoErr != nil {
				if !errors.Is(err, tc.repoErr) {
					t.Fatalf("expected %v, got %v", tc.repoErr, err)
				}
				return
			}
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestDepositPaymentUseCase_CreateForBooking_PayloadValidation(t *testing.T) {
	t.Run("missing payment_method_id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookingRepo := mock_interfaces.NewMockIBookingRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewDepositPaymentUseCase(nil, bookingRepo, gateway, config.PaymentsConfig{}, nil)

		bookingRepo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(awaitingBooking(100), nil)

		_, err := uc.CreateForBooking(context.Background(), "bk-1", json.RawMessage(`{"payer":{"email":"x@test.com"}}`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})

	t.Run("payer without contact email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		bookingRepo := mock_interfaces.NewMockIBookingRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewDepositPaymentUseCase(nil, bookingRepo, gateway, config.PaymentsConfig{}, nil)

		b := awaitingBooking(100)
		b.Clients = nil
		bookingRepo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(b, nil)

		_, err := uc.CreateForBooking(context.Background(), "bk-1", json.RawMessage(`{"payment_method_id":"visa"}`))
		if !errors.Is(err, ErrInvalidMPPayload) {
			t.Fatalf("expected ErrInvalidMPPayload, got %v", err)
		}
	})
}

func TestDepositPaymentUseCase_CreateForBooking_GatewayErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{name: "customer not found", err: errors.New(`{"code":2002}`), want: ErrPaymentGatewayCustomerNotFound},
		{name: "invalid users", err: errors.New(`invalid users involved`), want: ErrPaymentGatewayInvalidUsers},
		{name: "unauthorized", err: errors.New(`{"error":"unauthorized"}`), want: ErrPaymentGatewayUnauthorized},
		{name: "bad request", err: errors.New(`{"status":400}`), want: ErrPaymentGatewayBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIDepositPaymentRepository(ctrl)
			bookingRepo := mock_interfaces.NewMockIBookingRepository(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewDepositPaymentUseCase(repo, bookingRepo, gateway, config.PaymentsConfig{}, nil)

			bookingRepo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(awaitingBooking(10), nil)
			gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, tc.err)

			_, err := uc.CreateForBooking(context.Background(), "bk-1", json.RawMessage(`{"payment_method_id":"visa","payer":{"email":"x@test.com"}}`))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("unknown gateway error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDepositPaymentRepository(ctrl)
		bookingRepo := mock_interfaces.NewMockIBookingRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewDepositPaymentUseCase(repo, bookingRepo, gateway, config.PaymentsConfig{}, nil)

		bookingRepo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(awaitingBooking(10), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("boom"))

		_, err := uc.CreateForBooking(context.Background(), "bk-1", json.RawMessage(`{"payment_method_id":"visa","payer":{"email":"x@test.com"}}`))
		if err == nil || err.Error() != "boom" {
			t.Fatalf("expected boom, got %v", err)
		}
	})
}

func TestDepositPaymentUseCase_CreateForBooking_SuccessAndStatuses(t *testing.T) {
	settings := config.PaymentsConfig{
		MercadoPagoToken:     "TEST-token",
		SandboxPayerTestUser: "123",
		SandboxPayerEmail:    "sandbox@test.com",
	}
	cases := []struct {
		name           string
		providerStatus string
		want           entities.PaymentStatus
		providerResp   json.RawMessage
	}{
		{name: "approved", providerStatus: "approved", want: entities.PaymentStatusApproved, providerResp: json.RawMessage(`{"id":123}`)},
		{name: "rejected", providerStatus: "rejected", want: entities.PaymentStatusRejected, providerResp: json.RawMessage(`{"id":123}`)},
		{name: "pending default", providerStatus: "in_process", want: entities.PaymentStatusPending, providerResp: json.RawMessage(`{"id":123}`)},
		{name: "invalid provider response json", providerStatus: "approved", want: entities.PaymentStatusApproved, providerResp: json.RawMessage(`{`)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			repo := mock_interfaces.NewMockIDepositPaymentRepository(ctrl)
			bookingRepo := mock_interfaces.NewMockIBookingRepository(ctrl)
			gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
			uc := NewDepositPaymentUseCase(repo, bookingRepo, gateway, settings, nil)

			bookingRepo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(awaitingBooking(4875), nil)

			gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
					var body map[string]any
					if err := json.Unmarshal(payload, &body); err != nil {
						t.Fatalf("payload should be valid json: %v", err)
					}
					if body["external_reference"] != "bk-1" {
						t.Fatalf("external_reference not set")
					}
					if body["transaction_amount"] != float64(4875) {
						t.Fatalf("transaction_amount should come from the booking, got %v", body["transaction_amount"])
					}
					payer := body["payer"].(map[string]any)
					if payer["email"] != "sandbox@test.com" || payer["id"] != nil {
						t.Fatalf("expected sandbox payer mapping, got %v", payer)
					}
					return "pay-1", tc.providerStatus, tc.providerResp, nil
				},
			)

			repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.DepositPayment{})).DoAndReturn(
				func(_ context.Context, p entities.DepositPayment) (entities.DepositPayment, error) {
					if p.ID != "pay-1" || p.BookingID != "bk-1" || p.Status != tc.want || p.Amount != 4875 {
						t.Fatalf("unexpected payment: %+v", p)
					}
					if p.Date.IsZero() {
						t.Fatalf("date must be set")
					}
					return p, nil
				},
			)

			if tc.want == entities.PaymentStatusApproved {
				bookingRepo.EXPECT().UpdateStatusByID(gomock.Any(), "bk-1", entities.BookingStatusDepositPaid).
					Return(entities.Booking{ID: "bk-1", Status: entities.BookingStatusDepositPaid}, nil)
			}

			res, err := uc.CreateForBooking(context.Background(), "bk-1", json.RawMessage(`{"payment_method_id":"visa","transaction_amount":1,"payer":{"id":"123"}}`))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != tc.want {
				t.Fatalf("expected status %s, got %s", tc.want, res.Status)
			}
		})
	}

	t.Run("payer defaults to booking contact", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDepositPaymentRepository(ctrl)
		bookingRepo := mock_interfaces.NewMockIBookingRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewDepositPaymentUseCase(repo, bookingRepo, gateway, config.PaymentsConfig{MercadoPagoToken: "APP_USR-1"}, nil)

		bookingRepo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(awaitingBooking(50), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var body map[string]any
				_ = json.Unmarshal(payload, &body)
				payer := body["payer"].(map[string]any)
				if payer["email"] != "lead@example.fr" || payer["type"] != "customer" {
					t.Fatalf("unexpected payer %v", payer)
				}
				return "pay-2", "pending", json.RawMessage(`{}`), nil
			},
		)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.DepositPayment) (entities.DepositPayment, error) { return p, nil },
		)

		if _, err := uc.CreateForBooking(context.Background(), "bk-1", json.RawMessage(`{"payment_method_id":"visa"}`)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("repository create error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDepositPaymentRepository(ctrl)
		bookingRepo := mock_interfaces.NewMockIBookingRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewDepositPaymentUseCase(repo, bookingRepo, gateway, config.PaymentsConfig{}, nil)

		bookingRepo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(awaitingBooking(11), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("pay-1", "approved", json.RawMessage(`{"id":123}`), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.DepositPayment{}, errors.New("db-create"))

		_, err := uc.CreateForBooking(context.Background(), "bk-1", json.RawMessage(`{"payment_method_id":"visa","payer":{"email":"x@test.com"}}`))
		if err == nil || err.Error() != "db-create" {
			t.Fatalf("expected db-create error, got %v", err)
		}
	})

	t.Run("replayed payment id keeps the stored attempt", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDepositPaymentRepository(ctrl)
		bookingRepo := mock_interfaces.NewMockIBookingRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewDepositPaymentUseCase(repo, bookingRepo, gateway, config.PaymentsConfig{}, nil)

		stored := entities.DepositPayment{ID: "pay-1", BookingID: "bk-1", Amount: 11, Status: entities.PaymentStatusApproved}
		bookingRepo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(awaitingBooking(11), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("pay-1", "pending", json.RawMessage(`{"id":1}`), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.DepositPayment{}, interfaces.ErrDepositPaymentExists)
		repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(stored, nil)
		bookingRepo.EXPECT().UpdateStatusByID(gomock.Any(), "bk-1", entities.BookingStatusDepositPaid).Return(entities.Booking{ID: "bk-1"}, nil)

		res, err := uc.CreateForBooking(context.Background(), "bk-1", json.RawMessage(`{"payment_method_id":"visa","payer":{"email":"x@test.com"}}`))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Status != entities.PaymentStatusApproved {
			t.Fatalf("expected the stored status, got %+v", res)
		}
	})

	t.Run("replayed payment id of another booking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDepositPaymentRepository(ctrl)
		bookingRepo := mock_interfaces.NewMockIBookingRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewDepositPaymentUseCase(repo, bookingRepo, gateway, config.PaymentsConfig{}, nil)

		bookingRepo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(awaitingBooking(11), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("pay-1", "approved", json.RawMessage(`{"id":1}`), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.DepositPayment{}, interfaces.ErrDepositPaymentExists)
		repo.EXPECT().GetByID(gomock.Any(), "pay-1").Return(entities.DepositPayment{ID: "pay-1", BookingID: "bk-9"}, nil)

		_, err := uc.CreateForBooking(context.Background(), "bk-1", json.RawMessage(`{"payment_method_id":"visa","payer":{"email":"x@test.com"}}`))
		if !errors.Is(err, ErrDepositPaymentConflict) {
			t.Fatalf("expected ErrDepositPaymentConflict, got %v", err)
		}
	})

	t.Run("mock mode accepts an empty payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDepositPaymentRepository(ctrl)
		bookingRepo := mock_interfaces.NewMockIBookingRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewDepositPaymentUseCase(repo, bookingRepo, gateway, config.PaymentsConfig{Mock: true}, nil)

		bookingRepo.EXPECT().GetByID(gomock.Any(), "bk-1").Return(awaitingBooking(20), nil)
		gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("pay-3", "approved", json.RawMessage(`{"id":"pay-3"}`), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.DepositPayment) (entities.DepositPayment, error) { return p, nil },
		)
		bookingRepo.EXPECT().UpdateStatusByID(gomock.Any(), "bk-1", entities.BookingStatusDepositPaid).Return(entities.Booking{ID: "bk-1"}, nil)

		res, err := uc.CreateForBooking(context.Background(), "bk-1", nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.ID != "pay-3" {
			t.Fatalf("unexpected payment %+v", res)
		}
	})
}

func TestDepositPaymentUseCase_Getters(t *testing.T) {
	t.Run("GetByID invalid", func(t *testing.T) {
		uc := NewDepositPaymentUseCase(nil, nil, nil, config.PaymentsConfig{}, nil)
		_, err := uc.GetByID(context.Background(), "")
		if err == nil || err.Error() != "invalid payment id" {
			t.Fatalf("expected invalid payment id, got %v", err)
		}
	})

	t.Run("GetByID not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDepositPaymentRepository(ctrl)
		uc := NewDepositPaymentUseCase(repo, nil, nil, config.PaymentsConfig{}, nil)
		repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.DepositPayment{}, nil)

		_, err := uc.GetByID(context.Background(), "id-1")
		if !errors.Is(err, ErrDepositPaymentNotFound) {
			t.Fatalf("expected ErrDepositPaymentNotFound, got %v", err)
		}
	})

	t.Run("ListByBookingID invalid", func(t *testing.T) {
		uc := NewDepositPaymentUseCase(nil, nil, nil, config.PaymentsConfig{}, nil)
		_, err := uc.ListByBookingID(context.Background(), " ")
		if !errors.Is(err, ErrInvalidBookingID) {
			t.Fatalf("expected ErrInvalidBookingID, got %v", err)
		}
	})

	t.Run("LatestByBookingID picks the newest", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDepositPaymentRepository(ctrl)
		uc := NewDepositPaymentUseCase(repo, nil, nil, config.PaymentsConfig{}, nil)
		old := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		repo.EXPECT().ListByBookingID(gomock.Any(), "bk-1").Return([]entities.DepositPayment{
			{ID: "p-old", Date: old},
			{ID: "p-new", Date: old.Add(time.Hour)},
		}, nil)

		p, err := uc.LatestByBookingID(context.Background(), "bk-1")
		if err != nil || p.ID != "p-new" {
			t.Fatalf("expected p-new, got %+v err=%v", p, err)
		}
	})

	t.Run("LatestByBookingID none", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIDepositPaymentRepository(ctrl)
		uc := NewDepositPaymentUseCase(repo, nil, nil, config.PaymentsConfig{}, nil)
		repo.EXPECT().ListByBookingID(gomock.Any(), "bk-1").Return(nil, nil)

		_, err := uc.LatestByBookingID(context.Background(), "bk-1")
		if !errors.Is(err, ErrDepositPaymentNotFound) {
			t.Fatalf("expected ErrDepositPaymentNotFound, got %v", err)
		}
	})
}
