package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"monhajj/internal/domain/entities"
	"monhajj/internal/domain/wizard"
	"monhajj/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrBookingNotFound      = errors.New("booking not found")
	ErrBookingAlreadyExists = interfaces.ErrBookingExists
	ErrInvalidBookingID     = errors.New("invalid booking id")
	ErrInvalidEmail         = errors.New("invalid email")
	ErrInvalidSubmission    = errors.New("invalid booking submission")
	ErrBookingAmountChanged = errors.New("booking already submitted with another deposit")
)

// AmountChangedError is returned when a wizard is submitted again with a
// deposit that differs from the one already stored for its booking.
type AmountChangedError struct {
	Stored    float64
	Requested float64
}

func (e *AmountChangedError) Error() string {
	return fmt.Sprintf("%v: stored %.2f, requested %.2f", ErrBookingAmountChanged, e.Stored, e.Requested)
}

func (e *AmountChangedError) Unwrap() error { return ErrBookingAmountChanged }

func (e *AmountChangedError) PublicMessage() string {
	return fmt.Sprintf("this booking was already submitted with a deposit of %.2f, select that payment option again", e.Stored)
}

// bookingNamespace scopes the booking ids derived from wizard ids.
var bookingNamespace = uuid.MustParse("5d0c8f3e-7b1a-4c52-9a57-1f2e3b4c5d6e")

// IBookingUseCase turns submitted wizards into persisted bookings.
//
// Submit is the wizard's submission collaborator: it opens a payment intent
// for the deposit and stores the booking as awaiting payment. Submitting the
// same wizard twice yields the same booking and the same payment intent.
type IBookingUseCase interface {
	wizard.Submitter
	GetByID(ctx context.Context, id string) (entities.Booking, error)
	ListByEmail(ctx context.Context, email string) ([]entities.Booking, error)
}

type BookingUseCase struct {
	repo     interfaces.IBookingRepository
	intents  interfaces.IPaymentIntentGateway
	currency string
	logger   *zap.Logger
}

var _ IBookingUseCase = (*BookingUseCase)(nil)

func NewBookingUseCase(repo interfaces.IBookingRepository, intents interfaces.IPaymentIntentGateway, currency string, logger *zap.Logger) *BookingUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BookingUseCase{repo: repo, intents: intents, currency: currency, logger: logger}
}

// BookingIDForWizard derives the booking id of a wizard.
func BookingIDForWizard(wizardID string) string {
	return uuid.NewSHA1(bookingNamespace, []byte(wizardID)).String()
}

func (u *BookingUseCase) Submit(ctx context.Context, p wizard.Payload) (wizard.Receipt, error) {
	log := u.logger.With(zap.String("wizard_id", p.WizardID))
	log.Info("booking submission start",
		zap.String("offering_id", p.Offering.ID),
		zap.Int("number_of_people", p.NumberOfPeople),
		zap.Float64("total_price", p.TotalPrice),
		zap.Float64("payment_amount", p.PaymentAmount))

	if strings.TrimSpace(p.WizardID) == "" || p.Offering.ID == "" || p.PaymentAmount <= 0 || len(p.Clients) != p.NumberOfPeople {
		log.Warn("booking submission rejected")
		return wizard.Receipt{}, ErrInvalidSubmission
	}
	if u.intents == nil {
		return wizard.Receipt{}, errors.New("payment intent gateway not configured")
	}
	if u.repo == nil {
		return wizard.Receipt{}, errors.New("booking repository not configured")
	}

	bookingID := BookingIDForWizard(p.WizardID)
	log = log.With(zap.String("booking_id", bookingID))

	stored, err := u.repo.GetByID(ctx, bookingID)
	if err != nil {
		log.Error("booking lookup failed", zap.Error(err))
		return wizard.Receipt{}, err
	}
	if stored.ID != "" {
		return u.storedReceipt(log, stored, p)
	}

	contact := p.Clients[0]
	cents := toCents(p.PaymentAmount)
	intent, err := u.intents.CreatePaymentIntent(ctx, interfaces.PaymentIntentRequest{
		AmountCents:    cents,
		Currency:       u.currency,
		Description:    fmt.Sprintf("Acompte %s (%d pers.)", p.Offering.Title, p.NumberOfPeople),
		ReceiptEmail:   contact.Email,
		IdempotencyKey: IdempotencyKey(p.WizardID, cents),
		Metadata: map[string]string{
			"booking_id":  bookingID,
			"wizard_id":   p.WizardID,
			"offering_id": p.Offering.ID,
		},
	})
	if err != nil {
		log.Error("payment intent creation failed", zap.Error(err))
		return wizard.Receipt{}, err
	}
	log = log.With(zap.String("payment_intent_id", intent.ID))

	now := time.Now().UTC()
	b := entities.Booking{
		ID:                  bookingID,
		WizardID:            p.WizardID,
		Flow:                string(p.Flow),
		OfferingID:          p.Offering.ID,
		TravelType:          p.Offering.TravelType,
		Category:            p.Offering.Category,
		RoomType:            p.RoomType,
		NumberOfPeople:      p.NumberOfPeople,
		Clients:             p.Clients,
		TotalPrice:          p.TotalPrice,
		PaymentFraction:     p.PaymentFraction,
		PaymentAmount:       p.PaymentAmount,
		RemainingAmount:     p.RemainingAmount,
		Currency:            u.currency,
		PaymentIntentID:     intent.ID,
		PaymentClientSecret: intent.ClientSecret,
		Status:              entities.BookingStatusAwaitingPayment,
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if _, err := u.repo.Create(ctx, b); err != nil {
		if !errors.Is(err, ErrBookingAlreadyExists) {
			log.Error("booking create failed", zap.Error(err))
			return wizard.Receipt{}, err
		}
		// Lost a race with a concurrent submission of the same wizard.
		stored, err := u.repo.GetByID(ctx, bookingID)
		if err != nil {
			log.Error("booking lookup failed", zap.Error(err))
			return wizard.Receipt{}, err
		}
		if stored.ID == "" {
			return wizard.Receipt{}, ErrBookingNotFound
		}
		return u.storedReceipt(log, stored, p)
	}

	log.Info("booking submission success")
	return wizard.Receipt{
		BookingID:       bookingID,
		PaymentIntentID: intent.ID,
		ClientSecret:    intent.ClientSecret,
		SubmittedAt:     now,
	}, nil
}

// storedReceipt answers a resubmission from the booking already stored. The
// deposit must match; the stored payment intent is the one the traveler pays.
func (u *BookingUseCase) storedReceipt(log *zap.Logger, stored entities.Booking, p wizard.Payload) (wizard.Receipt, error) {
	if toCents(stored.PaymentAmount) != toCents(p.PaymentAmount) {
		log.Warn("booking resubmitted with another deposit",
			zap.Float64("stored_payment_amount", stored.PaymentAmount),
			zap.Float64("payment_amount", p.PaymentAmount))
		return wizard.Receipt{}, &AmountChangedError{Stored: stored.PaymentAmount, Requested: p.PaymentAmount}
	}
	log.Info("booking already stored for wizard", zap.String("payment_intent_id", stored.PaymentIntentID))
	return wizard.Receipt{
		BookingID:       stored.ID,
		PaymentIntentID: stored.PaymentIntentID,
		ClientSecret:    stored.PaymentClientSecret,
		SubmittedAt:     stored.CreatedAt,
	}, nil
}

// IdempotencyKey is the payment provider key of a wizard's deposit. The
// amount is part of it so a different deposit never collides with an old one.
func IdempotencyKey(wizardID string, cents int64) string {
	return fmt.Sprintf("booking-%s-%d", wizardID, cents)
}

func (u *BookingUseCase) GetByID(ctx context.Context, id string) (entities.Booking, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Booking{}, ErrInvalidBookingID
	}

	b, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Booking{}, err
	}
	if b.ID == "" {
		return entities.Booking{}, ErrBookingNotFound
	}
	return b, nil
}

func (u *BookingUseCase) ListByEmail(ctx context.Context, email string) ([]entities.Booking, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, ErrInvalidEmail
	}
	return u.repo.ListByEmail(ctx, email)
}

func toCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}
