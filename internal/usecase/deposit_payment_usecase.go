package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"monhajj/internal/config"
	"monhajj/internal/domain/entities"
	"monhajj/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrDepositPaymentNotFound         = errors.New("deposit payment not found")
	ErrInvalidMPPayload               = errors.New("invalid mercado pago payload")
	ErrBookingNotAwaitingPayment      = errors.New("booking is not awaiting its deposit")
	ErrDepositPaymentConflict         = errors.New("payment id already recorded for another booking")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// IDepositPaymentUseCase captures booking deposits through Mercado Pago.
//
// The amount charged is always the deposit stored on the booking; whatever
// transaction_amount the caller sends is overwritten.
type IDepositPaymentUseCase interface {
	CreateForBooking(ctx context.Context, bookingID string, mpPayload json.RawMessage) (entities.DepositPayment, error)
	GetByID(ctx context.Context, id string) (entities.DepositPayment, error)
	ListByBookingID(ctx context.Context, bookingID string) ([]entities.DepositPayment, error)
	LatestByBookingID(ctx context.Context, bookingID string) (entities.DepositPayment, error)
}

type DepositPaymentUseCase struct {
	repo        interfaces.IDepositPaymentRepository
	bookingRepo interfaces.IBookingRepository
	gateway     interfaces.IPaymentGateway
	settings    config.PaymentsConfig
	logger      *zap.Logger
}

var _ IDepositPaymentUseCase = (*DepositPaymentUseCase)(nil)

func NewDepositPaymentUseCase(
	repo interfaces.IDepositPaymentRepository,
	bookingRepo interfaces.IBookingRepository,
	gateway interfaces.IPaymentGateway,
	settings config.PaymentsConfig,
	logger *zap.Logger,
) *DepositPaymentUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DepositPaymentUseCase{repo: repo, bookingRepo: bookingRepo, gateway: gateway, settings: settings, logger: logger}
}

func (u *DepositPaymentUseCase) CreateForBooking(ctx context.Context, bookingID string, mpPayload json.RawMessage) (entities.DepositPayment, error) {
	mockMode := u.settings.Mock
	bookingID = strings.TrimSpace(bookingID)
	log := u.logger.With(zap.String("booking_id", bookingID))
	log.Info("deposit payment start", zap.Int("payload_len", len(mpPayload)), zap.Bool("mock", mockMode))

	if bookingID == "" {
		return entities.DepositPayment{}, ErrInvalidBookingID
	}
	if len(mpPayload) == 0 || !json.Valid(mpPayload) {
		if !mockMode {
			log.Warn("invalid payload")
			return entities.DepositPayment{}, ErrInvalidMPPayload
		}
		mpPayload = json.RawMessage("{}")
	}
	if u.gateway == nil {
		return entities.DepositPayment{}, errors.New("payment gateway not configured")
	}
	if u.bookingRepo == nil {
		return entities.DepositPayment{}, errors.New("booking repository not configured")
	}

	b, err := u.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		log.Error("failed loading booking", zap.Error(err))
		return entities.DepositPayment{}, err
	}
	if b.ID == "" {
		return entities.DepositPayment{}, ErrBookingNotFound
	}
	if b.Status != entities.BookingStatusAwaitingPayment {
		log.Warn("booking not awaiting payment", zap.String("status", string(b.Status)))
		return entities.DepositPayment{}, ErrBookingNotAwaitingPayment
	}

	var reqMap map[string]any
	if err := json.Unmarshal(mpPayload, &reqMap); err != nil || reqMap == nil {
		return entities.DepositPayment{}, ErrInvalidMPPayload
	}
	if !mockMode {
		if !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Warn("missing payment_method_id")
			return entities.DepositPayment{}, ErrInvalidMPPayload
		}
		u.normalizeSandboxPayer(reqMap)
		u.ensurePayerDefaults(reqMap, b.ContactEmail())
		if !hasPayer(reqMap) {
			log.Warn("missing or invalid payer")
			return entities.DepositPayment{}, ErrInvalidMPPayload
		}
	}
	if _, ok := reqMap["external_reference"]; !ok {
		reqMap["external_reference"] = b.ID
	}
	if _, ok := reqMap["description"]; !ok {
		reqMap["description"] = fmt.Sprintf("Acompte réservation %s", b.ID)
	}
	reqMap["transaction_amount"] = b.PaymentAmount
	enriched, err := json.Marshal(reqMap)
	if err != nil {
		return entities.DepositPayment{}, err
	}

	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, enriched)
	err = classifyGatewayError(err)
	if err != nil {
		log.Error("payment gateway failed", zap.Error(err))
		return entities.DepositPayment{}, err
	}
	log = log.With(zap.String("provider_payment_id", providerPaymentID), zap.String("provider_status", providerStatus))

	var parsed map[string]interface{}
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		log.Warn("provider response unmarshal failed", zap.Error(err))
	}

	p := entities.DepositPayment{
		ID:           providerPaymentID,
		BookingID:    b.ID,
		Amount:       b.PaymentAmount,
		Date:         time.Now().UTC(),
		Status:       paymentStatusFromProvider(providerStatus),
		MPPayloadRaw: providerResp,
		MPPayload:    parsed,
	}
	created, err := u.repo.Create(ctx, p)
	if errors.Is(err, interfaces.ErrDepositPaymentExists) {
		created, err = u.recordedPayment(ctx, log, p)
	}
	if err != nil {
		log.Error("deposit payment create failed", zap.Error(err))
		return entities.DepositPayment{}, err
	}

	if created.Status == entities.PaymentStatusApproved {
		if _, err := u.bookingRepo.UpdateStatusByID(ctx, b.ID, entities.BookingStatusDepositPaid); err != nil {
			log.Error("booking status update failed", zap.Error(err))
			return entities.DepositPayment{}, err
		}
	}
	log.Info("deposit payment success", zap.String("status", string(created.Status)))
	return created, nil
}

// recordedPayment resolves a provider payment id that was already stored. The
// stored attempt wins so a replay never rewrites its status or amount.
func (u *DepositPaymentUseCase) recordedPayment(ctx context.Context, log *zap.Logger, p entities.DepositPayment) (entities.DepositPayment, error) {
	stored, err := u.repo.GetByID(ctx, p.ID)
	if err != nil {
		return entities.DepositPayment{}, err
	}
	if stored.ID == "" {
		return entities.DepositPayment{}, ErrDepositPaymentNotFound
	}
	if stored.BookingID != p.BookingID {
		return entities.DepositPayment{}, ErrDepositPaymentConflict
	}
	log.Warn("deposit payment already recorded", zap.String("stored_status", string(stored.Status)))
	return stored, nil
}

func (u *DepositPaymentUseCase) GetByID(ctx context.Context, id string) (entities.DepositPayment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.DepositPayment{}, errors.New("invalid payment id")
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.DepositPayment{}, err
	}
	if p.ID == "" {
		return entities.DepositPayment{}, ErrDepositPaymentNotFound
	}
	return p, nil
}

func (u *DepositPaymentUseCase) ListByBookingID(ctx context.Context, bookingID string) ([]entities.DepositPayment, error) {
	bookingID = strings.TrimSpace(bookingID)
	if bookingID == "" {
		return nil, ErrInvalidBookingID
	}
	return u.repo.ListByBookingID(ctx, bookingID)
}

// LatestByBookingID returns the most recent payment attempt of a booking.
func (u *DepositPaymentUseCase) LatestByBookingID(ctx context.Context, bookingID string) (entities.DepositPayment, error) {
	items, err := u.ListByBookingID(ctx, bookingID)
	if err != nil {
		return entities.DepositPayment{}, err
	}
	if len(items) == 0 {
		return entities.DepositPayment{}, ErrDepositPaymentNotFound
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].Date.After(items[j].Date) })
	return items[0], nil
}

func (u *DepositPaymentUseCase) sandbox() bool {
	return strings.HasPrefix(strings.TrimSpace(u.settings.MercadoPagoToken), "TEST-")
}

// ensurePayerDefaults fills payer.email from the booking contact when the
// caller sent neither an id nor an email.
func (u *DepositPaymentUseCase) ensurePayerDefaults(m map[string]any, contactEmail string) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	switch {
	case u.sandbox() && u.settings.SandboxPayerEmail != "":
		payer["email"] = u.settings.SandboxPayerEmail
	case contactEmail != "":
		payer["email"] = contactEmail
	}
}

// normalizeSandboxPayer swaps the configured sandbox test user id for its
// email, which is what the sandbox accepts.
func (u *DepositPaymentUseCase) normalizeSandboxPayer(m map[string]any) {
	payer, ok := m["payer"].(map[string]any)
	if !ok || !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if !u.sandbox() || u.settings.SandboxPayerTestUser == "" || u.settings.SandboxPayerEmail == "" {
		return
	}
	if strings.TrimSpace(fmt.Sprintf("%v", payer["id"])) != u.settings.SandboxPayerTestUser {
		return
	}
	payer["email"] = u.settings.SandboxPayerEmail
	delete(payer, "id")
	u.logger.Debug("mapped sandbox payer user id to email")
}

func paymentStatusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusRejected
	}
	return entities.PaymentStatusPending
}

func classifyGatewayError(err error) error {
	switch {
	case err == nil:
		return nil
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	s, ok := m[key].(string)
	return ok && strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	payer, ok := m["payer"].(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func gatewayErrorContains(err error, needles ...string) bool {
	msg := strings.ToLower(err.Error())
	for _, n := range needles {
		if strings.Contains(msg, n) {
			return true
		}
	}
	return false
}

func isGatewayBadRequest(err error) bool {
	return gatewayErrorContains(err, `"error":"bad_request"`, `"status":400`)
}

func isGatewayUnauthorized(err error) bool {
	return gatewayErrorContains(err, `"error":"unauthorized"`, `"status":401`)
}

func isGatewayInvalidUsers(err error) bool {
	return gatewayErrorContains(err, "invalid users involved", `"code":2034`)
}

func isGatewayCustomerNotFound(err error) bool {
	return gatewayErrorContains(err, "customer not found", `"code":2002`)
}
