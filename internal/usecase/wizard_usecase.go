package usecase

import (
	"context"
	"errors"
	"strings"

	"monhajj/internal/domain/entities"
	"monhajj/internal/domain/wizard"
	"monhajj/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrWizardNotFound  = errors.New("booking wizard not found")
	ErrInvalidWizardID = errors.New("invalid wizard id")
)

// IWizardUseCase drives booking wizards stored between requests. Every
// command loads the wizard, applies one transition and saves it back; the
// returned wizard reflects the stored state even when the command fails.
type IWizardUseCase interface {
	Start(ctx context.Context, flow wizard.Flow) (*wizard.Wizard, error)
	Get(ctx context.Context, id string) (*wizard.Wizard, error)
	SelectOffering(ctx context.Context, id, offeringID string) (*wizard.Wizard, error)
	SelectRoomType(ctx context.Context, id string, rt entities.RoomType) (*wizard.Wizard, error)
	SetNumberOfPeople(ctx context.Context, id string, n int) (*wizard.Wizard, error)
	UpdateClient(ctx context.Context, id string, index int, rec entities.ClientRecord) (*wizard.Wizard, error)
	SelectPaymentOption(ctx context.Context, id string, fraction float64) (*wizard.Wizard, error)
	Advance(ctx context.Context, id string) (*wizard.Wizard, error)
	Retreat(ctx context.Context, id string) (*wizard.Wizard, error)
}

type WizardUseCase struct {
	store     interfaces.IWizardStore
	catalog   ICatalogUseCase
	submitter wizard.Submitter
	logger    *zap.Logger
}

var _ IWizardUseCase = (*WizardUseCase)(nil)

func NewWizardUseCase(store interfaces.IWizardStore, catalog ICatalogUseCase, submitter wizard.Submitter, logger *zap.Logger) *WizardUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WizardUseCase{store: store, catalog: catalog, submitter: submitter, logger: logger}
}

func (u *WizardUseCase) Start(ctx context.Context, flow wizard.Flow) (*wizard.Wizard, error) {
	w, err := wizard.New(uuid.NewString(), flow)
	if err != nil {
		return nil, err
	}
	if err := u.store.Save(ctx, w.State()); err != nil {
		u.logger.Error("wizard save failed", zap.String("wizard_id", w.ID()), zap.Error(err))
		return nil, err
	}
	u.logger.Info("wizard started", zap.String("wizard_id", w.ID()), zap.String("flow", string(flow)))
	return w, nil
}

func (u *WizardUseCase) Get(ctx context.Context, id string) (*wizard.Wizard, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrInvalidWizardID
	}
	s, err := u.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.ID == "" {
		return nil, ErrWizardNotFound
	}
	return wizard.Restore(s)
}

func (u *WizardUseCase) SelectOffering(ctx context.Context, id, offeringID string) (*wizard.Wizard, error) {
	o, err := u.catalog.GetOffering(ctx, offeringID)
	if err != nil {
		return nil, err
	}
	return u.apply(ctx, id, "select_offering", func(w *wizard.Wizard) error {
		return w.SelectOffering(o)
	})
}

func (u *WizardUseCase) SelectRoomType(ctx context.Context, id string, rt entities.RoomType) (*wizard.Wizard, error) {
	return u.apply(ctx, id, "select_room_type", func(w *wizard.Wizard) error {
		return w.SelectRoomType(rt)
	})
}

func (u *WizardUseCase) SetNumberOfPeople(ctx context.Context, id string, n int) (*wizard.Wizard, error) {
	return u.apply(ctx, id, "set_number_of_people", func(w *wizard.Wizard) error {
		return w.SetNumberOfPeople(n)
	})
}

func (u *WizardUseCase) UpdateClient(ctx context.Context, id string, index int, rec entities.ClientRecord) (*wizard.Wizard, error) {
	return u.apply(ctx, id, "update_client", func(w *wizard.Wizard) error {
		return w.UpdateClient(index, rec)
	})
}

func (u *WizardUseCase) SelectPaymentOption(ctx context.Context, id string, fraction float64) (*wizard.Wizard, error) {
	return u.apply(ctx, id, "select_payment_option", func(w *wizard.Wizard) error {
		return w.SelectPaymentOption(fraction)
	})
}

func (u *WizardUseCase) Advance(ctx context.Context, id string) (*wizard.Wizard, error) {
	return u.apply(ctx, id, "advance", func(w *wizard.Wizard) error {
		receipt, err := w.Advance(ctx, u.submitter)
		if receipt != nil {
			u.logger.Info("wizard submitted",
				zap.String("wizard_id", w.ID()),
				zap.String("booking_id", receipt.BookingID))
		}
		return err
	})
}

func (u *WizardUseCase) Retreat(ctx context.Context, id string) (*wizard.Wizard, error) {
	return u.apply(ctx, id, "retreat", func(w *wizard.Wizard) error {
		return w.Retreat()
	})
}

// apply runs one transition. A rejected transition leaves the wizard as it
// was, so nothing is written back.
func (u *WizardUseCase) apply(ctx context.Context, id, op string, fn func(*wizard.Wizard) error) (*wizard.Wizard, error) {
	w, err := u.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	log := u.logger.With(zap.String("wizard_id", w.ID()), zap.String("op", op))

	if err := fn(w); err != nil {
		log.Info("wizard command rejected", zap.String("step", string(w.Step())), zap.Error(err))
		return w, err
	}
	if err := u.store.Save(ctx, w.State()); err != nil {
		log.Error("wizard save failed", zap.Error(err))
		return nil, err
	}
	log.Debug("wizard command applied", zap.String("step", string(w.Step())))
	return w, nil
}
