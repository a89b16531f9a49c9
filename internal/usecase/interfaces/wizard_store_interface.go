package interfaces

import (
	"context"

	"monhajj/internal/domain/wizard"
)

// IWizardStore keeps booking wizards between requests. Get returns a zero
// State (empty ID) when the wizard does not exist or has expired.
type IWizardStore interface {
	Save(ctx context.Context, s wizard.State) error
	Get(ctx context.Context, id string) (wizard.State, error)
}
