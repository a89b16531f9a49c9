package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"monhajj/internal/domain/wizard"
	"monhajj/internal/usecase/interfaces"

	"github.com/go-redis/redis/v8"
)

const wizardKeyPrefix = "wizard:"

// WizardRedisStore keeps wizard states as JSON under wizard:<id>. Every save
// pushes the expiry forward, so an abandoned wizard disappears after ttl.
type WizardRedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

var _ interfaces.IWizardStore = (*WizardRedisStore)(nil)

func NewWizardRedisStore(client *redis.Client, ttl time.Duration) *WizardRedisStore {
	return &WizardRedisStore{client: client, ttl: ttl}
}

func (s *WizardRedisStore) Save(ctx context.Context, st wizard.State) error {
	b, err := json.Marshal(st)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, wizardKey(st.ID), b, s.ttl).Err()
}

func (s *WizardRedisStore) Get(ctx context.Context, id string) (wizard.State, error) {
	b, err := s.client.Get(ctx, wizardKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return wizard.State{}, nil
	}
	if err != nil {
		return wizard.State{}, err
	}
	return decodeWizardState(b)
}

func wizardKey(id string) string {
	return wizardKeyPrefix + id
}

func decodeWizardState(b []byte) (wizard.State, error) {
	var st wizard.State
	if err := json.Unmarshal(b, &st); err != nil {
		return wizard.State{}, err
	}
	return st, nil
}
