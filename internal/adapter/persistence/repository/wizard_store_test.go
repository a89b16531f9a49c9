package repository

import (
	"context"
	"testing"
	"time"

	"monhajj/internal/domain/entities"
	"monhajj/internal/domain/wizard"
)

func TestWizardMemoryStore(t *testing.T) {
	ctx := context.Background()

	t.Run("save and get", func(t *testing.T) {
		s := NewWizardMemoryStore(time.Hour)
		w, err := wizard.New("wiz-1", wizard.FlowPackage)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := w.SetNumberOfPeople(2); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := s.Save(ctx, w.State()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		got, err := s.Get(ctx, "wiz-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "wiz-1" || got.NumberOfPeople != 2 || len(got.Clients) != 2 {
			t.Fatalf("unexpected state %+v", got)
		}

		got.Clients[0] = entities.ClientRecord{FirstName: "changed"}
		again, _ := s.Get(ctx, "wiz-1")
		if again.Clients[0].FirstName != "" {
			t.Fatalf("stored state must not alias returned slices")
		}
	})

	t.Run("missing", func(t *testing.T) {
		s := NewWizardMemoryStore(time.Hour)
		got, err := s.Get(ctx, "nope")
		if err != nil || got.ID != "" {
			t.Fatalf("expected zero state, got %+v err=%v", got, err)
		}
	})

	t.Run("expiry", func(t *testing.T) {
		s := NewWizardMemoryStore(time.Minute)
		clock := time.Date(2027, 1, 1, 10, 0, 0, 0, time.UTC)
		s.now = func() time.Time { return clock }

		if err := s.Save(ctx, wizard.State{ID: "wiz-2", Flow: wizard.FlowRoom}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		clock = clock.Add(30 * time.Second)
		if got, _ := s.Get(ctx, "wiz-2"); got.ID != "wiz-2" {
			t.Fatalf("expected wizard before expiry")
		}
		clock = clock.Add(time.Minute)
		if got, _ := s.Get(ctx, "wiz-2"); got.ID != "" {
			t.Fatalf("expected wizard to expire")
		}
	})

	t.Run("save sweeps abandoned wizards", func(t *testing.T) {
		s := NewWizardMemoryStore(time.Minute)
		clock := time.Date(2027, 1, 1, 10, 0, 0, 0, time.UTC)
		s.now = func() time.Time { return clock }

		for _, id := range []string{"old-1", "old-2"} {
			if err := s.Save(ctx, wizard.State{ID: id, Flow: wizard.FlowRoom}); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		}
		clock = clock.Add(2 * time.Minute)
		if err := s.Save(ctx, wizard.State{ID: "fresh", Flow: wizard.FlowRoom}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		s.mu.Lock()
		defer s.mu.Unlock()
		if len(s.entries) != 1 {
			t.Fatalf("expected only the fresh wizard, got %d entries", len(s.entries))
		}
		if _, ok := s.entries["fresh"]; !ok {
			t.Fatalf("fresh wizard missing")
		}
	})
}

func TestWizardKeyAndDecode(t *testing.T) {
	if wizardKey("abc") != "wizard:abc" {
		t.Fatalf("unexpected key %q", wizardKey("abc"))
	}
	if _, err := decodeWizardState([]byte("{")); err == nil {
		t.Fatalf("expected decode error")
	}
	st, err := decodeWizardState([]byte(`{"id":"w","flow":"room","step":"payment"}`))
	if err != nil || st.Step != wizard.StepPayment {
		t.Fatalf("unexpected state %+v err=%v", st, err)
	}
}
