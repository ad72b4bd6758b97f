package preference

import (
	"errors"
	"testing"
)

type failingStore struct{}

func (failingStore) Load() (Theme, bool, error) { return "", false, errors.New("disk gone") }
func (failingStore) Save(Theme) error { return errors.New("disk gone") }

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Theme
		wantErr bool
	}{
		{"light", Light, false},
		{"DARK", Dark, false},
		{" dark ", Dark, false},
		{"sepia", "", true},
		{"", "", true},
	}
	for _, tc := range testCases {
		got, err := Parse(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("Parse(%q): unexpected error state %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("Parse(%q): expected %q, got %q", tc.in, tc.want, got)
		}
	}
}

func TestResolve(t *testing.T) {
	testCases := []struct {
		name       string
		stored     Theme
		systemDark bool
		want       Theme
	}{
		{"nothing stored, light system", "", false, Light},
		{"nothing stored, dark system", "", true, Dark},
		{"stored light wins over dark system", Light, true, Light},
		{"stored dark wins over light system", Dark, false, Dark},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			store := &MemoryStore{}
			if tc.stored != "" {
				_ = store.Save(tc.stored)
			}
			got, err := NewService(store).Resolve(tc.systemDark)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("Expected %s, got %s", tc.want, got)
			}
		})
	}
}

func TestToggleTwiceRestoresPreference(t *testing.T) {
	store := &MemoryStore{}
	_ = store.Save(Dark)
	svc := NewService(store)
	if _, err := svc.Resolve(false); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	originalClass := svc.Theme().Class()

	first, _ := svc.Toggle()
	if first != Light {
		t.Errorf("Expected light after first toggle, got %s", first)
	}
	if stored, _, _ := store.Load(); stored != Light {
		t.Errorf("Expected light persisted, got %s", stored)
	}

	second, _ := svc.Toggle()
	stored, _, _ := store.Load()
	if second != Dark || stored != Dark {
		t.Errorf("Expected dark restored, got %s (stored %s)", second, stored)
	}
	if svc.Theme().Class() != originalClass {
		t.Errorf("Expected class %q restored, got %q", originalClass, svc.Theme().Class())
	}
	if store.Saves() != 3 {
		t.Errorf("Expected a save per change, got %d saves", store.Saves())
	}
}

func TestResolveWithFailingStore(t *testing.T) {
	svc := NewService(failingStore{})
	got, err := svc.Resolve(true)
	if err == nil {
		t.Error("Expected the store error")
	}
	if got != Dark {
		t.Errorf("Expected system preference fallback, got %s", got)
	}
	if _, err := svc.Toggle(); err == nil {
		t.Error("Expected the save error")
	}
	if svc.Theme() != Light {
		t.Errorf("Expected in-memory theme to flip even when saving fails, got %s", svc.Theme())
	}
}

func TestStoredTracksOrigin(t *testing.T) {
	store := &MemoryStore{}
	svc := NewService(store)
	if _, err := svc.Resolve(true); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if svc.Stored() {
		t.Error("Expected the system preference, not a stored theme")
	}
	if _, err := svc.Toggle(); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !svc.Stored() {
		t.Error("Expected the theme to be stored after a toggle")
	}

	again := NewService(store)
	if _, err := again.Resolve(true); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if !again.Stored() || again.Theme() != Light {
		t.Errorf("Expected stored light, got stored=%v %s", again.Stored(), again.Theme())
	}
}
