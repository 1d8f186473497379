package session

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func TestSignInAndLogout(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := New(NewMemoryStore())

	if s.Authenticated(ctx) {
		t.Fatal("Authenticated before sign-in")
	}

	if err := s.SignIn(ctx, "tok", Profile{ID: "7", Email: "ana@example.com"}, RoleDriver); err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if !s.Authenticated(ctx) {
		t.Error("Authenticated: got false after sign-in")
	}
	if !s.IsDriver(ctx) || s.IsGuard(ctx) {
		t.Error("role checks do not match driver")
	}

	p, err := s.Profile(ctx)
	if err != nil || p == nil {
		t.Fatalf("Profile: got (%v, %v)", p, err)
	}
	if p.ID != "7" || p.Email != "ana@example.com" {
		t.Errorf("Profile: got %+v", p)
	}

	if err := s.Logout(ctx); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if s.Authenticated(ctx) {
		t.Error("Authenticated after logout")
	}
	if p, _ := s.Profile(ctx); p != nil {
		t.Errorf("Profile after logout: got %+v, want nil", p)
	}
}

func TestUserIDAcceptsNumberOrString(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewMemoryStore()
	s := New(store)

	for raw, want := range map[string]UserID{
		`{"id": 42}`:   "42",
		`{"id": "42"}`: "42",
		`{"id": null}`: "",
	} {
		if err := store.Set(ctx, KeyProfile, raw); err != nil {
			t.Fatal(err)
		}
		p, err := s.Profile(ctx)
		if err != nil {
			t.Fatalf("Profile(%s): %v", raw, err)
		}
		if p.ID != want {
			t.Errorf("Profile(%s).ID: got %q, want %q", raw, p.ID, want)
		}
	}
}

func TestActiveRouteSurvivesLogout(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	s := New(NewMemoryStore())

	start := time.Date(2025, 6, 9, 8, 0, 0, 0, time.UTC)
	route := ActiveRoute{ID: 3, Plate: "AB1234", RouteName: "Colón", StartTime: start}
	if err := s.SetActiveRoute(ctx, route); err != nil {
		t.Fatalf("SetActiveRoute: %v", err)
	}
	if err := s.Logout(ctx); err != nil {
		t.Fatalf("Logout: %v", err)
	}

	got, err := s.ActiveRoute(ctx)
	if err != nil || got == nil {
		t.Fatalf("ActiveRoute: got (%v, %v)", got, err)
	}
	if got.ID != 3 || !got.StartTime.Equal(start) {
		t.Errorf("ActiveRoute: got %+v", got)
	}

	if err := s.ClearActiveRoute(ctx); err != nil {
		t.Fatalf("ClearActiveRoute: %v", err)
	}
	if got, _ := s.ActiveRoute(ctx); got != nil {
		t.Errorf("ActiveRoute after clear: got %+v, want nil", got)
	}
}

func TestActiveRouteIgnoresBrokenBlob(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := NewMemoryStore()
	s := New(store)

	for _, raw := range []string{"{not json", `{"id": 1}`} {
		_ = store.Set(ctx, KeyActiveRoute, raw)
		got, err := s.ActiveRoute(ctx)
		if err != nil || got != nil {
			t.Errorf("ActiveRoute(%q): got (%v, %v), want (nil, nil)", raw, got, err)
		}
	}
}

type failingStore struct {
	*MemoryStore
	failKey string
}

func (s *failingStore) Set(ctx context.Context, key, value string) error {
	if key == s.failKey {
		return errors.New("disk full")
	}
	return s.MemoryStore.Set(ctx, key, value)
}

func TestSignInPartialWrite(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	store := &failingStore{MemoryStore: NewMemoryStore(), failKey: KeyRole}
	s := New(store)

	if err := s.SignIn(ctx, "tok", Profile{ID: "1"}, RoleGuard); err == nil {
		t.Fatal("SignIn: expected error")
	}
	// The token and profile were written before the role failed.
	if !s.Authenticated(ctx) {
		t.Error("token should remain after the role write failed")
	}
	if s.IsGuard(ctx) {
		t.Error("role should not be stored")
	}
}

func TestFileStore(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "session.json")

	store := NewFileStore(path)
	if _, ok, err := store.Get(ctx, KeyToken); err != nil || ok {
		t.Fatalf("Get on missing file: got (ok=%v, err=%v)", ok, err)
	}
	if err := store.Set(ctx, KeyToken, "abc"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	reopened := NewFileStore(path)
	v, ok, err := reopened.Get(ctx, KeyToken)
	if err != nil || !ok || v != "abc" {
		t.Errorf("Get after reopen: got (%q, %v, %v), want (abc, true, nil)", v, ok, err)
	}

	if err := reopened.Delete(ctx, KeyToken); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok, _ := store.Get(ctx, KeyToken); ok {
		t.Error("Get after delete: key still present")
	}
}
