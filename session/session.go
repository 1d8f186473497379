// Package session keeps the signed-in user's client state: the auth token, the
// decoded profile, the role and the route currently being driven.
package session

import (
	"context"
	"fmt"
	"github.com/goccy/go-json"
	"strconv"
	"strings"
	"time"
)

const (
	KeyToken       = "token"
	KeyProfile     = "decodedToken"
	KeyRole        = "userRole"
	KeyActiveRoute = "ruta_en_proceso"
)

const (
	RoleAdmin  = "admin"
	RoleGuard  = "guard"
	RoleDriver = "driver"
)

// UserID accepts the id either as a JSON number or a JSON string.
type UserID string

func (id *UserID) UnmarshalJSON(data []byte) error {
	var v interface{}
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch val := v.(type) {
	case nil:
		*id = ""
	case string:
		*id = UserID(val)
	case float64:
		*id = UserID(strconv.FormatFloat(val, 'f', -1, 64))
	default:
		return fmt.Errorf("UserID: unexpected type %T", v)
	}
	return nil
}

func (id UserID) String() string {
	return string(id)
}

type Profile struct {
	ID        UserID `json:"id"`
	Email     string `json:"user_email,omitempty"`
	FirstName string `json:"user_firstname,omitempty"`
	LastName  string `json:"user_lastname,omitempty"`
}

// ActiveRoute is the route being driven right now. StartTime anchors the
// elapsed-time display.
type ActiveRoute struct {
	ID             int64     `json:"id"`
	VehicleID      int64     `json:"vehicle_id"`
	Plate          string    `json:"placa"`
	RouteName      string    `json:"route_name"`
	DriverName     string    `json:"driver_name"`
	DriverLastname string    `json:"driver_lastname"`
	StartTime      time.Time `json:"startTime"`
}

type Session struct {
	store Store
}

func New(store Store) *Session {
	return &Session{store: store}
}

func (s *Session) Token(ctx context.Context) (string, error) {
	token, _, err := s.store.Get(ctx, KeyToken)
	return token, err
}

func (s *Session) Role(ctx context.Context) (string, error) {
	role, _, err := s.store.Get(ctx, KeyRole)
	return role, err
}

// Profile returns nil when nobody is signed in.
func (s *Session) Profile(ctx context.Context) (*Profile, error) {
	raw, ok, err := s.store.Get(ctx, KeyProfile)
	if err != nil || !ok || raw == "" {
		return nil, err
	}

	var p Profile
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return nil, fmt.Errorf("failed to decode stored profile: %w", err)
	}
	return &p, nil
}

// SignIn stores the three sign-in keys one after another. A failure leaves the
// keys written so far in place.
func (s *Session) SignIn(ctx context.Context, token string, profile Profile, role string) error {
	blob, err := json.Marshal(profile)
	if err != nil {
		return err
	}

	if err := s.store.Set(ctx, KeyToken, token); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}
	if err := s.store.Set(ctx, KeyProfile, string(blob)); err != nil {
		return fmt.Errorf("failed to store profile: %w", err)
	}
	if err := s.store.Set(ctx, KeyRole, role); err != nil {
		return fmt.Errorf("failed to store role: %w", err)
	}
	return nil
}

// Logout removes the sign-in keys. The route in progress is kept so the driver
// can resume after signing back in.
func (s *Session) Logout(ctx context.Context) error {
	for _, key := range []string{KeyToken, KeyProfile, KeyRole} {
		if err := s.store.Delete(ctx, key); err != nil {
			return fmt.Errorf("failed to remove %s: %w", key, err)
		}
	}
	return nil
}

func (s *Session) Authenticated(ctx context.Context) bool {
	token, err := s.Token(ctx)
	return err == nil && token != ""
}

func (s *Session) hasRole(ctx context.Context, want string) bool {
	role, err := s.Role(ctx)
	return err == nil && strings.EqualFold(role, want)
}

func (s *Session) IsGuard(ctx context.Context) bool {
	return s.hasRole(ctx, RoleGuard)
}

func (s *Session) IsDriver(ctx context.Context) bool {
	return s.hasRole(ctx, RoleDriver)
}

// ActiveRoute returns nil when no route is in progress or the stored blob is
// unreadable.
func (s *Session) ActiveRoute(ctx context.Context) (*ActiveRoute, error) {
	raw, ok, err := s.store.Get(ctx, KeyActiveRoute)
	if err != nil || !ok || raw == "" {
		return nil, err
	}

	var r ActiveRoute
	if err := json.Unmarshal([]byte(raw), &r); err != nil || r.StartTime.IsZero() {
		return nil, nil
	}
	return &r, nil
}

func (s *Session) SetActiveRoute(ctx context.Context, route ActiveRoute) error {
	blob, err := json.Marshal(route)
	if err != nil {
		return err
	}
	return s.store.Set(ctx, KeyActiveRoute, string(blob))
}

func (s *Session) ClearActiveRoute(ctx context.Context) error {
	return s.store.Delete(ctx, KeyActiveRoute)
}
