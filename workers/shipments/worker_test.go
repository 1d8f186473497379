package shipments

import (
	"context"
	"errors"
	"fleet-dashboard-service/api"
	"fleet-dashboard-service/session"
	"fleet-dashboard-service/workers/shipments/models"
	"go.uber.org/zap"
	"sync"
	"testing"
	"time"
)

type memoryStore struct {
	mu        sync.Mutex
	statuses  map[string]models.ShipmentStatus
	shipments map[string]models.Shipment
	saves     int
	lookups   int
}

func newMemoryStore() *memoryStore {
	s := &memoryStore{
		statuses:  map[string]models.ShipmentStatus{},
		shipments: map[string]models.Shipment{},
	}
	for i, status := range models.KnownStatuses() {
		status.ID = uint(i + 1)
		s.statuses[status.Key] = status
	}
	return s
}

func (s *memoryStore) GetStatus(key string) (models.ShipmentStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lookups++
	if status, ok := s.statuses[key]; ok {
		return status, nil
	}
	status := models.ShipmentStatus{ID: uint(len(s.statuses) + 1), Key: key, Label: key}
	s.statuses[key] = status
	return status, nil
}

func (s *memoryStore) FindByCode(code string) (*models.Shipment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sh, ok := s.shipments[code]
	if !ok {
		return nil, nil
	}
	return &sh, nil
}

func (s *memoryStore) SaveShipment(shipment *models.Shipment) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saves++
	s.shipments[shipment.Code] = *shipment
	return nil
}

type staticSource struct {
	owner     string
	shipments []api.Shipment
	err       error
}

func (s staticSource) Fetch(context.Context) (string, []api.Shipment, error) {
	return s.owner, s.shipments, s.err
}

func newTestWorker(store Store, source Source) *Worker {
	w := NewWorker(zap.NewNop(), store, source)
	w.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	return w
}

func TestWorkerMirrorsShipments(t *testing.T) {
	t.Parallel()
	store := newMemoryStore()
	w := newTestWorker(store, staticSource{owner: "7", shipments: []api.Shipment{
		{ID: 1, Code: "ENV-001", Status: models.StatusInTransit, Origin: 1, Destination: 3},
		{ID: 2, Code: "ENV-002", Status: "Retenido en aduana"},
		{ID: 3, Code: "ENV-003"},
	}})

	w.Execute()

	if store.saves != 3 {
		t.Fatalf("saves: got %d, want 3", store.saves)
	}
	first := store.shipments["ENV-001"]
	if first.Status.Key != models.StatusInTransit || first.DestinationID != 3 || first.OwnerID != "7" {
		t.Errorf("ENV-001: got %+v", first)
	}
	if first.LastSyncedAt == nil || !first.LastSyncedAt.Equal(w.now()) {
		t.Errorf("ENV-001 LastSyncedAt: got %v", first.LastSyncedAt)
	}
	if held := store.shipments["ENV-002"].Status; held.Key != "Retenido en aduana" || held.IsFinal {
		t.Errorf("unknown status: got %+v, want non-final", held)
	}
	if pending := store.shipments["ENV-003"].Status; pending.Key != models.StatusPending {
		t.Errorf("blank status: got %q, want %q", pending.Key, models.StatusPending)
	}
}

func TestWorkerSkipsFinalUnchangedShipments(t *testing.T) {
	t.Parallel()
	store := newMemoryStore()
	delivered := store.statuses[models.StatusDelivered]
	store.shipments["ENV-001"] = models.Shipment{Code: "ENV-001", Status: &delivered, StatusID: &delivered.ID}

	w := newTestWorker(store, staticSource{owner: "7", shipments: []api.Shipment{
		{ID: 1, Code: "ENV-001", Status: models.StatusDelivered},
	}})
	w.Execute()
	if store.saves != 0 {
		t.Errorf("unchanged final shipment saved %d times", store.saves)
	}

	w.source = staticSource{owner: "7", shipments: []api.Shipment{
		{ID: 1, Code: "ENV-001", Status: models.StatusCancelled},
	}}
	w.Execute()
	if store.saves != 1 || store.shipments["ENV-001"].Status.Key != models.StatusCancelled {
		t.Errorf("changed final shipment: saves %d, status %+v", store.saves, store.shipments["ENV-001"].Status)
	}
}

func TestWorkerCachesStatuses(t *testing.T) {
	t.Parallel()
	store := newMemoryStore()
	w := newTestWorker(store, staticSource{owner: "7", shipments: []api.Shipment{
		{Code: "A", Status: models.StatusPending},
		{Code: "B", Status: models.StatusPending},
		{Code: "C", Status: models.StatusPending},
	}})
	w.Execute()
	if store.lookups != 1 {
		t.Errorf("status lookups: got %d, want 1", store.lookups)
	}
}

func TestWorkerSkipsWithoutOwnerOrOnError(t *testing.T) {
	t.Parallel()
	store := newMemoryStore()

	newTestWorker(store, staticSource{shipments: []api.Shipment{{Code: "A"}}}).Execute()
	newTestWorker(store, staticSource{owner: "7", err: errors.New("boom")}).Execute()

	if store.saves != 0 {
		t.Errorf("saves: got %d, want 0", store.saves)
	}
}

func TestWorkerScheduleAndReady(t *testing.T) {
	t.Parallel()
	w := newTestWorker(newMemoryStore(), staticSource{})
	if w.Schedule() != "*/30 * * * *" {
		t.Errorf("Schedule: got %q", w.Schedule())
	}
	if !w.Ready(time.Now()) {
		t.Error("idle worker should be ready")
	}
	if w.Ready(time.Now()) {
		t.Error("claimed worker should not be ready again before Execute")
	}
	w.Execute()
	if !w.Ready(time.Now()) {
		t.Error("worker should be ready after Execute")
	}
	if got := w.WithSchedule("0 * * * *").Schedule(); got != "0 * * * *" {
		t.Errorf("WithSchedule: got %q", got)
	}
	if got := w.WithSchedule("").Schedule(); got != "0 * * * *" {
		t.Errorf("WithSchedule(empty): got %q", got)
	}
}

type fakeLister struct {
	gotUser string
}

func (f *fakeLister) ShipmentsByUser(_ context.Context, userID string) ([]api.Shipment, error) {
	f.gotUser = userID
	return []api.Shipment{{Code: "ENV-001"}}, nil
}

func TestUserSource(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	sess := session.New(session.NewMemoryStore())
	client := &fakeLister{}
	source := NewUserSource(client, sess)

	owner, shipments, err := source.Fetch(ctx)
	if err != nil || owner != "" || shipments != nil {
		t.Errorf("signed out: got %q %v %v", owner, shipments, err)
	}

	if err := sess.SignIn(ctx, "tok", session.Profile{ID: "12"}, session.RoleAdmin); err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	owner, shipments, err = source.Fetch(ctx)
	if err != nil || owner != "12" || len(shipments) != 1 || client.gotUser != "12" {
		t.Errorf("signed in: got %q %v %v (asked for %q)", owner, shipments, err, client.gotUser)
	}
}
