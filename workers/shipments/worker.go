package shipments

import (
	"context"
	"fleet-dashboard-service/api"
	"fleet-dashboard-service/workers/shipments/models"
	"go.uber.org/zap"
	"sync"
	"time"
)

// Store is the persistence the worker needs; repositories.Repository
// satisfies it.
type Store interface {
	GetStatus(key string) (models.ShipmentStatus, error)
	FindByCode(code string) (*models.Shipment, error)
	SaveShipment(shipment *models.Shipment) error
}

type Worker struct {
	logger   *zap.Logger
	repo     Store
	source   Source
	schedule string
	timeout  time.Duration
	now      func() time.Time
	mu       sync.Mutex
	statuses map[string]models.ShipmentStatus
	busy     bool
}

func NewWorker(logger *zap.Logger, repo Store, source Source) *Worker {
	return &Worker{
		logger:   logger,
		repo:     repo,
		source:   source,
		schedule: "*/30 * * * *",
		timeout:  time.Minute,
		now:      time.Now,
		statuses: make(map[string]models.ShipmentStatus),
	}
}

// WithSchedule replaces the default half-hourly cron spec; empty keeps it.
func (w *Worker) WithSchedule(spec string) *Worker {
	if spec != "" {
		w.schedule = spec
	}
	return w
}

func (w *Worker) Schedule() string {
	return w.schedule
}

// Ready claims the worker until the next Execute returns.
func (w *Worker) Ready(time.Time) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.busy {
		return false
	}
	w.busy = true
	return true
}

func (w *Worker) Execute() {
	w.mu.Lock()
	w.busy = true
	w.mu.Unlock()
	defer func() {
		w.mu.Lock()
		w.busy = false
		w.mu.Unlock()
	}()

	w.logger.Info("Starting shipment sync.")

	ctx, cancel := context.WithTimeout(context.Background(), w.timeout)
	defer cancel()

	owner, shipments, err := w.source.Fetch(ctx)
	if err != nil {
		w.logger.Error("Failed to fetch shipments", zap.Error(err))
		return
	}

	if owner == "" {
		w.logger.Info("Nobody is signed in. Shipment sync skipped 😴")
		return
	}

	if len(shipments) == 0 {
		w.logger.Info("No shipments found. Shipment sync completed 😴")
		return
	}

	var wg sync.WaitGroup
	for _, shipment := range shipments {
		wg.Add(1)
		go func(sh api.Shipment) {
			defer wg.Done()
			w.syncShipment(owner, sh)
		}(shipment)
	}

	wg.Wait()
	w.logger.Info("Shipment sync completed 😴", zap.Int("fetched", len(shipments)))
}

func (w *Worker) syncShipment(owner string, remote api.Shipment) {
	if remote.Code == "" {
		w.logger.Warn("Skipping shipment without code", zap.Int64("remote_id", remote.ID))
		return
	}

	existing, err := w.repo.FindByCode(remote.Code)
	if err != nil {
		w.logger.Error("Failed to look up shipment",
			zap.String("shipment_code", remote.Code),
			zap.Error(err),
		)
		return
	}

	if !shouldSync(existing, remote) {
		return
	}

	key := remote.Status
	if key == "" {
		key = models.StatusPending
	}
	status, err := w.getStatus(key)
	if err != nil {
		w.logger.Error("Failed to get shipment status",
			zap.String("shipment_code", remote.Code),
			zap.String("status_key", key),
			zap.Error(err),
		)
		return
	}

	sh := existing
	if sh == nil {
		sh = &models.Shipment{}
	}
	w.updateShipmentFromRemote(sh, owner, remote, &status)

	if err := w.repo.SaveShipment(sh); err != nil {
		w.logger.Error("Failed to save shipment",
			zap.String("shipment_code", sh.Code),
			zap.Error(err),
		)
		return
	}

	w.logger.Info("Shipment successfully synced",
		zap.String("shipment_code", sh.Code),
		zap.String("status", status.Key),
	)
}

// shouldSync leaves alone rows that already reached a final status the backend
// still reports.
func shouldSync(existing *models.Shipment, remote api.Shipment) bool {
	if existing == nil || existing.Status == nil {
		return true
	}
	return !(existing.Status.IsFinal && existing.Status.Key == remote.Status)
}

func (w *Worker) updateShipmentFromRemote(sh *models.Shipment, owner string, remote api.Shipment, status *models.ShipmentStatus) {
	sh.RemoteID = remote.ID
	sh.Code = remote.Code
	sh.ShippedOn = remote.Date
	sh.Description = remote.Description
	sh.SenderName = remote.SenderName
	sh.ReceiverName = remote.ReceiverName
	sh.OriginID = int64(remote.Origin)
	sh.DestinationID = int64(remote.Destination)
	sh.OwnerID = owner
	sh.Status = status
	sh.StatusID = &status.ID

	synced := w.now().UTC()
	sh.LastSyncedAt = &synced
}

func (w *Worker) getStatus(key string) (models.ShipmentStatus, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if status, exists := w.statuses[key]; exists {
		return status, nil
	}

	status, err := w.repo.GetStatus(key)
	if err != nil {
		return models.ShipmentStatus{}, err
	}

	w.statuses[key] = status
	return status, nil
}
