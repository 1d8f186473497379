package routes

import (
	"context"
	"errors"
	"fleet-dashboard-service/api"
	"fleet-dashboard-service/formatting"
	"fleet-dashboard-service/session"
	"fleet-dashboard-service/validation"
	"fmt"
	"go.uber.org/zap"
	"strconv"
	"time"
)

var (
	ErrRouteInProgress = errors.New("a route is already in progress")
	ErrNoActiveRoute   = errors.New("no route in progress")
	ErrNotSignedIn     = errors.New("user is not signed in")
)

type Backend interface {
	CreateRoute(ctx context.Context, r *api.Route) (*api.Route, error)
	FinishRoute(ctx context.Context, routeID int64, travelTime string) error
}

type StartRequest struct {
	VehicleID int64
	Plate     string
	RouteName string
}

// Tracker owns the route a driver is currently on. Its start time lives in the
// session so a restart resumes the same count.
type Tracker struct {
	session *session.Session
	backend Backend
	logger  *zap.Logger
	now     func() time.Time
}

func NewTracker(sess *session.Session, backend Backend, logger *zap.Logger) *Tracker {
	return &Tracker{
		session: sess,
		backend: backend,
		logger:  logger,
		now:     time.Now,
	}
}

func (t *Tracker) Start(ctx context.Context, req StartRequest) (*session.ActiveRoute, error) {
	var vehicle string
	if req.VehicleID != 0 {
		vehicle = strconv.FormatInt(req.VehicleID, 10)
	}
	if err := validation.Required(nil, "vehicle", vehicle, "plate", req.Plate, "route_name", req.RouteName); err != nil {
		return nil, err
	}

	active, err := t.session.ActiveRoute(ctx)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, ErrRouteInProgress
	}

	profile, err := t.session.Profile(ctx)
	if err != nil {
		return nil, err
	}
	if profile == nil || profile.ID == "" {
		return nil, ErrNotSignedIn
	}
	userID, err := strconv.ParseInt(profile.ID.String(), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("unexpected user id %q: %w", profile.ID, err)
	}

	created, err := t.backend.CreateRoute(ctx, &api.Route{
		VehicleID: req.VehicleID,
		UserID:    userID,
		Name:      req.RouteName,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create route: %w", err)
	}

	route := session.ActiveRoute{
		ID:             created.ID,
		VehicleID:      req.VehicleID,
		Plate:          req.Plate,
		RouteName:      req.RouteName,
		DriverName:     profile.FirstName,
		DriverLastname: profile.LastName,
		StartTime:      t.now(),
	}
	if err := t.session.SetActiveRoute(ctx, route); err != nil {
		return nil, err
	}

	t.logger.Info("Route started",
		zap.Int64("route_id", route.ID),
		zap.String("plate", route.Plate),
		zap.String("route_name", route.RouteName),
	)
	return &route, nil
}

// Finish sends the final travel time. The route stays in progress if the
// backend rejects the update, so the driver can retry.
func (t *Tracker) Finish(ctx context.Context) (string, error) {
	active, err := t.session.ActiveRoute(ctx)
	if err != nil {
		return "", err
	}
	if active == nil {
		return "", ErrNoActiveRoute
	}

	travelTime := formatting.ElapsedSince(active.StartTime, t.now())
	if err := t.backend.FinishRoute(ctx, active.ID, travelTime); err != nil {
		t.logger.Error("Failed to finish route",
			zap.Int64("route_id", active.ID),
			zap.Error(err),
		)
		return "", err
	}

	if err := t.session.ClearActiveRoute(ctx); err != nil {
		return travelTime, err
	}

	t.logger.Info("Route finished",
		zap.Int64("route_id", active.ID),
		zap.String("travel_time", travelTime),
	)
	return travelTime, nil
}

func (t *Tracker) Active(ctx context.Context) (*session.ActiveRoute, error) {
	return t.session.ActiveRoute(ctx)
}

// Elapsed returns the route in progress and its running time, or a nil route.
func (t *Tracker) Elapsed(ctx context.Context) (*session.ActiveRoute, string, error) {
	active, err := t.session.ActiveRoute(ctx)
	if err != nil || active == nil {
		return nil, "", err
	}
	return active, formatting.ElapsedSince(active.StartTime, t.now()), nil
}
