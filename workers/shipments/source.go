package shipments

import (
	"context"
	"fleet-dashboard-service/api"
	"fleet-dashboard-service/session"
)

// Source yields the shipments to mirror and the user they belong to. An empty
// owner means nobody is signed in.
type Source interface {
	Fetch(ctx context.Context) (owner string, shipments []api.Shipment, err error)
}

type lister interface {
	ShipmentsByUser(ctx context.Context, userID string) ([]api.Shipment, error)
}

// UserSource fetches the shipments sent by the signed-in user.
type UserSource struct {
	client  lister
	session *session.Session
}

func NewUserSource(client lister, sess *session.Session) *UserSource {
	return &UserSource{client: client, session: sess}
}

func (s *UserSource) Fetch(ctx context.Context) (string, []api.Shipment, error) {
	profile, err := s.session.Profile(ctx)
	if err != nil || profile == nil || profile.ID == "" {
		return "", nil, err
	}
	owner := profile.ID.String()
	shipments, err := s.client.ShipmentsByUser(ctx, owner)
	return owner, shipments, err
}
