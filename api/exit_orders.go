package api

import (
	"context"
	"fleet-dashboard-service/validation"
	"strconv"
)

// Validate checks an exit order before it is sent: every reference, date and
// time is required, and the vehicle must stay out at least a day.
func (o *ExitOrder) Validate() error {
	err := validation.Required(nil,
		"vehicle_id", idString(o.VehicleID),
		"driver_id", idString(o.DriverID),
		"client_id", idString(o.ClientID),
		"exit_date", o.ExitDate,
		"entry_date", o.EntryDate,
		"exit_time", o.ExitTime,
		"entry_time", o.EntryTime,
	)
	if err != nil {
		return err
	}
	return validation.ExitWindow(o.Exit(), o.Entry())
}

// CreateExitOrder validates and registers an exit order.
func (c *Client) CreateExitOrder(ctx context.Context, o *ExitOrder) (*ExitOrder, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return c.ExitOrders().Create(ctx, o)
}

func idString(id int64) string {
	if id == 0 {
		return ""
	}
	return strconv.FormatInt(id, 10)
}
