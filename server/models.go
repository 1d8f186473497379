package server

import "time"

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

type FormatRequest struct {
	Kind string `json:"kind" binding:"required"`
	Raw  string `json:"raw"`
}

type FormatResponse struct {
	Display string  `json:"display"`
	Value   float64 `json:"value"`
	Cents   int64   `json:"cents"`
}

type QuoteRequest struct {
	Weight string `json:"weight" binding:"required"`
	Unit   string `json:"unit" binding:"required"`
}

type QuoteResponse struct {
	Weight  string  `json:"weight"`
	Price   float64 `json:"price"`
	Display string  `json:"display"`
}

type ActiveRouteResponse struct {
	ID             int64     `json:"id"`
	VehicleID      int64     `json:"vehicle_id"`
	Plate          string    `json:"placa"`
	RouteName      string    `json:"route_name"`
	DriverName     string    `json:"driver_name"`
	DriverLastname string    `json:"driver_lastname"`
	StartTime      time.Time `json:"startTime"`
	Elapsed        string    `json:"elapsed"`
}
