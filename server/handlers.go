package server

import (
	"context"
	"fleet-dashboard-service/calculator"
	"fleet-dashboard-service/formatting"
	"fleet-dashboard-service/session"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"net/http"
)

// RouteReader reports the route in progress and its running time.
type RouteReader interface {
	Elapsed(ctx context.Context) (*session.ActiveRoute, string, error)
}

// Display holds the last running time shown by the route ticker.
type Display interface {
	Shown(routeID int64) (string, bool)
}

type Handler struct {
	routes  RouteReader
	display Display
	logger  *zap.Logger
}

// NewHandler serves the route in progress from routes. When display is set,
// its last value is reported so the endpoint matches what the ticker shows.
func NewHandler(routes RouteReader, display Display, logger *zap.Logger) *Handler {
	return &Handler{routes: routes, display: display, logger: logger}
}

// Health handles GET /health
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

// Format handles POST /format
func (h *Handler) Format(c *gin.Context) {
	var req FormatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	mask, ok := formatting.MaskFor(req.Kind)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Unknown format kind",
			Details: "kind must be one of weight, price, odometer",
		})
		return
	}

	display := mask.Format(req.Raw)
	cents, err := mask.Cents(display)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Value out of range",
			Details: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, FormatResponse{
		Display: display,
		Value:   float64(cents) / 100,
		Cents:   cents,
	})
}

// Quote handles POST /quote
func (h *Handler) Quote(c *gin.Context) {
	var req QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		invalidBody(c, err)
		return
	}

	unit, err := calculator.ParseUnit(req.Unit)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Invalid weight unit",
			Details: err.Error(),
		})
		return
	}

	weight := formatting.Weight.Format(req.Weight)
	price, ok := calculator.Estimate(weight, unit)
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Weight must be greater than zero",
		})
		return
	}

	c.JSON(http.StatusOK, QuoteResponse{
		Weight:  weight,
		Price:   price,
		Display: calculator.FormatPrice(price),
	})
}

// ActiveRoute handles GET /routes/active
func (h *Handler) ActiveRoute(c *gin.Context) {
	route, elapsed, err := h.routes.Elapsed(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to read route in progress", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "INTERNAL_ERROR",
			Message: "Failed to read route in progress",
		})
		return
	}

	if route == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "NOT_FOUND",
			Message: "No route in progress",
		})
		return
	}
	if h.display != nil {
		if shown, ok := h.display.Shown(route.ID); ok {
			elapsed = shown
		}
	}

	c.JSON(http.StatusOK, ActiveRouteResponse{
		ID:             route.ID,
		VehicleID:      route.VehicleID,
		Plate:          route.Plate,
		RouteName:      route.RouteName,
		DriverName:     route.DriverName,
		DriverLastname: route.DriverLastname,
		StartTime:      route.StartTime,
		Elapsed:        elapsed,
	})
}

func invalidBody(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "INVALID_INPUT",
		Message: "Invalid request body",
		Details: err.Error(),
	})
}
