package server

import (
	"bytes"
	"context"
	"errors"
	"fleet-dashboard-service/session"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

type stubRoutes struct {
	route   *session.ActiveRoute
	elapsed string
	err     error
}

func (s stubRoutes) Elapsed(context.Context) (*session.ActiveRoute, string, error) {
	return s.route, s.elapsed, s.err
}

type stubDisplay struct {
	routeID int64
	elapsed string
}

func (d stubDisplay) Shown(routeID int64) (string, bool) {
	return d.elapsed, d.elapsed != "" && d.routeID == routeID
}

func do(t *testing.T, routes RouteReader, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	return serve(t, NewHandler(routes, nil, zap.NewNop()), method, path, body)
}

func serve(t *testing.T, h *Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	router := NewRouter(h, zap.NewNop(), false)
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %s: %v", rec.Body.String(), err)
	}
	return out
}

func TestHealth(t *testing.T) {
	rec := do(t, stubRoutes{}, http.MethodGet, "/health", "")
	if rec.Code != http.StatusOK {
		t.Errorf("status: got %d, want 200", rec.Code)
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		body    string
		display string
		cents   int64
	}{
		{`{"kind":"price","raw":"1234567"}`, "$12,345.67", 1234567},
		{`{"kind":"weight","raw":"150075"}`, "150.07", 15007},
		{`{"kind":"odometer","raw":""}`, "", 0},
	}
	for _, tt := range tests {
		rec := do(t, stubRoutes{}, http.MethodPost, "/format", tt.body)
		if rec.Code != http.StatusOK {
			t.Errorf("%s: status %d", tt.body, rec.Code)
			continue
		}
		got := decodeBody[FormatResponse](t, rec)
		if got.Display != tt.display || got.Cents != tt.cents || got.Value != float64(tt.cents)/100 {
			t.Errorf("%s: got %+v, want %q (%d)", tt.body, got, tt.display, tt.cents)
		}
	}
}

func TestFormatUnknownKind(t *testing.T) {
	rec := do(t, stubRoutes{}, http.MethodPost, "/format", `{"kind":"volume","raw":"12"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status: got %d, want 400", rec.Code)
	}
	if got := decodeBody[ErrorResponse](t, rec); got.Error != "INVALID_INPUT" {
		t.Errorf("error: got %+v", got)
	}
}

func TestQuote(t *testing.T) {
	rec := do(t, stubRoutes{}, http.MethodPost, "/quote", `{"weight":"1000","unit":"KG"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (%s)", rec.Code, rec.Body.String())
	}
	got := decodeBody[QuoteResponse](t, rec)
	if got.Weight != "10.00" || got.Display != "$77.00" {
		t.Errorf("quote: got %+v", got)
	}
}

func TestQuoteRejectsBadInput(t *testing.T) {
	for _, body := range []string{
		`{"weight":"0","unit":"lb"}`,
		`{"weight":"1000","unit":"oz"}`,
		`{"unit":"lb"}`,
		`not json`,
	} {
		if rec := do(t, stubRoutes{}, http.MethodPost, "/quote", body); rec.Code != http.StatusBadRequest {
			t.Errorf("%s: status %d, want 400", body, rec.Code)
		}
	}
}

func TestActiveRoute(t *testing.T) {
	start := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	routes := stubRoutes{
		route:   &session.ActiveRoute{ID: 42, Plate: "C1", RouteName: "Norte", StartTime: start},
		elapsed: "00:10:00",
	}
	rec := do(t, routes, http.MethodGet, "/routes/active", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rec.Code)
	}
	got := decodeBody[ActiveRouteResponse](t, rec)
	if got.ID != 42 || got.Elapsed != "00:10:00" || !got.StartTime.Equal(start) {
		t.Errorf("route: got %+v", got)
	}
}

func TestActiveRouteReportsTickerDisplay(t *testing.T) {
	routes := stubRoutes{
		route:   &session.ActiveRoute{ID: 42, Plate: "C1", RouteName: "Norte"},
		elapsed: "00:10:01",
	}

	rec := serve(t, NewHandler(routes, stubDisplay{42, "00:10:00"}, zap.NewNop()), http.MethodGet, "/routes/active", "")
	if got := decodeBody[ActiveRouteResponse](t, rec); got.Elapsed != "00:10:00" {
		t.Errorf("elapsed: got %q, want the ticker display 00:10:00", got.Elapsed)
	}

	for _, display := range []stubDisplay{{}, {7, "01:00:00"}} {
		rec = serve(t, NewHandler(routes, display, zap.NewNop()), http.MethodGet, "/routes/active", "")
		if got := decodeBody[ActiveRouteResponse](t, rec); got.Elapsed != "00:10:01" {
			t.Errorf("display %+v: got %q, want computed 00:10:01", display, got.Elapsed)
		}
	}
}

func TestActiveRouteMissing(t *testing.T) {
	if rec := do(t, stubRoutes{}, http.MethodGet, "/routes/active", ""); rec.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rec.Code)
	}
	if rec := do(t, stubRoutes{err: errors.New("disk")}, http.MethodGet, "/routes/active", ""); rec.Code != http.StatusInternalServerError {
		t.Errorf("status: got %d, want 500", rec.Code)
	}
}
