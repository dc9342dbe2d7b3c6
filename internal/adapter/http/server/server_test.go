package server

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/kavitasoren02/greencart-logistics/config"
	"github.com/kavitasoren02/greencart-logistics/internal/adapter/http/handler"
	"github.com/kavitasoren02/greencart-logistics/internal/adapter/http/middleware"
	"github.com/kavitasoren02/greencart-logistics/internal/adapter/memory"
	"github.com/kavitasoren02/greencart-logistics/internal/domain/models"
	"github.com/kavitasoren02/greencart-logistics/internal/domain/types"
	"github.com/kavitasoren02/greencart-logistics/internal/service/reference"
	"github.com/kavitasoren02/greencart-logistics/pkg/logger"
)

type stubService struct{}

func (stubService) Run(_ context.Context, in models.SimulationInputs) (*models.SimulationRun, error) {
	return &models.SimulationRun{ID: uuid.New(), Inputs: in, Assignments: []models.Assignment{}}, nil
}

func (stubService) Get(context.Context, uuid.UUID) (*models.SimulationRun, error) {
	return nil, types.ErrSimulationNotFound
}

func (stubService) History(_ context.Context, f models.Filters) ([]models.SimulationSummary, models.Metadata, error) {
	return []models.SimulationSummary{}, models.CalculateMetadata(0, f.Page, f.PageSize), nil
}

func (stubService) Stats(context.Context) (models.SimulationStats, error) {
	return models.SimulationStats{}, nil
}

func newReferenceService() *reference.Service {
	store := memory.NewReferenceStore(
		[]models.Driver{{ID: 1, Name: "Amit"}},
		[]models.Route{{ID: 1, DistanceKm: 5, Traffic: types.TrafficLow, BaseTimeMin: 20}},
		[]models.Order{{ID: "1", RouteID: 1, DeliveryTime: "09:30"}},
	)
	return reference.NewService(store.Drivers(), store.Routes(), store.Orders())
}

func newTestAPI(t *testing.T) *API {
	t.Helper()

	cfg := config.Config{Mode: types.SimulationService}
	api, err := New(cfg, stubService{}, newReferenceService(), nil, logger.New(io.Discard, "server-test", "ERROR"))
	if err != nil {
		t.Fatalf("new api: %v", err)
	}
	return api
}

func TestNew_RequiresReferenceService(t *testing.T) {
	cfg := config.Config{Mode: types.SimulationService}
	if _, err := New(cfg, stubService{}, nil, nil, logger.New(io.Discard, "server-test", "ERROR")); err == nil {
		t.Fatalf("expected an error without a reference service")
	}
}

func TestNew_RejectsUnknownMode(t *testing.T) {
	cfg := config.Config{Mode: "ride-service"}
	if _, err := New(cfg, stubService{}, newReferenceService(), nil, logger.New(io.Discard, "server-test", "ERROR")); err == nil {
		t.Fatalf("expected an error for an unknown mode")
	}
}

func TestRoutes(t *testing.T) {
	api := newTestAPI(t)

	tests := []struct {
		method, target, body string
		want                 int
	}{
		{http.MethodGet, "/health", "", http.StatusOK},
		{http.MethodPost, "/simulations", `{"availableDrivers": 1, "startTime": "09:00", "maxHoursPerDay": 8}`, http.StatusCreated},
		{http.MethodGet, "/simulations", "", http.StatusOK},
		{http.MethodGet, "/simulations/stats", "", http.StatusOK},
		{http.MethodGet, "/simulations/" + uuid.NewString(), "", http.StatusNotFound},
		{http.MethodDelete, "/simulations", "", http.StatusMethodNotAllowed},
		{http.MethodGet, "/drivers", "", http.StatusOK},
		{http.MethodGet, "/drivers/1", "", http.StatusOK},
		{http.MethodGet, "/drivers/2", "", http.StatusNotFound},
		{http.MethodGet, "/routes", "", http.StatusOK},
		{http.MethodGet, "/routes/1", "", http.StatusOK},
		{http.MethodGet, "/orders?route_id=1&is_delivered=false", "", http.StatusOK},
		{http.MethodGet, "/orders/1", "", http.StatusOK},
		{http.MethodPost, "/orders", "", http.StatusMethodNotAllowed},
		{http.MethodGet, "/metrics", "", http.StatusOK},
		{http.MethodGet, "/swagger/doc.json", "", http.StatusOK},
	}

	for _, tt := range tests {
		var body io.Reader
		if tt.body != "" {
			body = strings.NewReader(tt.body)
		}
		rec := httptest.NewRecorder()
		api.Handler().ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, body))

		if rec.Code != tt.want {
			t.Errorf("%s %s: got %d, want %d", tt.method, tt.target, rec.Code, tt.want)
		}
		if rec.Header().Get(middleware.RequestIDHeader) == "" {
			t.Errorf("%s %s: request id header missing", tt.method, tt.target)
		}
	}
}

func TestHealth(t *testing.T) {
	api := newTestAPI(t)

	rec := httptest.NewRecorder()
	api.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	var body struct {
		Status     string            `json:"status"`
		SystemInfo map[string]string `json:"system_info"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Status != "available" || body.SystemInfo["service-name"] != types.SimulationService.String() {
		t.Fatalf("unexpected health body %+v", body)
	}
}

func TestHealth_DependencyDown(t *testing.T) {
	cfg := config.Config{Mode: types.SimulationService}
	api, err := New(cfg, stubService{}, newReferenceService(), nil, logger.New(io.Discard, "server-test", "ERROR"),
		handler.DependencyCheck{Name: "rabbitmq", Check: func(context.Context) error { return errors.New("closed") }},
	)
	if err != nil {
		t.Fatalf("new api: %v", err)
	}

	rec := httptest.NewRecorder()
	api.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"degraded"`) {
		t.Fatalf("body = %s", rec.Body.String())
	}
}
