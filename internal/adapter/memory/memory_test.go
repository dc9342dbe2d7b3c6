package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kavitasoren02/greencart-logistics/internal/domain/models"
	"github.com/kavitasoren02/greencart-logistics/internal/domain/types"
)

func TestDriverStore_ListFirst(t *testing.T) {
	s := NewReferenceStore([]models.Driver{{ID: 3}, {ID: 1}, {ID: 2}}, nil, nil)

	got, err := s.Drivers().ListFirst(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 2 {
		t.Fatalf("expected drivers 1 and 2, got %+v", got)
	}

	all, _ := s.Drivers().ListFirst(context.Background(), 50)
	if len(all) != 3 {
		t.Fatalf("expected every driver when n exceeds the pool, got %d", len(all))
	}
}

func TestOrderStore_RecordOutcome(t *testing.T) {
	s := NewReferenceStore(nil, nil, []models.Order{{ID: "1"}})

	err := s.Orders().RecordOutcome(context.Background(), "1", models.OrderOutcome{DriverID: 4, IsOnTime: false, Penalty: 50})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	orders, _ := s.Orders().ListAll(context.Background())
	o := orders[0]
	if o.AssignedDriverID == nil || *o.AssignedDriverID != 4 || o.IsOnTime == nil || *o.IsOnTime || o.PenaltyApplied != 50 || !o.IsDelivered {
		t.Fatalf("outcome not recorded: %+v", o)
	}

	err = s.Orders().RecordOutcome(context.Background(), "missing", models.OrderOutcome{})
	if !errors.Is(err, types.ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestDriverStore_ListAndFind(t *testing.T) {
	s := NewReferenceStore([]models.Driver{
		{ID: 1, Name: "Chen", ShiftHours: 8},
		{ID: 2, Name: "Amit", ShiftHours: 6},
		{ID: 3, Name: "Bela", ShiftHours: 8},
	}, nil, nil)

	f, _ := models.NewFilters(1, 2, "name", models.DriverSortSafelist)
	page, total, err := s.Drivers().List(context.Background(), f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 3 || len(page) != 2 || page[0].Name != "Amit" || page[1].Name != "Bela" {
		t.Fatalf("unexpected page: total=%d %+v", total, page)
	}

	f.Page = 9
	page, total, _ = s.Drivers().List(context.Background(), f)
	if len(page) != 0 || total != 3 {
		t.Fatalf("a page past the end must keep the total: total=%d %+v", total, page)
	}

	d, err := s.Drivers().FindByID(context.Background(), 3)
	if err != nil || d.Name != "Bela" {
		t.Fatalf("FindByID(3) = %+v, %v", d, err)
	}
	if _, err := s.Drivers().FindByID(context.Background(), 42); !errors.Is(err, types.ErrDriverNotFound) {
		t.Fatalf("expected ErrDriverNotFound, got %v", err)
	}
}

func TestRouteStore_ListAndFind(t *testing.T) {
	s := NewReferenceStore(nil, []models.Route{
		{ID: 1, DistanceKm: 25, BaseTimeMin: 125},
		{ID: 2, DistanceKm: 12, BaseTimeMin: 48},
	}, nil)

	f, _ := models.NewFilters(1, 10, "-distance_km", models.RouteSortSafelist)
	page, total, err := s.Routes().List(context.Background(), f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 2 || page[0].ID != 1 || page[1].ID != 2 {
		t.Fatalf("unexpected page: total=%d %+v", total, page)
	}

	if _, err := s.Routes().FindByID(context.Background(), 7); !errors.Is(err, types.ErrRouteNotFound) {
		t.Fatalf("expected ErrRouteNotFound, got %v", err)
	}
}

func TestOrderStore_ListFilters(t *testing.T) {
	s := NewReferenceStore(nil, nil, []models.Order{
		{ID: "1", RouteID: 1, ValueRs: 300},
		{ID: "2", RouteID: 2, ValueRs: 100},
		{ID: "3", RouteID: 1, ValueRs: 200},
	})
	if err := s.Orders().RecordOutcome(context.Background(), "3", models.OrderOutcome{DriverID: 1, IsOnTime: true}); err != nil {
		t.Fatalf("record outcome: %v", err)
	}

	routeID, delivered := 1, false
	f, _ := models.NewFilters(1, 10, "order_id", models.OrderSortSafelist)

	page, total, err := s.Orders().List(context.Background(), models.OrderFilters{Filters: f, RouteID: &routeID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 2 || page[0].ID != "1" || page[1].ID != "3" {
		t.Fatalf("route filter: total=%d %+v", total, page)
	}

	page, total, _ = s.Orders().List(context.Background(), models.OrderFilters{Filters: f, RouteID: &routeID, IsDelivered: &delivered})
	if total != 1 || page[0].ID != "1" {
		t.Fatalf("delivered filter: total=%d %+v", total, page)
	}

	o, err := s.Orders().FindByID(context.Background(), "3")
	if err != nil || !o.IsDelivered {
		t.Fatalf("FindByID(3) = %+v, %v", o, err)
	}
}

func TestReferenceStore_CanceledContext(t *testing.T) {
	s := NewReferenceStore(nil, nil, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := s.Routes().ListAll(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func newRun(profit, efficiency float64, at time.Time) *models.SimulationRun {
	return &models.SimulationRun{
		ID:        uuid.New(),
		Results:   models.KPIResults{TotalProfit: profit, EfficiencyScore: efficiency},
		CreatedAt: at,
	}
}

func TestSimulationStore_ListSortAndPage(t *testing.T) {
	s := NewSimulationStore()
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	ctx := context.Background()

	for i, r := range []*models.SimulationRun{
		newRun(100, 50, base),
		newRun(300, 100, base.Add(time.Minute)),
		newRun(200, 0, base.Add(2*time.Minute)),
	} {
		if err := s.Save(ctx, r); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	f := models.DefaultSimulationFilters()
	f.PageSize = 2

	got, total, err := s.List(ctx, f)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if total != 3 || len(got) != 2 || got[0].Results.TotalProfit != 200 || got[1].Results.TotalProfit != 300 {
		t.Fatalf("newest first page: total %d, got %+v", total, got)
	}

	f.Page = 2
	got, _, _ = s.List(ctx, f)
	if len(got) != 1 || got[0].Results.TotalProfit != 100 {
		t.Fatalf("second page: got %+v", got)
	}

	f = models.DefaultSimulationFilters()
	f.Sort = "efficiency_score"
	got, _, _ = s.List(ctx, f)
	if got[0].Results.EfficiencyScore != 0 || got[2].Results.EfficiencyScore != 100 {
		t.Fatalf("efficiency ascending: got %+v", got)
	}

	f.Page = 5
	got, _, _ = s.List(ctx, f)
	if len(got) != 0 {
		t.Fatalf("page past the end must be empty, got %d", len(got))
	}
}

func TestSimulationStore_Stats(t *testing.T) {
	s := NewSimulationStore()
	ctx := context.Background()

	stats, err := s.Stats(ctx)
	if err != nil || stats != (models.SimulationStats{}) {
		t.Fatalf("expected zero stats, got %+v, %v", stats, err)
	}

	_ = s.Save(ctx, newRun(100, 50, time.Now()))
	_ = s.Save(ctx, newRun(300, 100, time.Now()))

	stats, _ = s.Stats(ctx)
	want := models.SimulationStats{TotalSimulations: 2, AverageProfit: 200, AverageEfficiency: 75, BestEfficiency: 100, WorstEfficiency: 50}
	if stats != want {
		t.Fatalf("got %+v, want %+v", stats, want)
	}
}

func TestSimulationStore_SaveDuplicate(t *testing.T) {
	s := NewSimulationStore()
	r := newRun(1, 1, time.Now())

	_ = s.Save(context.Background(), r)
	if err := s.Save(context.Background(), r); !errors.Is(err, types.ErrSimulationExists) {
		t.Fatalf("expected ErrSimulationExists, got %v", err)
	}
}
