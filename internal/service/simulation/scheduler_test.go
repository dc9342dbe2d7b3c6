package simulation

import (
	"fmt"
	"reflect"
	"slices"
	"testing"

	"github.com/kavitasoren02/greencart-logistics/internal/domain/models"
	"github.com/kavitasoren02/greencart-logistics/internal/domain/types"
)

var rested = models.WeeklyHours{6, 6, 6, 6, 6, 6, 6}

func TestPlanSchedule_FatiguedDriverIsLate(t *testing.T) {
	drivers := []models.Driver{{ID: 1, Name: "Amit", WeeklyHours: models.WeeklyHours{7, 10, 7, 7, 9, 9, 8}}}
	routes := []models.Route{{ID: 1, DistanceKm: 10, Traffic: types.TrafficLow, BaseTimeMin: 100}}
	orders := []models.Order{{ID: "1", ValueRs: 500, RouteID: 1, DeliveryTime: "02:00"}}

	plan := PlanSchedule(drivers, routes, orders, 8)

	if len(plan.Assignments) != 1 {
		t.Fatalf("expected one assignment, got %d", len(plan.Assignments))
	}
	a := plan.Assignments[0]
	if a.ActualTimeMin != 130 {
		t.Fatalf("actual time: got %d, want 130", a.ActualTimeMin)
	}
	if a.IsOnTime {
		t.Fatalf("130 minutes against a 100 minute route must be late")
	}
	if a.Penalty != LatePenalty {
		t.Fatalf("penalty: got %d, want %d", a.Penalty, LatePenalty)
	}
	if a.DriverName != "Amit" || a.DriverID != 1 {
		t.Fatalf("unexpected driver on assignment: %+v", a)
	}
}

func TestPlanSchedule_HoursCapLeavesOrderUnassigned(t *testing.T) {
	drivers := []models.Driver{{ID: 1, Name: "Amit", WeeklyHours: rested}}
	routes := []models.Route{{ID: 1, DistanceKm: 1, Traffic: types.TrafficLow, BaseTimeMin: 300}}
	orders := []models.Order{
		{ID: "1", ValueRs: 100, RouteID: 1, DeliveryTime: "10:00"},
		{ID: "2", ValueRs: 100, RouteID: 1, DeliveryTime: "11:00"},
	}

	plan := PlanSchedule(drivers, routes, orders, 8)

	if len(plan.Assignments) != 1 || plan.Assignments[0].OrderID != "1" {
		t.Fatalf("expected only order 1 assigned, got %+v", plan.Assignments)
	}
	if !slices.Equal(plan.Unassigned, []string{"2"}) {
		t.Fatalf("expected order 2 unassigned, got %v", plan.Unassigned)
	}
	if got := plan.DriverHours[1]; got != 5 {
		t.Fatalf("driver hours: got %v, want 5", got)
	}
	if res := AggregateKPIs(plan.Assignments); res.TotalOrders != 1 {
		t.Fatalf("unassigned order must not count, got %d orders", res.TotalOrders)
	}
}

func TestPlanSchedule_HighValueOnTimeBonus(t *testing.T) {
	drivers := []models.Driver{{ID: 1, Name: "Amit", WeeklyHours: rested}}
	routes := []models.Route{{ID: 7, DistanceKm: 8, Traffic: types.TrafficMedium, BaseTimeMin: 30}}
	orders := []models.Order{{ID: "9", ValueRs: 1500, RouteID: 7, DeliveryTime: "01:00"}}

	plan := PlanSchedule(drivers, routes, orders, 8)

	if len(plan.Assignments) != 1 {
		t.Fatalf("expected one assignment, got %d", len(plan.Assignments))
	}
	a := plan.Assignments[0]
	if !a.IsOnTime || a.FuelCost != 40 || a.Bonus != 150 || a.Penalty != 0 || a.ProfitContribution != 1610 {
		t.Fatalf("unexpected outcome: %+v", a)
	}
}

func TestPlanSchedule_NoRoutableOrders(t *testing.T) {
	drivers := []models.Driver{{ID: 1, Name: "Amit", WeeklyHours: rested}}
	orders := []models.Order{
		{ID: "1", ValueRs: 100, RouteID: 42, DeliveryTime: "10:00"},
		{ID: "2", ValueRs: 100, RouteID: 43, DeliveryTime: "09:00"},
	}

	plan := PlanSchedule(drivers, nil, orders, 8)

	if len(plan.Assignments) != 0 {
		t.Fatalf("expected no assignments, got %+v", plan.Assignments)
	}
	if !slices.Equal(plan.Unrouted, []string{"2", "1"}) {
		t.Fatalf("unrouted: got %v", plan.Unrouted)
	}

	res := AggregateKPIs(plan.Assignments)
	if res.TotalOrders != 0 || res.EfficiencyScore != 0 {
		t.Fatalf("expected empty results, got %+v", res)
	}
}

func TestPlanSchedule_DeadlineOrderIsStable(t *testing.T) {
	drivers := []models.Driver{{ID: 1, Name: "Amit", WeeklyHours: rested}}
	routes := []models.Route{{ID: 1, DistanceKm: 1, Traffic: types.TrafficLow, BaseTimeMin: 10}}
	orders := []models.Order{
		{ID: "a", RouteID: 1, DeliveryTime: "12:00"},
		{ID: "b", RouteID: 1, DeliveryTime: "late"},
		{ID: "c", RouteID: 1, DeliveryTime: "08:15"},
		{ID: "d", RouteID: 1, DeliveryTime: "12:00"},
		{ID: "e", RouteID: 1, DeliveryTime: "08:15"},
		{ID: "f", RouteID: 1, DeliveryTime: ""},
	}

	plan := PlanSchedule(drivers, routes, orders, 24)

	got := make([]string, 0, len(plan.Assignments))
	for _, a := range plan.Assignments {
		got = append(got, a.OrderID)
	}
	want := []string{"c", "e", "a", "d", "b", "f"}
	if !slices.Equal(got, want) {
		t.Fatalf("assignment order: got %v, want %v", got, want)
	}
}

func TestPlanSchedule_SingleDigitHourDeadline(t *testing.T) {
	drivers := []models.Driver{{ID: 1, Name: "Amit", WeeklyHours: rested}}
	routes := []models.Route{{ID: 1, DistanceKm: 1, Traffic: types.TrafficLow, BaseTimeMin: 60}}
	orders := []models.Order{
		{ID: "late", RouteID: 1, DeliveryTime: "23:00"},
		{ID: "early", RouteID: 1, DeliveryTime: "9:30"},
	}

	plan := PlanSchedule(drivers, routes, orders, 1)

	if len(plan.Assignments) != 1 || plan.Assignments[0].OrderID != "early" {
		t.Fatalf("expected the 9:30 order assigned first, got %+v", plan.Assignments)
	}
	if !slices.Equal(plan.Unassigned, []string{"late"}) {
		t.Fatalf("expected the 23:00 order unassigned, got %v", plan.Unassigned)
	}
}

func TestPlanSchedule_CapacityIsExactInMinutes(t *testing.T) {
	drivers := []models.Driver{{ID: 1, Name: "Amit", WeeklyHours: rested}}
	routes := []models.Route{{ID: 1, DistanceKm: 1, Traffic: types.TrafficLow, BaseTimeMin: 12}}

	orders := make([]models.Order, 16)
	for i := range orders {
		orders[i] = models.Order{ID: fmt.Sprint(i), RouteID: 1, DeliveryTime: "10:00"}
	}

	plan := PlanSchedule(drivers, routes, orders, 3)

	if len(plan.Assignments) != 15 {
		t.Fatalf("expected 15 twelve minute deliveries in 3 hours, got %d", len(plan.Assignments))
	}
	if !slices.Equal(plan.Unassigned, []string{"15"}) {
		t.Fatalf("expected only order 15 unassigned, got %v", plan.Unassigned)
	}
	if got := plan.DriverHours[1]; got != 3 {
		t.Fatalf("driver hours: got %v, want 3", got)
	}
}

func TestPlanSchedule_FirstFitAcrossDrivers(t *testing.T) {
	drivers := []models.Driver{
		{ID: 1, Name: "Amit", WeeklyHours: rested},
		{ID: 2, Name: "Priya", WeeklyHours: rested},
	}
	routes := []models.Route{
		{ID: 1, DistanceKm: 1, Traffic: types.TrafficLow, BaseTimeMin: 240},
		{ID: 2, DistanceKm: 1, Traffic: types.TrafficLow, BaseTimeMin: 60},
	}
	orders := []models.Order{
		{ID: "1", RouteID: 1, DeliveryTime: "08:00"},
		{ID: "2", RouteID: 1, DeliveryTime: "09:00"},
		{ID: "3", RouteID: 1, DeliveryTime: "10:00"},
		{ID: "4", RouteID: 2, DeliveryTime: "11:00"},
	}

	plan := PlanSchedule(drivers, routes, orders, 8)

	want := map[string]int64{"1": 1, "2": 1, "3": 2, "4": 2}
	for _, a := range plan.Assignments {
		if want[a.OrderID] != a.DriverID {
			t.Errorf("order %s went to driver %d, want %d", a.OrderID, a.DriverID, want[a.OrderID])
		}
	}
	if len(plan.Assignments) != len(want) {
		t.Fatalf("expected %d assignments, got %d", len(want), len(plan.Assignments))
	}
	if plan.DriverHours[1] != 8 || plan.DriverHours[2] != 5 {
		t.Fatalf("driver hours: got %v", plan.DriverHours)
	}
}

func TestPlanSchedule_RespectsHoursCap(t *testing.T) {
	drivers := []models.Driver{
		{ID: 1, Name: "Amit", WeeklyHours: rested},
		{ID: 2, Name: "Priya", WeeklyHours: models.WeeklyHours{9, 9, 9, 9, 9, 9, 9}},
		{ID: 3, Name: "Ravi", WeeklyHours: rested},
	}
	routes := []models.Route{
		{ID: 1, DistanceKm: 3, Traffic: types.TrafficHigh, BaseTimeMin: 45},
		{ID: 2, DistanceKm: 12, Traffic: types.TrafficLow, BaseTimeMin: 70},
		{ID: 3, DistanceKm: 6, Traffic: types.TrafficMedium, BaseTimeMin: 20},
	}

	var orders []models.Order
	for i := range 60 {
		orders = append(orders, models.Order{
			ID:           string(rune('A'+i%26)) + string(rune('a'+i/26)),
			ValueRs:      float64(200 + i*37),
			RouteID:      i%4 + 1, // route 4 does not exist
			DeliveryTime: FormatClock(i * 53),
		})
	}

	const maxHours = 3
	plan := PlanSchedule(drivers, routes, orders, maxHours)

	perDriver := map[int64]int{}
	for _, a := range plan.Assignments {
		for _, r := range routes {
			if r.ID == a.RouteID {
				perDriver[a.DriverID] += r.BaseTimeMin
			}
		}
	}
	for id, minutes := range perDriver {
		if minutes > maxHours*60 {
			t.Errorf("driver %d loaded with %d minutes, cap is %d", id, minutes, maxHours*60)
		}
		if got := plan.DriverHours[id]; got != float64(minutes)/60 {
			t.Errorf("driver %d hours: got %v, want %v", id, got, float64(minutes)/60)
		}
	}

	if got := len(plan.Assignments) + len(plan.Unassigned) + len(plan.Unrouted); got != len(orders) {
		t.Fatalf("every order must be accounted for once, got %d of %d", got, len(orders))
	}
	if len(plan.Unrouted) != 15 {
		t.Fatalf("expected 15 unrouted orders, got %d", len(plan.Unrouted))
	}
	for _, a := range plan.Assignments {
		if a.RouteID == 4 {
			t.Fatalf("order %s has an outcome on a missing route", a.OrderID)
		}
	}
}

func TestPlanSchedule_Deterministic(t *testing.T) {
	drivers := []models.Driver{
		{ID: 1, Name: "Amit", WeeklyHours: models.WeeklyHours{7, 10, 7, 7, 9, 9, 8}},
		{ID: 2, Name: "Priya", WeeklyHours: rested},
	}
	routes := []models.Route{
		{ID: 1, DistanceKm: 3, Traffic: types.TrafficHigh, BaseTimeMin: 45},
		{ID: 2, DistanceKm: 12, Traffic: types.TrafficLow, BaseTimeMin: 70},
	}
	orders := []models.Order{
		{ID: "1", ValueRs: 1200, RouteID: 2, DeliveryTime: "10:30"},
		{ID: "2", ValueRs: 300, RouteID: 1, DeliveryTime: "09:05"},
		{ID: "3", ValueRs: 2500, RouteID: 1, DeliveryTime: "13:45"},
	}

	first := PlanSchedule(drivers, routes, orders, 2)
	second := PlanSchedule(drivers, routes, orders, 2)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical inputs gave different schedules:\n%+v\n%+v", first, second)
	}
}

func TestPlanSchedule_DoesNotMutateInputs(t *testing.T) {
	drivers := []models.Driver{{ID: 1, Name: "Amit", WeeklyHours: rested, CurrentDayHours: 2}}
	routes := []models.Route{{ID: 1, DistanceKm: 3, Traffic: types.TrafficLow, BaseTimeMin: 45}}
	orders := []models.Order{
		{ID: "2", RouteID: 1, DeliveryTime: "11:00"},
		{ID: "1", RouteID: 1, DeliveryTime: "10:00"},
	}

	driversCopy := slices.Clone(drivers)
	ordersCopy := slices.Clone(orders)

	PlanSchedule(drivers, routes, orders, 8)

	if !reflect.DeepEqual(drivers, driversCopy) {
		t.Fatalf("drivers changed: %+v", drivers)
	}
	if !reflect.DeepEqual(orders, ordersCopy) {
		t.Fatalf("orders changed: %+v", orders)
	}
}

func TestPlanSchedule_OutcomeProperties(t *testing.T) {
	drivers := []models.Driver{
		{ID: 1, Name: "Amit", WeeklyHours: models.WeeklyHours{10, 10, 10, 10, 10, 10, 10}},
		{ID: 2, Name: "Priya", WeeklyHours: rested},
	}
	routes := []models.Route{
		{ID: 1, DistanceKm: 5, Traffic: types.TrafficHigh, BaseTimeMin: 20},
		{ID: 2, DistanceKm: 15, Traffic: types.TrafficLow, BaseTimeMin: 60},
	}
	orders := []models.Order{
		{ID: "1", ValueRs: 2000, RouteID: 1, DeliveryTime: "08:00"},
		{ID: "2", ValueRs: 2000, RouteID: 2, DeliveryTime: "08:30"},
		{ID: "3", ValueRs: 400, RouteID: 2, DeliveryTime: "09:00"},
		{ID: "4", ValueRs: 900, RouteID: 1, DeliveryTime: "09:30"},
	}

	plan := PlanSchedule(drivers, routes, orders, 24)
	values := map[string]float64{"1": 2000, "2": 2000, "3": 400, "4": 900}

	for _, a := range plan.Assignments {
		v := values[a.OrderID]
		if a.Bonus > 0 && (v <= HighValueThreshold || !a.IsOnTime) {
			t.Errorf("order %s: bonus without a high value on time delivery", a.OrderID)
		}
		if a.Penalty > 0 && a.IsOnTime {
			t.Errorf("order %s: penalty on an on time delivery", a.OrderID)
		}
		if want := v + a.Bonus - float64(a.Penalty) - a.FuelCost; a.ProfitContribution != want {
			t.Errorf("order %s: net profit %v, want %v", a.OrderID, a.ProfitContribution, want)
		}
	}

	// Driver 1 is fatigued: 20 min -> 26 (on time), 60 min -> 78 (late).
	byOrder := map[string]models.Assignment{}
	for _, a := range plan.Assignments {
		byOrder[a.OrderID] = a
	}
	if a := byOrder["1"]; a.ActualTimeMin != 26 || !a.IsOnTime {
		t.Errorf("order 1: %+v", a)
	}
	if a := byOrder["2"]; a.ActualTimeMin != 78 || a.IsOnTime || a.Penalty != LatePenalty {
		t.Errorf("order 2: %+v", a)
	}
}
