package simulation

import (
	"slices"

	"github.com/kavitasoren02/greencart-logistics/internal/domain/models"
)

// Schedule is the result of assigning one order backlog to a driver pool.
type Schedule struct {
	// Assignments in the order they were made (deadline order).
	Assignments []models.Assignment
	// DriverHours is the hour load each pool driver accumulated during this run.
	DriverHours map[int64]float64
	// Unrouted lists orders whose route does not exist.
	Unrouted []string
	// Unassigned lists orders no driver had capacity for.
	Unassigned []string
}

type queuedOrder struct {
	order    models.Order
	deadline int
	hasClock bool
}

// PlanSchedule greedily assigns orders to the first driver with enough remaining hours.
//
// Orders are visited by ascending delivery deadline (stable; unparsable deadlines go last),
// drivers in pool order. The inputs are treated as read-only snapshots.
func PlanSchedule(drivers []models.Driver, routes []models.Route, orders []models.Order, maxHoursPerDay int) Schedule {
	routeByID := make(map[int]models.Route, len(routes))
	for _, r := range routes {
		routeByID[r.ID] = r
	}

	queue := make([]queuedOrder, len(orders))
	for i, o := range orders {
		deadline, err := parseDeadline(o.DeliveryTime)
		queue[i] = queuedOrder{order: o, deadline: deadline, hasClock: err == nil}
	}
	slices.SortStableFunc(queue, compareDeadlines)

	// Load is tracked in whole minutes so the capacity check is exact.
	capacityMin := maxHoursPerDay * 60
	loadMin := make([]int, len(drivers))

	fatigued := make([]bool, len(drivers))
	for i, d := range drivers {
		fatigued[i] = IsFatigued(d.WeeklyHours)
	}

	plan := Schedule{
		Assignments: make([]models.Assignment, 0, len(orders)),
		DriverHours: make(map[int64]float64, len(drivers)),
	}

	for _, q := range queue {
		route, ok := routeByID[q.order.RouteID]
		if !ok {
			plan.Unrouted = append(plan.Unrouted, q.order.ID)
			continue
		}

		idx := -1
		for i := range drivers {
			if loadMin[i]+route.BaseTimeMin <= capacityMin {
				idx = i
				break
			}
		}
		if idx < 0 {
			plan.Unassigned = append(plan.Unassigned, q.order.ID)
			continue
		}
		loadMin[idx] += route.BaseTimeMin

		plan.Assignments = append(plan.Assignments, assign(q.order, drivers[idx], route, fatigued[idx]))
	}

	for i, d := range drivers {
		plan.DriverHours[d.ID] += float64(loadMin[i]) / 60
	}

	return plan
}

func assign(o models.Order, d models.Driver, r models.Route, fatigued bool) models.Assignment {
	actual := ActualDeliveryTime(r.BaseTimeMin, fatigued)
	onTime := IsOnTime(actual, r.BaseTimeMin)
	profit := CalculateProfit(o.ValueRs, onTime, FuelCost(r))

	return models.Assignment{
		OrderID:            o.ID,
		DriverID:           d.ID,
		DriverName:         d.Name,
		RouteID:            r.ID,
		IsOnTime:           onTime,
		ActualTimeMin:      actual,
		ProfitContribution: profit.NetProfit,
		FuelCost:           profit.FuelCost,
		Penalty:            profit.Penalty,
		Bonus:              profit.Bonus,
	}
}

// parseDeadline tolerates single digit hours left over from older data.
func parseDeadline(s string) (int, error) {
	clock, err := models.NormalizeDeliveryTime(s)
	if err != nil {
		return 0, err
	}
	return ParseClock(clock)
}

func compareDeadlines(a, b queuedOrder) int {
	switch {
	case a.hasClock && !b.hasClock:
		return -1
	case !a.hasClock && b.hasClock:
		return 1
	case !a.hasClock && !b.hasClock:
		return 0
	}
	return a.deadline - b.deadline
}
