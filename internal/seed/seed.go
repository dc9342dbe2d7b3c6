// Package seed reads the reference data fixture used by dbtool.
package seed

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/kavitasoren02/greencart-logistics/internal/domain/models"
	"github.com/kavitasoren02/greencart-logistics/internal/domain/types"
	"github.com/kavitasoren02/greencart-logistics/pkg/validator"
)

// Fixture is the on-disk form. Optional fields are pointers or empty strings so
// the defaults below can be applied.
type Fixture struct {
	Drivers []DriverRow `json:"drivers"`
	Routes  []RouteRow  `json:"routes"`
	Orders  []OrderRow  `json:"orders"`
}

type DriverRow struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	ShiftHours    *int   `json:"shift_hours"`
	PastWeekHours string `json:"past_week_hours"`
}

type RouteRow struct {
	RouteID      int     `json:"route_id"`
	DistanceKm   float64 `json:"distance_km"`
	TrafficLevel string  `json:"traffic_level"`
	BaseTimeMin  int     `json:"base_time_min"`
}

type OrderRow struct {
	OrderID      string  `json:"order_id"`
	ValueRs      float64 `json:"value_rs"`
	RouteID      int     `json:"route_id"`
	DeliveryTime string  `json:"delivery_time"`
}

// Dataset is a fixture converted to domain models.
type Dataset struct {
	Drivers []models.Driver
	Routes  []models.Route
	Orders  []models.Order
}

// Decode reads a fixture and converts it. Drivers without an id are numbered
// after the largest explicit id in file order, which is the order ListFirst
// returns them in.
func Decode(r io.Reader) (Dataset, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	var f Fixture
	if err := dec.Decode(&f); err != nil {
		return Dataset{}, fmt.Errorf("decode fixture: %w", err)
	}

	return f.Dataset()
}

func (f Fixture) Dataset() (Dataset, error) {
	v := validator.New()

	ds := Dataset{
		Drivers: f.drivers(v),
		Routes:  f.routes(v),
		Orders:  f.orders(v),
	}

	if !v.Valid() {
		return Dataset{}, types.NewValidationError(v.Errors)
	}
	return ds, nil
}

func (f Fixture) drivers(v *validator.Validator) []models.Driver {
	var next int64
	for _, row := range f.Drivers {
		next = max(next, row.ID)
	}

	seen := make(map[int64]bool, len(f.Drivers))
	drivers := make([]models.Driver, 0, len(f.Drivers))
	for i, row := range f.Drivers {
		key := fmt.Sprintf("drivers[%d]", i)

		d := models.Driver{
			ID:         row.ID,
			Name:       strings.TrimSpace(row.Name),
			ShiftHours: models.DefaultShiftHours,
		}
		if d.ID == 0 {
			next++
			d.ID = next
		}
		v.Check(d.ID > 0, key+".id", "must be positive")
		v.Check(!seen[d.ID], key+".id", "must be unique")
		seen[d.ID] = true

		v.Check(d.Name != "", key+".name", "must be provided")

		if row.ShiftHours != nil && *row.ShiftHours > 0 {
			d.ShiftHours = *row.ShiftHours
		}

		weekly := strings.TrimSpace(row.PastWeekHours)
		if weekly == "" {
			weekly = models.DefaultWeeklyHours
		}
		hours, err := models.ParseWeeklyHours(weekly)
		if err != nil {
			v.AddError(key+".past_week_hours", err.Error())
		}
		d.WeeklyHours = hours

		drivers = append(drivers, d)
	}
	return drivers
}

func (f Fixture) routes(v *validator.Validator) []models.Route {
	seen := make(map[int]bool, len(f.Routes))
	routes := make([]models.Route, 0, len(f.Routes))
	for i, row := range f.Routes {
		key := fmt.Sprintf("routes[%d]", i)

		v.Check(row.RouteID > 0, key+".route_id", "must be positive")
		v.Check(!seen[row.RouteID], key+".route_id", "must be unique")
		seen[row.RouteID] = true
		v.Check(row.DistanceKm >= 0, key+".distance_km", "must not be negative")
		v.Check(row.BaseTimeMin >= 0, key+".base_time_min", "must not be negative")

		traffic, err := types.ParseTrafficLevel(row.TrafficLevel)
		if err != nil {
			v.AddError(key+".traffic_level", err.Error())
		}

		routes = append(routes, models.Route{
			ID:          row.RouteID,
			DistanceKm:  row.DistanceKm,
			Traffic:     traffic,
			BaseTimeMin: row.BaseTimeMin,
		})
	}
	return routes
}

// orders keeps orders whose route is not in the fixture; the scheduler reports
// them as unrouted.
func (f Fixture) orders(v *validator.Validator) []models.Order {
	seen := make(map[string]bool, len(f.Orders))
	orders := make([]models.Order, 0, len(f.Orders))
	for i, row := range f.Orders {
		key := fmt.Sprintf("orders[%d]", i)
		id := strings.TrimSpace(row.OrderID)

		v.Check(id != "", key+".order_id", "must be provided")
		v.Check(!seen[id], key+".order_id", "must be unique")
		seen[id] = true
		v.Check(row.ValueRs >= 0, key+".value_rs", "must not be negative")

		deadline, err := models.NormalizeDeliveryTime(row.DeliveryTime)
		if err != nil {
			v.AddError(key+".delivery_time", "must be in H:MM or HH:MM format")
		}

		orders = append(orders, models.Order{
			ID:           id,
			ValueRs:      row.ValueRs,
			RouteID:      row.RouteID,
			DeliveryTime: deadline,
		})
	}
	return orders
}
