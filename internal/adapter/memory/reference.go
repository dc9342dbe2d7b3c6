package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"github.com/kavitasoren02/greencart-logistics/internal/domain/models"
	"github.com/kavitasoren02/greencart-logistics/internal/domain/types"
)

// ReferenceStore keeps drivers, routes and orders in memory.
type ReferenceStore struct {
	drivers []models.Driver
	routes  []models.Route
	orders  []models.Order
	mu      sync.RWMutex
}

func NewReferenceStore(drivers []models.Driver, routes []models.Route, orders []models.Order) *ReferenceStore {
	s := &ReferenceStore{
		drivers: slices.Clone(drivers),
		routes:  slices.Clone(routes),
		orders:  slices.Clone(orders),
	}
	slices.SortFunc(s.drivers, func(a, b models.Driver) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return s
}

// Drivers is the DriverStore view of the reference data.
func (s *ReferenceStore) Drivers() *DriverStore { return &DriverStore{s} }

// Routes is the RouteStore view of the reference data.
func (s *ReferenceStore) Routes() *RouteStore { return &RouteStore{s} }

// Orders is the OrderStore view of the reference data.
func (s *ReferenceStore) Orders() *OrderStore { return &OrderStore{s} }

type DriverStore struct{ s *ReferenceStore }

func (d *DriverStore) ListFirst(ctx context.Context, n int) ([]models.Driver, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	d.s.mu.RLock()
	defer d.s.mu.RUnlock()

	n = max(0, min(n, len(d.s.drivers)))
	return slices.Clone(d.s.drivers[:n]), nil
}

func (d *DriverStore) List(ctx context.Context, filters models.Filters) ([]models.Driver, int, error) {
	select {
	case <-ctx.Done():
		return nil, 0, ctx.Err()
	default:
	}
	d.s.mu.RLock()
	defer d.s.mu.RUnlock()

	result := slices.Clone(d.s.drivers)
	sortBy(result, filters, func(a, b models.Driver) int {
		switch filters.SortColumn() {
		case "name":
			return cmp.Compare(a.Name, b.Name)
		case "shift_hours":
			return cmp.Compare(a.ShiftHours, b.ShiftHours)
		}
		return cmp.Compare(a.ID, b.ID)
	})

	page, total := paginate(result, filters)
	return page, total, nil
}

func (d *DriverStore) FindByID(ctx context.Context, id int64) (models.Driver, error) {
	select {
	case <-ctx.Done():
		return models.Driver{}, ctx.Err()
	default:
	}
	d.s.mu.RLock()
	defer d.s.mu.RUnlock()

	i := slices.IndexFunc(d.s.drivers, func(dr models.Driver) bool { return dr.ID == id })
	if i < 0 {
		return models.Driver{}, types.ErrDriverNotFound
	}
	return d.s.drivers[i], nil
}

type RouteStore struct{ s *ReferenceStore }

func (r *RouteStore) ListAll(ctx context.Context) ([]models.Route, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return slices.Clone(r.s.routes), nil
}

func (r *RouteStore) List(ctx context.Context, filters models.Filters) ([]models.Route, int, error) {
	select {
	case <-ctx.Done():
		return nil, 0, ctx.Err()
	default:
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	result := slices.Clone(r.s.routes)
	sortBy(result, filters, func(a, b models.Route) int {
		switch filters.SortColumn() {
		case "distance_km":
			return cmp.Compare(a.DistanceKm, b.DistanceKm)
		case "base_time_min":
			return cmp.Compare(a.BaseTimeMin, b.BaseTimeMin)
		}
		return cmp.Compare(a.ID, b.ID)
	})

	page, total := paginate(result, filters)
	return page, total, nil
}

func (r *RouteStore) FindByID(ctx context.Context, id int) (models.Route, error) {
	select {
	case <-ctx.Done():
		return models.Route{}, ctx.Err()
	default:
	}
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	i := slices.IndexFunc(r.s.routes, func(rt models.Route) bool { return rt.ID == id })
	if i < 0 {
		return models.Route{}, types.ErrRouteNotFound
	}
	return r.s.routes[i], nil
}

type OrderStore struct{ s *ReferenceStore }

func (o *OrderStore) ListAll(ctx context.Context) ([]models.Order, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}
	o.s.mu.RLock()
	defer o.s.mu.RUnlock()

	return slices.Clone(o.s.orders), nil
}

func (o *OrderStore) List(ctx context.Context, filters models.OrderFilters) ([]models.Order, int, error) {
	select {
	case <-ctx.Done():
		return nil, 0, ctx.Err()
	default:
	}
	o.s.mu.RLock()
	defer o.s.mu.RUnlock()

	result := make([]models.Order, 0, len(o.s.orders))
	for _, ord := range o.s.orders {
		if filters.RouteID != nil && ord.RouteID != *filters.RouteID {
			continue
		}
		if filters.IsDelivered != nil && ord.IsDelivered != *filters.IsDelivered {
			continue
		}
		result = append(result, ord)
	}

	sortBy(result, filters.Filters, func(a, b models.Order) int {
		switch filters.SortColumn() {
		case "value_rs":
			return cmp.Compare(a.ValueRs, b.ValueRs)
		case "delivery_time":
			return cmp.Compare(a.DeliveryTime, b.DeliveryTime)
		}
		return cmp.Compare(a.ID, b.ID)
	})

	page, total := paginate(result, filters.Filters)
	return page, total, nil
}

func (o *OrderStore) FindByID(ctx context.Context, id string) (models.Order, error) {
	select {
	case <-ctx.Done():
		return models.Order{}, ctx.Err()
	default:
	}
	o.s.mu.RLock()
	defer o.s.mu.RUnlock()

	i := slices.IndexFunc(o.s.orders, func(ord models.Order) bool { return ord.ID == id })
	if i < 0 {
		return models.Order{}, types.ErrOrderNotFound
	}
	return o.s.orders[i], nil
}

func (o *OrderStore) RecordOutcome(ctx context.Context, orderID string, outcome models.OrderOutcome) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	o.s.mu.Lock()
	defer o.s.mu.Unlock()

	for i := range o.s.orders {
		if o.s.orders[i].ID != orderID {
			continue
		}
		driverID, onTime := outcome.DriverID, outcome.IsOnTime
		o.s.orders[i].AssignedDriverID = &driverID
		o.s.orders[i].IsDelivered = true
		o.s.orders[i].IsOnTime = &onTime
		o.s.orders[i].PenaltyApplied = outcome.Penalty
		o.s.orders[i].BonusApplied = outcome.Bonus
		return nil
	}

	return types.ErrOrderNotFound
}

// sortBy orders items by cmpFn in the filter's direction. Equal items keep
// their stored order.
func sortBy[T any](items []T, filters models.Filters, cmpFn func(a, b T) int) {
	desc := filters.SortDirection() == "DESC"
	slices.SortStableFunc(items, func(a, b T) int {
		if desc {
			return -cmpFn(a, b)
		}
		return cmpFn(a, b)
	})
}

// paginate cuts one page out of items. The total is the full length, also for
// a page past the end.
func paginate[T any](items []T, filters models.Filters) ([]T, int) {
	total := len(items)
	start := min(filters.Offset(), total)
	end := min(start+filters.Limit(), total)
	return items[start:end], total
}
