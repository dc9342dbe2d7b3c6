// Package reference serves read access to drivers, routes and orders.
package reference

import (
	"context"
	"fmt"

	"github.com/kavitasoren02/greencart-logistics/internal/domain/models"
	"github.com/kavitasoren02/greencart-logistics/internal/domain/types"
	wrap "github.com/kavitasoren02/greencart-logistics/pkg/logger/wrapper"
	"github.com/kavitasoren02/greencart-logistics/pkg/validator"
)

type Service struct {
	drivers DriverReader
	routes  RouteReader
	orders  OrderReader
}

func NewService(drivers DriverReader, routes RouteReader, orders OrderReader) *Service {
	return &Service{
		drivers: drivers,
		routes:  routes,
		orders:  orders,
	}
}

func (s *Service) ListDrivers(ctx context.Context, filters models.Filters) ([]models.Driver, models.Metadata, error) {
	return list(ctx, "drivers", filters, func() ([]models.Driver, int, error) {
		return s.drivers.List(ctx, filters)
	})
}

func (s *Service) GetDriver(ctx context.Context, id int64) (models.Driver, error) {
	d, err := s.drivers.FindByID(ctx, id)
	if err != nil {
		return models.Driver{}, wrap.Error(wrap.WithAction(ctx, types.ActionReadReference), err)
	}
	return d, nil
}

func (s *Service) ListRoutes(ctx context.Context, filters models.Filters) ([]models.Route, models.Metadata, error) {
	return list(ctx, "routes", filters, func() ([]models.Route, int, error) {
		return s.routes.List(ctx, filters)
	})
}

func (s *Service) GetRoute(ctx context.Context, id int) (models.Route, error) {
	r, err := s.routes.FindByID(ctx, id)
	if err != nil {
		return models.Route{}, wrap.Error(wrap.WithAction(ctx, types.ActionReadReference), err)
	}
	return r, nil
}

// ListOrders pages through orders, optionally narrowed to one route or
// delivery state.
func (s *Service) ListOrders(ctx context.Context, filters models.OrderFilters) ([]models.Order, models.Metadata, error) {
	v := validator.New()
	if filters.RouteID != nil {
		v.Check(*filters.RouteID > 0, "route_id", "must be greater than zero")
	}
	if !v.Valid() {
		return nil, models.Metadata{}, wrap.Error(ctx, types.NewValidationError(v.Errors))
	}

	return list(ctx, "orders", filters.Filters, func() ([]models.Order, int, error) {
		return s.orders.List(ctx, filters)
	})
}

func (s *Service) GetOrder(ctx context.Context, id string) (models.Order, error) {
	o, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return models.Order{}, wrap.Error(wrap.WithAction(ctx, types.ActionReadReference), err)
	}
	return o, nil
}

// list validates the page filters, runs fetch and derives the page metadata.
func list[T any](ctx context.Context, what string, filters models.Filters, fetch func() ([]T, int, error)) ([]T, models.Metadata, error) {
	ctx = wrap.WithAction(ctx, types.ActionReadReference)

	v := validator.New()
	if filters.Validate(v); !v.Valid() {
		return nil, models.Metadata{}, wrap.Error(ctx, types.NewValidationError(v.Errors))
	}

	items, total, err := fetch()
	if err != nil {
		return nil, models.Metadata{}, wrap.Error(ctx, fmt.Errorf("failed to list %s: %w", what, err))
	}
	if items == nil {
		items = []T{}
	}

	return items, models.CalculateMetadata(total, filters.Page, filters.PageSize), nil
}
