package reference

import (
	"context"

	"github.com/kavitasoren02/greencart-logistics/internal/domain/models"
)

type DriverReader interface {
	List(ctx context.Context, filters models.Filters) ([]models.Driver, int, error)
	FindByID(ctx context.Context, id int64) (models.Driver, error)
}

type RouteReader interface {
	List(ctx context.Context, filters models.Filters) ([]models.Route, int, error)
	FindByID(ctx context.Context, id int) (models.Route, error)
}

type OrderReader interface {
	List(ctx context.Context, filters models.OrderFilters) ([]models.Order, int, error)
	FindByID(ctx context.Context, id string) (models.Order, error)
}
