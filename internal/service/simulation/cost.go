package simulation

import (
	"github.com/kavitasoren02/greencart-logistics/internal/domain/models"
	"github.com/kavitasoren02/greencart-logistics/internal/domain/types"
)

const (
	FuelCostPerKm          = 5.0
	HighTrafficSurchargeKm = 2.0
)

// FuelCost is 5 per km, plus 2 per km on High traffic routes.
func FuelCost(r models.Route) float64 {
	cost := r.DistanceKm * FuelCostPerKm
	if r.Traffic == types.TrafficHigh {
		cost += r.DistanceKm * HighTrafficSurchargeKm
	}
	return cost
}
