package simulation

import (
	"math"

	"github.com/kavitasoren02/greencart-logistics/internal/domain/models"
)

// AggregateKPIs reduces assigned orders into fleet level results.
func AggregateKPIs(assignments []models.Assignment) models.KPIResults {
	var (
		res                   models.KPIResults
		profit, fuel, bonuses float64
	)

	for _, a := range assignments {
		if a.IsOnTime {
			res.OnTimeDeliveries++
		}
		profit += a.ProfitContribution
		fuel += a.FuelCost
		bonuses += a.Bonus
		res.TotalPenalties += a.Penalty
	}

	res.TotalOrders = len(assignments)
	res.LateDeliveries = res.TotalOrders - res.OnTimeDeliveries
	res.TotalProfit = Round2(profit)
	res.TotalFuelCost = Round2(fuel)
	res.TotalBonuses = Round2(bonuses)

	if res.TotalOrders > 0 {
		res.EfficiencyScore = Round2(float64(res.OnTimeDeliveries) / float64(res.TotalOrders) * 100)
	}

	return res
}

// Round2 rounds to 2 decimal places, halves away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
