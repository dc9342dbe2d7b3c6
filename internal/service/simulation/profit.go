package simulation

const (
	LatePenalty           = 50
	HighValueThreshold    = 1000.0
	HighValueBonusPercent = 0.10
)

type Profit struct {
	Penalty   int
	Bonus     float64
	FuelCost  float64
	NetProfit float64
}

// CalculateProfit derives penalty, bonus and net profit for one delivered order.
func CalculateProfit(value float64, onTime bool, fuelCost float64) Profit {
	p := Profit{FuelCost: fuelCost}

	if !onTime {
		p.Penalty = LatePenalty
	}
	if onTime && value > HighValueThreshold {
		p.Bonus = value * HighValueBonusPercent
	}

	p.NetProfit = value + p.Bonus - float64(p.Penalty) - fuelCost

	return p
}
