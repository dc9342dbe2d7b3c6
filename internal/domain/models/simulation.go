package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/kavitasoren02/greencart-logistics/internal/domain/types"
	"github.com/kavitasoren02/greencart-logistics/pkg/validator"
)

const (
	MinAvailableDrivers = 1
	MaxAvailableDrivers = 100
	MinHoursPerDay      = 1
	MaxHoursPerDay      = 24
)

type SimulationInputs struct {
	AvailableDrivers int    `json:"availableDrivers"`
	StartTime        string `json:"startTime"`
	MaxHoursPerDay   int    `json:"maxHoursPerDay"`
}

func (in SimulationInputs) Validate(v *validator.Validator) {
	v.Check(validator.In(in.AvailableDrivers, MinAvailableDrivers, MaxAvailableDrivers), "availableDrivers", "must be between 1 and 100")
	v.Check(validator.Matches(in.StartTime, validator.ClockRX), "startTime", "must be in HH:MM format")
	v.Check(validator.In(in.MaxHoursPerDay, MinHoursPerDay, MaxHoursPerDay), "maxHoursPerDay", "must be between 1 and 24")
}

// Assignment is the outcome of one order assigned to one driver during a run.
type Assignment struct {
	OrderID            string  `json:"order_id"`
	DriverID           int64   `json:"-"`
	DriverName         string  `json:"driver_name"`
	RouteID            int     `json:"route_id"`
	IsOnTime           bool    `json:"is_on_time"`
	ActualTimeMin      int     `json:"-"`
	ProfitContribution float64 `json:"profit_contribution"`
	FuelCost           float64 `json:"fuel_cost"`
	Penalty            int     `json:"penalty"`
	Bonus              float64 `json:"bonus"`
}

// Outcome returns the fields written back onto the order.
func (a Assignment) Outcome() OrderOutcome {
	return OrderOutcome{
		DriverID: a.DriverID,
		IsOnTime: a.IsOnTime,
		Penalty:  a.Penalty,
		Bonus:    a.Bonus,
	}
}

type KPIResults struct {
	TotalProfit      float64 `json:"total_profit"`
	EfficiencyScore  float64 `json:"efficiency_score"`
	OnTimeDeliveries int     `json:"on_time_deliveries"`
	LateDeliveries   int     `json:"late_deliveries"`
	TotalFuelCost    float64 `json:"total_fuel_cost"`
	TotalPenalties   int     `json:"total_penalties"`
	TotalBonuses     float64 `json:"total_bonuses"`
	TotalOrders      int     `json:"total_orders"`
}

// SimulationRun is an immutable record of one simulation.
type SimulationRun struct {
	ID          uuid.UUID        `json:"simulationId"`
	Inputs      SimulationInputs `json:"inputs"`
	Results     KPIResults       `json:"results"`
	Assignments []Assignment     `json:"assignments"`
	CreatedAt   time.Time        `json:"createdAt"`
}

func (r *SimulationRun) Summary() SimulationSummary {
	return SimulationSummary{
		ID:        r.ID,
		Inputs:    r.Inputs,
		Results:   r.Results,
		CreatedAt: r.CreatedAt,
	}
}

// SimulationSummary is a run without its per-order breakdown.
type SimulationSummary struct {
	ID        uuid.UUID        `json:"simulationId"`
	Inputs    SimulationInputs `json:"inputs"`
	Results   KPIResults       `json:"results"`
	CreatedAt time.Time        `json:"createdAt"`
}

type SimulationStats struct {
	TotalSimulations  int     `json:"total_simulations"`
	AverageProfit     float64 `json:"average_profit"`
	AverageEfficiency float64 `json:"average_efficiency"`
	BestEfficiency    float64 `json:"best_efficiency"`
	WorstEfficiency   float64 `json:"worst_efficiency"`
}

// SimulationCompletedEvent is published once a run has been saved.
type SimulationCompletedEvent struct {
	Type         types.SimulationEvent `json:"type"`
	SimulationID uuid.UUID             `json:"simulationId"`
	Inputs       SimulationInputs      `json:"inputs"`
	Results      KPIResults            `json:"results"`
	CreatedAt    time.Time             `json:"createdAt"`
}

func NewSimulationCompletedEvent(run *SimulationRun) SimulationCompletedEvent {
	return SimulationCompletedEvent{
		Type:         types.EventSimulationCompleted,
		SimulationID: run.ID,
		Inputs:       run.Inputs,
		Results:      run.Results,
		CreatedAt:    run.CreatedAt,
	}
}
