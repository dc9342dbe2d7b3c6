package dto

import (
	"github.com/kavitasoren02/greencart-logistics/internal/domain/models"
	"github.com/kavitasoren02/greencart-logistics/pkg/validator"
)

// RunSimulationRequest uses pointers so a missing field is told apart from a zero value.
type RunSimulationRequest struct {
	AvailableDrivers *int    `json:"availableDrivers"`
	StartTime        *string `json:"startTime"`
	MaxHoursPerDay   *int    `json:"maxHoursPerDay"`
}

func (r *RunSimulationRequest) Validate(v *validator.Validator) {
	v.Check(r.AvailableDrivers != nil, "availableDrivers", "must be provided")
	v.Check(r.StartTime != nil, "startTime", "must be provided")
	v.Check(r.MaxHoursPerDay != nil, "maxHoursPerDay", "must be provided")

	if !v.Valid() {
		return
	}

	r.ToModel().Validate(v)
}

func (r *RunSimulationRequest) ToModel() models.SimulationInputs {
	var in models.SimulationInputs
	if r.AvailableDrivers != nil {
		in.AvailableDrivers = *r.AvailableDrivers
	}
	if r.StartTime != nil {
		in.StartTime = *r.StartTime
	}
	if r.MaxHoursPerDay != nil {
		in.MaxHoursPerDay = *r.MaxHoursPerDay
	}
	return in
}
