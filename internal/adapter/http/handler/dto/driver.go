package dto

import "github.com/kavitasoren02/greencart-logistics/internal/domain/models"

// DriverResponse adds the derived fatigue flag to a stored driver.
type DriverResponse struct {
	models.Driver
	AverageDailyHours float64 `json:"average_daily_hours"`
	IsFatigued        bool    `json:"is_fatigued"`
}

func NewDriverResponse(d models.Driver) DriverResponse {
	return DriverResponse{
		Driver:            d,
		AverageDailyHours: d.WeeklyHours.Average(),
		IsFatigued:        d.IsFatigued(),
	}
}

func NewDriverResponses(drivers []models.Driver) []DriverResponse {
	out := make([]DriverResponse, len(drivers))
	for i, d := range drivers {
		out[i] = NewDriverResponse(d)
	}
	return out
}
