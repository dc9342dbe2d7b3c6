package simulation

import (
	"math"

	"github.com/kavitasoren02/greencart-logistics/internal/domain/models"
)

const (
	FatigueThresholdHours = models.FatigueThresholdHours
	FatigueSlowdown       = 1.3
	GracePeriodMin        = 10
)

// AverageDailyHours is the mean over all 7 days of the trailing week.
func AverageDailyHours(w models.WeeklyHours) float64 {
	return w.Average()
}

func IsFatigued(w models.WeeklyHours) bool {
	return models.Driver{WeeklyHours: w}.IsFatigued()
}

// ActualDeliveryTime is the base time, or 1.3 times it rounded up for a fatigued driver.
func ActualDeliveryTime(baseTimeMin int, fatigued bool) int {
	if !fatigued {
		return baseTimeMin
	}
	return int(math.Ceil(float64(baseTimeMin) * FatigueSlowdown))
}

func IsOnTime(actualTimeMin, baseTimeMin int) bool {
	return actualTimeMin <= baseTimeMin+GracePeriodMin
}
