package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kavitasoren02/greencart-logistics/internal/domain/types"
)

const (
	// DaysInWeek is the length of a driver's trailing hours window.
	DaysInWeek = 7

	DefaultShiftHours  = 8
	DefaultWeeklyHours = "8|8|8|8|8|8|8"

	// FatigueThresholdHours is the daily average above which a driver is fatigued.
	FatigueThresholdHours = 8.0
)

// WeeklyHours are the hours a driver worked on each of the last 7 days, oldest first.
type WeeklyHours [DaysInWeek]float64

// ParseWeeklyHours parses the pipe separated storage form, e.g. "7|10|7|7|9|9|8".
func ParseWeeklyHours(s string) (WeeklyHours, error) {
	var w WeeklyHours

	parts := strings.Split(strings.TrimSpace(s), "|")
	if len(parts) != DaysInWeek {
		return w, fmt.Errorf("%w: want %d entries, got %d", types.ErrInvalidWeeklyHours, DaysInWeek, len(parts))
	}

	for i, p := range parts {
		h, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return w, fmt.Errorf("%w: entry %d: %q is not a number", types.ErrInvalidWeeklyHours, i+1, p)
		}
		if h < 0 {
			return w, fmt.Errorf("%w: entry %d is negative", types.ErrInvalidWeeklyHours, i+1)
		}
		w[i] = h
	}

	return w, nil
}

func (w WeeklyHours) String() string {
	parts := make([]string, len(w))
	for i, h := range w {
		parts[i] = strconv.FormatFloat(h, 'f', -1, 64)
	}
	return strings.Join(parts, "|")
}

// Average is the mean over all 7 days, including days off.
func (w WeeklyHours) Average() float64 {
	var sum float64
	for _, h := range w {
		sum += h
	}
	return sum / DaysInWeek
}

// Driver is reference data owned outside of the simulation.
type Driver struct {
	ID              int64       `json:"id"`
	Name            string      `json:"name"`
	ShiftHours      int         `json:"shift_hours"`
	WeeklyHours     WeeklyHours `json:"past_week_hours"`
	CurrentDayHours float64     `json:"current_day_hours"`
}

// IsFatigued reports whether the trailing week averages more than 8 hours a day.
func (d Driver) IsFatigued() bool {
	return d.WeeklyHours.Average() > FatigueThresholdHours
}
