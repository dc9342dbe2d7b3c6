package models

import (
	"strings"

	"github.com/kavitasoren02/greencart-logistics/internal/domain/types"
	"github.com/kavitasoren02/greencart-logistics/pkg/validator"
)

type Order struct {
	ID           string  `json:"order_id"`
	ValueRs      float64 `json:"value_rs"`
	RouteID      int     `json:"route_id"`
	DeliveryTime string  `json:"delivery_time"`

	// Outcome of the last simulation that assigned this order.
	AssignedDriverID *int64  `json:"assigned_driver,omitempty"`
	IsDelivered      bool    `json:"is_delivered"`
	IsOnTime         *bool   `json:"is_on_time,omitempty"`
	PenaltyApplied   int     `json:"penalty_applied"`
	BonusApplied     float64 `json:"bonus_applied"`
}

// OrderOutcome is what a simulation writes back onto an assigned order.
type OrderOutcome struct {
	DriverID int64
	IsOnTime bool
	Penalty  int
	Bonus    float64
}

// OrderFilters narrows an order listing. Nil fields are not applied.
type OrderFilters struct {
	Filters
	RouteID     *int
	IsDelivered *bool
}

// NormalizeDeliveryTime zero pads an H:MM delivery time to HH:MM so deadlines
// compare correctly as clock values.
func NormalizeDeliveryTime(s string) (string, error) {
	s = strings.TrimSpace(s)
	if !validator.Matches(s, validator.DeliveryTimeRX) {
		return "", &types.FormatError{Value: s}
	}
	if len(s) == len("9:30") {
		s = "0" + s
	}
	return s, nil
}
