package models

import "github.com/kavitasoren02/greencart-logistics/internal/domain/types"

type Route struct {
	ID          int                `json:"route_id"`
	DistanceKm  float64            `json:"distance_km"`
	Traffic     types.TrafficLevel `json:"traffic_level"`
	BaseTimeMin int                `json:"base_time_min"`
}

// BaseTimeHours is the route's base transit time expressed in hours.
func (r Route) BaseTimeHours() float64 {
	return float64(r.BaseTimeMin) / 60
}
