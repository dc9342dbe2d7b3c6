package types

import (
	"fmt"
	"strings"
)

type ServiceMode string

// Simulation Service - runs delivery simulations and serves their history over HTTP
const (
	SimulationService ServiceMode = "simulation-service"
)

func (m ServiceMode) String() string {
	return string(m)
}

// TrafficLevel is the congestion level of a route.
type TrafficLevel string

const (
	TrafficLow    TrafficLevel = "Low"
	TrafficMedium TrafficLevel = "Medium"
	TrafficHigh   TrafficLevel = "High"
)

func (t TrafficLevel) String() string {
	return string(t)
}

func (t TrafficLevel) Valid() bool {
	switch t {
	case TrafficLow, TrafficMedium, TrafficHigh:
		return true
	default:
		return false
	}
}

// ParseTrafficLevel accepts any letter case; an empty string means Medium.
func ParseTrafficLevel(s string) (TrafficLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "low":
		return TrafficLow, nil
	case "medium", "":
		return TrafficMedium, nil
	case "high":
		return TrafficHigh, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidTrafficLevel, s)
	}
}
