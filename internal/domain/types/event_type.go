package types

type SimulationEvent string

func (s SimulationEvent) String() string {
	return string(s)
}

const (
	EventSimulationCompleted SimulationEvent = "SIMULATION_COMPLETED"
)
