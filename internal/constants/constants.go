package constants

import "time"

const (
	SimulationTimeout = 30 * time.Second
	SquadTimeout      = 5 * time.Second
)

const (
	ShutdownTimeout = 5 * time.Second
)

const (
	DefaultArmySize   = 12
	DefaultSquadCount = 4
)
