package config

// Simulation timing
const (
	// Fixed update rate in ticks per second
	TickRate = 60

	// Fixed timestep in seconds
	TickDT = 1.0 / TickRate

	// Most update ticks a single frame may run while catching up; anything
	// beyond is dropped so a slow frame cannot stall the loop further
	MaxCatchUpTicks = 4
)

// Physics tunables
const (
	// Downward gravity acceleration (blocks per second squared)
	Gravity = -10.0

	// Gravity factor while the body's feet are in fluid
	FluidGravityFactor = 0.4

	// Linear drag coefficient in fluid
	FluidDrag = 4.0

	// Per-component terminal velocity clamp
	MaxVelocity = 100.0

	// The blocked axis must exceed the perpendicular axis by this factor
	// before auto-stepping triggers
	AutoStepSpeedRatio = 16.0
)

// Path following
const (
	// Arrival margin (distance to the node cell center) for ordinary nodes
	PathArriveMargin = 0.4

	// Tighter margin for the final node
	PathFinalMargin = 0.2

	// Tighter still for nodes flagged as needing precision
	PathPrecisionMargin = 0.1

	// Offset from the current cell center that counts as exiting the cell,
	// used for jump-flagged nodes
	PathExitMargin = 0.25

	// Proportional steering gain on positional error
	PathStiffness = 2.5

	// Derivative damping gain on velocity while grounded
	PathDamping = 0.35

	// Derivative damping gain while airborne
	PathDampingAir = 0.6

	// Lookahead self-correction attempts before a path is abandoned
	PathMaxRetries = 30
)

// Pathfinding search bounds
const (
	// Node-expansion cap for a single A* search
	PathMaxNodes = 4096

	// Tallest fall allowed in a single path step
	PathMaxDrop = 3

	// Walker headroom in cells
	PathWalkerHeight = 2
)
