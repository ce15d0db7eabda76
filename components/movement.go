package components

// MovementComponent turns input axes into forces on the body. Both player
// input and the path follower write the axes; the movement system consumes
// them every tick.
type MovementComponent struct {
	// Input axes, at most unit magnitude combined
	InputX, InputZ float64
	// Jumping is the jump request for this tick
	Jumping bool

	// Tunables
	MaxSpeed         float64
	MoveForce        float64
	Responsiveness   float64
	RunningFriction  float64
	StandingFriction float64
	AirMoveMult      float64
	JumpImpulse      float64
	JumpForce        float64
	JumpTime         float64
	AirJumps         int

	// Jump state
	IsJumping       bool
	CurrentJumpTime float64
	AirJumpCount    int
}

// DefaultMovement returns the standard walker tuning.
func DefaultMovement() MovementComponent {
	return MovementComponent{
		MaxSpeed:         10,
		MoveForce:        30,
		Responsiveness:   15,
		RunningFriction:  0,
		StandingFriction: 2,
		AirMoveMult:      0.5,
		JumpImpulse:      10,
		JumpForce:        12,
		JumpTime:         0.5,
		AirJumps:         0,
	}
}
