package components

// PositionComponent mirrors the resolved physics AABB: box center plus
// horizontal/vertical extents. Physics writes it at the end of every tick;
// everything downstream (pathing, rendering) reads it.
type PositionComponent struct {
	// AABB center
	X, Y, Z float64
	// Full horizontal width and vertical height
	W, H float64
}
