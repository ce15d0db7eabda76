package components

import (
	"github.com/PeteSumners/cornerstone/pathfind"
	"github.com/PeteSumners/cornerstone/vmath"
)

// PathFollowComponent tracks the path-following state of one entity:
// the computed node list, the follower's progress through it, and the
// pending target request the path system resolves on its next pass.
type PathFollowComponent struct {
	// Path is the active node list, nil while idle.
	Path []pathfind.Node
	// PathIndex is the node currently steered toward. It is monotonic
	// within a path's lifetime.
	PathIndex int
	// Precision flags nodes that must be centered tightly before the
	// follower advances, set by the lookahead self-correction.
	Precision []bool
	// SoftTarget is an exact, non-grid destination overriding the final
	// node's cell center when both land in the same cell.
	SoftTarget *vmath.Vec3
	// Goal is the cell of the last computed path, kept for re-requests
	// when the world changes under an active path.
	Goal vmath.GridPos

	// Pending request
	HasRequest  bool
	Request     vmath.GridPos
	RequestSoft *vmath.Vec3

	// RetryCount bounds the lookahead self-correction so a follower can
	// never spin forever against a node it cannot reach.
	RetryCount int
}

// Active reports whether a path is being followed.
func (p *PathFollowComponent) Active() bool {
	return p.Path != nil && p.PathIndex < len(p.Path)
}

// RequestTarget asks for a path to the given cell on the next tick.
func (p *PathFollowComponent) RequestTarget(cell vmath.GridPos) {
	p.HasRequest = true
	p.Request = cell
	p.RequestSoft = nil
}

// RequestSoftTarget asks for a path to the cell containing the exact
// point, which then overrides the final node's cell center.
func (p *PathFollowComponent) RequestSoftTarget(point vmath.Vec3) {
	p.HasRequest = true
	p.Request = vmath.CellOf(point)
	soft := point
	p.RequestSoft = &soft
}
