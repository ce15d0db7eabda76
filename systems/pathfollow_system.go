package systems

import (
	"log/slog"
	"math"

	"github.com/PeteSumners/cornerstone/components"
	"github.com/PeteSumners/cornerstone/config"
	"github.com/PeteSumners/cornerstone/ecs"
	"github.com/PeteSumners/cornerstone/pathfind"
	"github.com/PeteSumners/cornerstone/physics"
	"github.com/PeteSumners/cornerstone/vmath"
)

// PathFollowSystem resolves pending path requests and steers followers
// along their active paths. It runs between physics and movement: it reads
// the tick's resolved positions and writes movement inputs that the next
// physics pass integrates.
type PathFollowSystem struct {
	isPassable func(x, y, z int) bool
	logger     *slog.Logger
	events     *ecs.EventManager
	paths      *ecs.Store[components.PathFollowComponent]
	movements  *ecs.Store[components.MovementComponent]
	bodies     *ecs.Store[components.BodyComponent]
	opts       pathfind.Options
}

// NewPathFollowSystem creates the path-following pass and subscribes it to
// block-change events so paths invalidated by world edits are recomputed.
func NewPathFollowSystem(
	isPassable func(x, y, z int) bool,
	events *ecs.EventManager,
	paths *ecs.Store[components.PathFollowComponent],
	movements *ecs.Store[components.MovementComponent],
	bodies *ecs.Store[components.BodyComponent],
	logger *slog.Logger,
) *PathFollowSystem {
	if logger == nil {
		logger = slog.Default()
	}
	s := &PathFollowSystem{
		isPassable: isPassable,
		logger:     logger,
		events:     events,
		paths:      paths,
		movements:  movements,
		bodies:     bodies,
	}
	events.Subscribe(EventBlockChanged, func(ev ecs.Event) {
		if bc, ok := ev.(BlockChangedEvent); ok {
			s.invalidate(vmath.GridPos{X: bc.X, Y: bc.Y, Z: bc.Z})
		}
	})
	return s
}

// Update advances every follower by one tick.
func (s *PathFollowSystem) Update(dt float64) {
	s.paths.Each(func(id ecs.EntityID, p *components.PathFollowComponent) {
		m := s.movements.Get(id)
		b := s.bodies.Get(id)
		if m == nil || b == nil {
			return
		}
		if p.HasRequest {
			s.computePath(id, p, b)
		}
		if !p.Active() {
			return
		}
		s.follow(id, p, m, b)
	})
}

// invalidate re-requests the goal of any active path touching the changed
// cell's walkable column. The follower replans instead of walking a path
// the world no longer matches.
func (s *PathFollowSystem) invalidate(cell vmath.GridPos) {
	s.paths.Each(func(id ecs.EntityID, p *components.PathFollowComponent) {
		if !p.Active() || p.HasRequest {
			return
		}
		for _, n := range p.Path[p.PathIndex:] {
			if n.Pos.X != cell.X || n.Pos.Z != cell.Z {
				continue
			}
			if cell.Y < n.Pos.Y-1 || cell.Y >= n.Pos.Y+config.PathWalkerHeight {
				continue
			}
			p.HasRequest = true
			p.Request = p.Goal
			if p.SoftTarget != nil {
				soft := *p.SoftTarget
				p.RequestSoft = &soft
			}
			return
		}
	})
}

// computePath resolves a pending request into a fresh path. An empty
// search result is a normal outcome: the follower stays idle.
func (s *PathFollowSystem) computePath(id ecs.EntityID, p *components.PathFollowComponent, b *components.BodyComponent) {
	p.HasRequest = false
	start := b.Aabb.FootCell()
	target := p.Request

	path := pathfind.FindPath(start, target, s.isPassable, s.opts)
	p.PathIndex = 0
	p.RetryCount = 0
	p.SoftTarget = p.RequestSoft
	p.RequestSoft = nil
	p.Goal = target

	if len(path) == 0 {
		p.Path = nil
		p.Precision = nil
		if start != target {
			s.logger.Debug("path not found", "entity", id, "from", start, "to", target)
			s.events.Emit(PathFailedEvent{EntityID: id})
		}
		return
	}
	p.Path = path
	p.Precision = make([]bool, len(path))
}

// follow steers the body toward the current node, advancing the index once
// the node is reached within its margin.
func (s *PathFollowSystem) follow(id ecs.EntityID, p *components.PathFollowComponent, m *components.MovementComponent, b *components.BodyComponent) {
	node := p.Path[p.PathIndex]
	final := p.PathIndex == len(p.Path)-1

	target := node.Pos.Center()
	if final && p.SoftTarget != nil && vmath.CellOf(*p.SoftTarget) == node.Pos {
		target = *p.SoftTarget
	}

	c := b.Aabb.Center()
	foot := b.Aabb.FootCell()

	// Asymmetric arrival margins: tighter for the last node, tighter again
	// for nodes flagged as needing precision.
	margin := config.PathArriveMargin
	if final {
		margin = config.PathFinalMargin
	}
	if p.Precision[p.PathIndex] {
		margin = config.PathPrecisionMargin
	}

	dx := target.X - c.X
	dz := target.Z - c.Z
	if math.Hypot(dx, dz) <= margin && foot.Y == node.Pos.Y {
		if final {
			s.complete(id, p, m)
			return
		}
		s.tryAdvance(id, p, m, b, foot)
		return
	}

	s.steer(m, b, dx, dz)
	m.Jumping = s.wantJump(node, foot, c, b)
}

// complete finishes the path: the index lands past the last node and the
// path is dropped.
func (s *PathFollowSystem) complete(id ecs.EntityID, p *components.PathFollowComponent, m *components.MovementComponent) {
	p.PathIndex = len(p.Path)
	p.Path = nil
	p.Precision = nil
	p.SoftTarget = nil
	m.InputX, m.InputZ = 0, 0
	m.Jumping = false
	s.events.Emit(PathCompletedEvent{EntityID: id})
}

// tryAdvance moves past a non-final node, but only after a dry-run sweep
// toward the next node. If the world changed since the search ran and the
// move is blocked, the node is flagged for precision centering and retried
// a bounded number of times before the path is abandoned.
func (s *PathFollowSystem) tryAdvance(id ecs.EntityID, p *components.PathFollowComponent, m *components.MovementComponent, b *components.BodyComponent, foot vmath.GridPos) {
	next := p.Path[p.PathIndex+1]
	if s.lookaheadBlocked(b, foot, next) {
		p.Precision[p.PathIndex] = true
		p.RetryCount++
		if p.RetryCount > config.PathMaxRetries {
			s.logger.Warn("path abandoned after repeated lookahead failures",
				"entity", id, "node", p.PathIndex, "goal", p.Goal)
			p.Path = nil
			p.Precision = nil
			p.SoftTarget = nil
			m.InputX, m.InputZ = 0, 0
			m.Jumping = false
			s.events.Emit(PathFailedEvent{EntityID: id})
		}
		return
	}
	p.PathIndex++
	p.RetryCount = 0
}

// lookaheadBlocked rehearses the move toward the next node: an upward
// shift for rising steps, then the horizontal run.
func (s *PathFollowSystem) lookaheadBlocked(b *components.BodyComponent, foot vmath.GridPos, next pathfind.Node) bool {
	trial := b.Aabb
	var tr [3]int
	if dy := next.Pos.Y - foot.Y; dy > 0 {
		physics.Sweep(&trial, vmath.Vec3{Y: float64(dy)}, &tr, s.isPassable)
		if tr[1] != 0 {
			return true
		}
	}
	nc := next.Pos.Center()
	tc := trial.Center()
	physics.Sweep(&trial, vmath.Vec3{X: nc.X - tc.X, Z: nc.Z - tc.Z}, &tr, s.isPassable)
	return tr[0] != 0 || tr[2] != 0
}

// steer computes the movement input: proportional on positional error,
// derivative on negative velocity (stiffer while airborne), normalized to
// unit magnitude.
func (s *PathFollowSystem) steer(m *components.MovementComponent, b *components.BodyComponent, dx, dz float64) {
	kd := config.PathDamping
	if !b.OnGround() {
		kd = config.PathDampingAir
	}
	sx := config.PathStiffness*dx - kd*b.Velocity.X
	sz := config.PathStiffness*dz - kd*b.Velocity.Z
	mag := math.Hypot(sx, sz)
	if mag < 1e-9 {
		m.InputX, m.InputZ = 0, 0
		return
	}
	m.InputX = sx / mag
	m.InputZ = sz / mag
}

// wantJump requests a jump when the node steered toward is higher, or when
// a grounded body exits its current cell toward a jump-flagged node.
func (s *PathFollowSystem) wantJump(node pathfind.Node, foot vmath.GridPos, c vmath.Vec3, b *components.BodyComponent) bool {
	if node.Pos.Y > foot.Y {
		return true
	}
	if !node.Jump || !b.OnGround() {
		return false
	}
	dirX := float64(node.Pos.X - foot.X)
	dirZ := float64(node.Pos.Z - foot.Z)
	norm := math.Hypot(dirX, dirZ)
	if norm == 0 {
		return false
	}
	dirX /= norm
	dirZ /= norm
	cellCenter := foot.Center()
	offset := (c.X-cellCenter.X)*dirX + (c.Z-cellCenter.Z)*dirZ
	speed := b.Velocity.X*dirX + b.Velocity.Z*dirZ
	return offset > config.PathExitMargin && speed > 0
}
