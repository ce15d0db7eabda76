// Package pathfind implements grid A* over the same passability predicate
// the collision sweep uses.
package pathfind

import (
	"container/heap"

	"github.com/PeteSumners/cornerstone/config"
	"github.com/PeteSumners/cornerstone/vmath"
)

// Node is one grid step of a computed path.
type Node struct {
	Pos vmath.GridPos
	// Jump marks a step that rises onto a higher cell and needs a jump.
	Jump bool
}

// Options bound a search. Zero values pick the configured defaults.
type Options struct {
	// MaxNodes caps node expansions before the search gives up.
	MaxNodes int
	// MaxDrop is the tallest fall allowed in a single step.
	MaxDrop int
	// Height is the walker headroom in cells.
	Height int
}

func (o Options) withDefaults() Options {
	if o.MaxNodes <= 0 {
		o.MaxNodes = config.PathMaxNodes
	}
	if o.MaxDrop <= 0 {
		o.MaxDrop = config.PathMaxDrop
	}
	if o.Height <= 0 {
		o.Height = config.PathWalkerHeight
	}
	return o
}

// FindPath runs A* from start to target over walkable cells and returns the
// ordered node list, excluding the start cell. An empty result means the
// target is unreachable, the search cap was hit, or the walker is already
// there — a normal outcome, not an error.
func FindPath(start, target vmath.GridPos, isPassable func(x, y, z int) bool, opts Options) []Node {
	if start == target {
		return nil
	}
	opts = opts.withDefaults()

	openSet := make(nodeQueue, 0)
	heap.Init(&openSet)

	cameFrom := make(map[vmath.GridPos]vmath.GridPos)
	jumpInto := make(map[vmath.GridPos]bool)
	gScore := map[vmath.GridPos]int{start: 0}

	heap.Push(&openSet, &queueItem{pos: start, priority: start.Manhattan(target)})

	expanded := 0
	for openSet.Len() > 0 {
		current := heap.Pop(&openSet).(*queueItem).pos
		if current == target {
			return reconstruct(cameFrom, jumpInto, start, current)
		}
		expanded++
		if expanded > opts.MaxNodes {
			return nil
		}

		for _, step := range neighbors(current, isPassable, opts) {
			tentative := gScore[current] + 1
			if old, seen := gScore[step.Pos]; seen && tentative >= old {
				continue
			}
			cameFrom[step.Pos] = current
			jumpInto[step.Pos] = step.Jump
			gScore[step.Pos] = tentative
			heap.Push(&openSet, &queueItem{
				pos:      step.Pos,
				priority: tentative + step.Pos.Manhattan(target),
			})
		}
	}

	return nil
}

// Standable reports whether a walker of the given headroom can occupy the
// cell: the cell and its headroom are passable and the cell below is not.
func Standable(c vmath.GridPos, isPassable func(x, y, z int) bool, height int) bool {
	for dy := 0; dy < height; dy++ {
		if !isPassable(c.X, c.Y+dy, c.Z) {
			return false
		}
	}
	return !isPassable(c.X, c.Y-1, c.Z)
}

var horizontalDirs = [4]vmath.GridPos{
	{X: 1}, {X: -1}, {Z: 1}, {Z: -1},
}

// neighbors yields the walkable cells one step away: same level first,
// then a jump-flagged step up, then a fall of up to MaxDrop.
func neighbors(c vmath.GridPos, isPassable func(x, y, z int) bool, opts Options) []Node {
	out := make([]Node, 0, 4)
	for _, dir := range horizontalDirs {
		n := vmath.GridPos{X: c.X + dir.X, Y: c.Y, Z: c.Z + dir.Z}
		if Standable(n, isPassable, opts.Height) {
			out = append(out, Node{Pos: n})
			continue
		}
		// Step up one cell; needs headroom above the current cell too.
		up := vmath.GridPos{X: n.X, Y: n.Y + 1, Z: n.Z}
		if isPassable(c.X, c.Y+opts.Height, c.Z) && Standable(up, isPassable, opts.Height) {
			out = append(out, Node{Pos: up, Jump: true})
			continue
		}
		// Fall: the column below the gap must be open down to a landing.
		if !isPassable(n.X, n.Y, n.Z) || !isPassable(n.X, n.Y+opts.Height-1, n.Z) {
			continue
		}
		for drop := 1; drop <= opts.MaxDrop; drop++ {
			down := vmath.GridPos{X: n.X, Y: n.Y - drop, Z: n.Z}
			if !isPassable(down.X, down.Y, down.Z) {
				break
			}
			if Standable(down, isPassable, opts.Height) {
				out = append(out, Node{Pos: down})
				break
			}
		}
	}
	return out
}

// reconstruct builds the path from start to goal, dropping the start cell.
func reconstruct(cameFrom map[vmath.GridPos]vmath.GridPos, jumpInto map[vmath.GridPos]bool, start, goal vmath.GridPos) []Node {
	var rev []Node
	for cur := goal; cur != start; cur = cameFrom[cur] {
		rev = append(rev, Node{Pos: cur, Jump: jumpInto[cur]})
	}
	path := make([]Node, len(rev))
	for i := range rev {
		path[i] = rev[len(rev)-1-i]
	}
	return path
}

// queueItem and nodeQueue implement the A* open set on container/heap.
type queueItem struct {
	pos      vmath.GridPos
	priority int
	index    int
}

type nodeQueue []*queueItem

func (q nodeQueue) Len() int { return len(q) }

func (q nodeQueue) Less(i, j int) bool {
	return q[i].priority < q[j].priority
}

func (q nodeQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *nodeQueue) Push(x any) {
	item := x.(*queueItem)
	item.index = len(*q)
	*q = append(*q, item)
}

func (q *nodeQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*q = old[:n-1]
	return item
}
