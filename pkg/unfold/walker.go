package unfold

import "fmt"

// AdjacencyEvent records that local edge Edge of triangle Source is shared
// with triangle Target. Depth is how far Source sits below the seed of the
// walk that found it.
type AdjacencyEvent struct {
	Source int
	Edge   int
	Target int
	Depth  int
}

// String renders the event as "<source>.<edge> -> <target>".
func (e AdjacencyEvent) String() string {
	return fmt.Sprintf("%d.%d -> %d", e.Source, e.Edge, e.Target)
}

// Options configures hooks called during a walk. Hooks observe only; they
// cannot change which triangles are visited.
type Options struct {
	// OnAdjacency is called for every event, in emission order.
	OnAdjacency func(ev AdjacencyEvent)
	// OnGroup is called once per group after it is sealed.
	OnGroup func(g Group)
}

// VisitedSet flags triangle indices that a walk has already claimed.
type VisitedSet []bool

// NewVisitedSet returns a set sized for n triangles, all unvisited.
func NewVisitedSet(n int) VisitedSet {
	return make(VisitedSet, n)
}

// Visit marks i and reports whether it was previously unvisited.
func (s VisitedSet) Visit(i int) bool {
	if s[i] {
		return false
	}
	s[i] = true
	return true
}

// Has reports whether i is visited.
func (s VisitedSet) Has(i int) bool {
	return s[i]
}

// Count returns the number of visited indices.
func (s VisitedSet) Count() int {
	n := 0
	for _, v := range s {
		if v {
			n++
		}
	}
	return n
}

// Walker walks the shared-edge graph of a fixed triangle sequence.
// It is not safe for concurrent use.
type Walker struct {
	tris    []Triangle
	visited VisitedSet
	opts    Options
}

// NewWalker creates a walker over tris. The slice is only read.
func NewWalker(tris []Triangle, opts *Options) *Walker {
	w := &Walker{
		tris:    tris,
		visited: NewVisitedSet(len(tris)),
	}
	if opts != nil {
		w.opts = *opts
	}
	return w
}

// Len returns the number of triangles.
func (w *Walker) Len() int {
	return len(w.tris)
}

// Visited reports whether triangle i has been reached by any walk.
func (w *Walker) Visited(i int) bool {
	return w.visited.Has(i)
}

// frame is one pending triangle on the walk stack with its scan cursor.
type frame struct {
	tri   int
	edge  int // index into LocalEdges
	next  int // next candidate triangle for edge
	depth int
}

// Traverse visits start and every unvisited triangle reachable from it
// through shared edges, returning the events in depth-first order.
// Calling it on a visited triangle is a no-op that returns nil.
func (w *Walker) Traverse(start int) []AdjacencyEvent {
	if !w.visited.Visit(start) {
		return nil
	}

	var events []AdjacencyEvent
	stack := []frame{{tri: start}}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		ev, ok := w.advance(top)
		if !ok {
			stack = stack[:len(stack)-1]
			continue
		}

		events = append(events, ev)
		if w.opts.OnAdjacency != nil {
			w.opts.OnAdjacency(ev)
		}

		stack = append(stack, frame{tri: ev.Target, depth: ev.Depth + 1})
	}

	return events
}

// advance moves f's cursor to the next unvisited triangle sharing one of
// its edges, claims that triangle and returns the event. It reports false
// once every edge of f has been scanned.
func (w *Walker) advance(f *frame) (AdjacencyEvent, bool) {
	src := w.tris[f.tri]

	for ; f.edge < len(LocalEdges); f.edge, f.next = f.edge+1, 0 {
		e := LocalEdges[f.edge]

		for f.next < len(w.tris) {
			j := f.next
			f.next++

			if w.visited.Has(j) {
				continue
			}
			if !MatchEdge(src, w.tris[j], e) {
				continue
			}

			w.visited.Visit(j)
			return AdjacencyEvent{
				Source: f.tri,
				Edge:   f.edge,
				Target: j,
				Depth:  f.depth,
			}, true
		}
	}

	return AdjacencyEvent{}, false
}
