package unfold

// Group is a maximal set of triangles connected through shared edges.
type Group struct {
	Seed      int              // First triangle of the group in input order
	Triangles []int            // Members in discovery order, seed first
	Events    []AdjacencyEvent // Edges of the walk tree, in emission order
}

// Size returns the number of triangles in the group.
func (g Group) Size() int {
	return len(g.Triangles)
}

// FindGroups partitions tris into connected groups, ordered by seed index.
func FindGroups(tris []Triangle, opts *Options) []Group {
	return NewWalker(tris, opts).Groups()
}

// Groups seeds a walk from every still-unvisited triangle in index order and
// returns the resulting groups. Triangles already visited by earlier calls to
// Traverse are not included.
func (w *Walker) Groups() []Group {
	var groups []Group

	for i := range w.tris {
		if w.visited.Has(i) {
			continue
		}

		events := w.Traverse(i)
		g := Group{
			Seed:      i,
			Triangles: make([]int, 0, len(events)+1),
			Events:    events,
		}
		g.Triangles = append(g.Triangles, i)
		for _, ev := range events {
			g.Triangles = append(g.Triangles, ev.Target)
		}

		if w.opts.OnGroup != nil {
			w.opts.OnGroup(g)
		}
		groups = append(groups, g)
	}

	return groups
}
