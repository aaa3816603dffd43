// Package report turns adjacency groups into a report for the layout step
// and renders it as text, JSON or YAML.
package report

import (
	"github.com/chewxy/math32"

	"github.com/Faultbox/meshfold/pkg/math"
	"github.com/Faultbox/meshfold/pkg/unfold"
)

// Report describes how a mesh splits into unfoldable groups.
type Report struct {
	ID             string  `json:"id,omitempty" yaml:"id,omitempty"`
	Name           string  `json:"name" yaml:"name"`
	Triangles      int     `json:"triangles" yaml:"triangles"`
	UniqueVertices int     `json:"unique_vertices,omitempty" yaml:"unique_vertices,omitempty"`
	Bounds         *Bounds `json:"bounds,omitempty" yaml:"bounds,omitempty"`
	GroupCount     int     `json:"group_count" yaml:"group_count"`
	HiddenGroups   int     `json:"hidden_groups,omitempty" yaml:"hidden_groups,omitempty"`
	Groups         []Group `json:"groups" yaml:"groups"`
}

// Bounds is an axis-aligned bounding box.
type Bounds struct {
	Min [3]float32 `json:"min" yaml:"min,flow"`
	Max [3]float32 `json:"max" yaml:"max,flow"`
}

// Group is one connected set of triangles.
type Group struct {
	Index     int         `json:"index" yaml:"index"`
	Seed      int         `json:"seed" yaml:"seed"`
	Size      int         `json:"size" yaml:"size"`
	Area      float32     `json:"area" yaml:"area"`
	MinEdge   float32     `json:"min_edge" yaml:"min_edge"`
	MaxEdge   float32     `json:"max_edge" yaml:"max_edge"`
	Triangles []int       `json:"triangles" yaml:"triangles,flow"`
	Adjacency []Adjacency `json:"adjacency,omitempty" yaml:"adjacency,omitempty"`
}

// Adjacency is one shared edge found by the walk.
type Adjacency struct {
	Source int `json:"source" yaml:"source"`
	Edge   int `json:"edge" yaml:"edge"`
	Target int `json:"target" yaml:"target"`
	Depth  int `json:"depth" yaml:"depth"`
}

// Options controls what Build includes.
type Options struct {
	CountVertices bool // Deduplicate vertices, O(V²)
	IncludeEvents bool // Keep per-group adjacency lists
	MinGroupSize  int  // Leave out groups with fewer triangles
}

// Build assembles a report for tris and the groups found in them.
func Build(name string, tris []unfold.Triangle, groups []unfold.Group, opts Options) *Report {
	r := &Report{
		Name:       name,
		Triangles:  len(tris),
		GroupCount: len(groups),
		Groups:     make([]Group, 0, len(groups)),
	}

	if len(tris) > 0 {
		r.Bounds = bounds(tris)
	}
	if opts.CountVertices {
		r.UniqueVertices = len(unfold.IndexVertices(tris).Vertices)
	}

	for i, g := range groups {
		if g.Size() < opts.MinGroupSize {
			r.HiddenGroups++
			continue
		}
		r.Groups = append(r.Groups, buildGroup(i, tris, g, opts.IncludeEvents))
	}

	return r
}

func buildGroup(index int, tris []unfold.Triangle, g unfold.Group, withEvents bool) Group {
	out := Group{
		Index:     index,
		Seed:      g.Seed,
		Size:      g.Size(),
		Triangles: g.Triangles,
		MinEdge:   math32.Inf(1),
	}

	for _, idx := range g.Triangles {
		t := tris[idx]
		out.Area += t.Area()
		for _, l := range t.EdgeLengths() {
			out.MinEdge = math32.Min(out.MinEdge, l)
			out.MaxEdge = math32.Max(out.MaxEdge, l)
		}
	}

	if withEvents && len(g.Events) > 0 {
		out.Adjacency = make([]Adjacency, len(g.Events))
		for i, ev := range g.Events {
			out.Adjacency[i] = Adjacency{
				Source: ev.Source,
				Edge:   ev.Edge,
				Target: ev.Target,
				Depth:  ev.Depth,
			}
		}
	}

	return out
}

func bounds(tris []unfold.Triangle) *Bounds {
	lo, hi := tris[0].Vertices[0], tris[0].Vertices[0]
	for _, t := range tris {
		for _, p := range t.Vertices {
			lo = lo.Min(p)
			hi = hi.Max(p)
		}
	}
	return &Bounds{Min: toArray(lo), Max: toArray(hi)}
}

func toArray(v math.Vec3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}
