package unfold

import (
	"math/rand"

	"github.com/Faultbox/meshfold/pkg/math"
)

func v(x, y, z float32) math.Vec3 {
	return math.Vec3{X: x, Y: y, Z: z}
}

func tri(p0, p1, p2 math.Vec3) Triangle {
	return NewTriangle(p0, p1, p2)
}

// squareChain is a unit square split along its diagonal (0 and 1) with one
// extra triangle on an outer edge of each half (2 on 0, 3 on 1).
func squareChain() []Triangle {
	return []Triangle{
		tri(v(0, 0, 0), v(1, 0, 0), v(1, 1, 0)),
		tri(v(0, 0, 0), v(1, 1, 0), v(0, 1, 0)),
		tri(v(1, 0, 0), v(2, 0.5, 0), v(1, 1, 0)),
		tri(v(0, 0, 0), v(-1, 0.5, 0), v(0, 1, 0)),
	}
}

func tetrahedron() []Triangle {
	a, b, c, d := v(0, 0, 0), v(1, 0, 0), v(0, 1, 0), v(0, 0, 1)
	return []Triangle{
		tri(a, c, b),
		tri(a, b, d),
		tri(a, d, c),
		tri(b, c, d),
	}
}

func cube() []Triangle {
	p := [8]math.Vec3{
		v(0, 0, 0), v(1, 0, 0), v(1, 1, 0), v(0, 1, 0),
		v(0, 0, 1), v(1, 0, 1), v(1, 1, 1), v(0, 1, 1),
	}
	quads := [6][4]int{
		{0, 3, 2, 1}, {4, 5, 6, 7}, {0, 1, 5, 4},
		{1, 2, 6, 5}, {2, 3, 7, 6}, {3, 0, 4, 7},
	}

	var tris []Triangle
	for _, q := range quads {
		tris = append(tris,
			tri(p[q[0]], p[q[1]], p[q[2]]),
			tri(p[q[0]], p[q[2]], p[q[3]]),
		)
	}
	return tris
}

// strip returns n triangles where only consecutive ones share an edge.
func strip(n int) []Triangle {
	point := func(k int) math.Vec3 {
		return v(float32(k), float32(k%2), 0)
	}
	tris := make([]Triangle, n)
	for k := range tris {
		tris[k] = tri(point(k), point(k+1), point(k+2))
	}
	return tris
}

// latticeSoup returns n triangles with corners drawn from a small integer
// lattice, so shared edges and separate islands both occur.
func latticeSoup(rng *rand.Rand, n int, distinct bool) []Triangle {
	corner := func() math.Vec3 {
		return v(float32(rng.Intn(4)), float32(rng.Intn(3)), float32(rng.Intn(2)))
	}

	tris := make([]Triangle, n)
	for i := range tris {
		a, b, c := corner(), corner(), corner()
		for distinct && (a == b || b == c || a == c) {
			a, b, c = corner(), corner(), corner()
		}
		tris[i] = tri(a, b, c)
	}
	return tris
}

// referenceTraverse is the plain recursive form of Walker.Traverse.
func referenceTraverse(tris []Triangle, visited []bool, start, depth int, out *[]AdjacencyEvent) {
	visited[start] = true
	for ei, e := range LocalEdges {
		for j := range tris {
			if visited[j] {
				continue
			}
			if MatchEdge(tris[start], tris[j], e) {
				*out = append(*out, AdjacencyEvent{Source: start, Edge: ei, Target: j, Depth: depth})
				referenceTraverse(tris, visited, j, depth+1, out)
			}
		}
	}
}

// components groups indices by pairwise edge matching with union-find,
// independent of the walker.
func components(tris []Triangle) map[int]int {
	parent := make([]int, len(tris))
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(i int) int {
		for parent[i] != i {
			parent[i] = parent[parent[i]]
			i = parent[i]
		}
		return i
	}

	for a := range tris {
		for b := range tris {
			if a == b {
				continue
			}
			for _, e := range LocalEdges {
				if MatchEdge(tris[a], tris[b], e) {
					parent[find(a)] = find(b)
				}
			}
		}
	}

	roots := make(map[int]int, len(tris))
	for i := range tris {
		roots[i] = find(i)
	}
	return roots
}
