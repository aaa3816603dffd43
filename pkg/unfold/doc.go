// Package unfold finds which triangles of a mesh share an edge and splits the
// mesh into connected groups, each a candidate for being laid out flat.
/*
Adjacency walk

Description:
  Two triangles are adjacent when one edge of the first coincides with an
  edge of the second in either direction, each endpoint compared with
  math.ApproxEqual. No index is built: every candidate triangle is tested
  against the current one, which is fine for the small meshes papercraft
  and sheet-metal patterns come from.

Steps (Walker.Traverse):
  1. Return at once if the start triangle is already visited.
  2. Mark start visited.
  3. For each local edge (0,1), (0,2), (1,2) in that order, scan every
     triangle index not yet visited:
     3.1 On a match, emit AdjacencyEvent(source, edge, target), mark the
         target visited and descend into it.
     3.2 When the target's walk finishes, resume the scan after the target.
  4. Descent uses an explicit stack of frames, so deep meshes cannot
     overflow the goroutine stack while events keep the depth-first order.

Steps (FindGroups):
  1. Scan triangle indices in order.
  2. Each unvisited index seeds a new Group, filled by Traverse.
  3. Groups come out in seed order and partition 0..N-1.

Complexity: O(N²) edge tests per mesh.
Memory:     O(N) for visited flags and the frame stack.
*/
package unfold
