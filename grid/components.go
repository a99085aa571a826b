package grid

// Components finds all 4-connected regions of cells for which keep returns true.
// With periodic set, regions continue across opposite edges.
// Each component is a slice of row-major indices in BFS order; components are
// ordered by their first cell in row-major scan.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func Components[T any](g *Grid[T], keep func(T) bool, periodic bool) [][]int {
	seen := make([]bool, g.Len())
	var comps [][]int
	offsets := [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

	for i0 := range g.cells {
		if seen[i0] || !keep(g.cells[i0]) {
			continue
		}
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			ux, uy := g.Coordinate(queue[qi])
			for _, d := range offsets {
				vx, vy := ux+d[0], uy+d[1]
				if periodic {
					vx, vy = g.Wrap(vx, vy)
				} else if !g.InBounds(vx, vy) {
					continue
				}
				vi := g.Index(vx, vy)
				if !seen[vi] && keep(g.cells[vi]) {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}
