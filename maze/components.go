package maze

// ConnectedComponents finds all 4-connected regions of FREE cells.
// Returns a slice of components; each component lists its positions in BFS
// discovery order, and components are ordered by their first cell in
// row-major order.
//
// Time:   O(R·C·4).
// Memory: O(R·C) for the seen flags and output.
func (g *Grid) ConnectedComponents() [][]Position {
	seen := make([]bool, len(g.cells))
	var comps [][]Position

	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			i0 := g.index(r, c)
			if g.cells[i0] == Wall || seen[i0] {
				continue
			}
			// BFS to collect the component
			queue := []int{i0}
			seen[i0] = true
			var comp []Position

			for qi := 0; qi < len(queue); qi++ {
				u := g.Coordinate(queue[qi])
				comp = append(comp, u)
				for _, d := range cardinalOffsets {
					vr, vc := u.Row+d[0], u.Col+d[1]
					if !g.IsFree(vr, vc) {
						continue
					}
					vi := g.index(vr, vc)
					if !seen[vi] {
						seen[vi] = true
						queue = append(queue, vi)
					}
				}
			}
			comps = append(comps, comp)
		}
	}
	return comps
}

// Connected reports whether a and b are both FREE and lie in the same
// 4-connected component.
func (g *Grid) Connected(a, b Position) bool {
	if !g.IsFree(a.Row, a.Col) || !g.IsFree(b.Row, b.Col) {
		return false
	}
	for _, comp := range g.ConnectedComponents() {
		hasA, hasB := false, false
		for _, p := range comp {
			hasA = hasA || p == a
			hasB = hasB || p == b
		}
		if hasA || hasB {
			return hasA && hasB
		}
	}
	return false
}

// cardinalOffsets lists the (dRow, dCol) steps up, down, left, right.
var cardinalOffsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
