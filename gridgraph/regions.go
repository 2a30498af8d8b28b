package gridgraph

import "sort"

// Regions groups cell indices (row-major) by label. Indices within a region
// are ascending.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H).
// Memory: O(W·H).
func (gg *GridGraph) Regions() map[int][]int {
	out := make(map[int][]int)
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			l := gg.CellValues[y][x]
			out[l] = append(out[l], gg.index(x, y))
		}
	}

	return out
}

// Labels returns the distinct labels present in the grid, ascending.
func (gg *GridGraph) Labels() []int {
	regions := gg.Regions()
	out := make([]int, 0, len(regions))
	for l := range regions {
		out = append(out, l)
	}
	sort.Ints(out)

	return out
}

// Boundaries counts, for every pair of distinct touching labels (a < b), the
// number of adjacent cell pairs between them under gg.Conn. Each unordered
// cell pair is counted once.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(E).
func (gg *GridGraph) Boundaries() map[[2]int]int {
	out := make(map[[2]int]int)
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			a := gg.CellValues[y][x]
			i := gg.index(x, y)
			for _, d := range gg.neighborOffsets {
				nx, ny := x+d[0], y+d[1]
				if !gg.InBounds(nx, ny) || gg.index(nx, ny) < i {
					continue
				}
				b := gg.CellValues[ny][nx]
				if a == b {
					continue
				}
				if a < b {
					out[[2]int{a, b}]++
				} else {
					out[[2]int{b, a}]++
				}
			}
		}
	}

	return out
}
