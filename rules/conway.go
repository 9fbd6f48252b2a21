// Package rules holds the B3/S23 transition rule of classic Life.
package rules

const (
	birthNeighbors   = 3
	survivalMinimum  = 2
	survivalMaximum  = 3
	maxNeighborCount = 8
)

/*
ApplyConwayRules decides whether a cell is alive in the next generation.

A live cell survives with 2 or 3 live neighbors and dies otherwise.
A dead cell is born with exactly 3 live neighbors.
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	if neighbors < 0 || neighbors > maxNeighborCount {
		panic("rules: neighbor count out of range")
	}
	if alive {
		return neighbors >= survivalMinimum && neighbors <= survivalMaximum
	}
	return neighbors == birthNeighbors
}
