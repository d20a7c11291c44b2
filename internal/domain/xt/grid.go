// Package xt solves expected threat on a zoned pitch and credits ball
// progression with the change in zone value.
package xt

import "math"

const (
	GridCols    = 16
	GridRows    = 12
	NumZones    = GridCols * GridRows
	PitchLength = 120.0
	PitchWidth  = 80.0

	// Epsilon floors every ratio denominator.
	Epsilon = 1e-6
)

// Zone maps pitch coordinates to a zone index, row-major from the top-left
// corner. Coordinates off the pitch clamp to the border zones.
func Zone(x, y float64) int {
	col := clamp(int(math.Floor(x/PitchLength*GridCols)), 0, GridCols-1)
	row := clamp(int(math.Floor(y/PitchWidth*GridRows)), 0, GridRows-1)
	return row*GridCols + col
}

// Cell returns the grid row and column of a zone.
func Cell(zone int) (row, col int) {
	return zone / GridCols, zone % GridCols
}

// Origin returns the pitch coordinates of a zone's top-left corner.
func Origin(zone int) (x, y float64) {
	row, col := Cell(zone)
	return float64(col) / GridCols * PitchLength, float64(row) / GridRows * PitchWidth
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
