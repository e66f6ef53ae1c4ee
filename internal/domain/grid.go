package domain

import (
	"fmt"
	"strings"
)

const (
	GridSize  = 3
	CellCount = GridSize * GridSize
)

// RowCol splits a cell index into its row and column.
func RowCol(i int) (int, int) { return i / GridSize, i % GridSize }

// IsAdjacent reports whether two cells are within one king move of each other,
// diagonals included. A cell is adjacent to itself.
func IsAdjacent(a, b int) bool {
	r1, c1 := RowCol(a)
	r2, c2 := RowCol(b)
	return abs(r1-r2) <= 1 && abs(c1-c2) <= 1
}

// Neighbors returns the cells adjacent to i, excluding i, in index order.
func Neighbors(i int) []int {
	out := make([]int, 0, 8)
	for j := 0; j < CellCount; j++ {
		if j != i && IsAdjacent(i, j) {
			out = append(out, j)
		}
	}
	return out
}

// CoordToIndex parses a coordinate such as "A1" or "c3" (column letter, row number).
func CoordToIndex(coord string) (int, error) {
	s := strings.ToUpper(strings.TrimSpace(coord))
	if len(s) != 2 {
		return -1, fmt.Errorf("%w: %q", ErrInvalidCoordinate, coord)
	}
	col := int(s[0]) - 'A'
	row := int(s[1]) - '1'
	if col < 0 || col >= GridSize || row < 0 || row >= GridSize {
		return -1, fmt.Errorf("%w: %q", ErrInvalidCoordinate, coord)
	}
	return row*GridSize + col, nil
}

// IndexToCoord formats a cell index as "A1".."C3"; out-of-range indices yield "".
func IndexToCoord(i int) string {
	if i < 0 || i >= CellCount {
		return ""
	}
	r, c := RowCol(i)
	return string([]byte{byte('A' + c), byte('1' + r)})
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
