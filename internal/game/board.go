package game

import (
	"math/rand"
	"strings"
)

// Default playfield dimensions. Row 0 is the top, row Height-1 the floor.
const (
	DefaultWidth  = 8
	DefaultHeight = 16
)

// Board is a fixed-size grid of cells. It holds only settled content:
// viruses from setup and pill halves written at lock time. The active
// falling pill is never stored on the board.
type Board struct {
	width  int
	height int
	cells  [][]Cell
}

// NewBoard creates an empty board with the given dimensions.
func NewBoard(width, height int) *Board {
	b := &Board{width: width, height: height}
	b.cells = make([][]Cell, height)
	for row := range b.cells {
		b.cells[row] = make([]Cell, width)
	}
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// InBounds returns true if (row, col) is a valid board coordinate.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.height && col >= 0 && col < b.width
}

// At returns the cell at (row, col). Out-of-bounds coordinates return an
// empty cell; callers that care about bounds use InBounds first.
func (b *Board) At(row, col int) Cell {
	if !b.InBounds(row, col) {
		return Cell{}
	}
	return b.cells[row][col]
}

// Set writes the cell at (row, col). Out-of-bounds writes are ignored.
func (b *Board) Set(row, col int, c Cell) {
	if !b.InBounds(row, col) {
		return
	}
	b.cells[row][col] = c
}

// Clear resets every cell to empty.
func (b *Board) Clear() {
	for row := range b.cells {
		for col := range b.cells[row] {
			b.cells[row][col] = Cell{}
		}
	}
}

// CountViruses returns the number of virus cells on the board.
func (b *Board) CountViruses() int {
	n := 0
	for row := range b.cells {
		for col := range b.cells[row] {
			if b.cells[row][col].Kind == Virus {
				n++
			}
		}
	}
	return n
}

// SeedViruses places count viruses at uniformly random positions in the
// lower half of the board (rows [height/2, height)), each with an
// independent uniformly random color. Occupied cells are re-rolled, so the
// board ends up with exactly count virus cells.
func (b *Board) SeedViruses(count int, rng *rand.Rand) {
	minRow := b.height / 2
	placed := 0
	for placed < count {
		row := minRow + rng.Intn(b.height-minRow)
		col := rng.Intn(b.width)
		if !b.cells[row][col].IsEmpty() {
			continue
		}
		b.cells[row][col] = VirusCell(Color(rng.Intn(ColorCount)))
		placed++
	}
}

// CompactColumn applies gravity to a single column: all non-empty cells
// slide to the bottom in one shot, preserving their top-to-bottom order,
// with empty cells left at the top. Returns true if anything moved.
func (b *Board) CompactColumn(col int) bool {
	writeRow := b.height - 1
	moved := false
	for row := b.height - 1; row >= 0; row-- {
		if b.cells[row][col].IsEmpty() {
			continue
		}
		if row != writeRow {
			b.cells[writeRow][col] = b.cells[row][col]
			b.cells[row][col] = Cell{}
			moved = true
		}
		writeRow--
	}
	return moved
}

// Compact applies gravity to every column. Returns true if anything moved.
func (b *Board) Compact() bool {
	moved := false
	for col := 0; col < b.width; col++ {
		if b.CompactColumn(col) {
			moved = true
		}
	}
	return moved
}

// String renders the board as one debug line per row.
func (b *Board) String() string {
	var sb strings.Builder
	for row := range b.cells {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := range b.cells[row] {
			cell := b.cells[row][col]
			switch cell.Kind {
			case Empty:
				sb.WriteByte('.')
			case Virus:
				sb.WriteString(strings.ToUpper(cell.Color.String()[:1]))
			case PillHalf:
				sb.WriteString(cell.Color.String()[:1])
			}
		}
	}
	return sb.String()
}
