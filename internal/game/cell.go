// Package game implements the Pillfall board simulation: the cell and
// board model, the falling pill and its legal moves, the match/gravity
// resolution engine, and the session that sequences them. The package has
// no external dependencies so the logic stays pure and testable; the
// platform layer drives it through the registry.Game adapter in game.go.
package game

// Color is the color of a virus or pill cell.
type Color int

const (
	Red Color = iota
	Yellow
	Blue
)

// ColorCount is the number of distinct cell colors.
const ColorCount = 3

// String returns a human-readable name for the color.
func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Yellow:
		return "yellow"
	case Blue:
		return "blue"
	default:
		return "unknown"
	}
}

// CellKind distinguishes what occupies a board cell.
type CellKind int

const (
	// Empty marks an unoccupied cell. Empty cells carry no color.
	Empty CellKind = iota
	// Virus is a stationary cell placed at setup; clearing all of them
	// wins the game.
	Virus
	// PillHalf is one half of a locked pill. It matches and falls like a
	// virus cell but never counts toward the virus total.
	PillHalf
)

// Cell is a single board cell: Empty, or a Virus/PillHalf with exactly
// one color. The zero value is an empty cell.
type Cell struct {
	Kind  CellKind
	Color Color
}

// IsEmpty returns true if nothing occupies the cell.
func (c Cell) IsEmpty() bool {
	return c.Kind == Empty
}

// VirusCell returns a virus cell of the given color.
func VirusCell(color Color) Cell {
	return Cell{Kind: Virus, Color: color}
}

// PillCell returns a locked pill-half cell of the given color.
func PillCell(color Color) Cell {
	return Cell{Kind: PillHalf, Color: color}
}

// String returns a compact representation used in debug output.
func (c Cell) String() string {
	switch c.Kind {
	case Empty:
		return "."
	case Virus:
		return "v" + c.Color.String()[:1]
	case PillHalf:
		return "p" + c.Color.String()[:1]
	default:
		return "?"
	}
}
