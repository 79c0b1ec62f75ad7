package game

// Orientation describes where the pill's second cell sits relative to its
// anchor. The flipped states occupy the same cells as their base states;
// they only swap which color ends up on which side.
type Orientation int

const (
	// Horizontal: second cell to the right of the anchor.
	Horizontal Orientation = iota
	// Vertical: second cell below the anchor.
	Vertical
	// HorizontalFlip: same footprint as Horizontal, colors swapped.
	HorizontalFlip
	// VerticalFlip: same footprint as Vertical, colors swapped.
	VerticalFlip
)

// orientationCount is the length of the rotation cycle.
const orientationCount = 4

// Next returns the following orientation in the rotation cycle
// Horizontal -> Vertical -> HorizontalFlip -> VerticalFlip -> Horizontal.
func (o Orientation) Next() Orientation {
	return (o + 1) % orientationCount
}

// Offsets returns the (row, col) offset of the second cell from the anchor.
func (o Orientation) Offsets() (dRow, dCol int) {
	switch o {
	case Horizontal, HorizontalFlip:
		return 0, 1
	default: // Vertical, VerticalFlip
		return 1, 0
	}
}

// Flipped returns true for the orientations that swap the pill's colors.
func (o Orientation) Flipped() bool {
	return o == HorizontalFlip || o == VerticalFlip
}

// String returns a human-readable name for the orientation.
func (o Orientation) String() string {
	switch o {
	case Horizontal:
		return "horizontal"
	case Vertical:
		return "vertical"
	case HorizontalFlip:
		return "horizontal-flip"
	case VerticalFlip:
		return "vertical-flip"
	default:
		return "unknown"
	}
}

// Pill is the active falling two-cell capsule. The anchor cell sits at
// (Row, Col); the second cell's position follows from the orientation.
// Colors are stored flip-independent: FirstColor is the color generated
// for the anchor side, and AnchorColor/SecondColor account for flips.
type Pill struct {
	FirstColor  Color
	SecondColor Color
	Row         int
	Col         int
	Orientation Orientation
}

// Cells returns the board positions of the pill's two cells:
// the anchor first, then the offset cell.
func (p Pill) Cells() (r1, c1, r2, c2 int) {
	dRow, dCol := p.Orientation.Offsets()
	return p.Row, p.Col, p.Row + dRow, p.Col + dCol
}

// AnchorColor returns the color occupying the anchor cell, accounting
// for flipped orientations.
func (p Pill) AnchorColor() Color {
	if p.Orientation.Flipped() {
		return p.SecondColor
	}
	return p.FirstColor
}

// OffsetColor returns the color occupying the second cell, accounting
// for flipped orientations.
func (p Pill) OffsetColor() Color {
	if p.Orientation.Flipped() {
		return p.FirstColor
	}
	return p.SecondColor
}
