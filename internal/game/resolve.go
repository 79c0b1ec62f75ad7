package game

// minRunLength is the shortest same-color run that clears.
const minRunLength = 4

// pos identifies a board cell in removal sets.
type pos struct {
	row, col int
}

// findMatches scans every row and every column for maximal same-color runs
// of length >= minRunLength and returns the union of all matched cells.
// A cell belonging to both a row run and a column run appears once.
func findMatches(b *Board) map[pos]struct{} {
	matched := make(map[pos]struct{})

	// Row scan, left to right.
	for row := 0; row < b.Height(); row++ {
		runStart := 0
		for col := 1; col <= b.Width(); col++ {
			if col < b.Width() && sameRunColor(b.At(row, runStart), b.At(row, col)) {
				continue
			}
			if col-runStart >= minRunLength && !b.At(row, runStart).IsEmpty() {
				for c := runStart; c < col; c++ {
					matched[pos{row, c}] = struct{}{}
				}
			}
			runStart = col
		}
	}

	// Column scan, top to bottom.
	for col := 0; col < b.Width(); col++ {
		runStart := 0
		for row := 1; row <= b.Height(); row++ {
			if row < b.Height() && sameRunColor(b.At(runStart, col), b.At(row, col)) {
				continue
			}
			if row-runStart >= minRunLength && !b.At(runStart, col).IsEmpty() {
				for r := runStart; r < row; r++ {
					matched[pos{r, col}] = struct{}{}
				}
			}
			runStart = row
		}
	}

	return matched
}

// sameRunColor reports whether two cells extend the same run: both
// non-empty and equal in color. Kind does not matter, viruses and pill
// halves match together.
func sameRunColor(a, b Cell) bool {
	if a.IsEmpty() || b.IsEmpty() {
		return false
	}
	return a.Color == b.Color
}

// clearMatches empties every matched cell and returns how many cells were
// removed and how many of them were viruses.
func clearMatches(b *Board, matched map[pos]struct{}) (removed, viruses int) {
	for p := range matched {
		if b.At(p.row, p.col).Kind == Virus {
			viruses++
		}
		b.Set(p.row, p.col, Cell{})
		removed++
	}
	return removed, viruses
}

// ResolveStep runs a single detect-remove-settle pass: clear all current
// matches, then compact every column once. It returns the number of cells
// removed and the viruses among them. A return of removed == 0 means the
// board is already stable. Drivers that animate resolution call this
// repeatedly; Resolve is the canonical all-at-once form.
func ResolveStep(b *Board) (removed, viruses int) {
	matched := findMatches(b)
	if len(matched) == 0 {
		return 0, 0
	}
	removed, viruses = clearMatches(b, matched)
	b.Compact()
	return removed, viruses
}

// ResolveResult summarizes a full resolution to fixed point.
type ResolveResult struct {
	Removed int // Total cells removed across all passes
	Viruses int // Virus cells among the removed
	Passes  int // Number of clearing passes
}

// Resolve runs the resolution loop to a fixed point: detect matches,
// remove them, apply gravity, and repeat until a pass removes nothing.
// Entirely synchronous; the board is stable when it returns.
func Resolve(b *Board) ResolveResult {
	var res ResolveResult
	for {
		removed, viruses := ResolveStep(b)
		if removed == 0 {
			return res
		}
		res.Removed += removed
		res.Viruses += viruses
		res.Passes++
	}
}
