package game

import (
	"testing"
)

func TestResolveRowRunOfFour(t *testing.T) {
	b := NewBoard(8, 16)
	for col := 2; col <= 5; col++ {
		b.Set(5, col, PillCell(Red))
	}

	res := Resolve(b)

	if res.Removed != 4 {
		t.Errorf("Expected 4 cells removed, got %d", res.Removed)
	}
	if res.Viruses != 0 {
		t.Errorf("Expected 0 viruses removed, got %d", res.Viruses)
	}
	if res.Passes != 1 {
		t.Errorf("Expected 1 pass, got %d", res.Passes)
	}
	for col := 2; col <= 5; col++ {
		if !b.At(5, col).IsEmpty() {
			t.Errorf("Cell (5,%d) should be empty after clear", col)
		}
	}
}

func TestResolveRunOfThreeStays(t *testing.T) {
	b := NewBoard(8, 16)
	for col := 2; col <= 4; col++ {
		b.Set(15, col, PillCell(Blue))
	}

	res := Resolve(b)

	if res.Removed != 0 {
		t.Errorf("Run of 3 should not clear, removed %d", res.Removed)
	}
	for col := 2; col <= 4; col++ {
		if b.At(15, col).IsEmpty() {
			t.Errorf("Cell (15,%d) was cleared from a run of 3", col)
		}
	}
}

func TestResolveMixedKindsMatchByColor(t *testing.T) {
	// Viruses and pill halves of the same color form one run.
	b := NewBoard(8, 16)
	b.Set(15, 0, VirusCell(Yellow))
	b.Set(15, 1, PillCell(Yellow))
	b.Set(15, 2, VirusCell(Yellow))
	b.Set(15, 3, PillCell(Yellow))

	res := Resolve(b)

	if res.Removed != 4 {
		t.Errorf("Expected 4 cells removed, got %d", res.Removed)
	}
	if res.Viruses != 2 {
		t.Errorf("Expected 2 viruses among removed, got %d", res.Viruses)
	}
}

func TestResolveDifferentColorsBreakRun(t *testing.T) {
	b := NewBoard(8, 16)
	b.Set(15, 0, PillCell(Red))
	b.Set(15, 1, PillCell(Red))
	b.Set(15, 2, PillCell(Blue))
	b.Set(15, 3, PillCell(Red))
	b.Set(15, 4, PillCell(Red))

	if res := Resolve(b); res.Removed != 0 {
		t.Errorf("Interrupted run should not clear, removed %d", res.Removed)
	}
}

func TestResolveColumnRun(t *testing.T) {
	b := NewBoard(8, 16)
	for row := 12; row <= 15; row++ {
		b.Set(row, 3, VirusCell(Blue))
	}

	res := Resolve(b)

	if res.Removed != 4 || res.Viruses != 4 {
		t.Errorf("Expected 4 cells / 4 viruses removed, got %d / %d",
			res.Removed, res.Viruses)
	}
}

func TestResolveIntersectingRunsCountOnce(t *testing.T) {
	// A horizontal and a vertical run sharing one cell remove 7 cells,
	// not 8.
	b := NewBoard(8, 16)
	for col := 1; col <= 4; col++ {
		b.Set(15, col, PillCell(Red))
	}
	for row := 12; row <= 14; row++ {
		b.Set(row, 2, PillCell(Red))
	}

	res := Resolve(b)

	if res.Removed != 7 {
		t.Errorf("Expected 7 cells removed from intersecting runs, got %d", res.Removed)
	}
}

func TestResolveCascade(t *testing.T) {
	// Clearing the yellow column drops the red cell at (11,3) onto the
	// floor, completing a red row. Two passes total.
	b := NewBoard(8, 16)
	b.Set(15, 0, PillCell(Red))
	b.Set(15, 1, PillCell(Red))
	b.Set(15, 2, PillCell(Red))
	for row := 12; row <= 15; row++ {
		b.Set(row, 3, PillCell(Yellow))
	}
	b.Set(11, 3, PillCell(Red))

	res := Resolve(b)

	if res.Passes != 2 {
		t.Errorf("Expected 2 passes, got %d", res.Passes)
	}
	if res.Removed != 8 {
		t.Errorf("Expected 8 cells removed across the cascade, got %d", res.Removed)
	}
	for col := 0; col <= 3; col++ {
		if !b.At(15, col).IsEmpty() {
			t.Errorf("Cell (15,%d) should be empty after cascade", col)
		}
	}
}

func TestResolveStableBoardNoOp(t *testing.T) {
	b := NewBoard(8, 16)
	b.Set(15, 0, VirusCell(Red))
	b.Set(15, 1, VirusCell(Blue))
	before := b.String()

	res := Resolve(b)

	if res.Removed != 0 || res.Passes != 0 {
		t.Errorf("Stable board resolved: removed %d, passes %d", res.Removed, res.Passes)
	}
	if b.String() != before {
		t.Error("Resolve changed a stable board")
	}
}

func TestResolveLeavesNoMatches(t *testing.T) {
	// After Resolve returns, no run of 4+ may remain anywhere.
	b := NewBoard(8, 16)
	for col := 0; col <= 4; col++ {
		b.Set(15, col, PillCell(Red))
	}
	for row := 10; row <= 14; row++ {
		b.Set(row, 6, VirusCell(Blue))
	}

	Resolve(b)

	if matched := findMatches(b); len(matched) != 0 {
		t.Errorf("Board still has %d matched cells after Resolve", len(matched))
	}
}

func TestResolveStepSinglePass(t *testing.T) {
	// ResolveStep clears the current matches and compacts once, leaving
	// any cascade for the next call.
	b := NewBoard(8, 16)
	b.Set(15, 0, PillCell(Red))
	b.Set(15, 1, PillCell(Red))
	b.Set(15, 2, PillCell(Red))
	for row := 12; row <= 15; row++ {
		b.Set(row, 3, PillCell(Yellow))
	}
	b.Set(11, 3, PillCell(Red))

	removed, _ := ResolveStep(b)
	if removed != 4 {
		t.Fatalf("First pass should remove the 4 yellows, got %d", removed)
	}
	if b.At(15, 3) != PillCell(Red) {
		t.Fatal("Red cell did not fall onto the floor after the first pass")
	}

	removed, _ = ResolveStep(b)
	if removed != 4 {
		t.Errorf("Second pass should remove the 4 reds, got %d", removed)
	}
	if removed, _ = ResolveStep(b); removed != 0 {
		t.Errorf("Third pass on stable board removed %d", removed)
	}
}
