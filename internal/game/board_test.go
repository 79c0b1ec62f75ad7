package game

import (
	"math/rand"
	"testing"
)

func TestNewBoardEmpty(t *testing.T) {
	b := NewBoard(DefaultWidth, DefaultHeight)

	if b.Width() != DefaultWidth || b.Height() != DefaultHeight {
		t.Fatalf("Expected %dx%d board, got %dx%d",
			DefaultWidth, DefaultHeight, b.Width(), b.Height())
	}
	for row := 0; row < b.Height(); row++ {
		for col := 0; col < b.Width(); col++ {
			if !b.At(row, col).IsEmpty() {
				t.Errorf("Cell (%d,%d) not empty on new board", row, col)
			}
		}
	}
}

func TestAtOutOfBoundsReturnsEmpty(t *testing.T) {
	b := NewBoard(8, 16)
	b.Set(0, 0, VirusCell(Red))

	for _, pos := range [][2]int{{-1, 0}, {0, -1}, {16, 0}, {0, 8}, {100, 100}} {
		if !b.At(pos[0], pos[1]).IsEmpty() {
			t.Errorf("At(%d,%d) out of bounds should be empty", pos[0], pos[1])
		}
	}

	// Out-of-bounds writes are dropped, not panics
	b.Set(-1, 0, VirusCell(Blue))
	b.Set(16, 7, VirusCell(Blue))
	if b.CountViruses() != 1 {
		t.Errorf("Expected 1 virus after OOB writes, got %d", b.CountViruses())
	}
}

func TestSeedViruses(t *testing.T) {
	b := NewBoard(8, 16)
	rng := rand.New(rand.NewSource(42))
	b.SeedViruses(12, rng)

	if got := b.CountViruses(); got != 12 {
		t.Fatalf("Expected 12 viruses, got %d", got)
	}

	// All viruses must sit in the lower half of the board
	for row := 0; row < b.Height(); row++ {
		for col := 0; col < b.Width(); col++ {
			c := b.At(row, col)
			if c.IsEmpty() {
				continue
			}
			if c.Kind != Virus {
				t.Errorf("Seeded cell (%d,%d) is not a virus", row, col)
			}
			if row < b.Height()/2 {
				t.Errorf("Virus at (%d,%d) above the lower half", row, col)
			}
			if c.Color < 0 || c.Color >= ColorCount {
				t.Errorf("Virus at (%d,%d) has invalid color %d", row, col, c.Color)
			}
		}
	}
}

func TestSeedVirusesDeterministic(t *testing.T) {
	b1 := NewBoard(8, 16)
	b2 := NewBoard(8, 16)
	b1.SeedViruses(12, rand.New(rand.NewSource(7)))
	b2.SeedViruses(12, rand.New(rand.NewSource(7)))

	if b1.String() != b2.String() {
		t.Errorf("Same seed produced different layouts:\n%s\nvs\n%s", b1, b2)
	}
}

func TestCompactColumnPreservesOrder(t *testing.T) {
	// Two cells with gaps below them fall to the floor keeping their
	// top-to-bottom order.
	b := NewBoard(8, 16)
	b.Set(10, 4, PillCell(Red))
	b.Set(12, 4, PillCell(Blue))

	if !b.Compact() {
		t.Fatal("Compact reported no movement")
	}

	if b.At(14, 4) != PillCell(Red) {
		t.Errorf("Expected red at (14,4), got %v", b.At(14, 4))
	}
	if b.At(15, 4) != PillCell(Blue) {
		t.Errorf("Expected blue at (15,4), got %v", b.At(15, 4))
	}
	if !b.At(10, 4).IsEmpty() || !b.At(12, 4).IsEmpty() {
		t.Error("Original positions should be empty after compaction")
	}
}

func TestCompactIdempotent(t *testing.T) {
	b := NewBoard(8, 16)
	b.Set(3, 1, VirusCell(Yellow))
	b.Set(9, 1, PillCell(Red))
	b.Set(15, 6, VirusCell(Blue))

	b.Compact()
	before := b.String()

	if b.Compact() {
		t.Error("Second Compact reported movement on a settled board")
	}
	if b.String() != before {
		t.Errorf("Second Compact changed the board:\n%s\nvs\n%s", before, b)
	}
}

func TestCompactSupportedColumnUnchanged(t *testing.T) {
	// A column filled from the floor up has nowhere to fall.
	b := NewBoard(8, 16)
	b.Set(15, 2, VirusCell(Red))
	b.Set(14, 2, PillCell(Blue))
	b.Set(13, 2, PillCell(Yellow))
	before := b.String()

	if b.CompactColumn(2) {
		t.Error("CompactColumn moved cells in a supported column")
	}
	if b.String() != before {
		t.Error("Supported column changed during compaction")
	}
}

func TestClearEmptiesBoard(t *testing.T) {
	b := NewBoard(8, 16)
	b.SeedViruses(12, rand.New(rand.NewSource(1)))
	b.Clear()

	if b.CountViruses() != 0 {
		t.Errorf("Expected empty board after Clear, got %d viruses", b.CountViruses())
	}
}
