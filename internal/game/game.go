package game

import (
	"fmt"
	"math/rand"

	"github.com/pillfall/pillfall/internal/config"
	"github.com/pillfall/pillfall/internal/core"
	"github.com/pillfall/pillfall/internal/registry"
)

// Rendering glyphs. Each board cell spans two screen columns so the
// playfield keeps a roughly square aspect in a terminal.
const (
	VirusChar = '■'
	PillChar  = '●'
	EmptyChar = '·'
)

// configPath stores the custom config path set via CLI
var configPath string

// speedPreset stores the drop-speed preset set via CLI or the menu
var speedPreset = config.SpeedMed

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetSpeedPreset selects the drop-speed preset for the next Reset.
func SetSpeedPreset(preset string) {
	speedPreset = config.ParseSpeedPreset(preset)
}

// SelectedSpeedPreset returns the currently selected preset.
func SelectedSpeedPreset() config.SpeedPreset {
	return speedPreset
}

// Game adapts a Session to the platform game interface: it owns the drop
// cadence in ticks, maps input actions to session operations, and renders
// the board, preview, and HUD to the shared screen buffer.
type Game struct {
	session *Session
	cfg     config.PillfallConfig
	rng     *rand.Rand
	speed   config.SpeedPreset

	dropEvery  int // Ticks between auto-drop rows
	dropTicker int // Counts ticks until next drop
	waitTicks  int // Post-lock / post-spawn hold before dropping resumes

	// Screen layout
	screenW  int
	screenH  int
	boardX   int
	boardY   int
	tooSmall bool
}

// New creates a new Pillfall game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("pillfall", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "pillfall"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Pillfall"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	loaded, err := config.LoadPillfall(configPath)
	if err != nil {
		loaded = config.DefaultPillfallConfig()
	}
	g.cfg = loaded
	g.speed = speedPreset

	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.dropEvery = config.IntervalForPreset(loaded.Drop, g.speed)
	g.dropTicker = 0
	g.waitTicks = loaded.Drop.SpawnGraceTicks
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH

	g.session = NewSession(Rules{
		Width:         loaded.Board.Width,
		Height:        loaded.Board.Height,
		Viruses:       loaded.Board.VirusCount,
		PointsPerCell: loaded.Scoring.PointsPerCell,
	}, cfg.Seed)
	g.session.Start()

	g.layout()
}

// layout centers the board box on screen and checks the minimum size.
func (g *Game) layout() {
	bw := g.session.Board().Width()
	bh := g.session.Board().Height()

	// Board box plus the NEXT panel to its right.
	requiredW := bw*2 + 3 + previewWidth
	requiredH := bh + hudHeight + 3
	if g.screenW < requiredW || g.screenH < requiredH {
		g.tooSmall = true
		return
	}
	g.tooSmall = false

	g.boardX = (g.screenW - requiredW) / 2
	g.boardY = hudHeight
}

const (
	hudHeight    = 2
	previewWidth = 10
)

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	// Handle restart
	if input.Has(core.ActionRestart) && g.session.IsOver() {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) && !g.session.IsOver() {
		if g.session.IsRunning() {
			g.session.Pause()
		} else {
			g.session.Start()
		}
	}

	if g.tooSmall || g.session.IsOver() || !g.session.IsRunning() {
		return core.StepResult{State: g.State()}
	}

	prevPlaced := g.session.PillsPlaced()
	prevScore := g.session.Score()

	// Horizontal movement and rotation apply immediately, independent of
	// the drop cadence.
	switch {
	case input.Has(core.ActionLeft):
		g.session.MoveLeft()
	case input.Has(core.ActionRight):
		g.session.MoveRight()
	}
	if input.Has(core.ActionRotate) {
		g.session.Rotate()
	}

	if input.Has(core.ActionHardDrop) {
		g.session.HardDrop()
		g.settleDelay(prevPlaced, prevScore)
		return core.StepResult{State: g.State()}
	}

	// Hold after a lock so the player can read the resolved board.
	if g.waitTicks > 0 {
		g.waitTicks--
		return core.StepResult{State: g.State()}
	}

	interval := g.dropEvery
	if input.Has(core.ActionDrop) && g.cfg.Drop.SoftDropTicks < interval {
		interval = g.cfg.Drop.SoftDropTicks
	}

	g.dropTicker++
	if g.dropTicker >= interval {
		g.dropTicker = 0
		g.session.Tick()
		g.settleDelay(prevPlaced, prevScore)
	}

	return core.StepResult{State: g.State()}
}

// settleDelay schedules the post-lock hold: a short spawn grace after any
// lock, extended when the lock triggered a clear.
func (g *Game) settleDelay(prevPlaced, prevScore int) {
	if g.session.PillsPlaced() == prevPlaced {
		return
	}
	g.dropTicker = 0
	g.waitTicks = g.cfg.Drop.SpawnGraceTicks
	if g.session.Score() > prevScore {
		g.waitTicks += g.cfg.Drop.LockResolvePause
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	g.renderBoard(dst)
	g.renderPreview(dst)

	switch {
	case g.session.Won():
		g.renderOverlay(dst, "You Win!", fmt.Sprintf("Final Score: %d", g.session.Score()))
	case g.session.IsOver():
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	case !g.session.IsRunning():
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Pillfall — Score: %d  Viruses: %d  Speed: %s",
		g.session.Score(), g.session.VirusCount(), g.speed)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderBoard draws the bordered playfield: settled cells first, then the
// active pill on top.
func (g *Game) renderBoard(dst *core.Screen) {
	b := g.session.Board()
	boxW := b.Width()*2 + 3
	boxH := b.Height() + 2
	dst.DrawBox(core.NewRect(g.boardX, g.boardY, boxW, boxH))

	for row := 0; row < b.Height(); row++ {
		for col := 0; col < b.Width(); col++ {
			g.drawCell(dst, row, col, b.At(row, col))
		}
	}

	if pill, ok := g.session.ActivePill(); ok {
		r1, c1, r2, c2 := pill.Cells()
		g.drawCell(dst, r1, c1, PillCell(pill.AnchorColor()))
		g.drawCell(dst, r2, c2, PillCell(pill.OffsetColor()))
	}
}

// drawCell renders one board cell at its screen position.
func (g *Game) drawCell(dst *core.Screen, row, col int, c Cell) {
	x := g.boardX + 2 + col*2
	y := g.boardY + 1 + row
	switch c.Kind {
	case Virus:
		dst.SetCell(x, y, VirusChar, screenColor(c.Color))
	case PillHalf:
		dst.SetCell(x, y, PillChar, screenColor(c.Color))
	default:
		dst.SetCell(x, y, EmptyChar, core.ColorGray)
	}
}

// renderPreview draws the NEXT panel to the right of the board.
func (g *Game) renderPreview(dst *core.Screen) {
	b := g.session.Board()
	x := g.boardX + b.Width()*2 + 4
	y := g.boardY

	dst.DrawText(x, y, "NEXT")
	first, second := g.session.NextColors()
	dst.SetCell(x, y+1, PillChar, screenColor(first))
	dst.SetCell(x+2, y+1, PillChar, screenColor(second))
}

// screenColor maps a pill/virus color to a screen color.
func screenColor(c Color) core.Color {
	switch c {
	case Red:
		return core.ColorBrightRed
	case Yellow:
		return core.ColorBrightYellow
	case Blue:
		return core.ColorBrightBlue
	default:
		return core.ColorWhite
	}
}

// renderOverlay draws a centered overlay message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	boxW := maxLen + 4
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := (dst.Height() - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))
	dst.DrawTextCentered(boxY+1, line1)
	dst.DrawTextCentered(boxY+3, line2)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.session.Score(),
		Viruses:  g.session.VirusCount(),
		GameOver: g.session.IsOver(),
		Won:      g.session.Won(),
		Paused:   !g.session.IsRunning() && !g.session.IsOver(),
	}
}
