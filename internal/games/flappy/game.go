package flappy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

// Visual characters for rendering
const (
	BirdChar    = '●'
	PipeChar    = '█'
	PipeRimChar = '▓'
	GroundChar  = '═'
	GroundAlt   = '─'
	GroundHatch = '╱'
)

// Game adapts an Episode to the terminal platform. The manual variant reads
// jumps from the keyboard; the automatic one lets an Autopilot fly.
type Game struct {
	id      string
	title   string
	pilot   Controller // nil for keyboard play
	cfg     config.FlappyConfig
	episode *Episode
	paused  bool
}

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names keep the
// config file's setting.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// LoadConfig loads the configuration chosen on the command line with the
// difficulty preset applied.
func LoadConfig() (config.FlappyConfig, error) {
	cfg, err := config.LoadFlappy(configPath)
	if err != nil {
		return cfg, err
	}
	config.ApplyFlappyPreset(&cfg, difficultyPreset)
	return cfg, nil
}

// New creates a keyboard-controlled game.
func New() *Game {
	return &Game{id: "flappy", title: "Flappy Bird"}
}

// NewAuto creates a game flown by the built-in autopilot.
func NewAuto() *Game {
	return &Game{id: "flappy_auto", title: "Flappy Bird (autopilot)", pilot: NewAutopilot()}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset starts a new episode. An invalid config file falls back to defaults.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := LoadConfig()
	if err != nil {
		cfg = config.DefaultFlappyConfig()
		config.ApplyFlappyPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	if g.episode == nil {
		g.episode = NewEpisode(cfg, runtime.Seed)
	} else {
		g.episode.Reconfigure(cfg)
		g.episode.Reset(runtime.Seed)
	}
	g.paused = false
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.episode.Done() {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionQuit) {
		g.episode.Quit()
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	d := DecisionNone
	if g.pilot != nil {
		d = g.pilot.Decide(g.episode.Observe())
	} else if in.Has(core.ActionJump) {
		d = DecisionJump
	}

	if !g.episode.Step(d) && g.pilot != nil {
		g.pilot.Report(g.episode.Result())
	}

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := core.GameState{
		Score:    g.episode.Score(),
		Frames:   g.episode.Frames(),
		GameOver: g.episode.Done(),
		Paused:   g.paused,
	}
	if s.GameOver {
		s.Cause = string(g.episode.Cause())
	}
	return s
}

// Controller names who flies the bird, as recorded in episode history.
func (g *Game) Controller() string {
	if g.pilot != nil {
		return "autopilot"
	}
	return "keyboard"
}

// Episode exposes the running episode.
func (g *Game) Episode() *Episode {
	return g.episode
}

// viewport maps playfield pixels onto screen cells. Row 0 is the HUD.
type viewport struct {
	sx, sy float64
	top    int
}

func (g *Game) viewport(dst *core.Screen) viewport {
	h := core.Max(dst.Height()-1, 1)
	return viewport{
		sx:  float64(dst.Width()) / float64(g.cfg.World.Width),
		sy:  float64(h) / float64(g.cfg.World.Height),
		top: 1,
	}
}

func (v viewport) col(x float64) int { return int(math.Floor(x * v.sx)) }
func (v viewport) row(y float64) int { return v.top + int(math.Floor(y*v.sy)) }

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.episode.Snapshot()
	vp := g.viewport(dst)

	for _, p := range snap.Pipes {
		g.drawPipe(dst, vp, p)
	}
	g.drawGround(dst, vp, snap)
	g.drawBird(dst, vp)

	// HUD
	hud := fmt.Sprintf(" Score: %d ", snap.Score)
	dst.DrawText(2, 0, hud, core.ColorBrightYellow)
	if g.pilot != nil {
		dst.DrawText(dst.Width()-8, 0, " AUTO ", core.ColorCyan)
	}

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if snap.Done {
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  %s  |  Press R to restart", snap.Score, snap.Cause))
	}
}

// drawPipe renders both pieces of a pipe, rims facing the gap.
func (g *Game) drawPipe(dst *core.Screen, vp viewport, p PipeState) {
	x0 := vp.col(p.X)
	x1 := core.Max(vp.col(p.X+PipeWidth), x0+1)
	gapTop := vp.row(p.TopY + PipeHeight)
	gapBottom := vp.row(p.BottomY)
	floor := vp.row(g.cfg.World.FloorY)

	for x := x0; x < x1; x++ {
		for y := vp.top; y < gapTop; y++ {
			dst.SetColored(x, y, PipeChar, core.ColorGreen)
		}
		if gapTop > vp.top {
			dst.SetColored(x, gapTop-1, PipeRimChar, core.ColorBrightGreen)
		}
		for y := gapBottom; y < floor; y++ {
			dst.SetColored(x, y, PipeChar, core.ColorGreen)
		}
		if gapBottom < floor {
			dst.SetColored(x, gapBottom, PipeRimChar, core.ColorBrightGreen)
		}
	}
}

// drawGround fills the area below the floor with a pattern that scrolls
// with the first ground segment.
func (g *Game) drawGround(dst *core.Screen, vp viewport, snap Snapshot) {
	floor := vp.row(snap.GroundY)
	offset := vp.col(-math.Mod(snap.GroundX1, g.cfg.World.GroundWidth))

	dst.DrawHLine(0, floor, dst.Width(), GroundChar, core.ColorOrange)
	for y := floor + 1; y < dst.Height(); y++ {
		for x := range dst.Width() {
			r := GroundAlt
			if (x+offset+y)%4 == 0 {
				r = GroundHatch
			}
			dst.SetColored(x, y, r, core.ColorGray)
		}
	}
}

// drawBird samples the rotated mask at each cell center it covers.
func (g *Game) drawBird(dst *core.Screen, vp viewport) {
	s := g.episode.Bird().Silhouette()
	r := s.Rect()
	drawn := false

	for y := vp.row(float64(r.Y)); y <= vp.row(float64(r.Bottom())); y++ {
		for x := vp.col(float64(r.X)); x <= vp.col(float64(r.Right())); x++ {
			wx := (float64(x) + 0.5) / vp.sx
			wy := (float64(y-vp.top) + 0.5) / vp.sy
			if s.Mask.At(int(wx)-r.X, int(wy)-r.Y) {
				dst.SetColored(x, y, BirdChar, core.ColorYellow)
				drawn = true
			}
		}
	}

	// Tiny terminals can sample right past the body.
	if !drawn {
		cx := float64(r.X) + float64(r.W)/2
		cy := float64(r.Y) + float64(r.H)/2
		dst.SetColored(vp.col(cx), vp.row(cy), BirdChar, core.ColorYellow)
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorWhite)

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title, core.ColorBrightRed)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle, core.ColorWhite)
}

// Register both variants with the registry
func init() {
	registry.Register("flappy", func() registry.Game {
		return New()
	})
	registry.Register("flappy_auto", func() registry.Game {
		return NewAuto()
	})
}
