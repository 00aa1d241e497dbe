// Package desktop runs the platformer in a native window using Ebitengine.
package desktop

import (
	"image/color"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer"
)

// TouchStripHeight is the height of the on-screen controls below the world.
const TouchStripHeight = 80

// debugPrint glyph metrics.
const (
	glyphW = 6
	glyphH = 16
)

var (
	background  = color.RGBA{255, 255, 255, 255}
	touchFill   = color.RGBA{90, 90, 90, 255}
	touchStroke = color.RGBA{40, 40, 40, 255}
	bannerFill  = color.RGBA{0, 0, 0, 200}
)

// inputSource is the slice of ebiten's input state the window reads.
type inputSource interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
	Touches() [][2]float64
}

type ebitenInput struct{}

func (ebitenInput) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenInput) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

func (ebitenInput) Touches() [][2]float64 {
	ids := ebiten.AppendTouchIDs(nil)
	points := make([][2]float64, 0, len(ids))
	for _, id := range ids {
		x, y := ebiten.TouchPosition(id)
		points = append(points, [2]float64{float64(x), float64(y)})
	}
	return points
}

var keyActions = []struct {
	keys   []ebiten.Key
	action core.Action
}{
	{[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, core.ActionLeft},
	{[]ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, core.ActionRight},
	{[]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeySpace}, core.ActionJump},
}

// banner shows the win message across the world until the next run.
type banner struct {
	text    string
	visible bool
}

func (b *banner) ShowMessage(text string) {
	b.text = text
	b.visible = true
}

func (b *banner) ClearMessage() {
	b.text = ""
	b.visible = false
}

// Window implements ebiten.Game for one platformer run.
type Window struct {
	game   *platformer.Game
	banner *banner
	touch  core.TouchPad
	input  inputSource
	logger *log.Logger
	worldW int
	worldH int
	state  core.GameState
	world  *ebiten.Image // offscreen target; the world clear leaves it transparent
}

// NewWindow creates a window and starts a fresh run of game.
func NewWindow(game *platformer.Game, runtime core.RuntimeConfig, logger *log.Logger) *Window {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg := game.Config()
	b := &banner{}
	game.SetOverlay(b)
	game.Reset(runtime)

	return &Window{
		game:   game,
		banner: b,
		touch:  core.NewTouchPad(cfg.Canvas.Width, cfg.Canvas.Height, TouchStripHeight),
		input:  ebitenInput{},
		logger: logger,
		worldW: int(cfg.Canvas.Width),
		worldH: int(cfg.Canvas.Height),
	}
}

// Update advances the simulation by one tick.
func (w *Window) Update() error {
	if w.input.Pressed(ebiten.KeyQ) || w.input.Pressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	result := w.game.Step(w.frame())
	w.state = result.State
	if result.WonThisTick {
		w.logger.Info("target reached", "ticks", w.state.Ticks)
	}
	return nil
}

// frame collects this tick's input from keys and touches.
func (w *Window) frame() core.InputFrame {
	f := core.NewInputFrame()
	for _, ka := range keyActions {
		for _, k := range ka.keys {
			if w.input.Pressed(k) {
				f.Set(ka.action)
				break
			}
		}
	}
	w.touch.Apply(&f, w.input.Touches())

	if w.input.JustPressed(ebiten.KeyP) {
		f.Set(core.ActionPause)
	}
	if w.input.JustPressed(ebiten.KeyR) {
		f.Set(core.ActionRestart)
	}
	return f
}

// Draw paints the world, the touch strip and any banner.
func (w *Window) Draw(screen *ebiten.Image) {
	if w.world == nil {
		w.world = ebiten.NewImage(w.worldW, w.worldH)
	}
	w.game.Render(imageSurface{img: w.world})

	screen.Fill(background)
	screen.DrawImage(w.world, nil)
	w.drawTouchPad(screen)

	switch {
	case w.banner.visible:
		w.drawBanner(screen, w.banner.text, "R to play again")
	case w.state.Paused:
		w.drawBanner(screen, "PAUSED", "P to resume")
	}
}

func (w *Window) drawTouchPad(screen *ebiten.Image) {
	for _, b := range w.touch.Buttons {
		r := b.Bounds
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), touchFill, false)
		vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, touchStroke, false)
		cx, cy := r.Center()
		ebitenutil.DebugPrintAt(screen, b.Label, int(cx)-glyphW/2, int(cy)-glyphH/2)
	}
}

func (w *Window) drawBanner(screen *ebiten.Image, title, subtitle string) {
	lineW := max(len(title), len(subtitle)) * glyphW
	boxW := float32(lineW + 4*glyphW)
	boxH := float32(glyphH * 4)
	x := (float32(w.worldW) - boxW) / 2
	y := (float32(w.worldH) - boxH) / 2

	vector.DrawFilledRect(screen, x, y, boxW, boxH, bannerFill, false)
	ebitenutil.DebugPrintAt(screen, title, w.worldW/2-len(title)*glyphW/2, int(y)+glyphH/2)
	ebitenutil.DebugPrintAt(screen, subtitle, w.worldW/2-len(subtitle)*glyphW/2, int(y)+glyphH*5/2)
}

// Layout fixes the logical screen to the world plus the touch strip.
func (w *Window) Layout(_, _ int) (int, int) {
	return w.worldW, w.worldH + TouchStripHeight
}

// Run opens the window and blocks until it is closed.
func Run(game *platformer.Game, runtime core.RuntimeConfig, logger *log.Logger) error {
	w := NewWindow(game, runtime, logger)

	ebiten.SetWindowSize(w.Layout(0, 0))
	ebiten.SetWindowTitle(game.Title())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if runtime.TickRate > 0 {
		ebiten.SetTPS(runtime.TickRate)
	}

	w.logger.Debug("window opened", "seed", game.Seed(), "tps", ebiten.TPS())
	return ebiten.RunGame(w)
}
