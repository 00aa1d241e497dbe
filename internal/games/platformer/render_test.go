package platformer

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// recorder logs every drawing and overlay call in order.
type recorder struct {
	calls []string
}

func (r *recorder) ClearRect(b core.Box) {
	r.calls = append(r.calls, fmt.Sprintf("clear %v", b))
}

func (r *recorder) FillRect(b core.Box, c core.Color) {
	r.calls = append(r.calls, fmt.Sprintf("fill %v %d", b, c))
}

func (r *recorder) StrokeRect(b core.Box, c core.Color, lineWidth float64) {
	r.calls = append(r.calls, fmt.Sprintf("stroke %v %d %v", b, c, lineWidth))
}

func (r *recorder) ShowMessage(text string) {
	r.calls = append(r.calls, "message "+text)
}

func TestDrawSequence(t *testing.T) {
	w := newTestWorld(t)
	rec := &recorder{}

	w.Draw(rec)

	bounds := core.NewBox(0, 0, 450, 440)
	expected := []string{
		fmt.Sprintf("clear %v", bounds),
		fmt.Sprintf("stroke %v %d 5", bounds, core.ColorGreen),
		fmt.Sprintf("fill %v %d", w.Player.Box(), core.ColorBlue),
		fmt.Sprintf("stroke %v %d 5", core.NewBox(10, 10, 32, 32), core.ColorRed),
	}
	for _, p := range w.Platforms {
		expected = append(expected, fmt.Sprintf("fill %v %d", p.Box(), core.ColorGreen))
	}

	assert.Equal(t, expected, rec.calls)
}

func TestFrameDrawsBeforeWinCheck(t *testing.T) {
	w := newTestWorld(t)
	floorOnly(w)
	w.Player.X, w.Player.Y = 10, 10
	rec := &recorder{}

	assert.True(t, w.Frame(Input{}, rec, rec))

	last := rec.calls[len(rec.calls)-1]
	assert.True(t, strings.HasPrefix(last, "message "), "overlay is invoked after drawing, got %q", last)
	assert.Len(t, rec.calls, 6) // clear, border, player, target, floor, message
}

func TestDrawOntoCellCanvas(t *testing.T) {
	w := newTestWorld(t)
	screen := core.NewScreen(45, 44)

	w.Draw(core.NewCellCanvas(screen, w.Env.Width, w.Env.Height))

	// Player at (50,350) 32x32 covers cells (5..7, 35..37)
	assert.Equal(t, core.Cell{Rune: core.FillRune, Color: core.ColorBlue}, screen.GetCell(6, 36))
	// Target outline corner at (10,10)
	assert.Equal(t, core.Cell{Rune: '┏', Color: core.ColorRed}, screen.GetCell(1, 1))
	// Floor row
	assert.Equal(t, core.ColorGreen, screen.GetCell(20, 41).Color)
}
