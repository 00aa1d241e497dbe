package tui

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

func TestOverlayDrawsWhiteMessage(t *testing.T) {
	s := core.NewScreen(40, 11)
	o := &messageOverlay{}

	o.ShowMessage("You win")
	o.Draw(s)

	y := -1
	for i, line := range strings.Split(s.String(), "\n") {
		if strings.Contains(line, "You win") {
			y = i
		}
	}
	require.GreaterOrEqual(t, y, 0, "message not drawn:\n%s", s.String())

	row := strings.Split(s.String(), "\n")[y]
	x := utf8.RuneCountInString(row[:strings.Index(row, "You win")])
	for i := range len("You win") {
		assert.Equal(t, core.ColorWhite, s.GetCell(x+i, y).Color)
	}
}

func TestOverlayClearMessage(t *testing.T) {
	s := core.NewScreen(40, 11)
	o := &messageOverlay{}

	o.ShowMessage("You win")
	o.ClearMessage()
	o.Draw(s)

	assert.Empty(t, strings.TrimSpace(s.String()))
}
