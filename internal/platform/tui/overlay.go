package tui

import (
	"github.com/vovakirdan/tui-platformer/internal/core"
)

// messageOverlay keeps the win message until the run restarts.
type messageOverlay struct {
	text    string
	visible bool
}

// ShowMessage makes text visible on the next repaint.
func (o *messageOverlay) ShowMessage(text string) {
	o.text = text
	o.visible = true
}

// ClearMessage hides the message.
func (o *messageOverlay) ClearMessage() {
	o.text = ""
	o.visible = false
}

// Draw paints the message box over the game if it is visible.
func (o *messageOverlay) Draw(dst *core.Screen) {
	if !o.visible {
		return
	}
	drawCenteredMessage(dst, o.text, "R to play again  |  Q to quit")
}

// drawCenteredMessage draws a white-on-black message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleLen := len([]rune(title))
	subtitleLen := len([]rune(subtitle))

	boxW := core.Max(titleLen, subtitleLen) + 6
	boxH := 5
	if subtitle == "" {
		boxH = 3
	}
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2
	box := core.NewRect(boxX, boxY, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorWhite)
	dst.DrawBox(box, core.BoxLight, core.ColorWhite)

	dst.DrawText(boxX+(boxW-titleLen)/2, boxY+1, title, core.ColorWhite)
	if subtitle != "" {
		dst.DrawText(boxX+(boxW-subtitleLen)/2, boxY+3, subtitle, core.ColorWhite)
	}
}
