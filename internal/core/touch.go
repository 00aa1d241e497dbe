package core

// TouchButton is an on-screen control that holds an action while touched.
type TouchButton struct {
	Label  string
	Bounds Box
	Action Action
}

// TouchPad is a row of on-screen buttons.
type TouchPad struct {
	Buttons []TouchButton
}

// NewTouchPad lays out left, right and jump buttons side by side in the
// strip of the given width and height starting at top.
func NewTouchPad(width, top, height float64) TouchPad {
	w := width / 3
	return TouchPad{Buttons: []TouchButton{
		{Label: "<", Bounds: NewBox(0, top, w, height), Action: ActionLeft},
		{Label: ">", Bounds: NewBox(w, top, w, height), Action: ActionRight},
		{Label: "^", Bounds: NewBox(2*w, top, width-2*w, height), Action: ActionJump},
	}}
}

// Hit returns the action of the button under (x, y), or ActionNone.
func (p TouchPad) Hit(x, y float64) Action {
	for _, b := range p.Buttons {
		if b.Bounds.Contains(x, y) {
			return b.Action
		}
	}
	return ActionNone
}

// Apply sets the actions of every button under the given touch points.
func (p TouchPad) Apply(frame *InputFrame, points [][2]float64) {
	for _, pt := range points {
		if a := p.Hit(pt[0], pt[1]); a != ActionNone {
			frame.Set(a)
		}
	}
}
