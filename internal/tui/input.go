package tui

import (
	"github.com/gdamore/tcell/v2"
)

// pageDetents is how far PgUp/PgDn turn the crown.
const pageDetents = 10

// HandleEvent applies one terminal event. It returns false when the user quits.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return a.handleKey(ev)
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventResize:
		a.requestRedraw()
	}
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp, tcell.KeyRight:
		a.input.Rotate(1)
	case tcell.KeyDown, tcell.KeyLeft:
		a.input.Rotate(-1)
	case tcell.KeyPgUp:
		a.input.Rotate(pageDetents)
	case tcell.KeyPgDn:
		a.input.Rotate(-pageDetents)
	case tcell.KeyEnter:
		a.input.Confirm()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'k', '+':
			a.input.Rotate(1)
		case 'j', '-':
			a.input.Rotate(-1)
		case 'r':
			if a.Tracking() {
				a.tracker.Refresh(a.ctx)
			}
		}
	}
	return true
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	_, y := ev.Position()
	buttons := ev.Buttons()

	switch {
	case buttons&tcell.WheelUp != 0:
		a.input.Rotate(1)
	case buttons&tcell.WheelDown != 0:
		a.input.Rotate(-1)
	case buttons&tcell.Button1 != 0:
		if !a.dragging {
			a.dragging = true
			a.dragStartY = y
			return
		}
		a.input.Drag(float64(y-a.dragStartY) * a.opts.CellHeight)
		a.requestRedraw()
	case a.dragging:
		a.input.Drag(float64(y-a.dragStartY) * a.opts.CellHeight)
		a.dragging = false
		a.input.EndDrag()
		a.requestRedraw()
	}
}
