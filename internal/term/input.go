package term

import "github.com/gdamore/tcell/v2"

// Action is what a key press asks the front end to do.
type Action int

const (
	ActionNone Action = iota
	ActionPause
	ActionQuit
)

// ActionFor maps a key event: F9 or p toggles pause, Escape or Ctrl-C quits.
func ActionFor(ev *tcell.EventKey) Action {
	switch ev.Key() {
	case tcell.KeyF9:
		return ActionPause
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'p', 'P':
			return ActionPause
		case 'q':
			return ActionQuit
		}
	}
	return ActionNone
}
