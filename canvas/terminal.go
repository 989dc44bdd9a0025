package canvas

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

// dotRune stands in for a dot; one cell is already larger than a dot.
const dotRune = '•'

// Terminal maps a logical width x height surface onto the cells of a tcell
// screen. Translucent colours are composited over Background since cells
// cannot blend.
type Terminal struct {
	screen        tcell.Screen
	width, height float64
	caption       string
}

// OpenTerminal initialises the controlling terminal. Close must be called to
// restore it.
func OpenTerminal(width, height float64) (*Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "screen init failed")
	}
	if err := s.Init(); err != nil {
		return nil, errors.Wrap(err, "screen start failed")
	}
	return NewTerminal(s, width, height), nil
}

// NewTerminal wraps an initialised screen.
func NewTerminal(s tcell.Screen, width, height float64) *Terminal {
	s.SetStyle(tcell.StyleDefault.Background(toTcell(Background)))
	return &Terminal{screen: s, width: width, height: height}
}

// SetCaption sets the status line drawn on the next Present.
func (t *Terminal) SetCaption(text string) { t.caption = text }

func (t *Terminal) Size() (float64, float64) { return t.width, t.height }

func (t *Terminal) Clear() { t.screen.Clear() }

// DrawDot ignores radius: every dot fills exactly one cell.
func (t *Terminal) DrawDot(x, y, _ float64, c color.Color) {
	cols, rows := t.screen.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	cx := int(x / t.width * float64(cols))
	cy := int(y / t.height * float64(rows))
	if cx < 0 || cx >= cols || cy < 0 || cy >= rows {
		return
	}
	style := tcell.StyleDefault.
		Foreground(toTcell(Composite(c, Background))).
		Background(toTcell(Background))
	t.screen.SetContent(cx, cy, dotRune, nil, style)
}

// Present draws the status line and flushes the screen.
func (t *Terminal) Present() error {
	if t.caption != "" {
		_, rows := t.screen.Size()
		drawText(t.screen, 1, rows-1, tcell.StyleDefault.Foreground(tcell.ColorDarkGray), t.caption)
	}
	t.screen.Show()
	return nil
}

// PollQuit blocks reading terminal events and calls stop once the user asks
// to quit. It returns after stop, or when the screen is closed.
func (t *Terminal) PollQuit(stop func()) {
	for {
		ev := t.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			return
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				stop()
				return
			case tcell.KeyRune:
				if ev.Rune() == 'q' || ev.Rune() == 'Q' {
					stop()
					return
				}
			}
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

// Close restores the terminal.
func (t *Terminal) Close() error {
	t.screen.Fini()
	return nil
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, str string) {
	for i, r := range str {
		s.SetContent(x+i, y, r, nil, style)
	}
}
