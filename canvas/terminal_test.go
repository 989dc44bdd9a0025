package canvas

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.viam.com/test"

	"pointsphere/sphere"
)

func newSimTerminal(t *testing.T, cols, rows int) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("")
	test.That(t, sim.Init(), test.ShouldBeNil)
	sim.SetSize(cols, rows)
	return NewTerminal(sim, 420, 420), sim
}

func TestTerminalDrawDot(t *testing.T) {
	term, sim := newSimTerminal(t, 84, 42)
	defer term.Close()

	w, h := term.Size()
	test.That(t, w, test.ShouldEqual, 420.0)
	test.That(t, h, test.ShouldEqual, 420.0)

	term.DrawDot(210, 210, 1, sphere.NearColor)
	term.DrawDot(0, 0, 1, sphere.FarColor)
	term.DrawDot(500, 10, 1, sphere.NearColor)
	test.That(t, term.Present(), test.ShouldBeNil)

	r, _, style, _ := sim.GetContent(42, 21)
	test.That(t, r, test.ShouldEqual, dotRune)
	fg, _, _ := style.Decompose()
	test.That(t, fg, test.ShouldEqual, tcell.NewRGBColor(255, 255, 255))

	r, _, style, _ = sim.GetContent(0, 0)
	test.That(t, r, test.ShouldEqual, dotRune)
	fg, _, _ = style.Decompose()
	test.That(t, fg, test.ShouldEqual, tcell.NewRGBColor(120, 120, 120))

	term.Clear()
	test.That(t, term.Present(), test.ShouldBeNil)
	r, _, _, _ = sim.GetContent(42, 21)
	test.That(t, r, test.ShouldEqual, ' ')
}

func TestTerminalCaption(t *testing.T) {
	term, sim := newSimTerminal(t, 40, 10)
	defer term.Close()

	term.SetCaption("hud")
	test.That(t, term.Present(), test.ShouldBeNil)
	r, _, _, _ := sim.GetContent(1, 9)
	test.That(t, r, test.ShouldEqual, 'h')
}

func TestTerminalPollQuit(t *testing.T) {
	for _, tc := range []struct {
		name string
		key  tcell.Key
		r    rune
	}{
		{"q", tcell.KeyRune, 'q'},
		{"escape", tcell.KeyEscape, 0},
		{"ctrl-c", tcell.KeyCtrlC, 0},
	} {
		t.Run(tc.name, func(t *testing.T) {
			term, sim := newSimTerminal(t, 20, 10)
			defer term.Close()

			stopped := make(chan struct{})
			go term.PollQuit(func() { close(stopped) })

			sim.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
			sim.InjectKey(tc.key, tc.r, tcell.ModNone)

			select {
			case <-stopped:
			case <-time.After(5 * time.Second):
				t.Fatal("stop was not called")
			}
		})
	}
}

func TestTerminalPollQuitReturnsOnClose(t *testing.T) {
	term, _ := newSimTerminal(t, 20, 10)

	done := make(chan struct{})
	go func() {
		term.PollQuit(func() { t.Error("unexpected stop") })
		close(done)
	}()
	test.That(t, term.Close(), test.ShouldBeNil)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("PollQuit did not return")
	}
}
