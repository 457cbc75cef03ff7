// Package terminal wraps tcell behind the small surface the renderer and
// input pump need: claim the screen, push styled cells, drain events,
// restore the terminal on the way out.
package terminal

import (
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/tachyon/core"
)

// ColorMode selects how Rgb values reach the terminal.
type ColorMode uint8

const (
	// Color256 quantizes to the xterm 256-color palette for terminals
	// without direct-color support.
	Color256 ColorMode = iota
	ColorTrueColor
)

// Screen owns the tcell screen and a background event pump. All drawing
// methods must be called from the frame loop goroutine.
type Screen struct {
	tc     tcell.Screen
	mode   ColorMode
	events chan tcell.Event
}

// NewScreen claims the terminal: alternate screen, raw input, hidden
// cursor. The caller must Fini (or crash through core.HandleCrash) to
// restore it.
func NewScreen(mode ColorMode) (*Screen, error) {
	tc, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := tc.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	tc.HideCursor()
	tc.Clear()

	s := &Screen{
		tc:     tc,
		mode:   mode,
		events: make(chan tcell.Event, 128),
	}

	core.Go(s.pollLoop)
	return s, nil
}

func (s *Screen) pollLoop() {
	for {
		ev := s.tc.PollEvent()
		if ev == nil {
			return // screen finalized
		}
		select {
		case s.events <- ev:
		default:
			// Input faster than the frame loop consumes it; dropping is
			// better than blocking the pump.
		}
	}
}

// DrainEvents returns every event that arrived since the last call,
// without blocking.
func (s *Screen) DrainEvents() []tcell.Event {
	var drained []tcell.Event
	for {
		select {
		case ev := <-s.events:
			drained = append(drained, ev)
		default:
			return drained
		}
	}
}

// Size returns the current terminal dimensions in cells.
func (s *Screen) Size() core.Dimensions2d {
	w, h := s.tc.Size()
	return core.Dimensions2d{Width: w, Height: h}
}

// SetCell stages one styled cell. Takes effect on the next Show.
func (s *Screen) SetCell(pos core.IntCoords2d, display rune, fg, bg core.Rgb) {
	style := tcell.StyleDefault.
		Foreground(s.color(fg)).
		Background(s.color(bg))
	s.tc.SetContent(pos.X, pos.Y, display, nil, style)
}

// Show flushes staged cells to the terminal.
func (s *Screen) Show() {
	s.tc.Show()
}

// Clear stages a blank screen.
func (s *Screen) Clear() {
	s.tc.Clear()
}

// Fini releases the terminal and stops the event pump.
func (s *Screen) Fini() {
	s.tc.Fini()
}

func (s *Screen) color(c core.Rgb) tcell.Color {
	if s.mode == ColorTrueColor {
		return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	return tcell.PaletteColor(int(rgbTo256(c)))
}

// EmergencyReset writes the raw escape sequences that undo everything the
// screen setup did. Used by the crash handler when the tcell state is no
// longer trustworthy.
func EmergencyReset(w io.Writer) {
	// leave alt screen, show cursor, reset attributes, disable mouse
	fmt.Fprint(w, "\x1b[?1049l\x1b[?25h\x1b[0m\x1b[?1000l\r\n")
}
