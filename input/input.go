// Package input tracks frame-coherent keyboard state on top of tcell's
// event stream. Terminals only report key presses, never releases, so a
// key counts as held for exactly the frames in which events for it arrive;
// "down" and "up" are the edges of that signal.
package input

import "github.com/gdamore/tcell/v2"

// Code identifies a key. Printable keys are identified by rune, everything
// else by tcell's key constant.
type Code struct {
	Key tcell.Key
	Ch  rune
}

// CodeRune identifies a printable key.
func CodeRune(r rune) Code {
	return Code{Key: tcell.KeyRune, Ch: r}
}

// CodeKey identifies a special key (escape, arrows, function keys).
func CodeKey(k tcell.Key) Code {
	return Code{Key: k}
}

func codeOf(ev *tcell.EventKey) Code {
	if ev.Key() == tcell.KeyRune {
		return CodeRune(ev.Rune())
	}
	return CodeKey(ev.Key())
}

type keyState struct {
	prev    bool
	current bool
}

// Input is the per-frame key state snapshot handed to systems through the
// scheduler's extra-args. The scheduler updates it once per frame, before
// any phase runs.
type Input struct {
	states map[Code]*keyState
}

func New() *Input {
	return &Input{states: make(map[Code]*keyState)}
}

// Update advances the snapshot one frame: current state ages into previous
// state, then this frame's key events mark their keys held.
func (in *Input) Update(events []tcell.Event) {
	for _, st := range in.states {
		st.prev = st.current
		st.current = false
	}
	for _, ev := range events {
		keyEv, ok := ev.(*tcell.EventKey)
		if !ok {
			continue
		}
		code := codeOf(keyEv)
		st, ok := in.states[code]
		if !ok {
			st = &keyState{}
			in.states[code] = st
		}
		st.current = true
	}
}

// IsKeyDown reports whether the key went down this frame.
func (in *Input) IsKeyDown(code Code) bool {
	st, ok := in.states[code]
	return ok && st.current && !st.prev
}

// IsKeyUp reports whether the key was released this frame.
func (in *Input) IsKeyUp(code Code) bool {
	st, ok := in.states[code]
	return ok && !st.current && st.prev
}

// IsKeyPressed reports whether the key is held this frame. True on every
// frame while events keep arriving; for a one-shot reaction use IsKeyDown.
func (in *Input) IsKeyPressed(code Code) bool {
	st, ok := in.states[code]
	return ok && st.current
}

// IsChordPressed reports whether every listed key is held this frame.
// Other keys may be held as well; for an exclusive chord use
// IsChordPressedExclusively.
func (in *Input) IsChordPressed(codes ...Code) bool {
	for _, code := range codes {
		if !in.IsKeyPressed(code) {
			return false
		}
	}
	return len(codes) > 0
}

// IsChordPressedExclusively reports whether every listed key and no other
// key is held this frame.
func (in *Input) IsChordPressedExclusively(codes ...Code) bool {
	if !in.IsChordPressed(codes...) {
		return false
	}
	for code, st := range in.states {
		if !st.current {
			continue
		}
		listed := false
		for _, c := range codes {
			if c == code {
				listed = true
				break
			}
		}
		if !listed {
			return false
		}
	}
	return true
}
