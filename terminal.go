package enquire

import (
	"os"

	"github.com/mattn/go-tty"
	"golang.org/x/term"
)

// terminalInterface abstracts the raw terminal driver so that prompt state
// machines never depend on a concrete TTY.
//
// Implementations:
//   - realTerminal: go-tty + golang.org/x/term against the process TTY
//   - mockTerminal: scripted rune feed for deterministic tests
//
// SetRaw/Restore bracket a raw-mode session; Restore must be safe to call even
// when SetRaw never ran, because the backend releases the session from a defer
// on every exit path.
type terminalInterface interface {
	SetRaw() error                        // enter raw mode for per-key input
	Restore() error                       // restore the pre-SetRaw terminal state
	Size() (width, height int, err error) // terminal dimensions with safe fallbacks
	ReadRune() (rune, int, error)         // read a single Unicode character
	Close() error                         // release the underlying handle
}

// realTerminal drives the process TTY. go-tty provides cross-platform rune
// reads and size detection while golang.org/x/term owns the raw-mode state so
// the original settings can always be restored, even after Ctrl+C.
type realTerminal struct {
	tty           *tty.TTY
	closed        bool // prevents a double Close panic on Windows
	stdinFd       int
	originalState *term.State
}

func newRealTerminal() (*realTerminal, error) {
	t, err := tty.Open()
	if err != nil {
		return nil, err
	}
	return &realTerminal{
		tty:     t,
		stdinFd: int(os.Stdin.Fd()),
	}, nil
}

func (t *realTerminal) SetRaw() error {
	// Capture the current state every time raw mode is entered so a prompt
	// that suspends for an external editor can re-enter cleanly.
	if term.IsTerminal(t.stdinFd) {
		state, err := term.GetState(t.stdinFd)
		if err != nil {
			return err
		}
		t.originalState = state

		if _, err := term.MakeRaw(t.stdinFd); err != nil {
			return err
		}
	}
	return nil
}

func (t *realTerminal) Restore() error {
	if t.originalState != nil && term.IsTerminal(t.stdinFd) {
		err := term.Restore(t.stdinFd, t.originalState)
		t.originalState = nil
		return err
	}
	return nil
}

func (t *realTerminal) Size() (width, height int, err error) {
	w, h, err := t.tty.Size()
	if err != nil || w <= 0 || h <= 0 {
		// Safe fallback so layout math never divides by zero.
		return 80, 24, err
	}
	return w, h, nil
}

func (t *realTerminal) ReadRune() (rune, int, error) {
	r, err := t.tty.ReadRune()
	if err != nil {
		return 0, 0, err
	}
	return r, 1, nil
}

func (t *realTerminal) Close() error {
	if t.closed {
		return nil
	}
	if t.tty != nil {
		err := t.tty.Close()
		t.closed = true
		return err
	}
	return nil
}
