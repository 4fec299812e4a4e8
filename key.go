package enquire

import (
	"errors"
	"io"
)

// KeyCode identifies a normalized input event produced by the key decoder.
type KeyCode int

// Key codes for every event the prompt state machines react to. Printable
// characters arrive as KeyRune with the Rune field set; everything else is a
// named key.
const (
	KeyRune KeyCode = iota
	KeyEnter
	KeyEscape
	KeyBackspace
	KeyDelete
	KeyTab
	KeySpace
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyCtrlA
	KeyCtrlC
	KeyCtrlD
	KeyCtrlE
	KeyCtrlK
	KeyCtrlR
	KeyCtrlU
	KeyCtrlW
)

// Key is a single normalized input event. Keys are immutable values compared
// by structural equality; Rune is only meaningful when Code is KeyRune.
type Key struct {
	Code KeyCode
	Rune rune
}

// keyReader yields the next Key, blocking until one is available. An exhausted
// input source surfaces io.EOF, which the backend maps to ErrEOF. Each call
// consumes exactly one key; there is no lookahead.
type keyReader interface {
	readKey() (Key, error)
}

// keyDecoder turns the raw rune stream of a terminal into normalized Keys.
// A single-rune pushback buffer lets it distinguish a bare Escape press from
// the start of a CSI sequence without losing the following keystroke.
type keyDecoder struct {
	terminal terminalInterface
	pending  []rune
}

func newKeyDecoder(terminal terminalInterface) *keyDecoder {
	return &keyDecoder{terminal: terminal}
}

func (d *keyDecoder) readRune() (rune, error) {
	if len(d.pending) > 0 {
		r := d.pending[0]
		d.pending = d.pending[1:]
		return r, nil
	}
	r, _, err := d.terminal.ReadRune()
	return r, err
}

func (d *keyDecoder) readKey() (Key, error) {
	for {
		r, err := d.readRune()
		if err != nil {
			return Key{}, err
		}

		switch r {
		case '\r', '\n':
			return Key{Code: KeyEnter}, nil
		case '\t':
			return Key{Code: KeyTab}, nil
		case ' ':
			return Key{Code: KeySpace}, nil
		case '\x7f', '\b':
			return Key{Code: KeyBackspace}, nil
		case '\x01':
			return Key{Code: KeyCtrlA}, nil
		case '\x03':
			return Key{Code: KeyCtrlC}, nil
		case '\x04':
			return Key{Code: KeyCtrlD}, nil
		case '\x05':
			return Key{Code: KeyCtrlE}, nil
		case '\x0b':
			return Key{Code: KeyCtrlK}, nil
		case '\x12':
			return Key{Code: KeyCtrlR}, nil
		case '\x15':
			return Key{Code: KeyCtrlU}, nil
		case '\x17':
			return Key{Code: KeyCtrlW}, nil
		case '\x1b':
			key, ok, err := d.readEscape()
			if err != nil {
				return Key{}, err
			}
			if ok {
				return key, nil
			}
			// Unrecognized sequence dropped, keep reading.
			continue
		}

		if r >= 32 {
			return Key{Code: KeyRune, Rune: r}, nil
		}
		// Unbound control characters are dropped rather than delivered.
	}
}

// escapeSequences maps the tail of an escape sequence (without the leading
// ESC) to its key. Both CSI ("[") and SS3 ("O") variants are covered because
// terminals disagree on Home/End encoding.
var escapeSequences = map[string]Key{
	"[A":  {Code: KeyUp},
	"[B":  {Code: KeyDown},
	"[C":  {Code: KeyRight},
	"[D":  {Code: KeyLeft},
	"[H":  {Code: KeyHome},
	"[F":  {Code: KeyEnd},
	"OH":  {Code: KeyHome},
	"OF":  {Code: KeyEnd},
	"[1~": {Code: KeyHome},
	"[3~": {Code: KeyDelete},
	"[4~": {Code: KeyEnd},
	"[5~": {Code: KeyPageUp},
	"[6~": {Code: KeyPageDown},
	"[7~": {Code: KeyHome},
	"[8~": {Code: KeyEnd},
}

// readEscape is called after an ESC byte was consumed. If no further byte is
// available, or the next byte does not introduce a sequence, the event is a
// bare Escape key and any consumed byte is pushed back for the next read.
// An unrecognized but properly terminated sequence (function keys, modifier
// combos like ctrl+arrow) yields no key at all: delivering Escape for those
// would cancel the prompt on a stray F-key press.
func (d *keyDecoder) readEscape() (Key, bool, error) {
	r, err := d.readRune()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Key{Code: KeyEscape}, true, nil
		}
		return Key{}, false, err
	}
	if r != '[' && r != 'O' {
		d.pending = append(d.pending, r)
		return Key{Code: KeyEscape}, true, nil
	}

	seq := []rune{r}
	for len(seq) < 8 {
		r, err = d.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return Key{Code: KeyEscape}, true, nil
			}
			return Key{}, false, err
		}
		seq = append(seq, r)

		if key, ok := escapeSequences[string(seq)]; ok {
			return key, true, nil
		}
		// A sequence terminates on '~' or an alphabetic final byte; anything
		// we do not recognize by then is dropped.
		if r == '~' || (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') {
			return Key{}, false, nil
		}
	}
	return Key{}, false, nil
}
