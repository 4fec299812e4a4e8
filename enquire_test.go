package enquire

import (
	"bytes"
)

// Escape sequences used to script key presses in tests.
const (
	seqUp       = "\x1b[A"
	seqDown     = "\x1b[B"
	seqRight    = "\x1b[C"
	seqLeft     = "\x1b[D"
	seqHome     = "\x1b[H"
	seqEnd      = "\x1b[F"
	seqDelete   = "\x1b[3~"
	seqPageUp   = "\x1b[5~"
	seqPageDown = "\x1b[6~"
)

// newTestBackend builds a backend over a mock terminal replaying the given
// rune sequence, writing frames into an in-memory buffer. The style-free
// render config keeps output assertions byte-exact.
func newTestBackend(input string) (*backend, *mockTerminal, *bytes.Buffer) {
	terminal := newMockTerminal(input)
	var out bytes.Buffer
	return newBackend(terminal, &out, EmptyRenderConfig()), terminal, &out
}
