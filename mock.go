package enquire

import "io"

// mockTerminal implements terminalInterface for tests. It replays a finite
// scripted rune sequence and returns io.EOF once exhausted, which is the
// end-of-input signal the backend maps to ErrEOF.
//
// The raw-mode enter/restore counters let tests assert the session invariant:
// a prompt run engages raw mode exactly once and always releases it,
// regardless of how the run terminated.
type mockTerminal struct {
	input        []rune
	inputPos     int
	rawMode      bool
	rawEnters    int
	rawRestores  int
	terminalSize [2]int // [width, height]
}

func newMockTerminal(input string) *mockTerminal {
	return &mockTerminal{
		input:        []rune(input),
		terminalSize: [2]int{80, 24},
	}
}

func (m *mockTerminal) SetRaw() error {
	m.rawMode = true
	m.rawEnters++
	return nil
}

func (m *mockTerminal) Restore() error {
	m.rawMode = false
	m.rawRestores++
	return nil
}

func (m *mockTerminal) Size() (width, height int, err error) {
	return m.terminalSize[0], m.terminalSize[1], nil
}

func (m *mockTerminal) ReadRune() (rune, int, error) {
	if m.inputPos >= len(m.input) {
		return 0, 0, io.EOF
	}
	r := m.input[m.inputPos]
	m.inputPos++
	return r, 1, nil
}

func (m *mockTerminal) Close() error {
	return nil
}
