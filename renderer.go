package enquire

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/mattn/go-colorable"
	"github.com/mattn/go-runewidth"
)

// frame is one rendered screen of a prompt: a sequence of lines, each a list
// of styled spans, plus an optional terminal-cursor position for prompts that
// edit text in place.
//
// State machines build a fresh frame on every iteration; the backend then
// paints it over the previous one.
type frame struct {
	lines      [][]Styled
	cursorRow  int
	cursorCol  int // display columns, not runes
	showCursor bool
}

func newFrame() *frame {
	return &frame{lines: make([][]Styled, 1)}
}

// write appends a styled span to the current line.
func (f *frame) write(text string, style StyleSheet) {
	row := len(f.lines) - 1
	f.lines[row] = append(f.lines[row], Styled{Text: text, Style: style})
}

// writeStyled appends a pre-styled span to the current line.
func (f *frame) writeStyled(s Styled) {
	row := len(f.lines) - 1
	f.lines[row] = append(f.lines[row], s)
}

// newline starts the next line of the frame.
func (f *frame) newline() {
	f.lines = append(f.lines, nil)
}

// setCursor marks the terminal cursor position as "right here": the current
// line, after everything written to it so far.
func (f *frame) setCursor() {
	f.cursorRow = len(f.lines) - 1
	f.cursorCol = f.lineWidth(f.cursorRow)
	f.showCursor = true
}

// lineWidth returns the display width of a frame line, Unicode-aware.
func (f *frame) lineWidth(row int) int {
	width := 0
	for _, span := range f.lines[row] {
		width += runewidth.StringWidth(span.Text)
	}
	return width
}

// lineCount reports how many terminal lines this frame occupies.
func (f *frame) lineCount() int {
	return len(f.lines)
}

// backend owns the writable surface and the scoped raw-mode session of one
// prompt run. It remembers how many lines the previous frame occupied, and
// where it left the terminal cursor, so each repaint clears exactly the old
// frame instead of the whole screen.
type backend struct {
	terminal terminalInterface
	out      io.Writer
	keys     keyReader
	config   *RenderConfig

	raw           bool // raw-mode session engaged
	prevLines     int  // lines written by the last render
	prevCursorRow int  // frame row the terminal cursor was left on
}

func newBackend(terminal terminalInterface, out io.Writer, config *RenderConfig) *backend {
	if config == nil {
		config = DefaultRenderConfig()
	}
	return &backend{
		terminal: terminal,
		out:      out,
		keys:     newKeyDecoder(terminal),
		config:   config,
	}
}

// newDefaultBackend opens the process TTY and wires up a color-capable output
// writer, mirroring how the terminal driver is composed for production runs.
func newDefaultBackend(config *RenderConfig) (*backend, error) {
	terminal, err := newRealTerminal()
	if err != nil {
		return nil, fmt.Errorf("enquire: open terminal: %w", err)
	}

	var out io.Writer = os.Stdout
	if runtime.GOOS == "windows" {
		out = colorable.NewColorableStdout()
	}
	return newBackend(terminal, out, config), nil
}

// enter engages the raw-mode session. It must be paired with leave, normally
// via defer, so the terminal is restored on every exit path.
func (b *backend) enter() error {
	if err := b.terminal.SetRaw(); err != nil {
		return fmt.Errorf("enquire: enter raw mode: %w", err)
	}
	b.raw = true
	return nil
}

// leave releases the raw-mode session. Calling it more than once is a no-op,
// so a deferred leave composes with an explicit one.
func (b *backend) leave() error {
	if !b.raw {
		return nil
	}
	b.raw = false
	if err := b.terminal.Restore(); err != nil {
		return fmt.Errorf("enquire: restore terminal: %w", err)
	}
	return nil
}

// close releases the underlying terminal handle.
func (b *backend) close() error {
	return b.terminal.Close()
}

// readKey blocks until the next normalized key event is available.
func (b *backend) readKey() (Key, error) {
	key, err := b.keys.readKey()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Key{}, ErrEOF
		}
		return Key{}, fmt.Errorf("enquire: read key: %w", err)
	}
	return key, nil
}

// render paints a frame over the previous one. The cursor is first moved back
// to the top of the old frame, then every line is cleared and rewritten, and
// anything left over from a taller previous frame is cleared below. The whole
// frame is buffered and written in a single flush; a write error is fatal for
// the prompt run.
func (b *backend) render(f *frame) error {
	var buf bytes.Buffer

	if b.prevCursorRow > 0 {
		fmt.Fprintf(&buf, "\x1b[%dA", b.prevCursorRow)
	}
	buf.WriteString("\r")

	for i, line := range f.lines {
		buf.WriteString("\x1b[K")
		for _, span := range line {
			code := span.Style.ansi()
			if code != "" {
				buf.WriteString(code)
			}
			buf.WriteString(span.Text)
			if code != "" {
				buf.WriteString(ansiReset())
			}
		}
		if i < len(f.lines)-1 {
			buf.WriteString("\r\n")
		}
	}
	buf.WriteString("\x1b[J")

	if f.showCursor {
		if up := len(f.lines) - 1 - f.cursorRow; up > 0 {
			fmt.Fprintf(&buf, "\x1b[%dA", up)
		}
		buf.WriteString("\r")
		if f.cursorCol > 0 {
			fmt.Fprintf(&buf, "\x1b[%dC", f.cursorCol)
		}
		buf.WriteString("\x1b[?25h")
		b.prevCursorRow = f.cursorRow
	} else {
		buf.WriteString("\x1b[?25l")
		b.prevCursorRow = len(f.lines) - 1
	}
	b.prevLines = f.lineCount()

	if _, err := b.out.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("enquire: write frame: %w", err)
	}
	return nil
}

// finalize paints the terminal frame of a finished prompt (the answer echo),
// moves to a fresh line and re-shows the cursor. After finalize the backend's
// bookkeeping is reset; the rendered result stays on screen.
func (b *backend) finalize(f *frame) error {
	f.showCursor = false
	if err := b.render(f); err != nil {
		return err
	}
	b.prevLines = 0
	b.prevCursorRow = 0
	if _, err := io.WriteString(b.out, "\r\n\x1b[?25h"); err != nil {
		return fmt.Errorf("enquire: write frame: %w", err)
	}
	return nil
}

// clearPrompt wipes the current frame from the screen, used when a canceled
// prompt should leave no trace below the cursor.
func (b *backend) clearPrompt() error {
	var buf bytes.Buffer
	if b.prevCursorRow > 0 {
		fmt.Fprintf(&buf, "\x1b[%dA", b.prevCursorRow)
	}
	buf.WriteString("\r\x1b[J\x1b[?25h")
	b.prevLines = 0
	b.prevCursorRow = 0
	if _, err := b.out.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("enquire: write frame: %w", err)
	}
	return nil
}
