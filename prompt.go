package enquire

import "fmt"

// OptionAnswer pairs a selectable option with its zero-based position in the
// original, unfiltered option list. Filtering and reordering never touch the
// index, so the caller's ordering reference survives any amount of
// interaction.
type OptionAnswer struct {
	Index int
	Value string
}

func newOptionAnswers(options []string) []OptionAnswer {
	answers := make([]OptionAnswer, len(options))
	for i, value := range options {
		answers[i] = OptionAnswer{Index: i, Value: value}
	}
	return answers
}

// loopAction is a prompt state machine's verdict after handling one key.
type loopAction int

const (
	actionContinue loopAction = iota // state updated, re-render and keep reading
	actionSubmit                     // answer validated and accepted
	actionCancel                     // user canceled, no answer
)

// promptModel is the contract between the shared driving loop and the
// per-kind state machines. handleKey owns validation: it only returns
// actionSubmit once the candidate answer passed the prompt's validator chain,
// storing any failure for the next render instead.
type promptModel interface {
	render(f *frame, rc *RenderConfig)
	renderResult(f *frame, rc *RenderConfig)
	handleKey(key Key) (loopAction, error)
}

// runLoop drives one prompt to completion: engage the raw-mode session,
// render, read a key, transition, repeat. The session is released via defer
// on every exit path, so the terminal is never left in raw mode no matter how
// the run ends.
func runLoop(b *backend, m promptModel) (err error) {
	if err := b.enter(); err != nil {
		return err
	}
	defer func() {
		if lerr := b.leave(); lerr != nil && err == nil {
			err = lerr
		}
	}()

	for {
		f := newFrame()
		m.render(f, b.config)
		if err := b.render(f); err != nil {
			return err
		}

		key, err := b.readKey()
		if err != nil {
			return err
		}

		action, err := m.handleKey(key)
		if err != nil {
			return err
		}
		switch action {
		case actionCancel:
			if err := b.clearPrompt(); err != nil {
				return err
			}
			return ErrCanceled
		case actionSubmit:
			final := newFrame()
			m.renderResult(final, b.config)
			return b.finalize(final)
		}
	}
}

// promptBase carries the state and rendering shared by every prompt kind: the
// message line, the optional help line and the current validation failure.
type promptBase struct {
	verr error // pending validation failure, shown until cleared
}

// renderHeader draws the prompt prefix and message on the current line.
func (p *promptBase) renderHeader(f *frame, rc *RenderConfig, message string) {
	f.writeStyled(rc.PromptPrefix)
	f.write(message, rc.Message)
	f.write(" ", StyleSheet{})
}

// renderFooter draws the error line if a validation failure is pending,
// then the help line if a help message is configured.
func (p *promptBase) renderFooter(f *frame, rc *RenderConfig, help string) {
	if p.verr != nil {
		f.newline()
		f.writeStyled(rc.ErrorPrefix)
		f.write(p.verr.Error(), rc.Error)
	}
	if help != "" {
		f.newline()
		f.write("["+help+"]", rc.Help)
	}
}

// renderAnswer draws the final echo line: answered prefix, message, answer.
func (p *promptBase) renderAnswer(f *frame, rc *RenderConfig, message, answer string) {
	f.writeStyled(rc.AnsweredPrefix)
	f.write(message, rc.Message)
	f.write(" ", StyleSheet{})
	f.write(answer, rc.Answer)
}

// fail records a validation failure for the next render.
func (p *promptBase) fail(err error) {
	p.verr = err
}

// clearFailure drops the pending validation failure, typically once the user
// starts changing the candidate answer again.
func (p *promptBase) clearFailure() {
	p.verr = nil
}

// isCancelKey reports whether the key cancels the prompt.
func isCancelKey(key Key) bool {
	return key.Code == KeyEscape || key.Code == KeyCtrlC
}

// lineEditor is the single-line text editing state shared by the text-like
// prompts and the list filters: a rune buffer plus a cursor, with emacs-style
// editing keys.
type lineEditor struct {
	buffer []rune
	cursor int
}

func (e *lineEditor) text() string {
	return string(e.buffer)
}

func (e *lineEditor) setText(text string) {
	e.buffer = []rune(text)
	e.cursor = len(e.buffer)
}

func (e *lineEditor) insert(r rune) {
	e.buffer = append(e.buffer[:e.cursor], append([]rune{r}, e.buffer[e.cursor:]...)...)
	e.cursor++
}

// handleKey applies an editing key and reports whether it was consumed.
func (e *lineEditor) handleKey(key Key) bool {
	switch key.Code {
	case KeyRune:
		e.insert(key.Rune)
	case KeySpace:
		e.insert(' ')
	case KeyBackspace:
		if e.cursor > 0 {
			e.buffer = append(e.buffer[:e.cursor-1], e.buffer[e.cursor:]...)
			e.cursor--
		}
	case KeyDelete:
		if e.cursor < len(e.buffer) {
			e.buffer = append(e.buffer[:e.cursor], e.buffer[e.cursor+1:]...)
		}
	case KeyLeft:
		if e.cursor > 0 {
			e.cursor--
		}
	case KeyRight:
		if e.cursor < len(e.buffer) {
			e.cursor++
		}
	case KeyHome, KeyCtrlA:
		e.cursor = 0
	case KeyEnd, KeyCtrlE:
		e.cursor = len(e.buffer)
	case KeyCtrlU:
		e.buffer = e.buffer[:0]
		e.cursor = 0
	case KeyCtrlK:
		e.buffer = e.buffer[:e.cursor]
	case KeyCtrlW:
		start := e.wordStart()
		e.buffer = append(e.buffer[:start], e.buffer[e.cursor:]...)
		e.cursor = start
	default:
		return false
	}
	return true
}

// wordStart finds the beginning of the word before the cursor, for Ctrl+W.
func (e *lineEditor) wordStart() int {
	pos := e.cursor
	for pos > 0 && !isWordRune(e.buffer[pos-1]) {
		pos--
	}
	for pos > 0 && isWordRune(e.buffer[pos-1]) {
		pos--
	}
	return pos
}

func isWordRune(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') || r == '_'
}

// renderInto draws the buffer and records the cursor position within the
// frame's current line.
func (e *lineEditor) renderInto(f *frame, style StyleSheet) {
	f.write(string(e.buffer[:e.cursor]), style)
	f.setCursor()
	f.write(string(e.buffer[e.cursor:]), style)
}

// configError marks a prompt misconfiguration detected before any key is
// read. It is fatal for the run and surfaced to the caller unchanged.
func configError(format string, args ...any) error {
	return fmt.Errorf("enquire: "+format, args...)
}
