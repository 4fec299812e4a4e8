package enquire

import "strings"

// PasswordDisplayMode controls how typed password characters appear on
// screen.
type PasswordDisplayMode int

// Display modes, from most to least discreet.
const (
	// PasswordHidden shows nothing while typing.
	PasswordHidden PasswordDisplayMode = iota
	// PasswordMasked shows one mask rune per typed character.
	PasswordMasked
	// PasswordFull echoes the raw input, like a Text prompt.
	PasswordFull
)

// Password prompts for secret input. The raw value is never shown unless the
// display mode says so, is never echoed after submission, and has no default
// or initial value on purpose.
type Password struct {
	Message     string
	Help        string
	DisplayMode PasswordDisplayMode
	MaskRune    rune // defaults to '*'
	// EnableToggle lets Ctrl+R cycle through the display modes while typing.
	EnableToggle bool
	Validators   []StringValidator
	RenderConfig *RenderConfig

	promptBase
	editor lineEditor
	mode   PasswordDisplayMode
	answer string
}

// Run executes the prompt on the process terminal.
func (p *Password) Run() (string, error) {
	b, err := newDefaultBackend(p.RenderConfig)
	if err != nil {
		return "", err
	}
	defer b.close()
	return p.runWith(b)
}

func (p *Password) runWith(b *backend) (string, error) {
	p.mode = p.DisplayMode
	if err := runLoop(b, p); err != nil {
		return "", err
	}
	return p.answer, nil
}

func (p *Password) maskRune() rune {
	if p.MaskRune != 0 {
		return p.MaskRune
	}
	return '*'
}

func (p *Password) render(f *frame, rc *RenderConfig) {
	p.renderHeader(f, rc, p.Message)
	switch p.mode {
	case PasswordFull:
		p.editor.renderInto(f, rc.Answer)
	case PasswordMasked:
		// The mask keeps per-rune alignment so the cursor still tracks the
		// logical editing position.
		f.write(strings.Repeat(string(p.maskRune()), p.editor.cursor), rc.Answer)
		f.setCursor()
		f.write(strings.Repeat(string(p.maskRune()), len(p.editor.buffer)-p.editor.cursor), rc.Answer)
	default:
		f.setCursor()
	}
	p.renderFooter(f, rc, p.Help)
}

func (p *Password) renderResult(f *frame, rc *RenderConfig) {
	p.renderAnswer(f, rc, p.Message, "********")
}

func (p *Password) handleKey(key Key) (loopAction, error) {
	switch {
	case isCancelKey(key):
		return actionCancel, nil
	case key.Code == KeyEnter:
		candidate := p.editor.text()
		if err := runStringValidators(p.Validators, candidate); err != nil {
			p.fail(err)
			return actionContinue, nil
		}
		p.answer = candidate
		return actionSubmit, nil
	case key.Code == KeyCtrlR && p.EnableToggle:
		p.mode = (p.mode + 1) % 3
		return actionContinue, nil
	default:
		if p.editor.handleKey(key) {
			p.clearFailure()
		}
		return actionContinue, nil
	}
}
