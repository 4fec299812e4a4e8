package enquire

// Text prompts for a single line of free text.
//
// The zero value of every optional field is usable: no default, no
// placeholder, no help line, no validation. Example:
//
//	name, err := (&enquire.Text{
//		Message:    "What is your name?",
//		Validators: []enquire.StringValidator{enquire.Required("")},
//	}).Run()
type Text struct {
	Message     string
	Default     string // used when the submitted input is empty
	Placeholder string // shown greyed out while the input is empty
	Initial     string // pre-filled, editable input
	Help        string
	Validators  []StringValidator
	// Formatter maps the validated answer to the text echoed after
	// submission. The returned answer itself is not transformed.
	Formatter    func(answer string) string
	RenderConfig *RenderConfig

	promptBase
	editor lineEditor
	answer string
}

// Run executes the prompt on the process terminal. It blocks until the user
// submits a valid answer (returned), cancels (ErrCanceled) or a fatal
// terminal error occurs.
func (t *Text) Run() (string, error) {
	b, err := newDefaultBackend(t.RenderConfig)
	if err != nil {
		return "", err
	}
	defer b.close()
	return t.runWith(b)
}

func (t *Text) runWith(b *backend) (string, error) {
	t.editor.setText(t.Initial)
	if err := runLoop(b, t); err != nil {
		return "", err
	}
	return t.answer, nil
}

func (t *Text) render(f *frame, rc *RenderConfig) {
	t.renderHeader(f, rc, t.Message)
	empty := len(t.editor.buffer) == 0
	if empty && t.Default != "" {
		f.write("("+t.Default+") ", rc.Placeholder)
	}
	if empty && t.Default == "" && t.Placeholder != "" {
		// The placeholder is drawn after the cursor mark so typing visually
		// replaces it without moving the insertion point.
		f.setCursor()
		f.write(t.Placeholder, rc.Placeholder)
	} else {
		t.editor.renderInto(f, rc.Answer)
	}
	t.renderFooter(f, rc, t.Help)
}

func (t *Text) renderResult(f *frame, rc *RenderConfig) {
	t.renderAnswer(f, rc, t.Message, t.echo())
}

func (t *Text) echo() string {
	if t.Formatter != nil {
		return t.Formatter(t.answer)
	}
	return t.answer
}

func (t *Text) handleKey(key Key) (loopAction, error) {
	switch {
	case isCancelKey(key):
		return actionCancel, nil
	case key.Code == KeyEnter:
		candidate := t.editor.text()
		if candidate == "" {
			candidate = t.Default
		}
		if err := runStringValidators(t.Validators, candidate); err != nil {
			t.fail(err)
			return actionContinue, nil
		}
		t.answer = candidate
		return actionSubmit, nil
	default:
		if t.editor.handleKey(key) {
			t.clearFailure()
		}
		return actionContinue, nil
	}
}
