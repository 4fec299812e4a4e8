package enquire

// CustomType prompts for a value of an arbitrary type T. The raw text first
// runs through the validator chain, then through the Parser; a parse failure
// is reported exactly like a validation failure, on the same error line.
//
//	port, err := enquire.NewCustomType("Port:", func(s string) (int, error) {
//		return strconv.Atoi(s)
//	}).Run()
type CustomType[T any] struct {
	Message     string
	Default     string // raw-text default used when the input is empty
	Placeholder string
	Help        string
	Validators  []StringValidator
	// Parser turns the validated raw text into the typed answer. Required.
	Parser func(input string) (T, error)
	// Formatter maps the parsed answer to the text echoed after submission.
	// It is decoupled from the parser; when nil the raw input is echoed.
	Formatter    func(answer T) string
	RenderConfig *RenderConfig

	promptBase
	editor lineEditor
	raw    string
	answer T
}

// NewCustomType builds a CustomType prompt from a message and a parser.
func NewCustomType[T any](message string, parser func(input string) (T, error)) *CustomType[T] {
	return &CustomType[T]{Message: message, Parser: parser}
}

// Run executes the prompt on the process terminal.
func (c *CustomType[T]) Run() (T, error) {
	var zero T
	if c.Parser == nil {
		return zero, configError("custom type prompt requires a parser")
	}
	b, err := newDefaultBackend(c.RenderConfig)
	if err != nil {
		return zero, err
	}
	defer b.close()
	return c.runWith(b)
}

func (c *CustomType[T]) runWith(b *backend) (T, error) {
	if c.Parser == nil {
		var zero T
		return zero, configError("custom type prompt requires a parser")
	}
	if err := runLoop(b, c); err != nil {
		var zero T
		return zero, err
	}
	return c.answer, nil
}

func (c *CustomType[T]) render(f *frame, rc *RenderConfig) {
	c.renderHeader(f, rc, c.Message)
	empty := len(c.editor.buffer) == 0
	if empty && c.Default != "" {
		f.write("("+c.Default+") ", rc.Placeholder)
	}
	if empty && c.Default == "" && c.Placeholder != "" {
		f.setCursor()
		f.write(c.Placeholder, rc.Placeholder)
	} else {
		c.editor.renderInto(f, rc.Answer)
	}
	c.renderFooter(f, rc, c.Help)
}

func (c *CustomType[T]) renderResult(f *frame, rc *RenderConfig) {
	echo := c.raw
	if c.Formatter != nil {
		echo = c.Formatter(c.answer)
	}
	c.renderAnswer(f, rc, c.Message, echo)
}

func (c *CustomType[T]) handleKey(key Key) (loopAction, error) {
	switch {
	case isCancelKey(key):
		return actionCancel, nil
	case key.Code == KeyEnter:
		candidate := c.editor.text()
		if candidate == "" {
			candidate = c.Default
		}
		if err := runStringValidators(c.Validators, candidate); err != nil {
			c.fail(err)
			return actionContinue, nil
		}
		parsed, err := c.Parser(candidate)
		if err != nil {
			// Parse failures take the validation path: rendered in place,
			// the prompt keeps running.
			c.fail(err)
			return actionContinue, nil
		}
		c.raw = candidate
		c.answer = parsed
		return actionSubmit, nil
	default:
		if c.editor.handleKey(key) {
			c.clearFailure()
		}
		return actionContinue, nil
	}
}
