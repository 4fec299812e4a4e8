package enquire

import (
	"errors"
	"strings"
)

// Confirm prompts for a yes/no answer. The user may type any configured
// affirmative or negative word (or its first letter) and submit with Enter;
// an empty submission picks the default.
type Confirm struct {
	Message string
	Default bool
	Help    string
	// PositiveAnswers and NegativeAnswers are matched case-insensitively
	// against the trimmed input. They default to {"y", "yes"} and
	// {"n", "no"}.
	PositiveAnswers []string
	NegativeAnswers []string
	RenderConfig    *RenderConfig

	promptBase
	editor lineEditor
	answer bool
}

// Run executes the prompt on the process terminal.
func (c *Confirm) Run() (bool, error) {
	b, err := newDefaultBackend(c.RenderConfig)
	if err != nil {
		return false, err
	}
	defer b.close()
	return c.runWith(b)
}

func (c *Confirm) runWith(b *backend) (bool, error) {
	if err := runLoop(b, c); err != nil {
		return false, err
	}
	return c.answer, nil
}

func (c *Confirm) hint() string {
	if c.Default {
		return "(Y/n) "
	}
	return "(y/N) "
}

func (c *Confirm) render(f *frame, rc *RenderConfig) {
	c.renderHeader(f, rc, c.Message)
	f.write(c.hint(), rc.Placeholder)
	c.editor.renderInto(f, rc.Answer)
	c.renderFooter(f, rc, c.Help)
}

func (c *Confirm) renderResult(f *frame, rc *RenderConfig) {
	echo := "No"
	if c.answer {
		echo = "Yes"
	}
	c.renderAnswer(f, rc, c.Message, echo)
}

func (c *Confirm) handleKey(key Key) (loopAction, error) {
	switch {
	case isCancelKey(key):
		return actionCancel, nil
	case key.Code == KeyEnter:
		value, err := c.parse(c.editor.text())
		if err != nil {
			c.fail(err)
			return actionContinue, nil
		}
		c.answer = value
		return actionSubmit, nil
	default:
		if c.editor.handleKey(key) {
			c.clearFailure()
		}
		return actionContinue, nil
	}
}

func (c *Confirm) parse(input string) (bool, error) {
	input = strings.ToLower(strings.TrimSpace(input))
	if input == "" {
		return c.Default, nil
	}

	positives := c.PositiveAnswers
	if len(positives) == 0 {
		positives = []string{"y", "yes"}
	}
	negatives := c.NegativeAnswers
	if len(negatives) == 0 {
		negatives = []string{"n", "no"}
	}

	for _, p := range positives {
		if input == strings.ToLower(p) {
			return true, nil
		}
	}
	for _, n := range negatives {
		if input == strings.ToLower(n) {
			return false, nil
		}
	}
	return false, errors.New("answer with y/n")
}
