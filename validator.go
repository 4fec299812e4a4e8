package enquire

import (
	"fmt"
	"regexp"
	"time"
	"unicode/utf8"
)

// StringValidator checks a candidate text answer. A nil return accepts the
// candidate; a non-nil error is shown on the prompt's error line and keeps
// the prompt running.
type StringValidator func(input string) error

// OptionsValidator checks a candidate multi-select answer.
type OptionsValidator func(selection []OptionAnswer) error

// DateValidator checks a candidate calendar date.
type DateValidator func(date time.Time) error

func runDateValidators(validators []DateValidator, date time.Time) error {
	for _, validate := range validators {
		if err := validate(date); err != nil {
			return err
		}
	}
	return nil
}

// runStringValidators applies a chain in order; the first failure
// short-circuits and its message is the one displayed. An empty chain always
// passes.
func runStringValidators(validators []StringValidator, input string) error {
	for _, validate := range validators {
		if err := validate(input); err != nil {
			return err
		}
	}
	return nil
}

func runOptionsValidators(validators []OptionsValidator, selection []OptionAnswer) error {
	for _, validate := range validators {
		if err := validate(selection); err != nil {
			return err
		}
	}
	return nil
}

// Required rejects empty answers. An empty message selects the default one.
func Required(message string) StringValidator {
	if message == "" {
		message = "a response is required"
	}
	return func(input string) error {
		if input == "" {
			return fmt.Errorf("%s", message)
		}
		return nil
	}
}

// MinLength rejects answers shorter than n runes.
func MinLength(n int, message string) StringValidator {
	if message == "" {
		message = fmt.Sprintf("the response must be at least %d characters long", n)
	}
	return func(input string) error {
		if utf8.RuneCountInString(input) < n {
			return fmt.Errorf("%s", message)
		}
		return nil
	}
}

// MaxLength rejects answers longer than n runes.
func MaxLength(n int, message string) StringValidator {
	if message == "" {
		message = fmt.Sprintf("the response must be at most %d characters long", n)
	}
	return func(input string) error {
		if utf8.RuneCountInString(input) > n {
			return fmt.Errorf("%s", message)
		}
		return nil
	}
}

// ExactLength rejects answers whose rune count differs from n.
func ExactLength(n int, message string) StringValidator {
	if message == "" {
		message = fmt.Sprintf("the response must be exactly %d characters long", n)
	}
	return func(input string) error {
		if utf8.RuneCountInString(input) != n {
			return fmt.Errorf("%s", message)
		}
		return nil
	}
}

// MatchPattern rejects answers not matching the regular expression. The
// pattern is compiled once; a malformed pattern turns every candidate into a
// failure carrying the compile error, surfacing the misconfiguration on the
// first submit attempt.
func MatchPattern(pattern string, message string) StringValidator {
	if message == "" {
		message = fmt.Sprintf("the response must match the pattern %s", pattern)
	}
	re, compileErr := regexp.Compile(pattern)
	return func(input string) error {
		if compileErr != nil {
			return fmt.Errorf("invalid validation pattern %q: %w", pattern, compileErr)
		}
		if !re.MatchString(input) {
			return fmt.Errorf("%s", message)
		}
		return nil
	}
}

// MinSelected rejects multi-select answers with fewer than n options checked.
func MinSelected(n int, message string) OptionsValidator {
	if message == "" {
		message = fmt.Sprintf("select at least %d options", n)
	}
	return func(selection []OptionAnswer) error {
		if len(selection) < n {
			return fmt.Errorf("%s", message)
		}
		return nil
	}
}

// MaxSelected rejects multi-select answers with more than n options checked.
func MaxSelected(n int, message string) OptionsValidator {
	if message == "" {
		message = fmt.Sprintf("select at most %d options", n)
	}
	return func(selection []OptionAnswer) error {
		if len(selection) > n {
			return fmt.Errorf("%s", message)
		}
		return nil
	}
}
