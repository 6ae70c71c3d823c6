package tonal

import "fmt"

// UnknownKeyError is returned when a string does not name any key
type UnknownKeyError struct {
	Input string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown key %q", e.Input)
}

// ModeMismatchError is returned when a transpose distance is requested
// between keys of different modes
type ModeMismatchError struct {
	From Key
	To   Key
}

func (e *ModeMismatchError) Error() string {
	return fmt.Sprintf("cannot transpose %s (%s) onto %s (%s): modes differ",
		e.From.Symbol, e.From.Mode, e.To.Symbol, e.To.Mode)
}
