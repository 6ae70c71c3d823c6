package tracklist

import "fmt"

// RecordError reports a track list entry that could not be turned into a track
type RecordError struct {
	Source string
	Line   int
	Name   string
	Err    error
}

func (e *RecordError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: track %q: %v", e.Source, e.Line, e.Name, e.Err)
	}
	return fmt.Sprintf("%s: track %q: %v", e.Source, e.Name, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}
