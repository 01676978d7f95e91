package datafile

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedRecord marks a line that could not be parsed. The line is
	// skipped and loading continues.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrSourceUnavailable marks a data file that could not be opened or read.
	ErrSourceUnavailable = errors.New("source unavailable")
)

// MalformedRecordError describes why one line was rejected.
type MalformedRecordError struct {
	Line   int
	Kind   Kind
	Reason string
}

func (e *MalformedRecordError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("line %d: malformed %s record: %s", e.Line, e.Kind, e.Reason)
	}
	return fmt.Sprintf("malformed %s record: %s", e.Kind, e.Reason)
}

func (e *MalformedRecordError) Unwrap() error {
	return ErrMalformedRecord
}

func malformed(kind Kind, format string, args ...any) error {
	return &MalformedRecordError{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}
