package logbook

import (
	"errors"
	"fmt"
	"time"
)

// ErrReportNotFound is returned when no report file exists for the requested date.
var ErrReportNotFound = errors.New("report not found")

// ErrHeaderParse indicates the first line of a report is not a valid header.
var ErrHeaderParse = errors.New("invalid report header")

// ErrDateMismatch indicates a report's header names a different date than its filename.
var ErrDateMismatch = errors.New("report date mismatch")

// HeaderParseError describes a header line that could not be parsed.
type HeaderParseError struct {
	Line   string
	Reason string
}

func (e *HeaderParseError) Error() string {
	return fmt.Sprintf("%s %q: %s", ErrHeaderParse, e.Line, e.Reason)
}

// Is reports whether target is ErrHeaderParse.
func (e *HeaderParseError) Is(target error) bool {
	return target == ErrHeaderParse
}

// DateMismatchError is returned when the header date disagrees with the date
// used to resolve the report path.
type DateMismatchError struct {
	Path string
	Want time.Time
	Got  time.Time
}

func (e *DateMismatchError) Error() string {
	return fmt.Sprintf("%s: %s has header date %s, want %s",
		ErrDateMismatch, e.Path, e.Got.Format(dateLayout), e.Want.Format(dateLayout))
}

// Is reports whether target is ErrDateMismatch.
func (e *DateMismatchError) Is(target error) bool {
	return target == ErrDateMismatch
}
