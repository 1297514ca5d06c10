package todo

import "errors"

// Error variables for task operations. Every failing call returns an error
// matching exactly one of these.
var (
	ErrRead       = errors.New("cannot read database")
	ErrParse      = errors.New("invalid database content")
	ErrWrite      = errors.New("cannot write database")
	ErrIndex      = errors.New("invalid to-do id")
	ErrValidation = errors.New("invalid to-do")
)

// Status is the discrete outcome of a task operation.
type Status int

// Status values, one per error variable plus success.
const (
	StatusSuccess Status = iota
	StatusRead
	StatusParse
	StatusWrite
	StatusIndex
	StatusValidation
	StatusUnknown
)

var statusNames = [...]string{ //nolint:gochecknoglobals // lookup table
	StatusSuccess:    "success",
	StatusRead:       "database read error",
	StatusParse:      "json error",
	StatusWrite:      "database write error",
	StatusIndex:      "to-do id error",
	StatusValidation: "validation error",
	StatusUnknown:    "unknown error",
}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return statusNames[StatusUnknown]
	}

	return statusNames[s]
}

// Kind maps err to its [Status]. A nil error is [StatusSuccess].
func Kind(err error) Status {
	switch {
	case err == nil:
		return StatusSuccess
	case errors.Is(err, ErrRead):
		return StatusRead
	case errors.Is(err, ErrParse):
		return StatusParse
	case errors.Is(err, ErrWrite):
		return StatusWrite
	case errors.Is(err, ErrIndex):
		return StatusIndex
	case errors.Is(err, ErrValidation):
		return StatusValidation
	default:
		return StatusUnknown
	}
}
