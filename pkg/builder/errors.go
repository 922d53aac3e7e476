package builder

import "errors"

var (
	// ErrNotDelimited is returned when the sequence was not opened with Begin and closed with End.
	ErrNotDelimited = errors.New("pattern is not delimited")

	// ErrNilOperation is returned by Raw when no operation is supplied.
	ErrNilOperation = errors.New("nil raw operation")
)
