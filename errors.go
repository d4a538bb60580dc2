package recovery

import "errors"

// Error kinds reported by the calculator and its adapters.
// They are wrapped with details, test them with errors.Is.
var (
	// ErrNotFound reports a missing input source.
	ErrNotFound = errors.New("not found")
	// ErrFormat reports a missing sheet, a missing column or a malformed cell.
	ErrFormat = errors.New("format error")
	// ErrInvalidConfiguration reports a negative budget or a malformed exclusion set.
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrData reports a record the calculator cannot trust (negative spend, duplicate id...).
	ErrData = errors.New("data error")
)
