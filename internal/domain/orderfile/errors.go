package orderfile

import "errors"

// Error kinds for order persistence. Format violations and I/O failures
// are distinct conditions and are never conflated: a missing or
// unreadable file is ErrFileRead, a readable file with bad structure is
// ErrInvalidFormat.
var (
	ErrInvalidFormat = errors.New("invalid order file format")
	ErrFileRead      = errors.New("order file access failed")
)
