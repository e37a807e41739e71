package cursor

import "errors"

var (
	// ErrTypeMismatch: key navigation attempted on a non-mapping node.
	ErrTypeMismatch = errors.New("node is not a mapping")
	// ErrKeyNotFound: the mapping has no entry for the requested key.
	ErrKeyNotFound = errors.New("key not found")
	// ErrNotASequence: index navigation attempted on a non-sequence
	// node. Strings are terminals, not sequences.
	ErrNotASequence = errors.New("node is not a sequence")
	// ErrIndexOutOfRange: the index is not in [0, len).
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrNotATerminal: Value called on a mapping or sequence.
	ErrNotATerminal = errors.New("node is not a terminal")
)
