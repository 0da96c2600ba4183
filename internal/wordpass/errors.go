package wordpass

import "errors"

// Sentinel errors returned (wrapped) by Parse and ParseFuzzy.
var (
	ErrInvalidFormat = errors.New("invalid identifier format")
	ErrUnknownWord   = errors.New("unrecognized word")
	ErrAmbiguousWord = errors.New("ambiguous word, multiple close matches")
)
