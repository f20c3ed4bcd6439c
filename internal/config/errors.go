package config

import "errors"

var (
	// ErrNotFound indicates Load was given a path with no regular file.
	ErrNotFound = errors.New("config: file not found")

	// ErrExists indicates Save refused to replace a file without overwrite.
	ErrExists = errors.New("config: file already exists")

	// ErrInvalidDocument indicates the document is not a flat mapping of
	// field names to numbers.
	ErrInvalidDocument = errors.New("config: invalid document")
)
