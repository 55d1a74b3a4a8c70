package dataset

import "errors"

// Sentinel kinds for dataset errors.
var (
	// ErrLoad marks an unreadable or unparseable source.
	ErrLoad = errors.New("dataset load failed")
	// ErrSchema marks a required column missing from the header.
	ErrSchema = errors.New("dataset schema invalid")
)
