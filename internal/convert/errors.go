package convert

import "errors"

var (
	// ErrSourceNotFound is returned when the source tree has no rules directory.
	ErrSourceNotFound = errors.New("source not found")

	// ErrAlreadyExists is returned when a destination output root already holds
	// files and overwrite was not requested.
	ErrAlreadyExists = errors.New("already exists")
)
