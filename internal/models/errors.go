package models

import "errors"

var (
	ErrIdeaNotFound    = errors.New("idea not found")
	ErrInvalidInput    = errors.New("invalid input data")
	ErrNoUpdateFields  = errors.New("no valid fields provided for update")
	ErrUnknownCategory = errors.New("unknown category")
	ErrInvalidSort     = errors.New("invalid sort order")
	ErrInvalidPage     = errors.New("invalid pagination parameters")
)
