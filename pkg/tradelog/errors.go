package tradelog

import "errors"

var (
	// ErrDuplicateIdx is returned when two rows share the same idx.
	ErrDuplicateIdx = errors.New("duplicate row idx")

	// ErrNegativeIdx is returned when a row carries a negative idx.
	ErrNegativeIdx = errors.New("negative row idx")

	// ErrMissingColumn is returned when the CSV header lacks a required column.
	ErrMissingColumn = errors.New("missing required column")

	// ErrEmptyInput is returned when the CSV input has no header row.
	ErrEmptyInput = errors.New("empty input")

	// ErrReadingInput is returned when the CSV input cannot be read.
	ErrReadingInput = errors.New("failed to read input")
)
