package types

import "errors"

// Domain errors
var (
	// Chunk errors
	ErrInvalidChunk = errors.New("invalid chunk")
	ErrEmptyContent = errors.New("content cannot be empty")

	// Configuration errors
	ErrInvalidConfig = errors.New("invalid configuration")

	// Structural parsing
	ErrParseFailure = errors.New("syntax parse failed")

	// Pipeline errors
	ErrNotText       = errors.New("file is not text")
	ErrFileTooLarge  = errors.New("file exceeds size limit")
	ErrRunInProgress = errors.New("pipeline run already in progress")
)
