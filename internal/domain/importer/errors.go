package importer

import "errors"

var (
	ErrEmptyInput      = errors.New("empty input")
	ErrMissingColumn   = errors.New("missing required column: name")
	ErrNoRows          = errors.New("no parseable rows")
	ErrInvalidFileType = errors.New("invalid file format, upload a CSV file")
	ErrFileTooLarge    = errors.New("file exceeds the 2MB limit")
	ErrMissingAPIKey   = errors.New("AI API key is not configured")
	ErrExternalService = errors.New("failed to parse employee data using AI")
)
