package domain

import "errors"

var (
	ErrMissingProjectID          = errors.New("project ID is required (set PROJECT_ID)")
	ErrMissingRegion             = errors.New("compute region is required (set REGION_NAME)")
	ErrInvalidDisplayName        = errors.New("model display name is required")
	ErrInvalidDatasetID          = errors.New("dataset ID is required")
	ErrInvalidEvaluationID       = errors.New("model evaluation ID is required")
	ErrOverallEvaluationNotFound = errors.New("model has no overall evaluation (empty annotation spec)")

	// ErrDone is returned by iterators once the stream is exhausted.
	ErrDone = errors.New("no more items in iterator")
)
