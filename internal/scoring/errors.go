package scoring

import "errors"

var (
	// ErrModelUnavailable means the scaler or classifier failed to
	// initialize, or the classifier could not be reached.
	ErrModelUnavailable = errors.New("model or scaler unavailable")

	// ErrInvalidInput means the scoring request carried no path data.
	ErrInvalidInput = errors.New("invalid input: path is missing or empty")

	// ErrScoringTimeout means the classifier call exceeded its deadline.
	ErrScoringTimeout = errors.New("scoring timed out")
)
