package trips

import "errors"

var (
	// ErrDataAccess means the source for a city could not be opened or read.
	ErrDataAccess = errors.New("data source unavailable")
	// ErrSchema means the source was readable but does not look like trip data.
	ErrSchema = errors.New("unexpected data layout")
)
