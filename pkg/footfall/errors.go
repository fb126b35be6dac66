package footfall

import "errors"

var (
	// ErrStoreNotFound covers absent, inactive and foreign stores alike,
	// so callers cannot probe for another account's store IDs.
	ErrStoreNotFound = errors.New("store not found")

	// ErrAlertStateConflict is returned when an acknowledge/resolve
	// transition finds the alert missing or already past that state.
	ErrAlertStateConflict = errors.New("alert not found or not in a transitionable state")
)
