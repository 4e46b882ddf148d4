package persistence

import "errors"

// Sentinel kinds for persistence errors.
var (
	ErrLoad = errors.New("roster slot load failed")
	ErrSave = errors.New("roster slot save failed")
)
