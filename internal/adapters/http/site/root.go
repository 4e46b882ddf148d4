// Package site serves the embedded roster form UI.
package site

import (
	"context"
	"errors"
	"net/http"
)

// Error constants
var (
	ErrServe = errors.New("site serve failed")
)

// Register attaches the embedded form UI to mux at the root path. The
// page is the form/notification collaborator of the engine: it
// collects a date plus one to three names, renders outcomes, and asks
// for confirmation before backup merges and deletions.
func Register(_ context.Context, mux *http.ServeMux) {
	if mux == nil {
		panic("mux is nil")
	}
	mux.Handle("/", http.FileServer(FS()))
}
