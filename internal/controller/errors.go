// internal/controller/errors.go
package controller

import (
	"errors"
	"net/http"

	appErrors "github.com/unclebandit/campaign-tracker/internal/errors"
)

// writeError converts a service error into an HTTP status. Every core
// error is recoverable; nothing here aborts the process.
func writeError(w http.ResponseWriter, err error) {
	var (
		invalidInput  *appErrors.ErrInvalidInput
		alreadyExists *appErrors.ErrAlreadyExists
		badCreds      *appErrors.ErrInvalidCredentials
		badRange      *appErrors.ErrInvalidDateRange
		notFound      *appErrors.ErrNotFound
	)

	switch {
	case errors.As(err, &invalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.As(err, &alreadyExists):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.As(err, &badCreds):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.As(err, &badRange):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.As(err, &notFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
