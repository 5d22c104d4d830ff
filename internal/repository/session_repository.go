// internal/repository/session_repository.go
package repository

import (
	"github.com/unclebandit/campaign-tracker/internal/storage"
)

type SessionRepositoryInterface interface {
	Get() (string, error)
	Set(email string) error
	Clear() error
}

// SessionRepository holds at most one value: the current account's
// email under the session key. The value is stored raw, no JSON.
type SessionRepository struct {
	Storage storage.Storage
}

func (r *SessionRepository) Get() (string, error) {
	raw, err := r.Storage.Get(storage.SessionKey)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func (r *SessionRepository) Set(email string) error {
	return r.Storage.Set(storage.SessionKey, []byte(email))
}

func (r *SessionRepository) Clear() error {
	return r.Storage.Delete(storage.SessionKey)
}

var _ SessionRepositoryInterface = (*SessionRepository)(nil)
