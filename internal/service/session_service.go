// internal/service/session_service.go
package service

import (
	"github.com/unclebandit/campaign-tracker/internal/model"
	"github.com/unclebandit/campaign-tracker/internal/repository"
)

type SessionService struct {
	SessionRepo repository.SessionRepositoryInterface
	AccountRepo repository.AccountRepositoryInterface
}

// Login records the email as the current session. Callers must have
// authenticated first.
func (s *SessionService) Login(email string) error {
	return s.SessionRepo.Set(email)
}

func (s *SessionService) Logout() error {
	return s.SessionRepo.Clear()
}

// Current resolves the session against the account store. A missing
// session and a session pointing at a vanished account both yield nil.
func (s *SessionService) Current() (*model.Account, error) {
	email, err := s.SessionRepo.Get()
	if err != nil {
		return nil, err
	}
	if email == "" {
		return nil, nil
	}
	return s.AccountRepo.FindByEmail(email)
}

// ClearAtStartup drops any session a previous run left behind. Called
// exactly once before the server starts handling requests, so a stale
// logged-in view can never reappear across restarts.
func (s *SessionService) ClearAtStartup() error {
	return s.SessionRepo.Clear()
}
