package service_test

import (
	"testing"

	"github.com/unclebandit/campaign-tracker/internal/model"
	"github.com/unclebandit/campaign-tracker/internal/repository"
	"github.com/unclebandit/campaign-tracker/internal/service"
	"github.com/unclebandit/campaign-tracker/internal/storage"
)

func newSessionFixture() (*service.SessionService, *service.AccountService, *storage.MemoryStorage) {
	store := storage.NewMemoryStorage()
	accountRepo := &repository.AccountRepository{Storage: store}
	sessions := &service.SessionService{
		SessionRepo: &repository.SessionRepository{Storage: store},
		AccountRepo: accountRepo,
	}
	accounts := &service.AccountService{AccountRepo: accountRepo}
	return sessions, accounts, store
}

func TestSessionLoginLogout(t *testing.T) {
	sessions, accounts, _ := newSessionFixture()

	if _, err := accounts.Register("Alice", "alice@example.com", "pw1", model.QuestionPet, "Rex"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	cur, err := sessions.Current()
	if err != nil {
		t.Fatalf("current failed: %v", err)
	}
	if cur != nil {
		t.Errorf("expected no session before login, got %+v", cur)
	}

	if err := sessions.Login("alice@example.com"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	cur, err = sessions.Current()
	if err != nil {
		t.Fatalf("current failed: %v", err)
	}
	if cur == nil || cur.Email != "alice@example.com" {
		t.Errorf("expected alice to be current, got %+v", cur)
	}

	if err := sessions.Logout(); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	cur, _ = sessions.Current()
	if cur != nil {
		t.Errorf("expected no session after logout, got %+v", cur)
	}
}

func TestSessionClearedAtStartup(t *testing.T) {
	sessions, accounts, store := newSessionFixture()

	if _, err := accounts.Register("Alice", "alice@example.com", "pw1", model.QuestionPet, "Rex"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	// Simulate a session value left behind by a previous run
	if err := store.Set(storage.SessionKey, []byte("alice@example.com")); err != nil {
		t.Fatalf("seed session failed: %v", err)
	}

	if err := sessions.ClearAtStartup(); err != nil {
		t.Fatalf("startup clear failed: %v", err)
	}

	cur, err := sessions.Current()
	if err != nil {
		t.Fatalf("current failed: %v", err)
	}
	if cur != nil {
		t.Errorf("expected empty session after startup, got %+v", cur)
	}
}

func TestSessionForVanishedAccount(t *testing.T) {
	sessions, _, _ := newSessionFixture()

	// Session points at an email with no backing account
	if err := sessions.Login("ghost@example.com"); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	cur, err := sessions.Current()
	if err != nil {
		t.Fatalf("current failed: %v", err)
	}
	if cur != nil {
		t.Errorf("expected nil for vanished account, got %+v", cur)
	}
}
