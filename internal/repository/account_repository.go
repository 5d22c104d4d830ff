// internal/repository/account_repository.go
package repository

import (
	"encoding/json"
	"strings"
	"sync"

	appErrors "github.com/unclebandit/campaign-tracker/internal/errors"
	"github.com/unclebandit/campaign-tracker/internal/model"
	"github.com/unclebandit/campaign-tracker/internal/storage"
)

type AccountRepositoryInterface interface {
	All() ([]model.Account, error)
	FindByEmail(email string) (*model.Account, error)
	Create(a model.Account) error
	UpdatePassword(email, newPassword string) error
}

// AccountRepository stores the full account list as one JSON array
// under the accounts key. The mutex keeps each read-modify-write
// whole when handlers run concurrently.
type AccountRepository struct {
	Storage storage.Storage
	mu      sync.Mutex
}

func (r *AccountRepository) load() ([]model.Account, error) {
	raw, err := r.Storage.Get(storage.AccountsKey)
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []model.Account{}, nil
	}
	accounts := []model.Account{}
	if err := json.Unmarshal(raw, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

func (r *AccountRepository) save(accounts []model.Account) error {
	raw, err := json.Marshal(accounts)
	if err != nil {
		return err
	}
	return r.Storage.Set(storage.AccountsKey, raw)
}

func (r *AccountRepository) All() ([]model.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// FindByEmail matches case-insensitively and returns nil (not an
// error) when no account matches or the email is empty.
func (r *AccountRepository) FindByEmail(email string) (*model.Account, error) {
	if email == "" {
		return nil, nil
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	accounts, err := r.load()
	if err != nil {
		return nil, err
	}
	want := strings.ToLower(email)
	for i := range accounts {
		if strings.ToLower(accounts[i].Email) == want {
			a := accounts[i]
			return &a, nil
		}
	}
	return nil, nil
}

// Create appends the account, keeping the insertion order of all
// existing accounts. The duplicate check happens here, under the same
// lock as the write, so two concurrent registrations of one email
// cannot both slip past it.
func (r *AccountRepository) Create(a model.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	accounts, err := r.load()
	if err != nil {
		return err
	}
	want := strings.ToLower(a.Email)
	for i := range accounts {
		if strings.ToLower(accounts[i].Email) == want {
			return appErrors.NewAlreadyExists(a.Email)
		}
	}
	accounts = append(accounts, a)
	return r.save(accounts)
}

// UpdatePassword overwrites the password of the matching account in
// place; every other field keeps its stored value.
func (r *AccountRepository) UpdatePassword(email, newPassword string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	accounts, err := r.load()
	if err != nil {
		return err
	}
	want := strings.ToLower(email)
	for i := range accounts {
		if strings.ToLower(accounts[i].Email) == want {
			accounts[i].Password = newPassword
			return r.save(accounts)
		}
	}
	return appErrors.NewNotFound("account", email)
}

var _ AccountRepositoryInterface = (*AccountRepository)(nil)
