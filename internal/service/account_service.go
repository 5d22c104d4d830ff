// internal/service/account_service.go
package service

import (
	"strings"

	appErrors "github.com/unclebandit/campaign-tracker/internal/errors"
	"github.com/unclebandit/campaign-tracker/internal/model"
	"github.com/unclebandit/campaign-tracker/internal/repository"
)

type AccountService struct {
	AccountRepo repository.AccountRepositoryInterface
}

// Register creates a new account. Name, email and the security answer
// are stored trimmed; the password is stored exactly as typed. The
// email keeps its original casing, uniqueness is case-insensitive.
func (s *AccountService) Register(name, email, password, securityQuestion, securityAnswer string) (*model.Account, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	securityAnswer = strings.TrimSpace(securityAnswer)

	if name == "" {
		return nil, appErrors.NewInvalidInput("name")
	}
	if email == "" {
		return nil, appErrors.NewInvalidInput("email")
	}
	if strings.TrimSpace(password) == "" {
		return nil, appErrors.NewInvalidInput("password")
	}
	if securityAnswer == "" {
		return nil, appErrors.NewInvalidInput("security answer")
	}

	a := model.Account{
		Name:             name,
		Email:            email,
		Password:         password,
		SecurityQuestion: securityQuestion,
		SecurityAnswer:   securityAnswer,
	}
	// The repository rejects a duplicate email under its own lock
	if err := s.AccountRepo.Create(a); err != nil {
		return nil, err
	}
	return &a, nil
}

// FindByEmail is a case-insensitive lookup; nil means no match.
func (s *AccountService) FindByEmail(email string) (*model.Account, error) {
	return s.AccountRepo.FindByEmail(strings.TrimSpace(email))
}

// Authenticate returns the same error for an unknown email and a
// wrong password so callers cannot tell which part failed.
func (s *AccountService) Authenticate(email, password string) (*model.Account, error) {
	a, err := s.AccountRepo.FindByEmail(strings.TrimSpace(email))
	if err != nil {
		return nil, err
	}
	if a == nil || a.Password != password {
		return nil, appErrors.NewInvalidCredentials()
	}
	return a, nil
}

// ResetPassword overwrites the stored password in place.
func (s *AccountService) ResetPassword(email, newPassword string) error {
	return s.AccountRepo.UpdatePassword(strings.TrimSpace(email), newPassword)
}

// SecurityQuestion resolves the account's stored question key to its
// display text for the forgot-password flow.
func (s *AccountService) SecurityQuestion(email string) (string, error) {
	a, err := s.AccountRepo.FindByEmail(strings.TrimSpace(email))
	if err != nil {
		return "", err
	}
	if a == nil {
		return "", appErrors.NewNotFound("account", email)
	}
	return QuestionText(a.SecurityQuestion), nil
}

// ResetPasswordWithAnswer commits the forgot-password flow. The answer
// is compared trimmed and case-insensitively; a mismatch reports the
// same undifferentiated credentials error as a failed login.
func (s *AccountService) ResetPasswordWithAnswer(email, answer, newPassword string) error {
	if strings.TrimSpace(newPassword) == "" {
		return appErrors.NewInvalidInput("new password")
	}

	a, err := s.AccountRepo.FindByEmail(strings.TrimSpace(email))
	if err != nil {
		return err
	}
	if a == nil {
		return appErrors.NewNotFound("account", email)
	}
	if !strings.EqualFold(strings.TrimSpace(answer), a.SecurityAnswer) {
		return appErrors.NewInvalidCredentials()
	}
	return s.AccountRepo.UpdatePassword(a.Email, newPassword)
}

// QuestionText maps a security question key to its display text.
func QuestionText(key string) string {
	switch key {
	case model.QuestionPet:
		return "What is your first pet's name?"
	case model.QuestionCity:
		return "What city were you born in?"
	case model.QuestionSchool:
		return "What is your elementary school's name?"
	default:
		return "Security question"
	}
}
