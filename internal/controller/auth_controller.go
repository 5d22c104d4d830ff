// internal/controller/auth_controller.go
package controller

import (
	"encoding/json"
	"net/http"

	"github.com/unclebandit/campaign-tracker/internal/model"
	"github.com/unclebandit/campaign-tracker/internal/service"
)

type AuthController struct {
	AccountService *service.AccountService
	SessionService *service.SessionService
}

// accountResponse leaves the password and security answer out of
// every reply.
type accountResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

func toAccountResponse(a *model.Account) accountResponse {
	return accountResponse{Name: a.Name, Email: a.Email}
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name             string `json:"name"`
		Email            string `json:"email"`
		Password         string `json:"password"`
		SecurityQuestion string `json:"security_question"`
		SecurityAnswer   string `json:"security_answer"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	account, err := c.AccountService.Register(body.Name, body.Email, body.Password, body.SecurityQuestion, body.SecurityAnswer)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(toAccountResponse(account))
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	account, err := c.AccountService.Authenticate(body.Email, body.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	// Session keeps the stored casing of the email, not the typed one
	if err := c.SessionService.Login(account.Email); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toAccountResponse(account))
}

func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if err := c.SessionService.Logout(); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "logged out"})
}

func (c *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	account, err := c.SessionService.Current()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if account == nil {
		http.Error(w, "not logged in", http.StatusUnauthorized)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(toAccountResponse(account))
}

// Forgot is step one of password recovery: look up the account and
// hand back its security question text.
func (c *AuthController) Forgot(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	question, err := c.AccountService.SecurityQuestion(body.Email)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"question": question})
}

// Reset is step two: verify the answer and overwrite the password.
func (c *AuthController) Reset(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Email       string `json:"email"`
		Answer      string `json:"answer"`
		NewPassword string `json:"new_password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	if err := c.AccountService.ResetPasswordWithAnswer(body.Email, body.Answer, body.NewPassword); err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "password reset"})
}
