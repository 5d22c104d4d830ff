// internal/controller/campaign_controller.go
package controller

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/unclebandit/campaign-tracker/internal/model"
	"github.com/unclebandit/campaign-tracker/internal/service"
)

type CampaignController struct {
	CampaignService *service.CampaignService
	SessionService  *service.SessionService
}

// owner resolves the session; a nil return means the 401 has already
// been written.
func (c *CampaignController) owner(w http.ResponseWriter) *model.Account {
	account, err := c.SessionService.Current()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return nil
	}
	if account == nil {
		http.Error(w, "not logged in", http.StatusUnauthorized)
		return nil
	}
	return account
}

// ListCampaigns returns the session owner's campaigns, filtered by
// the search and status query parameters. Counts always cover the
// full list, not the filtered one.
func (c *CampaignController) ListCampaigns(w http.ResponseWriter, r *http.Request) {
	account := c.owner(w)
	if account == nil {
		return
	}

	search := r.URL.Query().Get("search")
	status := r.URL.Query().Get("status")

	campaigns, err := c.CampaignService.ListCampaigns(account.Email)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	filtered := service.FilterCampaigns(campaigns, search, status)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"data":   filtered,
		"counts": service.CountCampaigns(campaigns),
	})
}

func (c *CampaignController) CreateCampaign(w http.ResponseWriter, r *http.Request) {
	account := c.owner(w)
	if account == nil {
		return
	}

	var body struct {
		Name   string `json:"name"`
		Client string `json:"client"`
		Start  string `json:"start"`
		End    string `json:"end"`
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	campaign, err := c.CampaignService.CreateCampaign(account.Email, body.Name, body.Client, body.Start, body.End, body.Status)
	if err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(campaign)
}

func (c *CampaignController) UpdateCampaign(w http.ResponseWriter, r *http.Request) {
	account := c.owner(w)
	if account == nil {
		return
	}

	id := chi.URLParam(r, "id")

	var body struct {
		Name   string `json:"name"`
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid body", http.StatusBadRequest)
		return
	}

	if err := c.CampaignService.UpdateCampaign(account.Email, id, body.Name, body.Status); err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "campaign updated"})
}

func (c *CampaignController) DeleteCampaign(w http.ResponseWriter, r *http.Request) {
	account := c.owner(w)
	if account == nil {
		return
	}

	id := chi.URLParam(r, "id")

	if err := c.CampaignService.DeleteCampaign(account.Email, id); err != nil {
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"message": "campaign deleted"})
}
