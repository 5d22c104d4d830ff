// internal/handler/dashboard_handler.go
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/unclebandit/campaign-tracker/internal/model"
	"github.com/unclebandit/campaign-tracker/internal/service"
)

// DashboardHandler serves the one-shot dashboard payload: who is
// logged in plus their filtered campaign list and counts, so the UI
// can re-render after every mutation with a single request.
type DashboardHandler struct {
	CampaignService *service.CampaignService
	SessionService  *service.SessionService
}

type dashboardResponse struct {
	Welcome   string           `json:"welcome"`
	Email     string           `json:"email"`
	Campaigns []model.Campaign `json:"campaigns"`
	Counts    map[string]int   `json:"counts"`
}

func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	account, err := h.SessionService.Current()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if account == nil {
		http.Error(w, "not logged in", http.StatusUnauthorized)
		return
	}

	campaigns, err := h.CampaignService.ListCampaigns(account.Email)
	if err != nil {
		http.Error(w, "failed to fetch campaigns: "+err.Error(), http.StatusInternalServerError)
		return
	}

	search := r.URL.Query().Get("search")
	status := r.URL.Query().Get("status")
	filtered := service.FilterCampaigns(campaigns, search, status)

	// Counts come from the unfiltered list
	resp := dashboardResponse{
		Welcome:   "Hello, " + account.Name,
		Email:     account.Email,
		Campaigns: filtered,
		Counts:    service.CountCampaigns(campaigns),
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}
