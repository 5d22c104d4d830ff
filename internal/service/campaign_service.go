// internal/service/campaign_service.go
package service

import (
	"strings"
	"time"

	appErrors "github.com/unclebandit/campaign-tracker/internal/errors"
	"github.com/unclebandit/campaign-tracker/internal/model"
	"github.com/unclebandit/campaign-tracker/internal/repository"
)

const dateLayout = "2006-01-02"

type CampaignService struct {
	CampaignRepo repository.CampaignRepositoryInterface
}

// ListCampaigns returns the owner's campaigns in insertion order.
func (s *CampaignService) ListCampaigns(ownerEmail string) ([]model.Campaign, error) {
	return s.CampaignRepo.ListByOwner(ownerEmail)
}

// CreateCampaign validates the date range and appends a new campaign
// with a fresh id. Dates are optional; when both are present the end
// must not come before the start. On any error nothing is written.
func (s *CampaignService) CreateCampaign(ownerEmail, name, client, start, end, status string) (*model.Campaign, error) {
	name = strings.TrimSpace(name)
	client = strings.TrimSpace(client)

	if start != "" {
		if _, err := time.Parse(dateLayout, start); err != nil {
			return nil, appErrors.NewInvalidInput("start date")
		}
	}
	if end != "" {
		if _, err := time.Parse(dateLayout, end); err != nil {
			return nil, appErrors.NewInvalidInput("end date")
		}
	}
	// ISO dates compare correctly as strings
	if start != "" && end != "" && end < start {
		return nil, appErrors.NewInvalidDateRange(start, end)
	}

	c := model.Campaign{
		Name:   name,
		Client: client,
		Start:  start,
		End:    end,
		Status: status,
	}
	// The repository assigns the id under its own lock
	if err := s.CampaignRepo.Create(ownerEmail, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// UpdateCampaign changes name and status only. A name that is empty
// after trimming keeps the old name.
func (s *CampaignService) UpdateCampaign(ownerEmail, id, newName, newStatus string) error {
	return s.CampaignRepo.Update(ownerEmail, id, strings.TrimSpace(newName), newStatus)
}

func (s *CampaignService) DeleteCampaign(ownerEmail, id string) error {
	return s.CampaignRepo.Delete(ownerEmail, id)
}
