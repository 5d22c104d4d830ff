// internal/repository/campaign_repository.go
package repository

import (
	"encoding/json"
	"strconv"
	"strings"
	"sync"
	"time"

	appErrors "github.com/unclebandit/campaign-tracker/internal/errors"
	"github.com/unclebandit/campaign-tracker/internal/model"
	"github.com/unclebandit/campaign-tracker/internal/storage"
)

type CampaignRepositoryInterface interface {
	ListByOwner(ownerEmail string) ([]model.Campaign, error)
	Create(ownerEmail string, c *model.Campaign) error
	Update(ownerEmail, id, name, status string) error
	Delete(ownerEmail, id string) error
}

// CampaignRepository stores one JSON array per owner under
// campaigns:<email>. Owners never see each other's lists.
type CampaignRepository struct {
	Storage storage.Storage
	mu      sync.Mutex
}

func ownerKey(ownerEmail string) string {
	return storage.CampaignKey(strings.ToLower(ownerEmail))
}

func (r *CampaignRepository) load(ownerEmail string) ([]model.Campaign, error) {
	raw, err := r.Storage.Get(ownerKey(ownerEmail))
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return []model.Campaign{}, nil
	}
	campaigns := []model.Campaign{}
	if err := json.Unmarshal(raw, &campaigns); err != nil {
		return nil, err
	}
	return campaigns, nil
}

func (r *CampaignRepository) save(ownerEmail string, campaigns []model.Campaign) error {
	raw, err := json.Marshal(campaigns)
	if err != nil {
		return err
	}
	return r.Storage.Set(ownerKey(ownerEmail), raw)
}

// ListByOwner returns the owner's campaigns in insertion order. An
// owner with no campaigns gets an empty slice, not an error.
func (r *CampaignRepository) ListByOwner(ownerEmail string) ([]model.Campaign, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ownerEmail)
}

// Create assigns a fresh id and appends. Id generation happens under
// the same lock as the write, so concurrent creates in the same
// millisecond still end up with distinct ids.
func (r *CampaignRepository) Create(ownerEmail string, c *model.Campaign) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	campaigns, err := r.load(ownerEmail)
	if err != nil {
		return err
	}
	c.ID = newCampaignID(campaigns)
	campaigns = append(campaigns, *c)
	return r.save(ownerEmail, campaigns)
}

// newCampaignID encodes the current unix milliseconds in base 36 and
// bumps the value until it is unique within the owner's list.
func newCampaignID(campaigns []model.Campaign) string {
	n := time.Now().UnixMilli()
	for {
		id := strconv.FormatInt(n, 36)
		if !hasCampaignID(campaigns, id) {
			return id
		}
		n++
	}
}

func hasCampaignID(campaigns []model.Campaign, id string) bool {
	for i := range campaigns {
		if campaigns[i].ID == id {
			return true
		}
	}
	return false
}

// Update sets name and status in place. An empty name keeps the old
// one; id, client and the date range never change after creation.
func (r *CampaignRepository) Update(ownerEmail, id, name, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	campaigns, err := r.load(ownerEmail)
	if err != nil {
		return err
	}
	for i := range campaigns {
		if campaigns[i].ID == id {
			if name != "" {
				campaigns[i].Name = name
			}
			campaigns[i].Status = status
			return r.save(ownerEmail, campaigns)
		}
	}
	return appErrors.NewNotFound("campaign", id)
}

func (r *CampaignRepository) Delete(ownerEmail, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	campaigns, err := r.load(ownerEmail)
	if err != nil {
		return err
	}
	for i := range campaigns {
		if campaigns[i].ID == id {
			campaigns = append(campaigns[:i], campaigns[i+1:]...)
			return r.save(ownerEmail, campaigns)
		}
	}
	return appErrors.NewNotFound("campaign", id)
}

var _ CampaignRepositoryInterface = (*CampaignRepository)(nil)
