package service_test

import (
	"errors"
	"testing"

	appErrors "github.com/unclebandit/campaign-tracker/internal/errors"
	"github.com/unclebandit/campaign-tracker/internal/model"
	"github.com/unclebandit/campaign-tracker/internal/repository"
	"github.com/unclebandit/campaign-tracker/internal/service"
	"github.com/unclebandit/campaign-tracker/internal/storage"
)

func newCampaignService() *service.CampaignService {
	repo := &repository.CampaignRepository{Storage: storage.NewMemoryStorage()}
	return &service.CampaignService{CampaignRepo: repo}
}

const owner = "alice@example.com"

func TestCreateAndListCampaigns(t *testing.T) {
	svc := newCampaignService()

	c, err := svc.CreateCampaign(owner, "Summer Push", "Acme", "2025-07-01", "2025-07-31", model.StatusActive)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if c.ID == "" {
		t.Error("expected a generated id")
	}

	list, err := svc.ListCampaigns(owner)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 1 || list[0].Name != "Summer Push" {
		t.Errorf("unexpected list %+v", list)
	}
}

func TestListUnknownOwnerIsEmpty(t *testing.T) {
	svc := newCampaignService()

	list, err := svc.ListCampaigns("nobody@example.com")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("expected empty list, got %+v", list)
	}
}

func TestCreateRejectsInvalidDateRange(t *testing.T) {
	svc := newCampaignService()

	_, err := svc.CreateCampaign(owner, "Backwards", "Acme", "2025-06-10", "2025-06-01", model.StatusActive)
	var badRange *appErrors.ErrInvalidDateRange
	if !errors.As(err, &badRange) {
		t.Fatalf("expected invalid date range, got %v", err)
	}

	list, _ := svc.ListCampaigns(owner)
	if len(list) != 0 {
		t.Errorf("store must be unchanged after rejected create, got %+v", list)
	}
}

func TestCreateAllowsOpenEndedDates(t *testing.T) {
	svc := newCampaignService()

	// end >= start is only checked when both are present
	if _, err := svc.CreateCampaign(owner, "No End", "Acme", "2025-06-10", "", model.StatusActive); err != nil {
		t.Errorf("open-ended campaign rejected: %v", err)
	}
	if _, err := svc.CreateCampaign(owner, "No Dates", "Acme", "", "", model.StatusActive); err != nil {
		t.Errorf("dateless campaign rejected: %v", err)
	}
	if _, err := svc.CreateCampaign(owner, "Same Day", "Acme", "2025-06-10", "2025-06-10", model.StatusActive); err != nil {
		t.Errorf("same-day campaign rejected: %v", err)
	}
}

func TestCreateRejectsMalformedDates(t *testing.T) {
	svc := newCampaignService()

	_, err := svc.CreateCampaign(owner, "Bad", "Acme", "07/01/2025", "", model.StatusActive)
	var invalid *appErrors.ErrInvalidInput
	if !errors.As(err, &invalid) {
		t.Errorf("expected invalid input for malformed date, got %v", err)
	}
}

func TestCampaignIDsUniquePerOwner(t *testing.T) {
	svc := newCampaignService()

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		c, err := svc.CreateCampaign(owner, "C", "Acme", "", "", model.StatusActive)
		if err != nil {
			t.Fatalf("create failed: %v", err)
		}
		if seen[c.ID] {
			t.Fatalf("duplicate id %s", c.ID)
		}
		seen[c.ID] = true
	}
}

func TestUpdateCampaign(t *testing.T) {
	svc := newCampaignService()

	c, err := svc.CreateCampaign(owner, "Summer Push", "Acme", "2025-07-01", "2025-07-31", model.StatusActive)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	if err := svc.UpdateCampaign(owner, c.ID, "Summer Blast", model.StatusPaused); err != nil {
		t.Fatalf("update failed: %v", err)
	}

	list, _ := svc.ListCampaigns(owner)
	got := list[0]
	if got.Name != "Summer Blast" || got.Status != model.StatusPaused {
		t.Errorf("update not applied: %+v", got)
	}
	// client and dates are immutable after creation
	if got.Client != "Acme" || got.Start != "2025-07-01" || got.End != "2025-07-31" || got.ID != c.ID {
		t.Errorf("immutable fields changed: %+v", got)
	}

	// Blank name keeps the old one, status still updates
	if err := svc.UpdateCampaign(owner, c.ID, "   ", model.StatusCompleted); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	list, _ = svc.ListCampaigns(owner)
	if list[0].Name != "Summer Blast" || list[0].Status != model.StatusCompleted {
		t.Errorf("blank-name update wrong: %+v", list[0])
	}
}

func TestUpdateMissingCampaign(t *testing.T) {
	svc := newCampaignService()

	err := svc.UpdateCampaign(owner, "nope", "X", model.StatusActive)
	var notFound *appErrors.ErrNotFound
	if !errors.As(err, &notFound) {
		t.Errorf("expected not found, got %v", err)
	}
}

func TestDeleteCampaign(t *testing.T) {
	svc := newCampaignService()

	c1, _ := svc.CreateCampaign(owner, "One", "Acme", "", "", model.StatusActive)
	c2, _ := svc.CreateCampaign(owner, "Two", "Acme", "", "", model.StatusPaused)

	if err := svc.DeleteCampaign(owner, c1.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	list, _ := svc.ListCampaigns(owner)
	if len(list) != 1 || list[0].ID != c2.ID {
		t.Errorf("expected only %s to remain, got %+v", c2.ID, list)
	}
}

func TestDeleteMissingCampaignLeavesListUntouched(t *testing.T) {
	svc := newCampaignService()

	c, _ := svc.CreateCampaign(owner, "Keeper", "Acme", "", "", model.StatusActive)

	err := svc.DeleteCampaign(owner, "nope")
	var notFound *appErrors.ErrNotFound
	if !errors.As(err, &notFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	list, _ := svc.ListCampaigns(owner)
	if len(list) != 1 || list[0].ID != c.ID || list[0].Name != "Keeper" {
		t.Errorf("list changed after failed delete: %+v", list)
	}
}

func TestCampaignsIsolatedPerOwner(t *testing.T) {
	svc := newCampaignService()

	if _, err := svc.CreateCampaign("alice@example.com", "Alice Camp", "Acme", "", "", model.StatusActive); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.CreateCampaign("bob@example.com", "Bob Camp", "Globex", "", "", model.StatusActive); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	aliceList, _ := svc.ListCampaigns("alice@example.com")
	bobList, _ := svc.ListCampaigns("bob@example.com")
	if len(aliceList) != 1 || aliceList[0].Name != "Alice Camp" {
		t.Errorf("alice sees %+v", aliceList)
	}
	if len(bobList) != 1 || bobList[0].Name != "Bob Camp" {
		t.Errorf("bob sees %+v", bobList)
	}
}
