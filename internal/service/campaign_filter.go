// internal/service/campaign_filter.go
package service

import (
	"strings"

	"github.com/unclebandit/campaign-tracker/internal/model"
)

// FilterCampaigns narrows a campaign list by status and search text,
// preserving the input order. A non-empty statusFilter must match the
// status exactly. The search text is trimmed, lowercased and split on
// whitespace; a campaign stays in only if every token matches the
// name or the client. A token matches as a prefix of one of the
// field's words or as a substring of the whole field; the substring
// check subsumes the prefix one, both are kept deliberately.
func FilterCampaigns(campaigns []model.Campaign, searchText, statusFilter string) []model.Campaign {
	search := strings.ToLower(strings.TrimSpace(searchText))

	out := []model.Campaign{}
	for _, c := range campaigns {
		if statusFilter != "" && c.Status != statusFilter {
			continue
		}
		if search == "" {
			out = append(out, c)
			continue
		}

		name := strings.ToLower(c.Name)
		client := strings.ToLower(c.Client)
		nameWords := strings.Fields(name)
		clientWords := strings.Fields(client)

		match := true
		for _, token := range strings.Fields(search) {
			if anyWordHasPrefix(nameWords, token) ||
				anyWordHasPrefix(clientWords, token) ||
				strings.Contains(name, token) ||
				strings.Contains(client, token) {
				continue
			}
			match = false
			break
		}
		if match {
			out = append(out, c)
		}
	}
	return out
}

func anyWordHasPrefix(words []string, prefix string) bool {
	for _, w := range words {
		if strings.HasPrefix(w, prefix) {
			return true
		}
	}
	return false
}

// CountCampaigns reports total, active and paused counts. Completed
// campaigns count toward the total only. Status comparison is
// case-sensitive against the canonical values.
func CountCampaigns(campaigns []model.Campaign) map[string]int {
	counts := map[string]int{
		"total":  len(campaigns),
		"active": 0,
		"paused": 0,
	}
	for i := range campaigns {
		switch campaigns[i].Status {
		case model.StatusActive:
			counts["active"]++
		case model.StatusPaused:
			counts["paused"]++
		}
	}
	return counts
}
