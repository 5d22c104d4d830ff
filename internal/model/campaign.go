// internal/model/campaign.go
package model

// Campaign lifecycle statuses. Comparison is case-sensitive against
// these canonical values.
const (
	StatusActive    = "Active"
	StatusPaused    = "Paused"
	StatusCompleted = "Completed"
)

type Campaign struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Client string `json:"client"`
	Start  string `json:"start"` // YYYY-MM-DD, may be empty
	End    string `json:"end"`   // YYYY-MM-DD, may be empty
	Status string `json:"status"`
}
