package activity

import "time"

// ActivityType represents the type of activity event
type ActivityType string

const (
	TypeCaseCreated     ActivityType = "case_created"
	TypeCaseSeeded      ActivityType = "case_seeded"
	TypeVariantSelected ActivityType = "variant_selected"
)

// ActivityEntry represents an event in a workspace's activity log
type ActivityEntry struct {
	ID           int64        `json:"id"`
	WorkspaceID  string       `json:"workspace_id"`
	CaseID       *string      `json:"case_id,omitempty"`
	VariantID    string       `json:"variant_id,omitempty"`
	ActivityType ActivityType `json:"type"`
	Summary      string       `json:"summary"`
	CreatedAt    time.Time    `json:"created_at"`
}
