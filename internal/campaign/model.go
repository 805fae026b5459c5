package campaign

import "time"

// Status is the externally visible campaign status
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Campaign represents a brand campaign that creators can apply to
type Campaign struct {
	ID          int64     `json:"id"`
	OwnerID     string    `json:"owner_id"`
	Title       string    `json:"title"`
	Summary     string    `json:"summary"`
	Description string    `json:"description"`
	Budget      float64   `json:"budget"`
	TargetViews int64     `json:"target_views"`
	PosterURL   *string   `json:"poster_url,omitempty"`
	Category    string    `json:"category"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

// Status derives the visible status from the active flag
func (c *Campaign) Status() Status {
	if c.IsActive {
		return StatusActive
	}
	return StatusInactive
}
