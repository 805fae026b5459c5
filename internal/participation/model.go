package participation

import "time"

// Status is the reviewed state of an application
type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// Participation is a creator's application to a campaign
type Participation struct {
	ID                     int64      `json:"id"`
	UserID                 string     `json:"user_id"`
	CampaignID             int64      `json:"campaign_id"`
	ReasonForParticipation string     `json:"reason_for_participation"`
	IsPending              bool       `json:"is_pending"`
	IsApproved             bool       `json:"is_approved"`
	ReviewMessage          *string    `json:"review_message,omitempty"`
	RejectionReason        *string    `json:"rejection_reason,omitempty"`
	AppliedAt              time.Time  `json:"applied_at"`
	ApprovedAt             *time.Time `json:"approved_at,omitempty"`
}

// Status derives the single application state from the two stored flags.
// Pending is checked first: a row with both flags set is still pending.
func (p *Participation) Status() Status {
	if p.IsPending {
		return StatusPending
	}
	if p.IsApproved {
		return StatusApproved
	}
	return StatusRejected
}
