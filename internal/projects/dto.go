package projects

import (
	"strconv"
	"time"

	"github.com/mzekry/creatorhub/internal/campaign"
	"github.com/mzekry/creatorhub/internal/participation"
	"github.com/mzekry/creatorhub/internal/user"
)

// Role is the user's relationship to a campaign
type Role string

const (
	RoleOwner     Role = "owner"
	RoleApplicant Role = "applicant"
)

// ApplicationStats aggregates a campaign's applications by status.
// The three partitions always sum to Total.
type ApplicationStats struct {
	Total    int `json:"total"`
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
}

// OwnerPayload carries the data shown to a campaign's owner in the list view
type OwnerPayload struct {
	ApplicationStats ApplicationStats `json:"application_stats"`
}

// ApplicantPayload carries the data shown to an applicant in the list view
type ApplicantPayload struct {
	Status          participation.Status `json:"application_status"`
	AppliedAt       time.Time            `json:"applied_at"`
	ApprovedAt      *time.Time           `json:"approved_at,omitempty"`
	ReviewMessage   *string              `json:"review_message,omitempty"`
	RejectionReason *string              `json:"rejection_reason,omitempty"`
}

// ProjectEntry is one campaign in a user's unified project list.
// Role selects which payload is populated; the other is always nil.
type ProjectEntry struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Summary     string          `json:"summary"`
	Description string          `json:"description"`
	Budget      float64         `json:"budget"`
	TargetViews int64           `json:"target_views"`
	PosterURL   *string         `json:"poster_url,omitempty"`
	Category    string          `json:"category"`
	Status      campaign.Status `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`

	Role      Role              `json:"user_role"`
	Owner     *OwnerPayload     `json:"owner,omitempty"`
	Applicant *ApplicantPayload `json:"applicant,omitempty"`

	// retained for deterministic ordering
	campaignID int64
}

// ProjectListResponse is the payload for the unified my-projects list
type ProjectListResponse struct {
	UserID               string          `json:"user_id"`
	TotalCampaigns       int             `json:"total_campaigns"`
	CampaignsAsOwner     int             `json:"campaigns_as_owner"`
	CampaignsAsApplicant int             `json:"campaigns_as_applicant"`
	Campaigns            []*ProjectEntry `json:"campaigns"`
	Message              string          `json:"message"`
}

// ApplicantSummary describes one applicant to a campaign's owner
type ApplicantSummary struct {
	UserID          string  `json:"user_id"`
	Username        string  `json:"username"`
	Email           string  `json:"email"`
	ProfileImageURL *string `json:"profile_image_url,omitempty"`
	Rating          float64 `json:"rating"`
	UserLevel       int     `json:"user_level"`
	IsVerified      bool    `json:"is_verified"`

	ParticipationID        string               `json:"participation_id"`
	Status                 participation.Status `json:"status"`
	AppliedAt              time.Time            `json:"applied_at"`
	ApprovedAt             *time.Time           `json:"approved_at,omitempty"`
	ReasonForParticipation string               `json:"reason_for_participation"`
	ReviewMessage          *string              `json:"review_message,omitempty"`
	RejectionReason        *string              `json:"rejection_reason,omitempty"`
}

// ApplicationDetail describes a user's own application back to them
type ApplicationDetail struct {
	ParticipationID        string               `json:"participation_id"`
	Status                 participation.Status `json:"status"`
	AppliedAt              time.Time            `json:"applied_at"`
	ApprovedAt             *time.Time           `json:"approved_at,omitempty"`
	ReasonForParticipation string               `json:"reason_for_participation"`
	ReviewMessage          *string              `json:"review_message,omitempty"`
	RejectionReason        *string              `json:"rejection_reason,omitempty"`

	CampaignOwnerID       string `json:"campaign_owner_id"`
	CampaignOwnerUsername string `json:"campaign_owner_username"`
}

// CampaignView is the role-resolved drill-down for one campaign.
// Role selects which of Applicants / Application is populated.
type CampaignView struct {
	CampaignID    string              `json:"campaign_id"`
	CampaignTitle string              `json:"campaign_title"`
	Role          Role                `json:"user_role"`
	Applicants    []*ApplicantSummary `json:"applicants,omitempty"`
	Application   *ApplicationDetail  `json:"application_details,omitempty"`
}

func newOwnerEntry(c *campaign.Campaign, stats ApplicationStats) *ProjectEntry {
	e := newEntry(c, RoleOwner)
	e.Owner = &OwnerPayload{ApplicationStats: stats}
	return e
}

func newApplicantEntry(c *campaign.Campaign, p *participation.Participation) *ProjectEntry {
	e := newEntry(c, RoleApplicant)
	e.Applicant = &ApplicantPayload{
		Status:          p.Status(),
		AppliedAt:       p.AppliedAt,
		ApprovedAt:      p.ApprovedAt,
		ReviewMessage:   p.ReviewMessage,
		RejectionReason: p.RejectionReason,
	}
	return e
}

func newEntry(c *campaign.Campaign, role Role) *ProjectEntry {
	return &ProjectEntry{
		ID:          strconv.FormatInt(c.ID, 10),
		Title:       c.Title,
		Summary:     c.Summary,
		Description: c.Description,
		Budget:      c.Budget,
		TargetViews: c.TargetViews,
		PosterURL:   c.PosterURL,
		Category:    c.Category,
		Status:      c.Status(),
		CreatedAt:   c.CreatedAt,
		Role:        role,
		campaignID:  c.ID,
	}
}

func newApplicantSummary(u *user.User, p *participation.Participation) *ApplicantSummary {
	return &ApplicantSummary{
		UserID:                 u.ID,
		Username:               u.Username,
		Email:                  u.Email,
		ProfileImageURL:        u.ProfileImageURL,
		Rating:                 u.Rating,
		UserLevel:              u.UserLevel,
		IsVerified:             u.IsVerified,
		ParticipationID:        strconv.FormatInt(p.ID, 10),
		Status:                 p.Status(),
		AppliedAt:              p.AppliedAt,
		ApprovedAt:             p.ApprovedAt,
		ReasonForParticipation: p.ReasonForParticipation,
		ReviewMessage:          p.ReviewMessage,
		RejectionReason:        p.RejectionReason,
	}
}

func newApplicationDetail(p *participation.Participation, owner *user.User) *ApplicationDetail {
	d := &ApplicationDetail{
		ParticipationID:        strconv.FormatInt(p.ID, 10),
		Status:                 p.Status(),
		AppliedAt:              p.AppliedAt,
		ApprovedAt:             p.ApprovedAt,
		ReasonForParticipation: p.ReasonForParticipation,
		ReviewMessage:          p.ReviewMessage,
		RejectionReason:        p.RejectionReason,
		CampaignOwnerUsername:  "Unknown",
	}
	if owner != nil {
		d.CampaignOwnerID = owner.ID
		d.CampaignOwnerUsername = owner.Username
	}
	return d
}
