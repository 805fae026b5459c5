package projects

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"

	"github.com/mzekry/creatorhub/internal/campaign"
	"github.com/mzekry/creatorhub/internal/participation"
	"github.com/mzekry/creatorhub/internal/user"
)

// Common errors
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrNoRelationship   = errors.New("user has no relationship with campaign")
)

// UserStore resolves users by primary key
type UserStore interface {
	GetByID(ctx context.Context, id string) (*user.User, error)
}

// CampaignStore resolves campaigns by primary key and by owner
type CampaignStore interface {
	GetByID(ctx context.Context, id int64) (*campaign.Campaign, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*campaign.Campaign, error)
}

// ParticipationStore resolves applications by campaign, by user, and by the pair
type ParticipationStore interface {
	ListByCampaign(ctx context.Context, campaignID int64) ([]*participation.Participation, error)
	ListByUser(ctx context.Context, userID string) ([]*participation.Participation, error)
	GetByCampaignAndUser(ctx context.Context, campaignID int64, userID string) (*participation.Participation, error)
}

// Service aggregates a user's owned and applied-to campaigns into one view
type Service struct {
	users          UserStore
	campaigns      CampaignStore
	participations ParticipationStore
}

// NewService creates a new projects service with stores injected
func NewService(users UserStore, campaigns CampaignStore, participations ParticipationStore) *Service {
	return &Service{users: users, campaigns: campaigns, participations: participations}
}

// GetUserProjects returns every campaign the user created or applied to,
// tagged with the user's role per campaign. A campaign the user both owns
// and applied to appears once, as an owner entry.
func (s *Service) GetUserProjects(ctx context.Context, userID string) (*ProjectListResponse, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	var entries []*ProjectEntry

	owned, err := s.campaigns.ListByOwner(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, c := range owned {
		applications, err := s.participations.ListByCampaign(ctx, c.ID)
		if err != nil {
			return nil, err
		}
		entries = append(entries, newOwnerEntry(c, computeStats(applications)))
	}

	applications, err := s.participations.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for _, p := range applications {
		c, err := s.campaigns.GetByID(ctx, p.CampaignID)
		if err != nil {
			return nil, err
		}
		if c == nil {
			// dangling campaign reference; nothing to show
			continue
		}
		// Ownership takes precedence: the campaign was already emitted as
		// an owner entry above, and must not appear a second time.
		if c.OwnerID == userID {
			continue
		}
		entries = append(entries, newApplicantEntry(c, p))
	}

	// Most recently created campaign first; campaign id breaks ties so the
	// order is deterministic.
	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].CreatedAt.Equal(entries[j].CreatedAt) {
			return entries[i].CreatedAt.After(entries[j].CreatedAt)
		}
		return entries[i].campaignID > entries[j].campaignID
	})

	ownerCount := 0
	for _, e := range entries {
		if e.Role == RoleOwner {
			ownerCount++
		}
	}

	if entries == nil {
		entries = []*ProjectEntry{}
	}

	return &ProjectListResponse{
		UserID:               userID,
		TotalCampaigns:       len(entries),
		CampaignsAsOwner:     ownerCount,
		CampaignsAsApplicant: len(entries) - ownerCount,
		Campaigns:            entries,
		Message:              fmt.Sprintf("Found %d campaigns for user %s", len(entries), userID),
	}, nil
}

// GetCampaignView resolves the caller's role for one campaign and returns the
// matching drill-down. Ownership takes precedence over participation: an
// owner always gets the applicant list, even if they also hold an
// application record for their own campaign.
func (s *Service) GetCampaignView(ctx context.Context, userID string, campaignID int64) (*CampaignView, error) {
	c, err := s.campaigns.GetByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, ErrCampaignNotFound
	}

	if c.OwnerID == userID {
		return s.ownerView(ctx, c)
	}

	p, err := s.participations.GetByCampaignAndUser(ctx, campaignID, userID)
	if err != nil {
		return nil, err
	}
	if p != nil {
		return s.applicantView(ctx, c, p)
	}

	return nil, ErrNoRelationship
}

func (s *Service) ownerView(ctx context.Context, c *campaign.Campaign) (*CampaignView, error) {
	applications, err := s.participations.ListByCampaign(ctx, c.ID)
	if err != nil {
		return nil, err
	}

	applicants := []*ApplicantSummary{}
	for _, p := range applications {
		u, err := s.users.GetByID(ctx, p.UserID)
		if err != nil {
			return nil, err
		}
		if u == nil {
			// applicant account no longer resolvable; skip the row
			continue
		}
		applicants = append(applicants, newApplicantSummary(u, p))
	}

	sort.Slice(applicants, func(i, j int) bool {
		if !applicants[i].AppliedAt.Equal(applicants[j].AppliedAt) {
			return applicants[i].AppliedAt.After(applicants[j].AppliedAt)
		}
		return applicants[i].ParticipationID > applicants[j].ParticipationID
	})

	return &CampaignView{
		CampaignID:    strconv.FormatInt(c.ID, 10),
		CampaignTitle: c.Title,
		Role:          RoleOwner,
		Applicants:    applicants,
	}, nil
}

func (s *Service) applicantView(ctx context.Context, c *campaign.Campaign, p *participation.Participation) (*CampaignView, error) {
	owner, err := s.users.GetByID(ctx, c.OwnerID)
	if err != nil {
		return nil, err
	}
	// A nil owner falls back to the placeholder identity inside
	// newApplicationDetail rather than failing the whole view.

	return &CampaignView{
		CampaignID:    strconv.FormatInt(c.ID, 10),
		CampaignTitle: c.Title,
		Role:          RoleApplicant,
		Application:   newApplicationDetail(p, owner),
	}, nil
}

// computeStats classifies every application by its derived status, so the
// three partitions are exclusive and always sum to Total.
func computeStats(applications []*participation.Participation) ApplicationStats {
	stats := ApplicationStats{Total: len(applications)}
	for _, p := range applications {
		switch p.Status() {
		case participation.StatusPending:
			stats.Pending++
		case participation.StatusApproved:
			stats.Approved++
		case participation.StatusRejected:
			stats.Rejected++
		}
	}
	return stats
}
