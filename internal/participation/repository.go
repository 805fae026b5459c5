package participation

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository handles participation data access
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new participation repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const participationColumns = `id, user_id, campaign_id, reason_for_participation, is_pending, is_approved, review_message, rejection_reason, applied_at, approved_at`

func scanParticipation(row interface{ Scan(...interface{}) error }) (*Participation, error) {
	p := &Participation{}
	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.CampaignID,
		&p.ReasonForParticipation,
		&p.IsPending,
		&p.IsApproved,
		&p.ReviewMessage,
		&p.RejectionReason,
		&p.AppliedAt,
		&p.ApprovedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// ListByCampaign retrieves all applications submitted to a campaign
func (r *Repository) ListByCampaign(ctx context.Context, campaignID int64) ([]*Participation, error) {
	query := `
		SELECT ` + participationColumns + `
		FROM campaign_participations
		WHERE campaign_id = $1
		ORDER BY applied_at DESC
	`
	return r.list(ctx, query, campaignID)
}

// ListByUser retrieves all applications submitted by a user
func (r *Repository) ListByUser(ctx context.Context, userID string) ([]*Participation, error) {
	query := `
		SELECT ` + participationColumns + `
		FROM campaign_participations
		WHERE user_id = $1
		ORDER BY applied_at DESC
	`
	return r.list(ctx, query, userID)
}

// GetByCampaignAndUser retrieves a user's application to a campaign.
// Returns nil when the user never applied.
func (r *Repository) GetByCampaignAndUser(ctx context.Context, campaignID int64, userID string) (*Participation, error) {
	query := `
		SELECT ` + participationColumns + `
		FROM campaign_participations
		WHERE campaign_id = $1 AND user_id = $2
	`

	p, err := scanParticipation(r.db.QueryRowContext(ctx, query, campaignID, userID))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get participation: %w", err)
	}

	return p, nil
}

func (r *Repository) list(ctx context.Context, query string, arg interface{}) ([]*Participation, error) {
	rows, err := r.db.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to list participations: %w", err)
	}
	defer rows.Close()

	var participations []*Participation
	for rows.Next() {
		p, err := scanParticipation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan participation: %w", err)
		}
		participations = append(participations, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list participations: %w", err)
	}

	return participations, nil
}
