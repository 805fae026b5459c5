package campaign

import (
	"context"
	"database/sql"
	"fmt"
)

// Repository handles campaign data access
type Repository struct {
	db *sql.DB
}

// NewRepository creates a new campaign repository with database dependency injected
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

const campaignColumns = `id, owner_id, title, summary, description, budget, target_views, poster_url, category, is_active, created_at`

func scanCampaign(row interface{ Scan(...interface{}) error }) (*Campaign, error) {
	c := &Campaign{}
	err := row.Scan(
		&c.ID,
		&c.OwnerID,
		&c.Title,
		&c.Summary,
		&c.Description,
		&c.Budget,
		&c.TargetViews,
		&c.PosterURL,
		&c.Category,
		&c.IsActive,
		&c.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// GetByID retrieves a campaign by its ID. Returns nil when no campaign exists.
func (r *Repository) GetByID(ctx context.Context, id int64) (*Campaign, error) {
	query := `
		SELECT ` + campaignColumns + `
		FROM campaigns
		WHERE id = $1
	`

	c, err := scanCampaign(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get campaign: %w", err)
	}

	return c, nil
}

// ListByOwner retrieves all campaigns created by the given user
func (r *Repository) ListByOwner(ctx context.Context, ownerID string) ([]*Campaign, error) {
	query := `
		SELECT ` + campaignColumns + `
		FROM campaigns
		WHERE owner_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}
	defer rows.Close()

	var campaigns []*Campaign
	for rows.Next() {
		c, err := scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan campaign: %w", err)
		}
		campaigns = append(campaigns, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}

	return campaigns, nil
}
