package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"signage-ads/internal/core/domain"
	"signage-ads/internal/core/port"
)

// FeedRepository implements port.FeedRepository using pgxpool. All time
// predicates are evaluated against the asOf parameter rather than the
// database clock so one resolution sees one consistent instant.
type FeedRepository struct {
	pool *pgxpool.Pool
}

// NewFeedRepository returns a new repository instance.
func NewFeedRepository(pool *pgxpool.Pool) *FeedRepository {
	return &FeedRepository{pool: pool}
}

// GetVisibleCampaigns returns eligible campaigns visible to the display.
// A campaign with no targeting rows is global; with rows it must list the
// display. Ordering interleaves scheduled and unscheduled campaigns by
// coalesce(scheduled_from, created_at).
func (r *FeedRepository) GetVisibleCampaigns(ctx context.Context, displayID int, asOf time.Time, limit int) ([]domain.Campaign, error) {
	query := `
        SELECT c.id, c.user_id, c.title, c.file_url, c.status,
               c.scheduled_from, c.scheduled_to, c.created_at
        FROM campaigns c
        WHERE c.status = 'approved'
          AND (c.scheduled_from IS NULL OR c.scheduled_from <= $2)
          AND (c.scheduled_to   IS NULL OR c.scheduled_to   >= $2)
          AND (
              NOT EXISTS (SELECT 1 FROM campaign_displays t WHERE t.campaign_id = c.id)
              OR EXISTS (SELECT 1 FROM campaign_displays t WHERE t.campaign_id = c.id AND t.display_id = $1)
          )
        ORDER BY COALESCE(c.scheduled_from, c.created_at) ASC
        LIMIT $3`
	rows, err := r.pool.Query(ctx, query, displayID, asOf, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanFeedCampaign)
}

// GetEligibleCampaigns is the degraded-mode query: approval + schedule only,
// no targeting join.
func (r *FeedRepository) GetEligibleCampaigns(ctx context.Context, asOf time.Time, limit int) ([]domain.Campaign, error) {
	query := `
        SELECT c.id, c.user_id, c.title, c.file_url, c.status,
               c.scheduled_from, c.scheduled_to, c.created_at
        FROM campaigns c
        WHERE c.status = 'approved'
          AND (c.scheduled_from IS NULL OR c.scheduled_from <= $1)
          AND (c.scheduled_to   IS NULL OR c.scheduled_to   >= $1)
        ORDER BY COALESCE(c.scheduled_from, c.created_at) ASC
        LIMIT $2`
	rows, err := r.pool.Query(ctx, query, asOf, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanFeedCampaign)
}

// GetLiveOverride returns the latest-expiring live override for the display
// whose campaign is itself eligible at asOf. Expired rows are garbage the
// filter skips; nothing here depends on pruning having run.
func (r *FeedRepository) GetLiveOverride(ctx context.Context, displayID int, asOf time.Time) (*port.OverrideCandidate, error) {
	query := `
        SELECT o.id, o.display_id, o.campaign_id, o.valid_until, o.created_at,
               c.id, c.user_id, c.title, c.file_url, c.status,
               c.scheduled_from, c.scheduled_to, c.created_at
        FROM display_overrides o
        JOIN campaigns c ON c.id = o.campaign_id
        WHERE o.display_id = $1
          AND o.valid_until >= $2
          AND c.status = 'approved'
          AND (c.scheduled_from IS NULL OR c.scheduled_from <= $2)
          AND (c.scheduled_to   IS NULL OR c.scheduled_to   >= $2)
        ORDER BY o.valid_until DESC
        LIMIT 1`
	var cand port.OverrideCandidate
	err := r.pool.QueryRow(ctx, query, displayID, asOf).Scan(
		&cand.Override.ID,
		&cand.Override.DisplayID,
		&cand.Override.CampaignID,
		&cand.Override.ValidUntil,
		&cand.Override.CreatedAt,
		&cand.Campaign.ID,
		&cand.Campaign.UserID,
		&cand.Campaign.Title,
		&cand.Campaign.FileURL,
		&cand.Campaign.Status,
		&cand.Campaign.ScheduledFrom,
		&cand.Campaign.ScheduledTo,
		&cand.Campaign.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &cand, nil
}

// CreateOverride inserts a new override row. Old rows for the display stay
// behind; liveness is purely a read-time filter on valid_until.
func (r *FeedRepository) CreateOverride(ctx context.Context, ov *domain.Override) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO display_overrides (display_id, campaign_id, valid_until, created_at)
         VALUES ($1, $2, $3, now()) RETURNING id, created_at`,
		ov.DisplayID, ov.CampaignID, ov.ValidUntil,
	).Scan(&ov.ID, &ov.CreatedAt)
}

func scanFeedCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(
		&c.ID,
		&c.UserID,
		&c.Title,
		&c.FileURL,
		&c.Status,
		&c.ScheduledFrom,
		&c.ScheduledTo,
		&c.CreatedAt,
	)
	return c, err
}
