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

// CampaignRepository implements port.CampaignRepository using pgxpool.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

const campaignColumns = `id, user_id, title, file_url, status,
    scheduled_from, scheduled_to, created_at, deleted_at, recover_token`

// CreateCampaign inserts a new campaign row and fills in its id and
// creation timestamp.
func (r *CampaignRepository) CreateCampaign(ctx context.Context, c *domain.Campaign) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO campaigns (user_id, title, file_url, status, scheduled_from, scheduled_to, created_at)
         VALUES ($1, $2, $3, $4, $5, $6, now())
         RETURNING id, created_at`,
		c.UserID, c.Title, c.FileURL, c.Status, c.ScheduledFrom, c.ScheduledTo,
	).Scan(&c.ID, &c.CreatedAt)
}

// GetCampaign returns a campaign by id, port.ErrNotFound when missing.
func (r *CampaignRepository) GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error) {
	var c domain.Campaign
	err := r.pool.QueryRow(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE id = $1`, id,
	).Scan(&c.ID, &c.UserID, &c.Title, &c.FileURL, &c.Status,
		&c.ScheduledFrom, &c.ScheduledTo, &c.CreatedAt, &c.DeletedAt, &c.RecoverToken)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, port.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListByUser returns the user's non-deleted campaigns, newest first.
func (r *CampaignRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+campaignColumns+`
         FROM campaigns
         WHERE user_id = $1 AND status <> 'deleted'
         ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCampaign)
}

// ListByStatus returns campaigns in the given status with their owner's
// contact details, newest first. Used by the moderation queue.
func (r *CampaignRepository) ListByStatus(ctx context.Context, status domain.CampaignStatus) ([]port.ModerationRow, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT c.id, c.user_id, c.title, c.file_url, c.status,
                c.scheduled_from, c.scheduled_to, c.created_at, c.deleted_at, c.recover_token,
                u.company_name, u.email
         FROM campaigns c
         JOIN users u ON u.id = c.user_id
         WHERE c.status = $1
         ORDER BY c.created_at DESC`, status)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (port.ModerationRow, error) {
		var m port.ModerationRow
		c := &m.Campaign
		err := row.Scan(&c.ID, &c.UserID, &c.Title, &c.FileURL, &c.Status,
			&c.ScheduledFrom, &c.ScheduledTo, &c.CreatedAt, &c.DeletedAt, &c.RecoverToken,
			&m.CompanyName, &m.Email)
		return m, err
	})
}

// UpdateStatus transitions a campaign from one status to another in a
// single conditional update. port.ErrNotFound when no row matched.
func (r *CampaignRepository) UpdateStatus(ctx context.Context, id int64, from, to domain.CampaignStatus) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE campaigns SET status = $3 WHERE id = $1 AND status = $2`, id, from, to)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// ReplaceTargets swaps the campaign's targeting entries for the given set
// inside one transaction.
func (r *CampaignRepository) ReplaceTargets(ctx context.Context, campaignID int64, displayIDs []int) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err = tx.Exec(ctx, `DELETE FROM campaign_displays WHERE campaign_id = $1`, campaignID); err != nil {
		return err
	}
	for _, d := range displayIDs {
		if _, err = tx.Exec(ctx,
			`INSERT INTO campaign_displays (campaign_id, display_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`,
			campaignID, d); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

// ListTargets returns the display ids a campaign is targeted at. An empty
// result means the campaign is global.
func (r *CampaignRepository) ListTargets(ctx context.Context, campaignID int64) ([]int, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT display_id FROM campaign_displays WHERE campaign_id = $1 ORDER BY display_id`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowTo[int])
}

// SoftDelete marks the campaign deleted with a recovery token, provided it
// belongs to the user and is not already deleted.
func (r *CampaignRepository) SoftDelete(ctx context.Context, userID, campaignID int64, token string, at time.Time) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE campaigns
         SET status = 'deleted', deleted_at = $3, recover_token = $4
         WHERE id = $1 AND user_id = $2 AND status <> 'deleted'`,
		campaignID, userID, at, token)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// FindByRecoverToken returns the campaign holding the token, or nil when
// the token is unknown.
func (r *CampaignRepository) FindByRecoverToken(ctx context.Context, token string) (*domain.Campaign, error) {
	var c domain.Campaign
	err := r.pool.QueryRow(ctx,
		`SELECT `+campaignColumns+` FROM campaigns WHERE recover_token = $1`, token,
	).Scan(&c.ID, &c.UserID, &c.Title, &c.FileURL, &c.Status,
		&c.ScheduledFrom, &c.ScheduledTo, &c.CreatedAt, &c.DeletedAt, &c.RecoverToken)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// RestoreCampaign moves a deleted campaign back to pending, consuming the
// recovery token.
func (r *CampaignRepository) RestoreCampaign(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE campaigns
         SET status = 'pending', deleted_at = NULL, recover_token = NULL
         WHERE id = $1 AND status = 'deleted'`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrNotFound
	}
	return nil
}

// PurgeDeleted removes campaigns soft-deleted before the cutoff.
func (r *CampaignRepository) PurgeDeleted(ctx context.Context, before time.Time) (int64, error) {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM campaigns WHERE status = 'deleted' AND deleted_at < $1`, before)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// OwnerEmail returns the email of the campaign's owner.
func (r *CampaignRepository) OwnerEmail(ctx context.Context, campaignID int64) (string, error) {
	var email string
	err := r.pool.QueryRow(ctx,
		`SELECT u.email FROM users u JOIN campaigns c ON c.user_id = u.id WHERE c.id = $1`,
		campaignID,
	).Scan(&email)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", port.ErrNotFound
	}
	return email, err
}

func scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(&c.ID, &c.UserID, &c.Title, &c.FileURL, &c.Status,
		&c.ScheduledFrom, &c.ScheduledTo, &c.CreatedAt, &c.DeletedAt, &c.RecoverToken)
	return c, err
}
