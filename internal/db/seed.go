package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo data: two users, a mix of global and targeted
// campaigns in various moderation states, and a short override for
// display 1.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	_, err := db.Exec(ctx, `INSERT INTO users (id, email, company_name, role)
VALUES (1, 'admin@example.com', 'Signage Ops', 'admin'),
       (2, 'acme@example.com', 'Acme GmbH', 'business')
ON CONFLICT DO NOTHING`)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	campaigns := []struct {
		id       int64
		title    string
		file     string
		status   string
		from, to *time.Time
		displays []int
	}{
		{1, "Grand opening", "https://cdn.example.com/ads/opening.png", "approved", nil, nil, nil},
		{2, "Lunch special", "https://cdn.example.com/ads/lunch.mp4", "approved", ptr(now.Add(-time.Hour)), ptr(now.Add(6 * time.Hour)), []int{3}},
		{3, "Weekend sale", "https://cdn.example.com/ads/sale.jpg", "approved", ptr(now.Add(24 * time.Hour)), nil, nil},
		{4, "Draft teaser", "https://cdn.example.com/ads/teaser.webp", "pending", nil, nil, nil},
		{5, "Flash promo", "https://cdn.example.com/ads/flash.gif", "approved", nil, nil, []int{1, 2}},
	}
	for _, c := range campaigns {
		_, err = db.Exec(ctx, `INSERT INTO campaigns
    (id, user_id, title, file_url, status, scheduled_from, scheduled_to, created_at)
VALUES ($1, 2, $2, $3, $4, $5, $6, now()) ON CONFLICT DO NOTHING`,
			c.id, c.title, c.file, c.status, c.from, c.to)
		if err != nil {
			return err
		}
		for _, d := range c.displays {
			_, err = db.Exec(ctx, `INSERT INTO campaign_displays (campaign_id, display_id)
VALUES ($1, $2) ON CONFLICT DO NOTHING`, c.id, d)
			if err != nil {
				return err
			}
		}
	}

	_, err = db.Exec(ctx, `INSERT INTO display_overrides (display_id, campaign_id, valid_until, created_at)
VALUES (1, 5, $1, now()) ON CONFLICT DO NOTHING`, now.Add(10*time.Minute))
	if err != nil {
		return err
	}

	_, err = db.Exec(ctx, `SELECT setval('campaigns_id_seq', (SELECT max(id) FROM campaigns))`)
	if err != nil {
		return fmt.Errorf("reset campaign sequence: %w", err)
	}
	_, err = db.Exec(ctx, `SELECT setval('users_id_seq', (SELECT max(id) FROM users))`)
	if err != nil {
		return fmt.Errorf("reset user sequence: %w", err)
	}
	return nil
}

func ptr(t time.Time) *time.Time { return &t }
