package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"signage-ads/internal/core/domain"
	"signage-ads/internal/core/port"
)

// CampaignUseCase implements port.CampaignUseCase: creation, moderation,
// targeting provisioning and the soft-delete/recovery flow.
type CampaignUseCase struct {
	repo   port.CampaignRepository
	mailer port.Mailer
	logger *slog.Logger
	now    func() time.Time
}

// NewCampaignUseCase creates the campaign lifecycle service. A nil clock
// falls back to time.Now.
func NewCampaignUseCase(repo port.CampaignRepository, mailer port.Mailer, logger *slog.Logger, now func() time.Time) *CampaignUseCase {
	if now == nil {
		now = time.Now
	}
	return &CampaignUseCase{repo: repo, mailer: mailer, logger: logger, now: now}
}

// Create stores a new pending campaign. The creative itself lives with the
// storage collaborator; only its locator is recorded here.
func (u *CampaignUseCase) Create(ctx context.Context, req port.CreateCampaignReq) (*domain.Campaign, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, errors.New("missing title")
	}
	c := &domain.Campaign{
		UserID:        req.UserID,
		Title:         title,
		FileURL:       req.FileURL,
		Status:        domain.StatusPending,
		ScheduledFrom: req.ScheduledFrom,
		ScheduledTo:   req.ScheduledTo,
		CreatedAt:     u.now().UTC(),
	}
	if err := u.repo.CreateCampaign(ctx, c); err != nil {
		return nil, fmt.Errorf("create campaign: %w", err)
	}
	return c, nil
}

// ListMine returns the user's non-deleted campaigns, newest first.
func (u *CampaignUseCase) ListMine(ctx context.Context, userID int64) ([]domain.Campaign, error) {
	return u.repo.ListByUser(ctx, userID)
}

// Pending lists campaigns awaiting moderation.
func (u *CampaignUseCase) Pending(ctx context.Context) ([]port.ModerationRow, error) {
	return u.repo.ListByStatus(ctx, domain.StatusPending)
}

// Approved lists campaigns that passed moderation.
func (u *CampaignUseCase) Approved(ctx context.Context) ([]port.ModerationRow, error) {
	return u.repo.ListByStatus(ctx, domain.StatusApproved)
}

// Approve transitions a pending campaign to approved.
func (u *CampaignUseCase) Approve(ctx context.Context, id int64) error {
	return u.repo.UpdateStatus(ctx, id, domain.StatusPending, domain.StatusApproved)
}

// Deny transitions a pending campaign to denied.
func (u *CampaignUseCase) Deny(ctx context.Context, id int64) error {
	return u.repo.UpdateStatus(ctx, id, domain.StatusPending, domain.StatusDenied)
}

// SetTargets replaces the campaign's display-target set. An empty set makes
// the campaign global.
func (u *CampaignUseCase) SetTargets(ctx context.Context, campaignID int64, displayIDs []int) error {
	if _, err := u.repo.GetCampaign(ctx, campaignID); err != nil {
		return err
	}
	return u.repo.ReplaceTargets(ctx, campaignID, displayIDs)
}

// Targets returns the campaign's display-target set. Empty means global.
func (u *CampaignUseCase) Targets(ctx context.Context, campaignID int64) ([]int, error) {
	if _, err := u.repo.GetCampaign(ctx, campaignID); err != nil {
		return nil, err
	}
	return u.repo.ListTargets(ctx, campaignID)
}

// SoftDelete marks the user's campaign deleted, mints a single-use
// recovery token and emails the owner a recovery link. The token is a
// capability: anyone holding the link can recover the campaign without a
// session, so it is unguessable and consumed on use.
func (u *CampaignUseCase) SoftDelete(ctx context.Context, userID, campaignID int64, baseURL string) error {
	c, err := u.repo.GetCampaign(ctx, campaignID)
	if err != nil {
		return err
	}
	if c.UserID != userID {
		return port.ErrForbidden
	}
	if c.Status == domain.StatusDeleted {
		return port.ErrNotFound
	}

	token := uuid.NewString()
	if err = u.repo.SoftDelete(ctx, userID, campaignID, token, u.now().UTC()); err != nil {
		return err
	}

	email, err := u.repo.OwnerEmail(ctx, campaignID)
	if err != nil {
		u.logger.Error("owner email lookup failed", slog.Int64("campaign", campaignID), slog.Any("error", err))
		return nil
	}
	link := fmt.Sprintf("%s/api/campaigns/recover?token=%s", strings.TrimRight(baseURL, "/"), url.QueryEscape(token))
	if err = u.mailer.SendCampaignDeleted(ctx, email, c.Title, link); err != nil {
		// The delete already committed; a lost notice is logged, not
		// rolled back.
		u.logger.Error("deletion notice failed", slog.Int64("campaign", campaignID), slog.Any("error", err))
	}
	return nil
}

// Recover restores a soft-deleted campaign to pending when the token is
// valid and the 7-day window has not passed.
func (u *CampaignUseCase) Recover(ctx context.Context, token string) error {
	if token == "" {
		return port.ErrTokenInvalid
	}
	c, err := u.repo.FindByRecoverToken(ctx, token)
	if err != nil {
		return err
	}
	if c == nil || c.Status != domain.StatusDeleted {
		return port.ErrTokenInvalid
	}
	if !c.Recoverable(u.now().UTC()) {
		return port.ErrTokenExpired
	}
	return u.repo.RestoreCampaign(ctx, c.ID)
}

// PurgeExpired hard-deletes campaigns whose recovery window has passed.
func (u *CampaignUseCase) PurgeExpired(ctx context.Context) (int64, error) {
	cutoff := u.now().UTC().Add(-domain.RecoveryWindow)
	n, err := u.repo.PurgeDeleted(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge expired: %w", err)
	}
	if n > 0 {
		u.logger.Info("purged expired campaigns", slog.Int64("count", n))
	}
	return n, nil
}
