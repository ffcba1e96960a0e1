package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"signage-ads/internal/core/domain"
	"signage-ads/internal/core/port"
)

// Feed limits. The organic portion of a playlist never exceeds MaxFeedLimit
// items; a live override may add one more.
const (
	DefaultFeedLimit = 100
	MaxFeedLimit     = 200
)

// FeedUseCase implements port.FeedUseCase. It is stateless: every
// resolution re-reads current truth from the repository, so there is no
// cached playlist to invalidate.
type FeedUseCase struct {
	repo   port.FeedRepository
	logger *slog.Logger

	// now is the injected clock, captured once per resolution so the
	// override check and the eligibility check see the same instant.
	now func() time.Time

	// displayCount bounds the valid display id range [1, displayCount].
	displayCount int
}

// NewFeedUseCase creates the feed engine. A nil clock falls back to
// time.Now.
func NewFeedUseCase(repo port.FeedRepository, logger *slog.Logger, displayCount int, now func() time.Time) *FeedUseCase {
	if now == nil {
		now = time.Now
	}
	if displayCount < 1 {
		displayCount = 1
	}
	return &FeedUseCase{repo: repo, logger: logger, now: now, displayCount: displayCount}
}

// ResolveFeed computes the ordered playlist for a display.
//
// Malformed inputs are clamped rather than rejected: a misconfigured
// signage player must never be locked out of its feed. The override is
// fetched through the same eligibility predicate as the organic pool and
// re-checked in process before it is prepended, so an override can never
// resurrect a denied or out-of-window campaign. On a
// store failure the resolver retries once with the eligibility-only query
// (no targeting, no override) and flags the response degraded; a second
// failure surfaces as ErrFeedUnavailable.
func (u *FeedUseCase) ResolveFeed(ctx context.Context, req port.FeedReq) (*port.FeedResp, error) {
	displayID := clampDisplay(req.DisplayID, u.displayCount)
	limit := clampLimit(req.Limit)
	asOf := u.now().UTC()

	ov, err := u.repo.GetLiveOverride(ctx, displayID, asOf)
	if err != nil {
		return u.degrade(ctx, displayID, asOf, limit, err)
	}

	campaigns, err := u.repo.GetVisibleCampaigns(ctx, displayID, asOf, limit)
	if err != nil {
		return u.degrade(ctx, displayID, asOf, limit, err)
	}

	playlist := project(campaigns)
	if ov != nil && ov.Override.LiveAt(asOf) && ov.Campaign.EligibleAt(asOf) {
		playlist = prependOverride(playlist, &ov.Campaign)
	}

	return &port.FeedResp{
		Display:    displayID,
		Playlist:   playlist,
		ServerTime: asOf,
	}, nil
}

// IssueOverride persists a manual override with a clamped duration. The
// campaign's eligibility is deliberately not checked here; the resolver
// re-checks on every read, so a campaign approved after issuance becomes
// visible retroactively.
func (u *FeedUseCase) IssueOverride(ctx context.Context, displayID int, campaignID int64, minutes int) (time.Time, error) {
	displayID = clampDisplay(displayID, u.displayCount)
	minutes = domain.ClampOverrideMinutes(minutes)

	validUntil := u.now().UTC().Add(time.Duration(minutes) * time.Minute)
	ov := &domain.Override{
		DisplayID:  displayID,
		CampaignID: campaignID,
		ValidUntil: validUntil,
	}
	if err := u.repo.CreateOverride(ctx, ov); err != nil {
		return time.Time{}, fmt.Errorf("issue override: %w", err)
	}
	return validUntil, nil
}

// degrade runs the simplified eligibility-only query after a store failure.
// The degraded playlist ignores targeting and overrides but is flagged so
// the caller can tell it apart from full-fidelity output.
func (u *FeedUseCase) degrade(ctx context.Context, displayID int, asOf time.Time, limit int, cause error) (*port.FeedResp, error) {
	u.logger.Warn("feed degraded, retrying without targeting",
		slog.Int("display", displayID), slog.Any("error", cause))

	campaigns, err := u.repo.GetEligibleCampaigns(ctx, asOf, limit)
	if err != nil {
		u.logger.Error("degraded feed query failed", slog.Any("error", err))
		return nil, fmt.Errorf("%w: %w", port.ErrFeedUnavailable, err)
	}
	return &port.FeedResp{
		Display:    displayID,
		Playlist:   project(campaigns),
		ServerTime: asOf,
		Degraded:   true,
	}, nil
}

func project(campaigns []domain.Campaign) []domain.PlaylistItem {
	items := make([]domain.PlaylistItem, 0, len(campaigns))
	for i := range campaigns {
		items = append(items, domain.ProjectPlaylistItem(&campaigns[i]))
	}
	return items
}

// prependOverride puts the override campaign at the head of the playlist
// without ever duplicating it: if it already leads organically nothing
// changes, and a deeper organic occurrence is dropped before prepending.
// The override consumes no limit slot, so the result may exceed the organic
// limit by one.
func prependOverride(items []domain.PlaylistItem, c *domain.Campaign) []domain.PlaylistItem {
	if len(items) > 0 && items[0].ID == c.ID {
		return items
	}
	out := make([]domain.PlaylistItem, 0, len(items)+1)
	out = append(out, domain.ProjectPlaylistItem(c))
	for _, it := range items {
		if it.ID == c.ID {
			continue
		}
		out = append(out, it)
	}
	return out
}

func clampDisplay(id, count int) int {
	if id < 1 {
		return 1
	}
	if id > count {
		return count
	}
	return id
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return DefaultFeedLimit
	}
	if limit > MaxFeedLimit {
		return MaxFeedLimit
	}
	return limit
}
