package port

import (
	"context"
	"errors"
	"time"

	"signage-ads/internal/core/domain"
)

// ErrFeedUnavailable is returned when feed resolution could not complete
// even after the degraded fallback.
var ErrFeedUnavailable = errors.New("feed unavailable")

// FeedUseCase is the primary port of the display feed engine. It resolves
// the ordered playlist a signage display should render and issues manual
// overrides.
type FeedUseCase interface {
	// ResolveFeed computes the playlist for a display as of the moment of
	// the call. Out-of-range display ids and limits are clamped, never
	// rejected. The response is flagged Degraded when targeting and
	// overrides had to be skipped after a store failure.
	ResolveFeed(ctx context.Context, req FeedReq) (*FeedResp, error)

	// IssueOverride records a manual override forcing a campaign to the
	// head of one display's feed for a bounded number of minutes
	// (clamped to 1..60). Eligibility is not checked at issuance; the
	// resolver re-checks at read time.
	IssueOverride(ctx context.Context, displayID int, campaignID int64, minutes int) (time.Time, error)
}

// FeedReq carries the resolver inputs. Limit <= 0 falls back to the
// default.
type FeedReq struct {
	DisplayID int
	Limit     int
}

// FeedResp is the resolved feed. ServerTime is the instant the resolution
// was evaluated at, returned so a remote player can reconcile its clock
// against schedule boundaries.
type FeedResp struct {
	Display    int                   `json:"display"`
	Playlist   []domain.PlaylistItem `json:"playlist"`
	ServerTime time.Time             `json:"serverTime"`
	Degraded   bool                  `json:"degraded,omitempty"`
}

// OverrideCandidate pairs a live override with its campaign row so the
// resolver can apply the eligibility predicate and project the item.
type OverrideCandidate struct {
	Override domain.Override
	Campaign domain.Campaign
}

// FeedRepository is the outbound port the feed engine reads through.
// Implementations evaluate all time predicates against the asOf argument,
// not their own clock, so one resolution sees one consistent instant.
type FeedRepository interface {
	// GetVisibleCampaigns returns eligible campaigns (approved and inside
	// their schedule window at asOf) visible to the display: campaigns
	// with no targeting entries plus campaigns explicitly targeted at it.
	// Ordered by coalesce(scheduled_from, created_at) ascending, at most
	// limit rows.
	GetVisibleCampaigns(ctx context.Context, displayID int, asOf time.Time, limit int) ([]domain.Campaign, error)

	// GetEligibleCampaigns is the degraded-mode query: eligibility only,
	// ignoring targeting. Same ordering and limit semantics.
	GetEligibleCampaigns(ctx context.Context, asOf time.Time, limit int) ([]domain.Campaign, error)

	// GetLiveOverride returns the live override with the greatest
	// valid_until for the display whose campaign passes the eligibility
	// predicate at asOf, or nil when none qualifies.
	GetLiveOverride(ctx context.Context, displayID int, asOf time.Time) (*OverrideCandidate, error)

	// CreateOverride persists a new override row and fills in its ID.
	CreateOverride(ctx context.Context, ov *domain.Override) error
}
