package port

import (
	"context"
	"errors"
	"time"

	"signage-ads/internal/core/domain"
)

var (
	// ErrNotFound is returned when a campaign does not exist or is not in
	// the state the operation requires (e.g. approve on a non-pending row).
	ErrNotFound = errors.New("campaign not found")
	// ErrTokenInvalid is returned for an unknown or already-consumed
	// recovery token.
	ErrTokenInvalid = errors.New("invalid recovery token")
	// ErrTokenExpired is returned when the 7-day recovery window has
	// passed.
	ErrTokenExpired = errors.New("recovery window expired")
	// ErrForbidden is returned when a user operates on a campaign they do
	// not own.
	ErrForbidden = errors.New("forbidden")
)

// CampaignUseCase covers the campaign lifecycle around the feed engine:
// creation, moderation, targeting provisioning and soft delete/recovery.
type CampaignUseCase interface {
	// Create stores a new pending campaign for the user. The file URL is
	// minted by the external storage collaborator before this call.
	Create(ctx context.Context, req CreateCampaignReq) (*domain.Campaign, error)
	// ListMine returns the user's non-deleted campaigns, newest first.
	ListMine(ctx context.Context, userID int64) ([]domain.Campaign, error)

	// Pending and Approved list campaigns for moderation, newest first,
	// with owner contact details attached.
	Pending(ctx context.Context) ([]ModerationRow, error)
	Approved(ctx context.Context) ([]ModerationRow, error)
	// Approve and Deny transition a pending campaign. ErrNotFound when the
	// campaign is missing or not pending.
	Approve(ctx context.Context, id int64) error
	Deny(ctx context.Context, id int64) error

	// SetTargets replaces the campaign's display-target set. An empty set
	// makes the campaign global.
	SetTargets(ctx context.Context, campaignID int64, displayIDs []int) error
	// Targets returns the campaign's current display-target set.
	Targets(ctx context.Context, campaignID int64) ([]int, error)

	// SoftDelete marks the user's campaign deleted, mints a single-use
	// recovery token and emails the owner a recovery link built from
	// baseURL.
	SoftDelete(ctx context.Context, userID, campaignID int64, baseURL string) error
	// Recover restores a soft-deleted campaign to pending if the token is
	// valid and the recovery window has not passed. The token is consumed.
	Recover(ctx context.Context, token string) error

	// PurgeExpired removes campaigns whose recovery window has passed and
	// returns how many rows went away. Driven by the housekeeping ticker.
	PurgeExpired(ctx context.Context) (int64, error)
}

// CreateCampaignReq carries the inputs of Create.
type CreateCampaignReq struct {
	UserID        int64
	Title         string
	FileURL       string
	ScheduledFrom *time.Time
	ScheduledTo   *time.Time
}

// ModerationRow is a campaign with its owner's contact details, as shown
// on the moderation queue.
type ModerationRow struct {
	Campaign    domain.Campaign
	CompanyName string
	Email       string
}

// CampaignRepository is the outbound persistence port for the campaign
// lifecycle. Every write is a single atomic statement.
type CampaignRepository interface {
	CreateCampaign(ctx context.Context, c *domain.Campaign) error
	GetCampaign(ctx context.Context, id int64) (*domain.Campaign, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.Campaign, error)
	ListByStatus(ctx context.Context, status domain.CampaignStatus) ([]ModerationRow, error)

	// UpdateStatus transitions id from one status to another in a single
	// conditional update. It returns ErrNotFound when no row matched.
	UpdateStatus(ctx context.Context, id int64, from, to domain.CampaignStatus) error

	// ReplaceTargets swaps the campaign's targeting entries for the given
	// set.
	ReplaceTargets(ctx context.Context, campaignID int64, displayIDs []int) error
	// ListTargets returns the display ids the campaign is targeted at.
	ListTargets(ctx context.Context, campaignID int64) ([]int, error)

	// SoftDelete marks the campaign deleted at the given instant with the
	// given recovery token, provided it belongs to userID and is not
	// already deleted. ErrNotFound otherwise.
	SoftDelete(ctx context.Context, userID, campaignID int64, token string, at time.Time) error
	// FindByRecoverToken returns the campaign holding the token, or nil.
	FindByRecoverToken(ctx context.Context, token string) (*domain.Campaign, error)
	// RestoreCampaign moves a deleted campaign back to pending and clears
	// deleted_at and the token.
	RestoreCampaign(ctx context.Context, id int64) error
	// PurgeDeleted removes campaigns soft-deleted before the cutoff and
	// returns how many rows went away. Called by external housekeeping.
	PurgeDeleted(ctx context.Context, before time.Time) (int64, error)

	// OwnerEmail returns the owner's email address for deletion notices.
	OwnerEmail(ctx context.Context, campaignID int64) (string, error)
}
