package domain

import "time"

// CampaignStatus is the moderation state of a campaign.
type CampaignStatus string

const (
	StatusPending  CampaignStatus = "pending"
	StatusApproved CampaignStatus = "approved"
	StatusDenied   CampaignStatus = "denied"
	StatusDeleted  CampaignStatus = "deleted"
)

// Campaign represents an uploaded ad creative plus its approval and
// schedule metadata. ScheduledFrom/ScheduledTo are optional inclusive
// window bounds; a nil bound means unbounded on that side. DeletedAt and
// RecoverToken are set only while the campaign is soft-deleted.
type Campaign struct {
	ID            int64
	UserID        int64
	Title         string
	FileURL       string
	Status        CampaignStatus
	ScheduledFrom *time.Time
	ScheduledTo   *time.Time
	CreatedAt     time.Time
	DeletedAt     *time.Time
	RecoverToken  *string
}

// EligibleAt reports whether the campaign may appear on any display at the
// given instant: approved and inside its schedule window. Absent bounds do
// not constrain.
func (c *Campaign) EligibleAt(t time.Time) bool {
	if c.Status != StatusApproved {
		return false
	}
	if c.ScheduledFrom != nil && c.ScheduledFrom.After(t) {
		return false
	}
	if c.ScheduledTo != nil && c.ScheduledTo.Before(t) {
		return false
	}
	return true
}

// RecoveryWindow is how long a soft-deleted campaign stays recoverable.
const RecoveryWindow = 7 * 24 * time.Hour

// Recoverable reports whether a soft-deleted campaign can still be restored
// at the given instant.
func (c *Campaign) Recoverable(t time.Time) bool {
	if c.Status != StatusDeleted || c.DeletedAt == nil {
		return false
	}
	return !c.DeletedAt.Add(RecoveryWindow).Before(t)
}
