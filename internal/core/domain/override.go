package domain

import "time"

// Override duration bounds in minutes. Issuance requests outside the range
// are clamped, not rejected.
const (
	OverrideMinMinutes = 1
	OverrideMaxMinutes = 60
)

// Override is a display-scoped manual directive forcing a campaign to the
// head of one display's feed until ValidUntil. Rows are never deleted on
// expiry; liveness is purely a read-time filter.
type Override struct {
	ID         int64
	DisplayID  int
	CampaignID int64
	ValidUntil time.Time
	CreatedAt  time.Time
}

// LiveAt reports whether the override is still in effect at the given
// instant.
func (o *Override) LiveAt(t time.Time) bool {
	return !o.ValidUntil.Before(t)
}

// ClampOverrideMinutes normalises a requested override duration into the
// allowed range.
func ClampOverrideMinutes(minutes int) int {
	if minutes < OverrideMinMinutes {
		return OverrideMinMinutes
	}
	if minutes > OverrideMaxMinutes {
		return OverrideMaxMinutes
	}
	return minutes
}
