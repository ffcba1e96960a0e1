package domain

import "slices"

// VisibleOn implements the targeting rule: a campaign with no targeting
// entries is global and shows on every display; a campaign with entries
// shows only on the displays listed. The visible-campaigns feed query
// evaluates the same rule as a semi/anti-join in SQL; this form is the
// contract that query must match.
func VisibleOn(displays []int, displayID int) bool {
	if len(displays) == 0 {
		return true
	}
	return slices.Contains(displays, displayID)
}
