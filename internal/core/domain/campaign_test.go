package domain

import (
	"testing"
	"time"
)

var now = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func tp(t time.Time) *time.Time { return &t }

func TestCampaignEligibleAt(t *testing.T) {
	cases := []struct {
		name string
		c    Campaign
		want bool
	}{
		{"approved unscheduled", Campaign{Status: StatusApproved}, true},
		{"pending", Campaign{Status: StatusPending}, false},
		{"denied", Campaign{Status: StatusDenied}, false},
		{"deleted", Campaign{Status: StatusDeleted}, false},
		{"window open", Campaign{Status: StatusApproved, ScheduledFrom: tp(now.Add(-time.Hour)), ScheduledTo: tp(now.Add(time.Hour))}, true},
		{"starts later", Campaign{Status: StatusApproved, ScheduledFrom: tp(now.Add(24 * time.Hour))}, false},
		{"already ended", Campaign{Status: StatusApproved, ScheduledTo: tp(now.Add(-time.Minute))}, false},
		{"starts exactly now", Campaign{Status: StatusApproved, ScheduledFrom: tp(now)}, true},
		{"ends exactly now", Campaign{Status: StatusApproved, ScheduledTo: tp(now)}, true},
		{"only lower bound passed", Campaign{Status: StatusApproved, ScheduledFrom: tp(now.Add(-time.Hour))}, true},
		{"only upper bound ahead", Campaign{Status: StatusApproved, ScheduledTo: tp(now.Add(time.Hour))}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.c.EligibleAt(now); got != tc.want {
				t.Fatalf("EligibleAt = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestCampaignEligibilityFlipsAtWindowStart(t *testing.T) {
	c := Campaign{Status: StatusApproved, ScheduledFrom: tp(now.Add(24 * time.Hour))}
	if c.EligibleAt(now) {
		t.Fatalf("eligible before window start")
	}
	if !c.EligibleAt(now.Add(24*time.Hour + time.Second)) {
		t.Fatalf("not eligible after window start")
	}
}

func TestCampaignRecoverable(t *testing.T) {
	cases := []struct {
		name string
		c    Campaign
		want bool
	}{
		{"deleted yesterday", Campaign{Status: StatusDeleted, DeletedAt: tp(now.Add(-24 * time.Hour))}, true},
		{"deleted 8 days ago", Campaign{Status: StatusDeleted, DeletedAt: tp(now.Add(-8 * 24 * time.Hour))}, false},
		{"exactly at the boundary", Campaign{Status: StatusDeleted, DeletedAt: tp(now.Add(-RecoveryWindow))}, true},
		{"not deleted", Campaign{Status: StatusApproved, DeletedAt: tp(now.Add(-time.Hour))}, false},
		{"deleted without timestamp", Campaign{Status: StatusDeleted}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.c.Recoverable(now); got != tc.want {
				t.Fatalf("Recoverable = %v, want %v", got, tc.want)
			}
		})
	}
}
