package domain

import (
	"testing"
	"time"
)

func TestOverrideLiveAt(t *testing.T) {
	ov := Override{ValidUntil: now.Add(5 * time.Minute)}
	if !ov.LiveAt(now) {
		t.Fatalf("override with future valid_until must be live")
	}
	if !ov.LiveAt(now.Add(5 * time.Minute)) {
		t.Fatalf("valid_until is inclusive")
	}
	if ov.LiveAt(now.Add(5*time.Minute + time.Second)) {
		t.Fatalf("expired override must not be live")
	}
}

func TestClampOverrideMinutes(t *testing.T) {
	cases := []struct{ in, want int }{
		{-5, 1},
		{0, 1},
		{1, 1},
		{30, 30},
		{60, 60},
		{61, 60},
		{600, 60},
	}
	for _, tc := range cases {
		if got := ClampOverrideMinutes(tc.in); got != tc.want {
			t.Fatalf("ClampOverrideMinutes(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}
