package domain

import "testing"

func TestVisibleOn(t *testing.T) {
	cases := []struct {
		name     string
		displays []int
		display  int
		want     bool
	}{
		{"no entries is global", nil, 1, true},
		{"no entries, any display", []int{}, 3, true},
		{"targeted match", []int{3}, 3, true},
		{"targeted miss", []int{3}, 1, false},
		{"multiple targets match", []int{1, 2}, 2, true},
		{"multiple targets miss", []int{1, 2}, 3, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := VisibleOn(tc.displays, tc.display); got != tc.want {
				t.Fatalf("VisibleOn(%v, %d) = %v, want %v", tc.displays, tc.display, got, tc.want)
			}
		})
	}
}
