package model

import (
	"testing"
	"time"
)

func TestEventStatusGuards(t *testing.T) {
	cases := []struct {
		status       EventStatus
		canSuspend   bool
		canUnsuspend bool
	}{
		{StatusNotStarted, true, false},
		{StatusInProgress, true, false},
		{StatusFinished, false, false},
		{StatusSuspended, false, true},
	}

	for _, tc := range cases {
		if got := tc.status.CanSuspend(); got != tc.canSuspend {
			t.Errorf("%s: CanSuspend() = %v, want %v", tc.status, got, tc.canSuspend)
		}
		if got := tc.status.CanUnsuspend(); got != tc.canUnsuspend {
			t.Errorf("%s: CanUnsuspend() = %v, want %v", tc.status, got, tc.canUnsuspend)
		}
		// no status may offer both actions at once
		if tc.status.CanSuspend() && tc.status.CanUnsuspend() {
			t.Errorf("%s: both suspend and unsuspend offered", tc.status)
		}
	}
}

func TestStatusForTime(t *testing.T) {
	start := time.Date(2026, 6, 1, 10, 0, 0, 0, time.UTC)
	end := time.Date(2026, 6, 1, 18, 0, 0, 0, time.UTC)

	cases := []struct {
		name string
		now  time.Time
		want EventStatus
	}{
		{"before start", start.Add(-time.Hour), StatusNotStarted},
		{"at start", start, StatusInProgress},
		{"during", start.Add(time.Hour), StatusInProgress},
		{"at end", end, StatusFinished},
		{"after end", end.Add(time.Hour), StatusFinished},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := StatusForTime(tc.now, start, end); got != tc.want {
				t.Errorf("StatusForTime() = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestCustomerDisplayName(t *testing.T) {
	physical := Customer{Type: CustomerPhysical, FirstName: "Marie", LastName: "Durand", Name: "ignored"}
	if got := physical.DisplayName(); got != "Marie Durand" {
		t.Errorf("physical DisplayName() = %q", got)
	}

	legal := Customer{Type: CustomerLegal, Name: "Acme SARL", FirstName: "ignored"}
	if got := legal.DisplayName(); got != "Acme SARL" {
		t.Errorf("legal DisplayName() = %q", got)
	}
}
