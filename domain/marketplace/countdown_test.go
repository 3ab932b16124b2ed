package marketplace

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRemaining(t *testing.T) {
	now := time.Unix(1700000000, 0)
	tests := []struct {
		name      string
		endOffset time.Duration
		wantEnded bool
		wantLabel string
	}{
		{
			name:      "already ended",
			endOffset: -time.Second,
			wantEnded: true,
			wantLabel: "Ended",
		},
		{
			name:      "ends exactly now",
			endOffset: 0,
			wantEnded: true,
			wantLabel: "Ended",
		},
		{
			name:      "under a minute renders zero minutes",
			endOffset: 45 * time.Second,
			wantLabel: "0m",
		},
		{
			name:      "minutes only",
			endOffset: 15 * time.Minute,
			wantLabel: "15m",
		},
		{
			name:      "hours and minutes",
			endOffset: 7500 * time.Second,
			wantLabel: "2h 5m",
		},
		{
			name:      "hours with zero minutes",
			endOffset: 3 * time.Hour,
			wantLabel: "3h 0m",
		},
		{
			name:      "days and hours",
			endOffset: 51 * time.Hour,
			wantLabel: "2d 3h",
		},
		{
			name:      "days with zero hours",
			endOffset: 48 * time.Hour,
			wantLabel: "2d 0h",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Remaining(now.Add(tt.endOffset), now)
			assert.Equal(t, tt.wantEnded, got.Ended)
			assert.Equal(t, tt.wantLabel, got.Label)
		})
	}
}

func TestRemainingEndedIffPast(t *testing.T) {
	now := time.Unix(1700000000, 0)
	for _, off := range []int64{-86400, -1, 0, 1, 59, 60, 3599, 86400} {
		end := now.Add(time.Duration(off) * time.Second)
		got := Remaining(end, now)
		assert.Equal(t, off <= 0, got.Ended, "offset %d", off)
	}
}
