package domain_test

import (
	"testing"
	"time"

	"github.com/Samuelkaoma/sunricort-accounting-app/internal/domain"
)

func TestFrequencyNext(t *testing.T) {
	from := time.Date(2025, 1, 31, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		frequency domain.Frequency
		want      time.Time
	}{
		{domain.FrequencyWeekly, time.Date(2025, 2, 7, 9, 0, 0, 0, time.UTC)},
		{domain.FrequencyMonthly, time.Date(2025, 3, 3, 9, 0, 0, 0, time.UTC)}, // Jan 31 + 1 month normalizes past Feb
		{domain.FrequencyYearly, time.Date(2026, 1, 31, 9, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(string(tt.frequency), func(t *testing.T) {
			got := tt.frequency.Next(from)
			if !got.Equal(tt.want) {
				t.Errorf("Next(%s) = %s, want %s", from, got, tt.want)
			}
		})
	}
}
