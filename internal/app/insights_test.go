package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAverageMood(t *testing.T) {
	tests := []struct {
		name    string
		entries []MoodEntry
		want    float64
	}{
		{
			name: "two entries",
			entries: []MoodEntry{
				{MoodScore: 2},
				{MoodScore: 4},
			},
			want: 3.0,
		},
		{
			name:    "empty timeline",
			entries: nil,
			want:    0,
		},
		{
			name: "single entry",
			entries: []MoodEntry{
				{MoodScore: 5},
			},
			want: 5.0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, AverageMood(tc.entries), 1e-9)
		})
	}
}

func TestClassifySentiment_Boundaries(t *testing.T) {
	tests := []struct {
		avg  float64
		want SentimentClass
	}{
		{0.2, ClassPositive},
		{0.11, ClassPositive},
		{0.1, ClassNeutral},
		{0.05, ClassNeutral},
		{0, ClassNeutral},
		{-0.1, ClassNeutral},
		{-0.11, ClassChallenging},
		{-0.3, ClassChallenging},
	}

	for _, tc := range tests {
		if got := ClassifySentiment(tc.avg); got != tc.want {
			t.Fatalf("ClassifySentiment(%v) = %v, want %v", tc.avg, got, tc.want)
		}
	}
}

func TestCountSentiment(t *testing.T) {
	buckets := []SentimentBucket{
		{Date: "2024-06-01", AvgSentiment: 0.2},
		{Date: "2024-06-02", AvgSentiment: -0.3},
		{Date: "2024-06-03", AvgSentiment: 0.05},
		{Date: "2024-06-04", AvgSentiment: 0.6},
	}

	got := CountSentiment(buckets)
	assert.Equal(t, SentimentBreakdown{Positive: 2, Neutral: 1, Challenging: 1}, got)
}
