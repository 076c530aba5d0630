package app

// Derived statistics over the synchronizer's timelines. Pure functions,
// recomputed on every read.

// AverageMood returns the mean mood score, or 0 for an empty timeline.
func AverageMood(entries []MoodEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	sum := 0
	for _, e := range entries {
		sum += e.MoodScore
	}
	return float64(sum) / float64(len(entries))
}

type SentimentClass int

const (
	ClassPositive SentimentClass = iota
	ClassNeutral
	ClassChallenging
)

func (c SentimentClass) String() string {
	switch c {
	case ClassPositive:
		return "positive"
	case ClassNeutral:
		return "neutral"
	case ClassChallenging:
		return "challenging"
	}
	return "unknown"
}

// ClassifySentiment maps a daily average onto the fixed classification
// boundaries: above 0.1 positive, below -0.1 challenging, neutral
// between them inclusive.
func ClassifySentiment(avg float64) SentimentClass {
	switch {
	case avg > 0.1:
		return ClassPositive
	case avg < -0.1:
		return ClassChallenging
	default:
		return ClassNeutral
	}
}

type SentimentBreakdown struct {
	Positive    int
	Neutral     int
	Challenging int
}

func CountSentiment(buckets []SentimentBucket) SentimentBreakdown {
	var b SentimentBreakdown
	for _, bucket := range buckets {
		switch ClassifySentiment(bucket.AvgSentiment) {
		case ClassPositive:
			b.Positive++
		case ClassNeutral:
			b.Neutral++
		case ClassChallenging:
			b.Challenging++
		}
	}
	return b
}
