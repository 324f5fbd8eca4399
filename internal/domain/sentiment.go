package domain

// SentimentBand is a named range of sentiment scores with its display colour.
type SentimentBand struct {
	Category string `json:"category"`
	Color    string `json:"color"`
}

var (
	BandVeryPositive     = SentimentBand{Category: "very positive", Color: "#1e7e34"}
	BandPositive         = SentimentBand{Category: "positive", Color: "#28a745"}
	BandSlightlyPositive = SentimentBand{Category: "slightly positive", Color: "#8fd19e"}
	BandNeutral          = SentimentBand{Category: "neutral", Color: "#6c757d"}
	BandSlightlyNegative = SentimentBand{Category: "slightly negative", Color: "#f1aeb5"}
	BandNegative         = SentimentBand{Category: "negative", Color: "#dc3545"}
	BandVeryNegative     = SentimentBand{Category: "very negative", Color: "#bd2130"}
)

// NegativeThreshold is the score strictly below which an article counts as
// negative in cohort metrics.
const NegativeThreshold = -0.1

// SentimentBandFor maps a score to its band. Thresholds are checked from the
// most positive down; a nil score is always neutral.
func SentimentBandFor(score *float64) SentimentBand {
	if score == nil {
		return BandNeutral
	}
	s := *score
	switch {
	case s >= 0.7:
		return BandVeryPositive
	case s >= 0.3:
		return BandPositive
	case s >= 0.1:
		return BandSlightlyPositive
	case s <= -0.7:
		return BandVeryNegative
	case s <= -0.3:
		return BandNegative
	case s <= -0.1:
		return BandSlightlyNegative
	default:
		return BandNeutral
	}
}

// ClampScore bounds a classifier output to [-1, 1].
func ClampScore(s float64) float64 {
	if s > 1 {
		return 1
	}
	if s < -1 {
		return -1
	}
	return s
}
