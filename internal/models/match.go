package models

// MatchTier classifies an aggregate score into a presentation-ready band.
type MatchTier string

const (
	MatchTierExcellent MatchTier = "excellent"
	MatchTierGood      MatchTier = "good"
	MatchTierFair      MatchTier = "fair"
	MatchTierPoor      MatchTier = "poor"
)

// TierForScore maps an aggregate score onto its quality band. The bands are
// policy constants: 85 is excellent, 84 is good.
func TierForScore(score int) MatchTier {
	switch {
	case score >= 85:
		return MatchTierExcellent
	case score >= 70:
		return MatchTierGood
	case score >= 50:
		return MatchTierFair
	default:
		return MatchTierPoor
	}
}

// MaxMatchReasons caps the reason list on every produced result.
const MaxMatchReasons = 3

// MatchResult is the output record of every scorer: produced fresh on each
// call, never persisted by the engine.
type MatchResult struct {
	CandidateID string         `json:"candidateId"`
	AnchorID    string         `json:"anchorId"`
	Score       int            `json:"score"`
	Tier        MatchTier      `json:"tier"`
	Reasons     []string       `json:"reasons"`
	Breakdown   map[string]int `json:"breakdown,omitempty"`
}
