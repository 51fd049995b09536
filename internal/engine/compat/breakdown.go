package compat

import (
	"strings"

	"github.com/Growthlabsg/venturematch/internal/models"
)

// Breakdown holds the seven named sub-scores of a co-founder compatibility
// match. Every field is independently clamped to [0,100] and is meaningful
// on its own; the UI renders them as a breakdown bar.
type Breakdown struct {
	SkillFit              int `json:"skillFit"`
	ValueAlignment        int `json:"valueAlignment"`
	GoalAlignment         int `json:"goalAlignment"`
	ExperienceFit         int `json:"experienceFit"`
	AvailabilityMatch     int `json:"availabilityMatch"`
	LocationCompatibility int `json:"locationCompatibility"`
	CommunicationStyle    int `json:"communicationStyle"`
}

func (b Breakdown) ToMap() map[string]int {
	return map[string]int{
		"skillFit":              b.SkillFit,
		"valueAlignment":        b.ValueAlignment,
		"goalAlignment":         b.GoalAlignment,
		"experienceFit":         b.ExperienceFit,
		"availabilityMatch":     b.AvailabilityMatch,
		"locationCompatibility": b.LocationCompatibility,
		"communicationStyle":    b.CommunicationStyle,
	}
}

// Breakdown computes the per-factor sub-scores between an anchor profile and
// a candidate profile.
func (s *Scorer) Breakdown(anchor, candidate models.Profile) Breakdown {
	return Breakdown{
		SkillFit:              setOverlapScore(anchor.Skills, candidate.Skills),
		ValueAlignment:        setOverlapScore(anchor.Values, candidate.Values),
		GoalAlignment:         setOverlapScore(anchor.Goals, candidate.Goals),
		ExperienceFit:         s.experienceFit(anchor.ExperienceLevel, candidate.ExperienceLevel),
		AvailabilityMatch:     availabilityMatch(anchor.Commitment, candidate.Commitment),
		LocationCompatibility: locationCompatibility(anchor, candidate),
		CommunicationStyle:    setOverlapScore(anchor.CommunicationStyles, candidate.CommunicationStyles),
	}
}

// setOverlapScore scores two string sets by their overlap ratio: identical
// sets score 100, disjoint sets 0, partial overlap proportionally. Two empty
// sets carry no signal and resolve to the neutral default.
func setOverlapScore(a, b []string) int {
	as := normalizeSet(a)
	bs := normalizeSet(b)
	if len(as) == 0 && len(bs) == 0 {
		return 50
	}

	intersection := 0
	for v := range as {
		if _, ok := bs[v]; ok {
			intersection++
		}
	}
	union := len(as) + len(bs) - intersection
	if union == 0 {
		return 50
	}
	return clamp(int(float64(intersection)/float64(union)*100.0 + 0.5))
}

func normalizeSet(vals []string) map[string]struct{} {
	set := make(map[string]struct{}, len(vals))
	for _, v := range vals {
		v = strings.ToLower(strings.TrimSpace(v))
		if v != "" {
			set[v] = struct{}{}
		}
	}
	return set
}

func (s *Scorer) experienceFit(a, b models.ExperienceLevel) int {
	diff := a.Index() - b.Index()
	if diff < 0 {
		diff = -diff
	}
	return clamp(100 - diff*s.config.LevelPenalty)
}

func availabilityMatch(a, b models.Commitment) int {
	switch {
	case a == b:
		return 100
	case a == models.CommitmentFlexible || b == models.CommitmentFlexible:
		return 75
	default:
		return 40
	}
}

func locationCompatibility(anchor, candidate models.Profile) int {
	switch {
	case anchor.RemoteMode == models.RemoteModeRemote && candidate.RemoteMode == models.RemoteModeRemote:
		return 100
	case strings.EqualFold(anchor.Location, candidate.Location):
		return 100
	case anchor.RemoteMode == models.RemoteModeHybrid || candidate.RemoteMode == models.RemoteModeHybrid:
		return 70
	case anchor.RemoteMode == models.RemoteModeRemote || candidate.RemoteMode == models.RemoteModeRemote:
		return 60
	default:
		return 30
	}
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
