// Package compat scores compatibility between two co-founder profiles: a
// seven-factor breakdown, a weighted aggregate score, a quality tier and a
// short list of human-readable match reasons.
package compat

import (
	"math"
	"sort"
	"time"

	"github.com/Growthlabsg/venturematch/internal/common/logger"
	"github.com/Growthlabsg/venturematch/internal/common/metrics"
	"github.com/Growthlabsg/venturematch/internal/models"
)

type Scorer struct {
	config *Config
	logger logger.Logger
}

func NewScorer(cfg *Config, log logger.Logger) *Scorer {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Scorer{
		config: cfg,
		logger: log.WithFields(map[string]interface{}{"scorer": "compat"}),
	}
}

type factorScore struct {
	score  int
	reason string
}

// Score computes the aggregate compatibility between an anchor profile and a
// candidate profile.
func (s *Scorer) Score(anchor, candidate models.Profile) models.MatchResult {
	start := time.Now()

	b := s.Breakdown(anchor, candidate)
	w := s.config.Weights

	weighted := float64(b.SkillFit)*w.Skills +
		float64(b.ValueAlignment)*w.Values +
		float64(b.GoalAlignment)*w.Goals +
		float64(b.ExperienceFit)*w.Experience +
		float64(b.AvailabilityMatch)*w.Availability +
		float64(b.LocationCompatibility)*w.Location +
		float64(b.CommunicationStyle)*w.Communication

	score := clamp(int(math.Round(weighted)))

	result := models.MatchResult{
		CandidateID: candidate.ID,
		AnchorID:    anchor.ID,
		Score:       score,
		Tier:        models.TierForScore(score),
		Reasons:     s.reasons(b),
		Breakdown:   b.ToMap(),
	}

	metrics.ScoresComputed.WithLabelValues("compat").Inc()
	metrics.ScoreDuration.WithLabelValues("compat").Observe(time.Since(start).Seconds())

	s.logger.Debug("compatibility scored", map[string]interface{}{
		"anchorId":    anchor.ID,
		"candidateId": candidate.ID,
		"score":       score,
		"tier":        result.Tier,
	})

	return result
}

// reasons emits one phrase per factor clearing the notable threshold,
// ordered by descending sub-score and capped. An empty list is a valid
// state: a fair or poor match with no standout dimension.
func (s *Scorer) reasons(b Breakdown) []string {
	factors := []factorScore{
		{b.SkillFit, "Strong skill overlap"},
		{b.ValueAlignment, "Shared core values"},
		{b.GoalAlignment, "Aligned startup goals"},
		{b.ExperienceFit, "Similar experience level"},
		{b.AvailabilityMatch, "Compatible availability"},
		{b.LocationCompatibility, "Location works for both"},
		{b.CommunicationStyle, "Matching communication style"},
	}

	notable := make([]factorScore, 0, len(factors))
	for _, f := range factors {
		if f.score >= s.config.NotableThreshold {
			notable = append(notable, f)
		}
	}

	sort.SliceStable(notable, func(i, j int) bool {
		return notable[i].score > notable[j].score
	})

	if len(notable) > models.MaxMatchReasons {
		notable = notable[:models.MaxMatchReasons]
	}

	reasons := make([]string, 0, len(notable))
	for _, f := range notable {
		reasons = append(reasons, f.reason)
	}
	return reasons
}
