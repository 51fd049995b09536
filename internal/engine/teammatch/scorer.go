// Package teammatch scores how well a user profile fits a team: required
// skills, industry interest, experience against the team's open positions and
// commitment/remote preferences, with bounded bonuses for featured teams and
// prior founder experience.
package teammatch

import (
	"fmt"
	"math"
	"sort"
	"strings"
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
		logger: log.WithFields(map[string]interface{}{"scorer": "teammatch"}),
	}
}

type contribution struct {
	weight float64
	reason string
}

// Score computes the user-to-team match. Bonuses are applied after the
// weighted sum and the total is clamped to 100 afterwards; the pre-bonus
// weights sum to 1.0.
func (s *Scorer) Score(profile models.Profile, team models.Team) models.MatchResult {
	start := time.Now()

	skillScore, matchedSkills := s.skillMatch(profile, team)
	interestScore := s.interestMatch(profile, team)
	experienceScore := s.experienceMatch(profile, team)
	preferenceScore := s.preferenceMatch(profile, team)

	weighted := int(math.Round(
		float64(skillScore)*s.config.SkillWeight +
			float64(interestScore)*s.config.InterestWeight +
			float64(experienceScore)*s.config.ExperienceWeight +
			float64(preferenceScore)*s.config.PreferenceWeight))

	total := weighted
	featuredBonus := 0
	if team.Featured {
		featuredBonus = s.config.FeaturedBonus
		total += featuredBonus
	}
	ventureBonus := 0
	if profile.PriorVentures > 0 {
		ventureBonus = profile.PriorVentures * s.config.VentureBonus
		if ventureBonus > s.config.VentureBonusCap {
			ventureBonus = s.config.VentureBonusCap
		}
		total += ventureBonus
	}
	total = clamp(total)

	result := models.MatchResult{
		CandidateID: team.ID,
		AnchorID:    profile.ID,
		Score:       total,
		Tier:        models.TierForScore(total),
		Reasons: s.reasons(
			skillScore, matchedSkills, len(team.RequiredSkills),
			interestScore, experienceScore, len(team.OpenPositions),
			preferenceScore, featuredBonus, ventureBonus,
		),
		Breakdown: map[string]int{
			"skillMatch":      skillScore,
			"interestMatch":   interestScore,
			"experienceMatch": experienceScore,
			"preferenceMatch": preferenceScore,
		},
	}

	metrics.ScoresComputed.WithLabelValues("teammatch").Inc()
	metrics.ScoreDuration.WithLabelValues("teammatch").Observe(time.Since(start).Seconds())

	s.logger.Debug("team match scored", map[string]interface{}{
		"userId": profile.ID,
		"teamId": team.ID,
		"score":  total,
	})

	return result
}

// skillMatch is the ratio of the team's required skills covered by the
// user's skills, via case-insensitive bidirectional substring matching. A
// team declaring no required skills resolves to the neutral default rather
// than a perfect or zero score.
func (s *Scorer) skillMatch(profile models.Profile, team models.Team) (int, int) {
	if len(team.RequiredSkills) == 0 {
		return s.config.NeutralScore, 0
	}

	matched := 0
	for _, required := range team.RequiredSkills {
		if skillListed(profile.Skills, required) {
			matched++
		}
	}
	score := clamp(int(math.Round(float64(matched) / float64(len(team.RequiredSkills)) * 100.0)))
	return score, matched
}

func skillListed(skills []string, want string) bool {
	lw := strings.ToLower(strings.TrimSpace(want))
	if lw == "" {
		return false
	}
	for _, have := range skills {
		lh := strings.ToLower(strings.TrimSpace(have))
		if lh == "" {
			continue
		}
		if strings.Contains(lh, lw) || strings.Contains(lw, lh) {
			return true
		}
	}
	return false
}

// interestMatch keeps a deliberate non-zero floor so unrelated teams still
// participate in sorting.
func (s *Scorer) interestMatch(profile models.Profile, team models.Team) int {
	for _, industry := range profile.PreferredIndustries {
		if strings.EqualFold(industry, team.Industry) {
			return 100
		}
	}
	industry := strings.ToLower(team.Industry)
	for _, interest := range profile.Interests {
		li := strings.ToLower(strings.TrimSpace(interest))
		if li == "" || industry == "" {
			continue
		}
		if strings.Contains(industry, li) || strings.Contains(li, industry) {
			return 70
		}
	}
	return 30
}

// experienceMatch compares the user's level index against the average index
// of the team's open positions.
func (s *Scorer) experienceMatch(profile models.Profile, team models.Team) int {
	if len(team.OpenPositions) == 0 {
		return s.config.NeutralScore
	}

	sum := 0
	for _, pos := range team.OpenPositions {
		sum += pos.ExperienceLevel.Index()
	}
	avg := float64(sum) / float64(len(team.OpenPositions))

	diff := math.Abs(float64(profile.ExperienceLevel.Index()) - avg)
	return clamp(int(math.Round(100.0 - diff*float64(s.config.LevelPenalty))))
}

// preferenceMatch sums two independently capped half-scores: commitment and
// remote mode. Exact matches earn the full half; a "flexible" commitment or
// "hybrid" remote mode on either side earns partial credit.
func (s *Scorer) preferenceMatch(profile models.Profile, team models.Team) int {
	commitment := 0
	switch {
	case profile.Commitment == team.Commitment:
		commitment = 50
	case profile.Commitment == models.CommitmentFlexible || team.Commitment == models.CommitmentFlexible:
		commitment = 30
	}

	remote := 0
	switch {
	case profile.RemoteMode == team.RemoteMode:
		remote = 50
	case profile.RemoteMode == models.RemoteModeHybrid || team.RemoteMode == models.RemoteModeHybrid:
		remote = 30
	}

	return clamp(commitment + remote)
}

func (s *Scorer) reasons(
	skillScore, matchedSkills, requiredSkills int,
	interestScore, experienceScore, openPositions int,
	preferenceScore, featuredBonus, ventureBonus int,
) []string {
	var contribs []contribution

	if matchedSkills > 0 && skillScore >= s.config.NotableThreshold {
		contribs = append(contribs, contribution{
			weight: float64(skillScore) * s.config.SkillWeight,
			reason: fmt.Sprintf("Matches %d of %d required skills", matchedSkills, requiredSkills),
		})
	}
	if interestScore >= s.config.NotableThreshold {
		contribs = append(contribs, contribution{
			weight: float64(interestScore) * s.config.InterestWeight,
			reason: "Industry aligns with your interests",
		})
	}
	if openPositions > 0 && experienceScore >= s.config.NotableThreshold {
		contribs = append(contribs, contribution{
			weight: float64(experienceScore) * s.config.ExperienceWeight,
			reason: "Experience level fits the open roles",
		})
	}
	if preferenceScore >= s.config.NotableThreshold {
		contribs = append(contribs, contribution{
			weight: float64(preferenceScore) * s.config.PreferenceWeight,
			reason: "Work style preferences align",
		})
	}
	if featuredBonus > 0 {
		contribs = append(contribs, contribution{
			weight: float64(featuredBonus),
			reason: "Featured team",
		})
	}
	if ventureBonus > 0 {
		contribs = append(contribs, contribution{
			weight: float64(ventureBonus),
			reason: "Your prior founder experience is valued",
		})
	}

	sort.SliceStable(contribs, func(i, j int) bool {
		return contribs[i].weight > contribs[j].weight
	})

	if len(contribs) > models.MaxMatchReasons {
		contribs = contribs[:models.MaxMatchReasons]
	}

	reasons := make([]string, 0, len(contribs))
	for _, c := range contribs {
		reasons = append(reasons, c.reason)
	}
	return reasons
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
