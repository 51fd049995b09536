// Package trending ranks teams by a time-decayed multi-signal popularity
// score and exposes the discovery sort orders. "Trending" (normalized and
// decayed) and "popular" (raw views+likes) are intentionally distinct
// policies and stay separate.
package trending

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/Growthlabsg/venturematch/internal/common/logger"
	"github.com/Growthlabsg/venturematch/internal/common/metrics"
	"github.com/Growthlabsg/venturematch/internal/models"
)

type Ranker struct {
	config *Config
	logger logger.Logger
	now    func() time.Time
}

func NewRanker(cfg *Config, log logger.Logger) *Ranker {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Ranker{
		config: cfg,
		logger: log.WithFields(map[string]interface{}{"component": "trending-ranker"}),
		now:    time.Now,
	}
}

// WithClock overrides the time source. Used by tests and backfills.
func (r *Ranker) WithClock(now func() time.Time) *Ranker {
	r.now = now
	return r
}

// TrendingScore computes the composite trending score in [0,100].
func (r *Ranker) TrendingScore(team models.Team) int {
	start := time.Now()

	views := normalize(float64(team.Views), r.config.ViewsCeiling)
	likes := normalize(float64(team.Likes), r.config.LikesCeiling)
	applications := normalize(float64(team.Applications), r.config.ApplicationsCeiling)
	recency := r.recencyScore(team.UpdatedAt)

	score := clamp(int(math.Round(
		views*r.config.ViewsWeight +
			likes*r.config.LikesWeight +
			applications*r.config.ApplicationsWeight +
			recency*r.config.RecencyWeight)))

	metrics.ScoresComputed.WithLabelValues("trending").Inc()
	metrics.ScoreDuration.WithLabelValues("trending").Observe(time.Since(start).Seconds())

	return score
}

func normalize(value, ceiling float64) float64 {
	if ceiling <= 0 || value <= 0 {
		return 0
	}
	return math.Min(value/ceiling*100.0, 100.0)
}

// recencyScore decays linearly: a team untouched for ~20 days at the default
// 5-point daily penalty bottoms out at 0.
func (r *Ranker) recencyScore(updatedAt time.Time) float64 {
	days := r.now().Sub(updatedAt).Hours() / 24.0
	if days < 0 {
		days = 0
	}
	return math.Max(100.0-days*r.config.DailyRecencyPenalty, 0)
}

// SortByTrending returns a new slice ordered by descending trending score.
// The sort is stable so equal scores keep their input order.
func (r *Ranker) SortByTrending(teams []models.Team) []models.Team {
	sorted := make([]models.Team, len(teams))
	copy(sorted, teams)

	scores := make(map[string]int, len(teams))
	for _, t := range sorted {
		scores[t.ID] = r.TrendingScore(t)
	}

	sort.SliceStable(sorted, func(i, j int) bool {
		return scores[sorted[i].ID] > scores[sorted[j].ID]
	})
	return sorted
}

// SortByNewest returns a new slice ordered by descending creation time.
func (r *Ranker) SortByNewest(teams []models.Team) []models.Team {
	sorted := make([]models.Team, len(teams))
	copy(sorted, teams)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	return sorted
}

// SortByPopular returns a new slice ordered by descending raw views+likes.
func (r *Ranker) SortByPopular(teams []models.Team) []models.Team {
	sorted := make([]models.Team, len(teams))
	copy(sorted, teams)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Views+sorted[i].Likes > sorted[j].Views+sorted[j].Likes
	})
	return sorted
}

// SimilarTeams ranks a candidate pool by similarity to a reference team and
// returns the top limit entries, excluding the reference itself.
func (r *Ranker) SimilarTeams(ref models.Team, pool []models.Team, limit int) []models.Team {
	type scored struct {
		team  models.Team
		score float64
	}

	candidates := make([]scored, 0, len(pool))
	for _, t := range pool {
		if t.ID == ref.ID {
			continue
		}
		candidates = append(candidates, scored{team: t, score: r.similarity(ref, t)})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if limit > 0 && len(candidates) > limit {
		candidates = candidates[:limit]
	}

	out := make([]models.Team, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.team)
	}
	return out
}

func (r *Ranker) similarity(ref, candidate models.Team) float64 {
	score := 0.0
	if ref.Industry != "" && strings.EqualFold(ref.Industry, candidate.Industry) {
		score += 40
	}
	score += sharedRatio(ref.RequiredSkills, candidate.RequiredSkills) * 30
	if ref.Stage != "" && strings.EqualFold(ref.Stage, candidate.Stage) {
		score += 20
	}
	score += sharedRatio(ref.Tags, candidate.Tags) * 10
	return score
}

// sharedRatio is the fraction of the reference set found in the candidate
// set, case-insensitively.
func sharedRatio(ref, candidate []string) float64 {
	if len(ref) == 0 {
		return 0
	}
	set := make(map[string]struct{}, len(candidate))
	for _, v := range candidate {
		set[strings.ToLower(strings.TrimSpace(v))] = struct{}{}
	}
	shared := 0
	for _, v := range ref {
		if _, ok := set[strings.ToLower(strings.TrimSpace(v))]; ok {
			shared++
		}
	}
	return float64(shared) / float64(len(ref))
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
