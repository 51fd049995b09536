// Package batch fans one anchor profile out against many candidates across a
// bounded worker pool. Every candidate's score is independent, so partial
// results on cancellation are valid; the final ordering is deterministic
// regardless of scheduling.
package batch

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/Growthlabsg/venturematch/internal/common/logger"
	"github.com/Growthlabsg/venturematch/internal/common/metrics"
	"github.com/Growthlabsg/venturematch/internal/models"
)

// ScoreFunc scores one candidate against the anchor profile. It must be pure
// and safe for concurrent use.
type ScoreFunc func(profile models.Profile, candidate models.Scorable) models.MatchResult

type Config struct {
	Workers int
}

func DefaultConfig() *Config {
	return &Config{Workers: 4}
}

type Scorer struct {
	config *Config
	score  ScoreFunc
	logger logger.Logger
}

func NewScorer(cfg *Config, score ScoreFunc, log logger.Logger) *Scorer {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &Scorer{
		config: cfg,
		score:  score,
		logger: log.WithFields(map[string]interface{}{"scorer": "batch"}),
	}
}

// Score evaluates every candidate concurrently and returns the results
// ordered by descending score, ties broken by ascending candidate ID. When
// the context is cancelled mid-batch, the results computed so far are
// returned in the same deterministic order.
func (s *Scorer) Score(ctx context.Context, profile models.Profile, candidates []models.Scorable) []models.MatchResult {
	tracer := otel.Tracer("venturematch/engine/batch")
	ctx, span := tracer.Start(ctx, "batch.score")
	span.SetAttributes(
		attribute.String("anchor.id", profile.ID),
		attribute.Int("candidates", len(candidates)),
	)
	defer span.End()

	start := time.Now()
	metrics.BatchCandidates.Observe(float64(len(candidates)))

	jobs := make(chan int)
	out := make(chan models.MatchResult, len(candidates))

	var wg sync.WaitGroup
	for w := 0; w < s.config.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				out <- s.score(profile, candidates[idx])
			}
		}()
	}

	go func() {
	feed:
		for i := range candidates {
			select {
			case jobs <- i:
			case <-ctx.Done():
				break feed
			}
		}
		close(jobs)
		wg.Wait()
		close(out)
	}()

	results := make([]models.MatchResult, 0, len(candidates))
	for r := range out {
		results = append(results, r)
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].CandidateID < results[j].CandidateID
	})

	s.logger.Debug("batch scored", map[string]interface{}{
		"anchorId":   profile.ID,
		"candidates": len(candidates),
		"scored":     len(results),
		"durationMs": time.Since(start).Milliseconds(),
	})

	return results
}
