// Package store adapts the external profile/entity store to the engine's
// data model: Postgres rows in, immutable snapshots out, with a cache-aside
// Redis layer for hot profiles. The engine itself never persists anything.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/redis/go-redis/v9"

	stderrors "github.com/Growthlabsg/venturematch/internal/common/errors"
	"github.com/Growthlabsg/venturematch/internal/common/logger"
	"github.com/Growthlabsg/venturematch/internal/common/metrics"
	"github.com/Growthlabsg/venturematch/internal/common/validation"
	"github.com/Growthlabsg/venturematch/internal/models"
)

type Config struct {
	CacheTTL  time.Duration
	JobsIndex string
}

func DefaultConfig() *Config {
	return &Config{
		CacheTTL:  10 * time.Minute,
		JobsIndex: "jobs",
	}
}

type Store struct {
	db     *sql.DB
	cache  *redis.Client
	es     *elasticsearch.Client
	config *Config
	logger logger.Logger
}

func New(db *sql.DB, cache *redis.Client, es *elasticsearch.Client, cfg *Config, log logger.Logger) *Store {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Store{
		db:     db,
		cache:  cache,
		es:     es,
		config: cfg,
		logger: log.WithFields(map[string]interface{}{"component": "store"}),
	}
}

const profileCachePrefix = "profile:"

// GetProfile loads a user's co-founder profile, reading through the Redis
// cache when available.
func (s *Store) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	if s.cache != nil {
		if val, err := s.cache.Get(ctx, profileCachePrefix+userID).Result(); err == nil {
			var profile models.Profile
			if err := json.Unmarshal([]byte(val), &profile); err == nil {
				metrics.CacheHits.WithLabelValues("profile").Inc()
				return &profile, nil
			}
		}
		metrics.CacheMisses.WithLabelValues("profile").Inc()
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, name, email, skills, core_values, goals, interests, preferred_industries,
		       experience_level, commitment, remote_mode, location,
		       communication_styles, prior_ventures
		FROM profiles WHERE id = $1`, userID)

	var profile models.Profile
	var skills, coreValues, goals, interests, industries, styles []byte
	err := row.Scan(
		&profile.ID, &profile.Name, &profile.Email, &skills, &coreValues, &goals,
		&interests, &industries, &profile.ExperienceLevel,
		&profile.Commitment, &profile.RemoteMode, &profile.Location,
		&styles, &profile.PriorVentures,
	)
	if err == sql.ErrNoRows {
		return nil, stderrors.NewProfileNotFoundError(userID)
	}
	if err != nil {
		return nil, stderrors.NewQueryFailedError(stderrors.ErrCodeProfileQueryFailed, err.Error())
	}

	profile.Skills = unmarshalStrings(skills)
	profile.Values = unmarshalStrings(coreValues)
	profile.Goals = unmarshalStrings(goals)
	profile.Interests = unmarshalStrings(interests)
	profile.PreferredIndustries = unmarshalStrings(industries)
	profile.CommunicationStyles = unmarshalStrings(styles)

	if s.cache != nil {
		if data, err := json.Marshal(profile); err == nil {
			s.cache.Set(ctx, profileCachePrefix+profile.ID, data, s.config.CacheTTL)
		}
	}

	return &profile, nil
}

// InvalidateProfile drops a user's cached profile after an upstream edit.
func (s *Store) InvalidateProfile(ctx context.Context, userID string) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Del(ctx, profileCachePrefix+userID).Err()
}

// ListTeams loads every visible team snapshot.
func (s *Store) ListTeams(ctx context.Context) ([]models.Team, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, description, industry, stage, tags, required_skills,
		       open_positions, commitment, remote_mode, location, featured,
		       views, likes, saves, applications, liked_by, saved_by,
		       created_at, updated_at
		FROM teams
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, stderrors.NewQueryFailedError(stderrors.ErrCodeTeamQueryFailed, err.Error())
	}
	defer rows.Close()

	var teams []models.Team
	for rows.Next() {
		var t models.Team
		var tags, requiredSkills, openPositions, likedBy, savedBy []byte
		err := rows.Scan(
			&t.ID, &t.Name, &t.Description, &t.Industry, &t.Stage,
			&tags, &requiredSkills, &openPositions, &t.Commitment,
			&t.RemoteMode, &t.Location, &t.Featured,
			&t.Views, &t.Likes, &t.Saves, &t.Applications,
			&likedBy, &savedBy, &t.CreatedAt, &t.UpdatedAt,
		)
		if err != nil {
			return nil, stderrors.NewQueryFailedError(stderrors.ErrCodeTeamQueryFailed, err.Error())
		}
		t.Tags = unmarshalStrings(tags)
		t.RequiredSkills = unmarshalStrings(requiredSkills)
		t.LikedBy = unmarshalStrings(likedBy)
		t.SavedBy = unmarshalStrings(savedBy)
		if err := json.Unmarshal(openPositions, &t.OpenPositions); err != nil {
			t.OpenPositions = nil
		}
		teams = append(teams, t)
	}
	if err := rows.Err(); err != nil {
		return nil, stderrors.NewQueryFailedError(stderrors.ErrCodeTeamQueryFailed, err.Error())
	}
	return teams, nil
}

// UpdateTeamEngagement persists the counters and membership sets produced by
// the toggle helpers.
func (s *Store) UpdateTeamEngagement(ctx context.Context, team models.Team) error {
	likedBy, _ := json.Marshal(team.LikedBy)
	savedBy, _ := json.Marshal(team.SavedBy)

	_, err := s.db.ExecContext(ctx, `
		UPDATE teams
		SET likes = $2, saves = $3, liked_by = $4, saved_by = $5, updated_at = $6
		WHERE id = $1`,
		team.ID, team.Likes, team.Saves, likedBy, savedBy, time.Now().UTC())
	if err != nil {
		return stderrors.NewQueryFailedError(stderrors.ErrCodeTeamQueryFailed, err.Error())
	}
	return nil
}

// ListJobsCreatedSince returns jobs created after the given time, oldest
// first, for the alert watcher's poll loop.
func (s *Store) ListJobsCreatedSince(ctx context.Context, since time.Time) ([]models.Job, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, team_id, title, description, skills, job_type,
		       experience_level, remote_mode, location, industry, salary,
		       views, applications, created_at, updated_at
		FROM jobs
		WHERE created_at > $1
		ORDER BY created_at ASC`, since)
	if err != nil {
		return nil, stderrors.NewQueryFailedError(stderrors.ErrCodeJobQueryFailed, err.Error())
	}
	defer rows.Close()

	var jobs []models.Job
	for rows.Next() {
		var j models.Job
		var skills, salary []byte
		err := rows.Scan(
			&j.ID, &j.TeamID, &j.Title, &j.Description, &skills, &j.Type,
			&j.ExperienceLevel, &j.RemoteMode, &j.Location, &j.Industry,
			&salary, &j.Views, &j.Applications, &j.CreatedAt, &j.UpdatedAt,
		)
		if err != nil {
			return nil, stderrors.NewQueryFailedError(stderrors.ErrCodeJobQueryFailed, err.Error())
		}
		j.Skills = unmarshalStrings(skills)
		if len(salary) > 0 {
			var sr models.SalaryRange
			if err := json.Unmarshal(salary, &sr); err == nil {
				j.Salary = &sr
			}
		}
		jobs = append(jobs, j)
	}
	if err := rows.Err(); err != nil {
		return nil, stderrors.NewQueryFailedError(stderrors.ErrCodeJobQueryFailed, err.Error())
	}
	return jobs, nil
}

// ListEnabledAlerts loads every enabled alert. Criteria documents failing
// schema validation are skipped and logged rather than failing the batch.
func (s *Store) ListEnabledAlerts(ctx context.Context) ([]models.Alert, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, enabled, criteria
		FROM alerts
		WHERE enabled = true`)
	if err != nil {
		return nil, stderrors.NewQueryFailedError(stderrors.ErrCodeAlertQueryFailed, err.Error())
	}
	defer rows.Close()

	var alerts []models.Alert
	for rows.Next() {
		var id, userID string
		var enabled bool
		var criteria []byte
		if err := rows.Scan(&id, &userID, &enabled, &criteria); err != nil {
			return nil, stderrors.NewQueryFailedError(stderrors.ErrCodeAlertQueryFailed, err.Error())
		}

		if err := validation.ValidateAlertDefinition(criteria); err != nil {
			s.logger.Warn("skipping invalid alert definition", map[string]interface{}{
				"alertId": id,
				"error":   err,
			})
			continue
		}

		var alert models.Alert
		if err := json.Unmarshal(criteria, &alert); err != nil {
			s.logger.Warn("skipping unreadable alert definition", map[string]interface{}{
				"alertId": id,
				"error":   err,
			})
			continue
		}
		alert.ID = id
		alert.UserID = userID
		alert.Enabled = enabled
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, stderrors.NewQueryFailedError(stderrors.ErrCodeAlertQueryFailed, err.Error())
	}
	return alerts, nil
}

func unmarshalStrings(raw []byte) []string {
	if len(raw) == 0 {
		return nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}
