// Package alerts implements the criterion matcher between saved job alerts
// and job postings. Evaluation is AND across criteria with OR across the
// values of a multi-value criterion, short-circuiting on the first failure.
package alerts

import (
	"strings"

	"github.com/Growthlabsg/venturematch/internal/common/logger"
	"github.com/Growthlabsg/venturematch/internal/common/metrics"
	"github.com/Growthlabsg/venturematch/internal/models"
)

type Matcher struct {
	logger logger.Logger
}

func NewMatcher(log logger.Logger) *Matcher {
	return &Matcher{
		logger: log.WithFields(map[string]interface{}{"component": "alert-matcher"}),
	}
}

// Matches reports whether a job satisfies every declared criterion of an
// alert. Criteria left empty on the alert auto-pass.
func (m *Matcher) Matches(job models.Job, alert models.Alert) bool {
	metrics.AlertsEvaluated.Inc()

	if !matchesKeywords(job, alert.Keywords) {
		return false
	}
	if !matchesLocation(job, alert.Locations) {
		return false
	}
	if len(alert.JobTypes) > 0 && !containsJobType(alert.JobTypes, job.Type) {
		return false
	}
	if len(alert.ExperienceLevels) > 0 && !containsLevel(alert.ExperienceLevels, job.ExperienceLevel) {
		return false
	}
	if len(alert.RemoteModes) > 0 && !containsRemoteMode(alert.RemoteModes, job.RemoteMode) {
		return false
	}
	if !matchesSalary(job, alert) {
		return false
	}
	if !matchesSkills(job, alert.Skills) {
		return false
	}

	metrics.AlertsMatched.Inc()
	return true
}

// FindMatchingJobs filters a job collection down to the jobs satisfying the
// alert, preserving input order.
func (m *Matcher) FindMatchingJobs(jobs []models.Job, alert models.Alert) []models.Job {
	matched := make([]models.Job, 0)
	for _, job := range jobs {
		if m.Matches(job, alert) {
			matched = append(matched, job)
		}
	}

	m.logger.Debug("jobs filtered for alert", map[string]interface{}{
		"alertId":    alert.ID,
		"inputCount": len(jobs),
		"matched":    len(matched),
	})
	return matched
}

// FindMatchingAlerts returns the enabled alerts whose criteria a job
// satisfies, preserving input order.
func (m *Matcher) FindMatchingAlerts(alerts []models.Alert, job models.Job) []models.Alert {
	matched := make([]models.Alert, 0)
	for _, alert := range alerts {
		if !alert.Enabled {
			continue
		}
		if m.Matches(job, alert) {
			matched = append(matched, alert)
		}
	}

	m.logger.Debug("alerts matched for job", map[string]interface{}{
		"jobId":      job.ID,
		"inputCount": len(alerts),
		"matched":    len(matched),
	})
	return matched
}

func matchesKeywords(job models.Job, keywords []string) bool {
	if len(keywords) == 0 {
		return true
	}
	text := strings.ToLower(job.Title + " " + job.Description + " " + strings.Join(job.Skills, " "))
	for _, kw := range keywords {
		if kw == "" {
			continue
		}
		if strings.Contains(text, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

func matchesLocation(job models.Job, locations []string) bool {
	if len(locations) == 0 {
		return true
	}
	jobLoc := strings.ToLower(job.Location)
	for _, loc := range locations {
		if loc == "" {
			continue
		}
		if strings.Contains(jobLoc, strings.ToLower(loc)) {
			return true
		}
	}
	return false
}

// matchesSalary is a range-overlap test, not a containment test: the job's
// range and the alert's bounds must intersect. A job without salary data
// fails any salary-constrained alert, and currencies are never converted.
func matchesSalary(job models.Job, alert models.Alert) bool {
	if alert.SalaryMin == nil && alert.SalaryMax == nil {
		return true
	}
	if job.Salary == nil {
		return false
	}
	if alert.Currency != "" && !strings.EqualFold(alert.Currency, job.Salary.Currency) {
		return false
	}
	if alert.SalaryMin != nil && job.Salary.Max < *alert.SalaryMin {
		return false
	}
	if alert.SalaryMax != nil && job.Salary.Min > *alert.SalaryMax {
		return false
	}
	return true
}

func matchesSkills(job models.Job, skills []string) bool {
	if len(skills) == 0 {
		return true
	}
	for _, want := range skills {
		if want == "" {
			continue
		}
		lw := strings.ToLower(want)
		for _, have := range job.Skills {
			if strings.Contains(strings.ToLower(have), lw) {
				return true
			}
		}
	}
	return false
}

func containsJobType(set []models.JobType, v models.JobType) bool {
	for _, t := range set {
		if t == v {
			return true
		}
	}
	return false
}

func containsLevel(set []models.ExperienceLevel, v models.ExperienceLevel) bool {
	for _, l := range set {
		if l == v {
			return true
		}
	}
	return false
}

func containsRemoteMode(set []models.RemoteMode, v models.RemoteMode) bool {
	for _, r := range set {
		if r == v {
			return true
		}
	}
	return false
}
