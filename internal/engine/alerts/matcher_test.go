package alerts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Growthlabsg/venturematch/internal/common/logger"
	"github.com/Growthlabsg/venturematch/internal/models"
)

func intPtr(v int) *int { return &v }

func createTestJob() models.Job {
	return models.Job{
		ID:              "job-1",
		Title:           "Senior Backend Engineer",
		Description:     "Build payment rails in Go",
		Skills:          []string{"Go", "PostgreSQL"},
		Type:            models.JobTypeFullTime,
		ExperienceLevel: models.ExperienceSenior,
		RemoteMode:      models.RemoteModeRemote,
		Location:        "Singapore",
		Salary:          &models.SalaryRange{Min: 8000, Max: 12000, Currency: "SGD"},
	}
}

func TestMatches_EmptyAlertMatchesEverything(t *testing.T) {
	matcher := NewMatcher(logger.NewTestLogger(t))

	assert.True(t, matcher.Matches(createTestJob(), models.Alert{ID: "a1", Enabled: true}))
	assert.True(t, matcher.Matches(models.Job{ID: "bare"}, models.Alert{ID: "a1"}))
}

func TestMatches_Keywords(t *testing.T) {
	matcher := NewMatcher(logger.NewNoOpLogger())
	job := createTestJob()

	tests := []struct {
		name     string
		keywords []string
		expected bool
	}{
		{"title hit", []string{"backend"}, true},
		{"description hit", []string{"payment"}, true},
		{"skill hit", []string{"postgresql"}, true},
		{"any keyword suffices", []string{"nope", "backend"}, true},
		{"case insensitive", []string{"BACKEND"}, true},
		{"no hit", []string{"android"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			alert := models.Alert{Keywords: tt.keywords}
			assert.Equal(t, tt.expected, matcher.Matches(job, alert))
		})
	}
}

func TestMatches_Location(t *testing.T) {
	matcher := NewMatcher(logger.NewNoOpLogger())
	job := createTestJob()

	assert.True(t, matcher.Matches(job, models.Alert{Locations: []string{"singapore"}}))
	assert.True(t, matcher.Matches(job, models.Alert{Locations: []string{"Jakarta", "Singa"}}))
	assert.False(t, matcher.Matches(job, models.Alert{Locations: []string{"Berlin"}}))
}

func TestMatches_ExactMembershipCriteria(t *testing.T) {
	matcher := NewMatcher(logger.NewNoOpLogger())
	job := createTestJob()

	tests := []struct {
		name     string
		alert    models.Alert
		expected bool
	}{
		{"job type in set", models.Alert{JobTypes: []models.JobType{models.JobTypeFullTime, models.JobTypeContract}}, true},
		{"job type not in set", models.Alert{JobTypes: []models.JobType{models.JobTypeInternship}}, false},
		{"level in set", models.Alert{ExperienceLevels: []models.ExperienceLevel{models.ExperienceSenior}}, true},
		{"level not in set", models.Alert{ExperienceLevels: []models.ExperienceLevel{models.ExperienceEntry}}, false},
		{"remote mode in set", models.Alert{RemoteModes: []models.RemoteMode{models.RemoteModeRemote}}, true},
		{"remote mode not in set", models.Alert{RemoteModes: []models.RemoteMode{models.RemoteModeOnsite}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, matcher.Matches(job, tt.alert))
		})
	}
}

func TestMatches_SalaryOverlap(t *testing.T) {
	matcher := NewMatcher(logger.NewNoOpLogger())
	// Job pays 8000-12000 SGD.
	job := createTestJob()

	tests := []struct {
		name     string
		alert    models.Alert
		expected bool
	}{
		{"overlapping band", models.Alert{SalaryMin: intPtr(5000), SalaryMax: intPtr(9000)}, true},
		{"band below job range", models.Alert{SalaryMin: intPtr(1000), SalaryMax: intPtr(7999)}, false},
		{"band above job range", models.Alert{SalaryMin: intPtr(12001), SalaryMax: intPtr(20000)}, false},
		{"touching lower edge", models.Alert{SalaryMin: intPtr(12000)}, true},
		{"touching upper edge", models.Alert{SalaryMax: intPtr(8000)}, true},
		{"min only, satisfied", models.Alert{SalaryMin: intPtr(10000)}, true},
		{"max only, satisfied", models.Alert{SalaryMax: intPtr(10000)}, true},
		{"currency mismatch", models.Alert{SalaryMin: intPtr(5000), Currency: "USD"}, false},
		{"currency match is case insensitive", models.Alert{SalaryMin: intPtr(5000), Currency: "sgd"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, matcher.Matches(job, tt.alert))
		})
	}
}

func TestMatches_SalaryConstraintFailsWithoutSalaryData(t *testing.T) {
	matcher := NewMatcher(logger.NewNoOpLogger())

	job := createTestJob()
	job.Salary = nil

	assert.False(t, matcher.Matches(job, models.Alert{SalaryMin: intPtr(1)}))
	assert.True(t, matcher.Matches(job, models.Alert{}))
}

func TestMatches_Skills(t *testing.T) {
	matcher := NewMatcher(logger.NewNoOpLogger())
	job := createTestJob()

	assert.True(t, matcher.Matches(job, models.Alert{Skills: []string{"go"}}))
	assert.True(t, matcher.Matches(job, models.Alert{Skills: []string{"ruby", "postgres"}}))
	assert.False(t, matcher.Matches(job, models.Alert{Skills: []string{"ruby"}}))
}

func TestMatches_AllCriteriaMustHold(t *testing.T) {
	matcher := NewMatcher(logger.NewNoOpLogger())
	job := createTestJob()

	alert := models.Alert{
		Keywords:  []string{"backend"},
		Locations: []string{"Singapore"},
		JobTypes:  []models.JobType{models.JobTypeFullTime},
	}
	assert.True(t, matcher.Matches(job, alert))

	alert.Locations = []string{"Berlin"}
	assert.False(t, matcher.Matches(job, alert))
}

func TestFindMatchingJobs_SubsetAndOrder(t *testing.T) {
	matcher := NewMatcher(logger.NewTestLogger(t))

	goJob := createTestJob()
	rubyJob := models.Job{ID: "job-2", Title: "Rails Developer", Skills: []string{"Ruby"}}
	mlJob := models.Job{ID: "job-3", Title: "Go ML Engineer", Skills: []string{"Go", "Python"}}

	alert := models.Alert{Keywords: []string{"go"}}
	matched := matcher.FindMatchingJobs([]models.Job{goJob, rubyJob, mlJob}, alert)

	require.Len(t, matched, 2)
	assert.Equal(t, "job-1", matched[0].ID)
	assert.Equal(t, "job-3", matched[1].ID)
}

func TestFindMatchingAlerts_SkipsDisabled(t *testing.T) {
	matcher := NewMatcher(logger.NewNoOpLogger())
	job := createTestJob()

	alerts := []models.Alert{
		{ID: "a1", Enabled: true, Keywords: []string{"backend"}},
		{ID: "a2", Enabled: false, Keywords: []string{"backend"}},
		{ID: "a3", Enabled: true, Keywords: []string{"android"}},
		{ID: "a4", Enabled: true},
	}

	matched := matcher.FindMatchingAlerts(alerts, job)

	require.Len(t, matched, 2)
	assert.Equal(t, "a1", matched[0].ID)
	assert.Equal(t, "a4", matched[1].ID)
}

func TestMatches_Deterministic(t *testing.T) {
	matcher := NewMatcher(logger.NewNoOpLogger())
	job := createTestJob()
	alert := models.Alert{
		Keywords:    []string{"go", "backend"},
		Locations:   []string{"Singapore"},
		SalaryMin:   intPtr(5000),
		RemoteModes: []models.RemoteMode{models.RemoteModeRemote},
	}

	first := matcher.Matches(job, alert)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, matcher.Matches(job, alert))
	}
	assert.True(t, first)
}
