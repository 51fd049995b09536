package models

// Alert is a saved job-search alert definition. Criteria fields left empty
// are not evaluated; SalaryMin/SalaryMax are nil when no bound was set.
type Alert struct {
	ID               string            `json:"id"`
	UserID           string            `json:"userId"`
	Keywords         []string          `json:"keywords"`
	Locations        []string          `json:"locations"`
	JobTypes         []JobType         `json:"jobTypes"`
	ExperienceLevels []ExperienceLevel `json:"experienceLevels"`
	RemoteModes      []RemoteMode      `json:"remoteModes"`
	SalaryMin        *int              `json:"salaryMin,omitempty"`
	SalaryMax        *int              `json:"salaryMax,omitempty"`
	Currency         string            `json:"currency,omitempty"`
	Skills           []string          `json:"skills"`
	Enabled          bool              `json:"enabled"`
}
