package models

import "time"

type SalaryRange struct {
	Min      int    `json:"min"`
	Max      int    `json:"max"`
	Currency string `json:"currency"`
}

type Job struct {
	ID              string          `json:"id"`
	TeamID          string          `json:"teamId"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Skills          []string        `json:"skills"`
	Type            JobType         `json:"type"`
	ExperienceLevel ExperienceLevel `json:"experienceLevel"`
	RemoteMode      RemoteMode      `json:"remoteMode"`
	Location        string          `json:"location"`
	Industry        string          `json:"industry"`
	Salary          *SalaryRange    `json:"salary,omitempty"`
	Views           int             `json:"views"`
	Applications    int             `json:"applications"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

func (j Job) EntityID() string          { return j.ID }
func (j Job) SkillTags() []string       { return j.Skills }
func (j Job) IndustryTag() string       { return j.Industry }
func (j Job) LocationTag() string       { return j.Location }
func (j Job) RemoteModeTag() RemoteMode { return j.RemoteMode }
