package models

import "time"

type OpenPosition struct {
	Title           string          `json:"title"`
	Skills          []string        `json:"skills"`
	ExperienceLevel ExperienceLevel `json:"experienceLevel"`
}

type Team struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	Description    string         `json:"description"`
	Industry       string         `json:"industry"`
	Stage          string         `json:"stage"`
	Tags           []string       `json:"tags"`
	RequiredSkills []string       `json:"requiredSkills"`
	OpenPositions  []OpenPosition `json:"openPositions"`
	Commitment     Commitment     `json:"commitment"`
	RemoteMode     RemoteMode     `json:"remoteMode"`
	Location       string         `json:"location"`
	Featured       bool           `json:"featured"`
	Views          int            `json:"views"`
	Likes          int            `json:"likes"`
	Saves          int            `json:"saves"`
	Applications   int            `json:"applications"`
	LikedBy        []string       `json:"likedBy"`
	SavedBy        []string       `json:"savedBy"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

func (t Team) EntityID() string          { return t.ID }
func (t Team) SkillTags() []string       { return t.RequiredSkills }
func (t Team) IndustryTag() string       { return t.Industry }
func (t Team) LocationTag() string       { return t.Location }
func (t Team) RemoteModeTag() RemoteMode { return t.RemoteMode }
