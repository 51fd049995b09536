package models

// Profile is the anchor entity for matching: the current user's co-founder
// profile as supplied by the profile store. The engine never mutates it.
type Profile struct {
	ID                  string          `json:"id"`
	Name                string          `json:"name"`
	Email               string          `json:"email"`
	Skills              []string        `json:"skills"`
	Values              []string        `json:"values"`
	Goals               []string        `json:"goals"`
	Interests           []string        `json:"interests"`
	PreferredIndustries []string        `json:"preferredIndustries"`
	ExperienceLevel     ExperienceLevel `json:"experienceLevel"`
	Commitment          Commitment      `json:"commitment"`
	RemoteMode          RemoteMode      `json:"remoteMode"`
	Location            string          `json:"location"`
	CommunicationStyles []string        `json:"communicationStyles"`
	PriorVentures       int             `json:"priorVentures"`
}
