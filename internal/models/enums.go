package models

// ExperienceLevel is the ordered seniority scale shared by profiles, jobs
// and open positions.
type ExperienceLevel string

const (
	ExperienceEntry     ExperienceLevel = "entry"
	ExperienceMid       ExperienceLevel = "mid"
	ExperienceSenior    ExperienceLevel = "senior"
	ExperienceLead      ExperienceLevel = "lead"
	ExperienceExecutive ExperienceLevel = "executive"
)

// Index maps a level onto the ordinal scale used by distance-based scoring.
// Unknown values resolve to the mid index so sparse data stays neutral.
func (e ExperienceLevel) Index() int {
	switch e {
	case ExperienceEntry:
		return 0
	case ExperienceMid:
		return 1
	case ExperienceSenior:
		return 2
	case ExperienceLead:
		return 3
	case ExperienceExecutive:
		return 4
	default:
		return 1
	}
}

type Commitment string

const (
	CommitmentFullTime Commitment = "full-time"
	CommitmentPartTime Commitment = "part-time"
	CommitmentFlexible Commitment = "flexible"
)

type RemoteMode string

const (
	RemoteModeRemote RemoteMode = "remote"
	RemoteModeHybrid RemoteMode = "hybrid"
	RemoteModeOnsite RemoteMode = "onsite"
)

type JobType string

const (
	JobTypeFullTime   JobType = "full-time"
	JobTypePartTime   JobType = "part-time"
	JobTypeContract   JobType = "contract"
	JobTypeInternship JobType = "internship"
)
