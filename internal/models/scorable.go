package models

// Scorable is the minimal capability a candidate entity exposes to the
// generic scorers. Team and Job both implement it, so batch scoring and
// similarity ranking depend on the capability rather than a concrete type.
type Scorable interface {
	EntityID() string
	SkillTags() []string
	IndustryTag() string
	LocationTag() string
	RemoteModeTag() RemoteMode
}

var (
	_ Scorable = Team{}
	_ Scorable = Job{}
)
