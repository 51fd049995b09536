package teammatch

type Config struct {
	SkillWeight      float64
	InterestWeight   float64
	ExperienceWeight float64
	PreferenceWeight float64

	// NeutralScore stands in for a factor when the team supplies no data for
	// it (no required skills, no open positions).
	NeutralScore int

	// LevelPenalty is subtracted from 100 per level of distance between the
	// user's experience index and the average open-position index.
	LevelPenalty int

	// FeaturedBonus and the venture bonus are added after the weighted sum;
	// the total is then clamped to 100.
	FeaturedBonus    int
	VentureBonus     int
	VentureBonusCap  int
	NotableThreshold int
}

func DefaultConfig() *Config {
	return &Config{
		SkillWeight:      0.4,
		InterestWeight:   0.3,
		ExperienceWeight: 0.2,
		PreferenceWeight: 0.1,
		NeutralScore:     50,
		LevelPenalty:     30,
		FeaturedBonus:    5,
		VentureBonus:     2,
		VentureBonusCap:  6,
		NotableThreshold: 70,
	}
}
