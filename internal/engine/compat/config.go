package compat

// Weights are the relative contributions of each breakdown factor to the
// aggregate score. They must sum to 1.0.
type Weights struct {
	Skills        float64
	Values        float64
	Goals         float64
	Experience    float64
	Availability  float64
	Location      float64
	Communication float64
}

type Config struct {
	Weights Weights
	// NotableThreshold is the sub-score a factor must reach to contribute a
	// match reason.
	NotableThreshold int
	// LevelPenalty is subtracted from 100 per level of experience distance.
	LevelPenalty int
}

// DefaultConfig returns the reference policy weighting, which emphasizes
// skills and values over communication style.
func DefaultConfig() *Config {
	return &Config{
		Weights: Weights{
			Skills:        0.25,
			Values:        0.20,
			Goals:         0.15,
			Experience:    0.15,
			Availability:  0.10,
			Location:      0.10,
			Communication: 0.05,
		},
		NotableThreshold: 75,
		LevelPenalty:     25,
	}
}
