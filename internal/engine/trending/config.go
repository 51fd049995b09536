package trending

// Config holds the reference ceilings and weights of the trending score.
// Each raw signal is normalized against its ceiling and capped at 100 before
// weighting, so a single viral signal cannot dominate the composite.
type Config struct {
	ViewsCeiling        float64
	LikesCeiling        float64
	ApplicationsCeiling float64

	ViewsWeight        float64
	LikesWeight        float64
	ApplicationsWeight float64
	RecencyWeight      float64

	// DailyRecencyPenalty is subtracted from 100 per elapsed day since the
	// entity's last update. Linear decay, floored at 0.
	DailyRecencyPenalty float64
}

func DefaultConfig() *Config {
	return &Config{
		ViewsCeiling:        10000,
		LikesCeiling:        500,
		ApplicationsCeiling: 100,
		ViewsWeight:         0.3,
		LikesWeight:         0.3,
		ApplicationsWeight:  0.2,
		RecencyWeight:       0.2,
		DailyRecencyPenalty: 5,
	}
}
