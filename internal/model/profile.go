package model

// Level represents the user's skill tier in the portal.
type Level string

const (
	// LevelBeginner is the starting tier for new profiles.
	LevelBeginner Level = "Beginner"

	// LevelIntermediate is reached by filling the Beginner progress bar.
	LevelIntermediate Level = "Intermediate"

	// LevelAdvanced is a display-only tier with no automatic promotion.
	LevelAdvanced Level = "Advanced"

	// LevelExpert is the highest tier.
	LevelExpert Level = "Expert"
)

// String returns the string representation of Level.
func (l Level) String() string {
	return string(l)
}

// ParseLevel maps a stored string back to a Level, defaulting to Beginner
// for unknown or empty input so a corrupted preference never breaks startup.
func ParseLevel(s string) Level {
	switch Level(s) {
	case LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert:
		return Level(s)
	default:
		return LevelBeginner
	}
}

// Levels returns all tiers in ascending order.
func Levels() []Level {
	return []Level{LevelBeginner, LevelIntermediate, LevelAdvanced, LevelExpert}
}

// Progress bounds and the per-launch reward.
const (
	MinLevelProgress     = 0
	MaxLevelProgress     = 100
	LaunchProgressReward = 5
	DefaultProfileName   = "Player"
)

// Profile is the small persisted gamification state for the user. It is
// mutated only by launch rewards and explicit user edits, and round-trips
// through the preferences store across restarts.
type Profile struct {
	Name          string
	Level         Level
	GamesPlayed   int // non-negative, strictly +1 per successful spawn
	LevelProgress int // always within [0,100]
}

// DefaultProfile returns the profile used before the user ever edits it.
func DefaultProfile() Profile {
	return Profile{
		Name:          DefaultProfileName,
		Level:         LevelBeginner,
		GamesPlayed:   0,
		LevelProgress: 0,
	}
}

// Clamp forces LevelProgress back into [0,100] and GamesPlayed to be
// non-negative. Used after reading persisted values that may have been
// edited out of range.
func (p *Profile) Clamp() {
	if p.LevelProgress < MinLevelProgress {
		p.LevelProgress = MinLevelProgress
	}
	if p.LevelProgress > MaxLevelProgress {
		p.LevelProgress = MaxLevelProgress
	}
	if p.GamesPlayed < 0 {
		p.GamesPlayed = 0
	}
	if p.Name == "" {
		p.Name = DefaultProfileName
	}
	p.Level = ParseLevel(string(p.Level))
}

// ApplyLaunchReward records one successful game launch: the play counter
// increments by exactly one and progress grows by the fixed reward.
// Crossing 100 while at Beginner promotes to Intermediate and resets
// progress; every other tier just clamps at 100. This is the single
// hard-coded promotion rule, not a general leveling state machine.
func (p *Profile) ApplyLaunchReward() {
	p.GamesPlayed++
	p.LevelProgress += LaunchProgressReward

	if p.LevelProgress >= MaxLevelProgress {
		if p.Level == LevelBeginner {
			p.Level = LevelIntermediate
			p.LevelProgress = MinLevelProgress
		} else {
			p.LevelProgress = MaxLevelProgress
		}
	}
}
