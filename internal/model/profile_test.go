package model

import "testing"

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
	}{
		{"Beginner", LevelBeginner},
		{"Intermediate", LevelIntermediate},
		{"Advanced", LevelAdvanced},
		{"Expert", LevelExpert},
		{"", LevelBeginner},
		{"garbage", LevelBeginner},
	}

	for _, test := range tests {
		result := ParseLevel(test.input)
		if result != test.expected {
			t.Errorf("ParseLevel(%q) = %s, expected %s", test.input, result, test.expected)
		}
	}
}

func TestProfile_ApplyLaunchReward(t *testing.T) {
	p := DefaultProfile()

	p.ApplyLaunchReward()

	if p.GamesPlayed != 1 {
		t.Errorf("Expected GamesPlayed 1, got %d", p.GamesPlayed)
	}
	if p.LevelProgress != LaunchProgressReward {
		t.Errorf("Expected LevelProgress %d, got %d", LaunchProgressReward, p.LevelProgress)
	}
	if p.Level != LevelBeginner {
		t.Errorf("Expected level to stay Beginner, got %s", p.Level)
	}
}

func TestProfile_ApplyLaunchReward_PromotesBeginner(t *testing.T) {
	// One more launch from 98 crosses 100: promote and reset.
	p := Profile{Name: "Player", Level: LevelBeginner, GamesPlayed: 19, LevelProgress: 98}

	p.ApplyLaunchReward()

	if p.Level != LevelIntermediate {
		t.Errorf("Expected promotion to Intermediate, got %s", p.Level)
	}
	if p.LevelProgress != 0 {
		t.Errorf("Expected progress reset to 0, got %d", p.LevelProgress)
	}
	if p.GamesPlayed != 20 {
		t.Errorf("Expected GamesPlayed 20, got %d", p.GamesPlayed)
	}
}

func TestProfile_ApplyLaunchReward_ClampsAboveBeginner(t *testing.T) {
	for _, level := range []Level{LevelIntermediate, LevelAdvanced, LevelExpert} {
		p := Profile{Name: "Player", Level: level, LevelProgress: 99}

		p.ApplyLaunchReward()

		if p.Level != level {
			t.Errorf("Level %s should not promote, got %s", level, p.Level)
		}
		if p.LevelProgress != MaxLevelProgress {
			t.Errorf("Level %s: expected progress clamped to %d, got %d",
				level, MaxLevelProgress, p.LevelProgress)
		}
	}
}

func TestProfile_ApplyLaunchReward_ProgressStaysInRange(t *testing.T) {
	p := DefaultProfile()

	// Enough launches to cross the promotion boundary several times over.
	for i := 0; i < 100; i++ {
		p.ApplyLaunchReward()

		if p.LevelProgress < MinLevelProgress || p.LevelProgress > MaxLevelProgress {
			t.Fatalf("Launch %d: progress %d out of range [%d,%d]",
				i+1, p.LevelProgress, MinLevelProgress, MaxLevelProgress)
		}
		if p.GamesPlayed != i+1 {
			t.Fatalf("Launch %d: expected GamesPlayed %d, got %d", i+1, i+1, p.GamesPlayed)
		}
	}
}

func TestProfile_Clamp(t *testing.T) {
	p := Profile{Name: "", Level: Level("bogus"), GamesPlayed: -3, LevelProgress: 140}

	p.Clamp()

	if p.Name != DefaultProfileName {
		t.Errorf("Expected name %q, got %q", DefaultProfileName, p.Name)
	}
	if p.Level != LevelBeginner {
		t.Errorf("Expected level Beginner, got %s", p.Level)
	}
	if p.GamesPlayed != 0 {
		t.Errorf("Expected GamesPlayed 0, got %d", p.GamesPlayed)
	}
	if p.LevelProgress != MaxLevelProgress {
		t.Errorf("Expected progress %d, got %d", MaxLevelProgress, p.LevelProgress)
	}

	p = Profile{Name: "Ann", Level: LevelExpert, GamesPlayed: 5, LevelProgress: -1}
	p.Clamp()
	if p.LevelProgress != MinLevelProgress {
		t.Errorf("Expected progress %d, got %d", MinLevelProgress, p.LevelProgress)
	}
}
