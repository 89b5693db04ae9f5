package stats

// Package stats produces the placeholder statistics shown in the sidebar.
// Values are randomly generated on each load and are NOT derived from any
// child-process telemetry: once a game is spawned the portal has no further
// relationship with it.

import (
	"math/rand"
	"time"

	"github.com/pdsagames/games-portal/internal/model"
)

// Placeholder value ranges.
const (
	MaxPlayShare      = 100 // per-game share of recent activity, percent
	MaxSessionMinutes = 90
	MinSessionMinutes = 5
	MaxStreakDays     = 14
)

// GameShare is a per-game slice of the placeholder activity chart.
type GameShare struct {
	Game  model.Game
	Share int // 0..100
}

// Snapshot is one recomputed set of sidebar statistics.
type Snapshot struct {
	Shares         []GameShare
	SessionMinutes int
	StreakDays     int
}

// Generator produces placeholder statistics snapshots.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a generator seeded from the clock.
func NewGenerator() *Generator {
	return NewGeneratorWithSeed(time.Now().UnixNano())
}

// NewGeneratorWithSeed creates a deterministic generator for tests.
func NewGeneratorWithSeed(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Snapshot computes a fresh set of placeholder values over the game catalog.
func (g *Generator) Snapshot() Snapshot {
	games := model.Games()

	shares := make([]GameShare, 0, len(games))
	for _, game := range games {
		shares = append(shares, GameShare{
			Game:  game,
			Share: g.rng.Intn(MaxPlayShare + 1),
		})
	}

	return Snapshot{
		Shares:         shares,
		SessionMinutes: MinSessionMinutes + g.rng.Intn(MaxSessionMinutes-MinSessionMinutes+1),
		StreakDays:     g.rng.Intn(MaxStreakDays + 1),
	}
}
