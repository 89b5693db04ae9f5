package model

// Game categories shown in the sidebar filter.
const (
	CategoryAll          = "All"
	CategoryPuzzle       = "Puzzle"
	CategoryStrategy     = "Strategy"
	CategoryRecursion    = "Recursion"
	CategoryOptimization = "Optimization"
)

// Capability tags describing what a game needs from its runtime environment.
const (
	CapabilityGUI    = "gui"
	CapabilityCharts = "charts"
	CapabilityAudio  = "audio"
)

// Game describes one launchable external game program. The catalog is
// static: descriptors are defined at startup and never mutated.
type Game struct {
	ID           string
	Title        string
	Icon         string // emoji shown on the card
	Description  string
	Color        string // accent color as #RRGGBB
	Dir          string // directory under <root>/games containing main.py
	Category     string
	Capabilities []string
}

// Games returns the static game catalog in display order.
func Games() []Game {
	return []Game{
		{
			ID:           "eight-queens",
			Title:        "Eight Queens Puzzle",
			Icon:         "👑",
			Description:  "Place eight queens on a chessboard so that no queen can attack another queen.",
			Color:        "#F50057",
			Dir:          "eight_queen_game",
			Category:     CategoryPuzzle,
			Capabilities: []string{CapabilityGUI},
		},
		{
			ID:           "knights-tour",
			Title:        "Knight's Tour",
			Icon:         "♞",
			Description:  "Find a sequence of moves for a knight to visit every square on a chessboard exactly once.",
			Color:        "#00B0FF",
			Dir:          "knights_tour_game",
			Category:     CategoryPuzzle,
			Capabilities: []string{CapabilityGUI},
		},
		{
			ID:           "tic-tac-toe",
			Title:        "Tic Tac Toe",
			Icon:         "⭕",
			Description:  "Classic game with AI opponents using Minimax and Alpha-Beta pruning algorithms.",
			Color:        "#3D5AFE",
			Dir:          "tic_tac_toe_game",
			Category:     CategoryStrategy,
			Capabilities: []string{CapabilityGUI, CapabilityCharts},
		},
		{
			ID:           "tower-of-hanoi",
			Title:        "Tower of Hanoi",
			Icon:         "🗼",
			Description:  "Move disks from one rod to another following specific rules.",
			Color:        "#FF6D00",
			Dir:          "tower_of_hanoi_game",
			Category:     CategoryRecursion,
			Capabilities: []string{CapabilityGUI, CapabilityAudio},
		},
		{
			ID:           "traveling-salesman",
			Title:        "Traveling Salesman",
			Icon:         "🧭",
			Description:  "Find the shortest route to visit all cities and return to the starting point.",
			Color:        "#00C853",
			Dir:          "traveling_salesman_game",
			Category:     CategoryOptimization,
			Capabilities: []string{CapabilityGUI},
		},
	}
}

// GameByID returns the catalog entry with the given ID.
func GameByID(id string) (Game, bool) {
	for _, g := range Games() {
		if g.ID == id {
			return g, true
		}
	}
	return Game{}, false
}

// Categories returns the filter categories in display order, starting with
// the pseudo-category "All".
func Categories() []string {
	return []string{
		CategoryAll,
		CategoryPuzzle,
		CategoryStrategy,
		CategoryRecursion,
		CategoryOptimization,
	}
}
