package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconPortal  = "🎮"
	IconProfile = "👤"
	IconStats   = "📊"
	IconTheme   = "🎨"
	IconHistory = "🕑"
	IconSearch  = "🔍"
	IconRefresh = "⟳"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
)

// Layout sizing
const (
	CardMinWidth   float32 = 220
	CardMinHeight  float32 = 240
	SidebarWidth   float32 = 260
	IconLabelSize  float32 = 48
	HistoryEntries         = 5
)

// Dialog sizing
const (
	ProfileDialogWidth  float32 = 420
	ProfileDialogHeight float32 = 260
)
