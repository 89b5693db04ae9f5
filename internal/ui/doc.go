package ui

// Package ui contains the Fyne-based desktop dashboard for the games
// portal. It renders the game cards, the sidebar (profile, filters,
// statistics, theme switcher), and wires user interactions to the portal
// controller. All UI strings are localized via Localization.
