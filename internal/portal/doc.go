package portal

// Package portal wires the launcher to the persisted profile. The UI emits
// launch requests by game ID; the controller spawns the process, applies
// the gamification reward on apparent success, persists the profile, and
// keeps the in-memory launch history for the sidebar.
