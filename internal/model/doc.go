package model

// Package model defines domain data structures used across the app: the
// static game catalog, the persisted user profile with its leveling rule,
// and launch records. Structures are designed for direct use in the UI and
// explicit state transitions.
