package model

import "time"

// LaunchRecord captures one spawned game process. The portal keeps no
// control handle to the child: the record exists for the activity list and
// logging only, never for later termination.
type LaunchRecord struct {
	ID              string // uuid
	GameID          string
	GameTitle       string
	PID             int
	InterpreterPath string
	ScriptPath      string
	UsedFallback    bool // true when the bundled interpreter was missing
	StartedAt       time.Time
}
