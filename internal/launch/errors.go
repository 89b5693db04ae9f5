package launch

import "fmt"

// LaunchError reports a failed attempt to spawn a game process. The portal
// shows it to the user verbatim and stays running; the card remains
// clickable for another try.
type LaunchError struct {
	GameTitle string
	Cause     error
}

// Error returns the user-facing message with the game name and cause.
func (e *LaunchError) Error() string {
	return fmt.Sprintf("error launching %s: %v", e.GameTitle, e.Cause)
}

// Unwrap exposes the underlying spawn error.
func (e *LaunchError) Unwrap() error {
	return e.Cause
}
