package launch

// Package launch spawns the external game programs as detached child
// processes. It resolves the bundled Python interpreter with a fallback to
// the system one, fires the process without waiting for completion, and
// reports spawn failures as typed errors for user-facing display.
