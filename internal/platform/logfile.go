package platform

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// Log file configuration
const (
	LogFileName        = "pdsa_games_portal.log"
	LogFilePermissions = 0644
)

// SetupLogFile redirects the standard logger to an append-only line log in
// the given directory, mirrored to stderr. Each line carries the standard
// date/time prefix; callers tag lines with a component and level, e.g.
// "launcher: WARN ...". The file handle is returned for closing on exit.
func SetupLogFile(dir string) (*os.File, error) {
	path := filepath.Join(dir, LogFileName)

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, LogFilePermissions)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file %s: %w", path, err)
	}

	log.SetOutput(io.MultiWriter(os.Stderr, f))
	log.SetFlags(log.LstdFlags)
	return f, nil
}
