package launch

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"time"

	"github.com/google/uuid"

	"github.com/pdsagames/games-portal/internal/model"
	"github.com/pdsagames/games-portal/internal/platform"
)

// Service handles game process launches for one application root.
type Service struct {
	rootDir string

	// systemInterpreter finds the fallback interpreter on PATH. Overridable
	// in tests; defaults to platform.SystemInterpreter.
	systemInterpreter func() (string, error)
}

// NewService creates a new launch service rooted at the given directory.
func NewService(rootDir string) *Service {
	return &Service{
		rootDir:           rootDir,
		systemInterpreter: platform.SystemInterpreter,
	}
}

// ResolveInterpreter picks the interpreter used to run games: the bundled
// environment when present, otherwise a system Python from PATH. A missing
// bundled environment is recovered silently apart from a logged warning.
func (s *Service) ResolveInterpreter() (string, bool, error) {
	bundled := platform.BundledInterpreterPath(s.rootDir)
	if _, err := os.Stat(bundled); err == nil {
		return bundled, false, nil
	}

	log.Printf("launcher: WARN bundled environment not found at %s, falling back to system interpreter", bundled)

	system, err := s.systemInterpreter()
	if err != nil {
		return "", true, fmt.Errorf("no usable interpreter: %w", err)
	}
	return system, true, nil
}

// Launch spawns the game script with the resolved interpreter and returns
// immediately. The child is fire-and-forget: no exit code is captured and
// no handle is kept for later termination. A goroutine reaps the process
// so finished children do not linger as zombies.
func (s *Service) Launch(game model.Game) (*model.LaunchRecord, error) {
	interp, usedFallback, err := s.ResolveInterpreter()
	if err != nil {
		return nil, &LaunchError{GameTitle: game.Title, Cause: err}
	}

	// The script path is intentionally not stat-ed here; a missing script
	// shows up as a spawn failure like any other.
	script := platform.GameScriptPath(s.rootDir, game.Dir)

	log.Printf("launcher: INFO launching %s from %s using %s", game.Title, script, interp)

	cmd := exec.Command(interp, script)
	if err := cmd.Start(); err != nil {
		log.Printf("launcher: ERROR failed to launch %s: %v", game.Title, err)
		return nil, &LaunchError{GameTitle: game.Title, Cause: err}
	}

	go func() {
		_ = cmd.Wait()
	}()

	record := &model.LaunchRecord{
		ID:              uuid.New().String(),
		GameID:          game.ID,
		GameTitle:       game.Title,
		PID:             cmd.Process.Pid,
		InterpreterPath: interp,
		ScriptPath:      script,
		UsedFallback:    usedFallback,
		StartedAt:       time.Now(),
	}

	log.Printf("launcher: INFO started %s (pid=%d, launch=%s)", game.Title, record.PID, record.ID)
	return record, nil
}
