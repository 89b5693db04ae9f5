package launch

import (
	"github.com/pdsagames/games-portal/internal/model"
)

// Launcher defines the interface for starting game processes.
type Launcher interface {
	// Launch spawns the game as an independent child process and returns a
	// record of the spawn. Success means the process started; the launcher
	// has no knowledge of whether the game ran correctly afterwards.
	Launch(game model.Game) (*model.LaunchRecord, error)

	// ResolveInterpreter reports the interpreter that Launch would use and
	// whether the bundled environment was missing.
	ResolveInterpreter() (path string, usedFallback bool, err error)
}
