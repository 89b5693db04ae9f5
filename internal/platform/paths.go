package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSWindows = "windows"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Bundled environment layout under the application root.
const (
	BundledEnvDir     = "pdsa_env"
	GamesDir          = "games"
	GameEntryScript   = "main.py"
	UnixInterpBin     = "bin"
	UnixInterpName    = "python"
	WindowsInterpBin  = "Scripts"
	WindowsInterpName = "python.exe"
)

// Interpreter names probed on PATH, in order of preference.
var SystemInterpreterNames = []string{"python3", "python"}

// AppRootDir returns the directory containing the running executable. The
// bundled environment and the games live next to the portal binary.
func AppRootDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("failed to locate executable: %w", err)
	}
	return filepath.Dir(exe), nil
}

// BundledInterpreterPath returns the expected path of the bundled Python
// interpreter under the given application root. The path is not checked
// for existence.
func BundledInterpreterPath(rootDir string) string {
	if runtime.GOOS == OSWindows {
		return filepath.Join(rootDir, BundledEnvDir, WindowsInterpBin, WindowsInterpName)
	}
	return filepath.Join(rootDir, BundledEnvDir, UnixInterpBin, UnixInterpName)
}

// GameScriptPath returns the entry script path for a game directory under
// the given application root. The script is not validated before spawn;
// a missing file surfaces as a spawn error.
func GameScriptPath(rootDir, gameDir string) string {
	return filepath.Join(rootDir, GamesDir, gameDir, GameEntryScript)
}

// SystemInterpreter finds a Python interpreter on PATH, preferring python3.
func SystemInterpreter() (string, error) {
	for _, name := range SystemInterpreterNames {
		if path, err := exec.LookPath(name); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("no python interpreter found on PATH (tried %v)", SystemInterpreterNames)
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}
