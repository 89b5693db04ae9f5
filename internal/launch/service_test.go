package launch

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/pdsagames/games-portal/internal/model"
	"github.com/pdsagames/games-portal/internal/platform"
)

// writeScript writes an executable shell script and returns its path.
func writeScript(t *testing.T, path, body string) string {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(body), 0755); err != nil {
		t.Fatalf("Failed to write script: %v", err)
	}
	return path
}

// newTestRoot creates an app root with a fake bundled interpreter that
// exits immediately.
func newTestRoot(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeScript(t, platform.BundledInterpreterPath(root), "#!/bin/sh\nexit 0\n")
	return root
}

func testGame() model.Game {
	return model.Game{
		ID:    "eight-queens",
		Title: "Eight Queens Puzzle",
		Dir:   "eight_queen_game",
	}
}

func TestResolveInterpreter_PrefersBundled(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script interpreters are not runnable on windows")
	}

	root := newTestRoot(t)
	service := NewService(root)

	interp, usedFallback, err := service.ResolveInterpreter()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if usedFallback {
		t.Error("Expected bundled interpreter, got fallback")
	}
	if interp != platform.BundledInterpreterPath(root) {
		t.Errorf("Expected bundled path, got %s", interp)
	}
}

func TestResolveInterpreter_FallsBackWhenBundledMissing(t *testing.T) {
	service := NewService(t.TempDir()) // no pdsa_env underneath
	service.systemInterpreter = func() (string, error) {
		return "/usr/bin/python3", nil
	}

	interp, usedFallback, err := service.ResolveInterpreter()
	if err != nil {
		t.Fatalf("Expected fallback to succeed, got %v", err)
	}
	if !usedFallback {
		t.Error("Expected fallback flag to be set")
	}
	if interp != "/usr/bin/python3" {
		t.Errorf("Expected system interpreter, got %s", interp)
	}
}

func TestResolveInterpreter_ErrorWhenNoInterpreterAtAll(t *testing.T) {
	service := NewService(t.TempDir())
	service.systemInterpreter = func() (string, error) {
		return "", errors.New("not found")
	}

	_, usedFallback, err := service.ResolveInterpreter()
	if err == nil {
		t.Fatal("Expected error when no interpreter exists")
	}
	if !usedFallback {
		t.Error("Expected fallback flag even on failure")
	}
}

func TestLaunch_SpawnsBundledInterpreter(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script interpreters are not runnable on windows")
	}

	root := newTestRoot(t)
	service := NewService(root)

	record, err := service.Launch(testGame())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if record.PID <= 0 {
		t.Errorf("Expected positive PID, got %d", record.PID)
	}
	if record.ID == "" {
		t.Error("Expected launch record ID")
	}
	if record.UsedFallback {
		t.Error("Expected bundled interpreter, got fallback")
	}
	if record.GameID != "eight-queens" {
		t.Errorf("Expected game ID eight-queens, got %s", record.GameID)
	}
	expectedScript := platform.GameScriptPath(root, "eight_queen_game")
	if record.ScriptPath != expectedScript {
		t.Errorf("Expected script path %s, got %s", expectedScript, record.ScriptPath)
	}
}

func TestLaunch_FallsBackAndStillSpawns(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script interpreters are not runnable on windows")
	}

	root := t.TempDir() // bundled environment missing
	fallback := writeScript(t, filepath.Join(root, "fake-python"), "#!/bin/sh\nexit 0\n")

	service := NewService(root)
	service.systemInterpreter = func() (string, error) {
		return fallback, nil
	}

	record, err := service.Launch(testGame())
	if err != nil {
		t.Fatalf("Expected spawn to succeed via fallback, got %v", err)
	}
	if !record.UsedFallback {
		t.Error("Expected fallback flag on launch record")
	}
	if record.InterpreterPath != fallback {
		t.Errorf("Expected interpreter %s, got %s", fallback, record.InterpreterPath)
	}
}

func TestLaunch_SpawnFailureReturnsLaunchError(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permission semantics required")
	}

	root := t.TempDir()
	// Bundled interpreter exists but is not executable: Start must fail.
	interp := platform.BundledInterpreterPath(root)
	if err := os.MkdirAll(filepath.Dir(interp), 0755); err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}
	if err := os.WriteFile(interp, []byte("not a program"), 0644); err != nil {
		t.Fatalf("Failed to write file: %v", err)
	}

	service := NewService(root)

	_, err := service.Launch(testGame())
	if err == nil {
		t.Fatal("Expected spawn failure")
	}

	var launchErr *LaunchError
	if !errors.As(err, &launchErr) {
		t.Fatalf("Expected *LaunchError, got %T", err)
	}
	if launchErr.GameTitle != "Eight Queens Puzzle" {
		t.Errorf("Expected game title in error, got %q", launchErr.GameTitle)
	}
	if launchErr.Cause == nil {
		t.Error("Expected underlying cause")
	}
}

func TestLaunchError_Message(t *testing.T) {
	err := &LaunchError{GameTitle: "Knight's Tour", Cause: errors.New("permission denied")}

	expected := "error launching Knight's Tour: permission denied"
	if err.Error() != expected {
		t.Errorf("Expected %q, got %q", expected, err.Error())
	}
	if errors.Unwrap(err) == nil {
		t.Error("Expected unwrappable cause")
	}
}
