package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestResolveLogFilePath(t *testing.T) {
	tmpDir := t.TempDir()

	got, err := resolveLogFilePath(Options{Dir: tmpDir, Filename: "store.log"})
	if err != nil {
		t.Fatalf("resolve log path failed: %v", err)
	}
	if got != filepath.Join(tmpDir, "store.log") {
		t.Fatalf("log path = %s", got)
	}
	if _, err := os.Stat(got); err != nil {
		t.Fatalf("log file should be created writable: %v", err)
	}

	// Empty filename falls back to the default.
	got, err = resolveLogFilePath(Options{Dir: tmpDir})
	if err != nil {
		t.Fatalf("resolve default filename failed: %v", err)
	}
	if filepath.Base(got) != defaultLogFilename {
		t.Fatalf("default filename = %s, want %s", filepath.Base(got), defaultLogFilename)
	}
}

func TestResolveLogFilePathDefaultsToWorkdirLogs(t *testing.T) {
	tmpDir := t.TempDir()
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("get wd failed: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(oldWD)
	})
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("chdir failed: %v", err)
	}

	got, err := resolveLogFilePath(Options{})
	if err != nil {
		t.Fatalf("resolve default log path failed: %v", err)
	}
	if filepath.Base(filepath.Dir(got)) != defaultLogDirName {
		t.Fatalf("log dir = %s, want %s", filepath.Dir(got), defaultLogDirName)
	}
	if _, err := os.Stat(filepath.Dir(got)); err != nil {
		t.Fatalf("log dir should be created: %v", err)
	}
}

func TestReleaseModeWritesJSONToFile(t *testing.T) {
	tmpDir := t.TempDir()
	log := New("release", Options{Dir: tmpDir, Filename: "release.log"})
	log.Info("order_paid_marker")
	_ = log.Sync()

	content, err := os.ReadFile(filepath.Join(tmpDir, "release.log"))
	if err != nil {
		t.Fatalf("read release log failed: %v", err)
	}
	if !strings.Contains(string(content), "order_paid_marker") {
		t.Fatalf("log file missing message: %s", string(content))
	}
	if !strings.Contains(string(content), `"message"`) {
		t.Fatalf("release log should be JSON encoded: %s", string(content))
	}
}

func TestDebugModeSkipsLogFile(t *testing.T) {
	tmpDir := t.TempDir()
	log := New("debug", Options{Dir: tmpDir, Filename: "debug.log"})
	log.Info("debug_marker")
	_ = log.Sync()

	if _, err := os.Stat(filepath.Join(tmpDir, "debug.log")); !os.IsNotExist(err) {
		t.Fatalf("debug mode must log to stdout, not a file")
	}
}

func TestZFallsBackWhenUninitialized(t *testing.T) {
	saved := L
	L = nil
	t.Cleanup(func() { L = saved })

	if Z() == nil {
		t.Fatalf("Z must never return nil")
	}
	if S() == nil {
		t.Fatalf("S must never return nil")
	}
}

func TestNormalizePositiveInt(t *testing.T) {
	if got := normalizePositiveInt(0, 7); got != 7 {
		t.Fatalf("normalize(0) = %d, want fallback 7", got)
	}
	if got := normalizePositiveInt(-3, 7); got != 7 {
		t.Fatalf("normalize(-3) = %d, want fallback 7", got)
	}
	if got := normalizePositiveInt(12, 7); got != 12 {
		t.Fatalf("normalize(12) = %d, want 12", got)
	}
}
