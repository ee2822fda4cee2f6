// Package integration provides end-to-end tests that drive the metamock
// binary through os/exec.
package integration

import (
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

var (
	// metamockBin is the path to the built metamock binary.
	metamockBin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// TestEnv provides an isolated settings and fixture directory.
type TestEnv struct {
	t          *testing.T
	TempDir    string
	ConfigDir  string
	FixtureDir string
}

// NewTestEnv creates a new isolated test environment.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build metamock: %v", buildErr)
	}
	if metamockBin == "" {
		t.Fatal("metamock binary not built (metamockBin is empty)")
	}

	tempDir := t.TempDir()
	return &TestEnv{
		t:          t,
		TempDir:    tempDir,
		ConfigDir:  filepath.Join(tempDir, "config"),
		FixtureDir: filepath.Join(tempDir, "fixtures"),
	}
}

// WriteFixtures writes content to fixtures.yaml in the fixture directory.
func (e *TestEnv) WriteFixtures(content string) {
	e.t.Helper()
	if err := os.MkdirAll(e.FixtureDir, 0o755); err != nil {
		e.t.Fatalf("create fixture dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(e.FixtureDir, "fixtures.yaml"), []byte(content), 0o644); err != nil {
		e.t.Fatalf("write fixtures: %v", err)
	}
}

// CmdResult holds the result of a metamock command execution.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Run executes metamock with the environment's directories prepended.
func (e *TestEnv) Run(args ...string) CmdResult {
	e.t.Helper()
	allArgs := append([]string{"--config-dir", e.ConfigDir, "--fixture-dir", e.FixtureDir}, args...)
	return runMetamock(e.t, nil, "", allArgs...)
}

// MustRun executes metamock and fails the test on a non-zero exit.
func (e *TestEnv) MustRun(args ...string) CmdResult {
	e.t.Helper()
	result := e.Run(args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("metamock %v failed with exit code %d:\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}

// cleanEnv returns os.Environ() without METAMOCK_* and XDG_* variables.
func cleanEnv() []string {
	var env []string
	for _, e := range os.Environ() {
		if strings.HasPrefix(e, "METAMOCK_") || strings.HasPrefix(e, "XDG_") {
			continue
		}
		env = append(env, e)
	}
	return env
}

// runMetamock executes the binary with args unchanged, a cleaned
// environment plus env, and workDir as the working directory.
func runMetamock(t *testing.T, env []string, workDir string, args ...string) CmdResult {
	t.Helper()
	cmd := exec.Command(metamockBin, args...)
	cmd.Env = append(cleanEnv(), env...)
	if workDir != "" {
		cmd.Dir = workDir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	exitCode := 0
	if err := cmd.Run(); err != nil {
		exitErr, ok := err.(*exec.ExitError)
		if !ok {
			t.Fatalf("failed to run metamock: %v", err)
		}
		exitCode = exitErr.ExitCode()
	}
	return CmdResult{Stdout: stdout.String(), Stderr: stderr.String(), ExitCode: exitCode}
}

// ParseJSON parses JSON output into the target type.
func ParseJSON[T any](t *testing.T, jsonStr string) T {
	t.Helper()
	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		t.Fatalf("failed to parse JSON %q: %v", jsonStr, err)
	}
	return result
}

// Item mirrors the JSON printed by show and list.
type Item struct {
	Name        string         `json:"name"`
	Material    string         `json:"material"`
	DisplayName *string        `json:"display_name"`
	Lore        []string       `json:"lore"`
	Damage      int            `json:"damage"`
	HasDamage   bool           `json:"has_damage"`
	Enchants    map[string]int `json:"enchants"`
	Hash        int32          `json:"hash"`
}

// Comparison mirrors the JSON printed by compare.
type Comparison struct {
	Left      string `json:"left"`
	Right     string `json:"right"`
	Equal     bool   `json:"equal"`
	LeftHash  int32  `json:"left_hash"`
	RightHash int32  `json:"right_hash"`
}
