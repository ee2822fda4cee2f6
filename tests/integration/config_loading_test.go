package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFixtureFile(t *testing.T, dir, name, item string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name),
		[]byte("items:\n  "+item+": {}\n"), 0o644))
}

func writeConfigYAML(t *testing.T, configDir, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o644))
}

func listNames(t *testing.T, result CmdResult) []string {
	t.Helper()
	require.Equalf(t, 0, result.ExitCode, "stdout: %s\nstderr: %s", result.Stdout, result.Stderr)
	items := ParseJSON[[]Item](t, result.Stdout)
	names := make([]string, len(items))
	for i, it := range items {
		names[i] = it.Name
	}
	return names
}

func TestConfigLoading_FixtureDirPrecedence(t *testing.T) {
	if buildErr != nil {
		t.Fatalf("failed to build metamock: %v", buildErr)
	}
	tmp := t.TempDir()
	configDir := filepath.Join(tmp, "config")
	flagDir := filepath.Join(tmp, "flag")
	cfgDir := filepath.Join(tmp, "cfg")
	envDir := filepath.Join(tmp, "env")
	workDir := filepath.Join(tmp, "work")

	writeFixtureFile(t, flagDir, "fixtures.yaml", "fromflag")
	writeFixtureFile(t, cfgDir, "fixtures.yaml", "fromconfig")
	writeFixtureFile(t, envDir, "fixtures.yaml", "fromenv")
	writeFixtureFile(t, filepath.Join(workDir, ".metamock"), "fixtures.yaml", "fromcwd")

	env := []string{"METAMOCK_FIXTURE_DIR=" + envDir}

	t.Run("cwd default", func(t *testing.T) {
		r := runMetamock(t, nil, workDir, "--config-dir", configDir, "list", "--json")
		assert.Equal(t, []string{"fromcwd"}, listNames(t, r))
	})

	t.Run("env beats cwd", func(t *testing.T) {
		r := runMetamock(t, env, workDir, "--config-dir", configDir, "list", "--json")
		assert.Equal(t, []string{"fromenv"}, listNames(t, r))
	})

	writeConfigYAML(t, configDir, "fixture_dir: "+cfgDir+"\n")

	t.Run("config beats env", func(t *testing.T) {
		r := runMetamock(t, env, workDir, "--config-dir", configDir, "list", "--json")
		assert.Equal(t, []string{"fromconfig"}, listNames(t, r))
	})

	t.Run("flag beats config", func(t *testing.T) {
		r := runMetamock(t, env, workDir, "--config-dir", configDir, "--fixture-dir", flagDir, "list", "--json")
		assert.Equal(t, []string{"fromflag"}, listNames(t, r))
	})
}

func TestConfigLoading_ConfigDirFromEnv(t *testing.T) {
	if buildErr != nil {
		t.Fatalf("failed to build metamock: %v", buildErr)
	}
	tmp := t.TempDir()
	configDir := filepath.Join(tmp, "config")
	fixtureDir := filepath.Join(tmp, "fixtures")
	writeFixtureFile(t, fixtureDir, "custom.yaml", "custom")
	writeConfigYAML(t, configDir, "fixture_dir: "+fixtureDir+"\nfixture_file: custom.yaml\n")

	r := runMetamock(t, []string{"METAMOCK_CONFIG_DIR=" + configDir}, tmp, "list", "--json")
	assert.Equal(t, []string{"custom"}, listNames(t, r))
}

func TestConfigLoading_LogSettings(t *testing.T) {
	if buildErr != nil {
		t.Fatalf("failed to build metamock: %v", buildErr)
	}
	tmp := t.TempDir()
	configDir := filepath.Join(tmp, "config")
	fixtureDir := filepath.Join(tmp, "fixtures")
	writeFixtureFile(t, fixtureDir, "fixtures.yaml", "one")
	writeConfigYAML(t, configDir, "log_level: debug\nlog_format: json\n")

	args := []string{"--config-dir", configDir, "--fixture-dir", fixtureDir, "list"}

	t.Run("config file", func(t *testing.T) {
		r := runMetamock(t, nil, tmp, args...)
		assert.Equal(t, 0, r.ExitCode)
		assert.Contains(t, r.Stderr, `"level":"DEBUG"`)
	})

	t.Run("env beats config file", func(t *testing.T) {
		r := runMetamock(t, []string{"METAMOCK_LOG_LEVEL=error"}, tmp, args...)
		assert.Equal(t, 0, r.ExitCode)
		assert.Empty(t, r.Stderr)
	})

	t.Run("flag beats env", func(t *testing.T) {
		r := runMetamock(t, []string{"METAMOCK_LOG_LEVEL=error"}, tmp,
			append([]string{"--log-level", "debug"}, args...)...)
		assert.Equal(t, 0, r.ExitCode)
		assert.Contains(t, r.Stderr, "fixtures loaded")
	})
}
