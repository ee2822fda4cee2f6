package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/metamock/internal/fixture"
	"github.com/mesh-intelligence/metamock/internal/paths"
)

func (a *app) newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write default settings and a starter fixture file",
		Long: "Create config.yaml in the settings directory and a starter fixture file\n" +
			"in the fixture directory. Existing files are left untouched.",
		Args: cobra.NoArgs,
		RunE: a.runInit,
	}
}

func (a *app) runInit(cmd *cobra.Command, args []string) error {
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	fixturePath, err := a.fixturePath()
	if err != nil {
		return sysError(err)
	}

	// An explicit --fixture-dir is recorded so later runs find the same set.
	fixtureDir := ""
	if a.flags.fixtureDir != "" {
		if fixtureDir, err = filepath.Abs(a.flags.fixtureDir); err != nil {
			return sysError(fmt.Errorf("resolve fixture dir: %w", err))
		}
	}

	wroteSettings, err := writeSettingsIfMissing(configDir, fixtureDir)
	if err != nil {
		return sysError(err)
	}
	wroteFixtures, err := fixture.WriteIfMissing(fixturePath, fixture.Starter())
	if err != nil {
		return sysError(err)
	}
	a.logger.Info("init finished",
		"settings_written", wroteSettings,
		"fixtures_written", wroteFixtures)

	w := out(cmd)
	if wroteSettings {
		fmt.Fprintf(w, "Settings written to %s\n", filepath.Join(configDir, configFileExt))
	}
	if wroteFixtures {
		fmt.Fprintf(w, "Fixtures written to %s\n", fixturePath)
	} else {
		fmt.Fprintf(w, "Fixtures already present at %s\n", fixturePath)
	}
	return nil
}
