// Package cli implements the metamock command-line interface, which loads
// item-metadata fixtures and runs the record's comparison and lore checks
// against them.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mesh-intelligence/metamock/internal/fixture"
	"github.com/mesh-intelligence/metamock/internal/logging"
	"github.com/mesh-intelligence/metamock/internal/paths"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// exitError carries the process exit code for a failed command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func userError(err error) error { return &exitError{code: exitUserError, err: err} }
func sysError(err error) error  { return &exitError{code: exitSysError, err: err} }

// exitCode maps an error returned by a command to a process exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return exitUserError
}

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir  string
	fixtureDir string
	file       string
	jsonMode   bool
}

// app is the state shared by the subcommands of one root command.
type app struct {
	flags    rootFlags
	settings *viper.Viper
	logger   *slog.Logger
}

// NewRootCmd creates the top-level "metamock" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{settings: newSettings(), logger: slog.New(slog.DiscardHandler)}

	root := &cobra.Command{
		Use:   "metamock",
		Short: "Inspect item-metadata fixtures for plugin tests",
		Long: "metamock loads named item-metadata fixtures and runs the mock record's\n" +
			"equality, hash and lore checks against them.",
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.flags.configDir, "config-dir", "", "settings directory (default: $XDG_CONFIG_HOME/metamock)")
	pf.StringVar(&a.flags.fixtureDir, "fixture-dir", "", "fixture directory (default: .metamock)")
	pf.StringVar(&a.flags.file, "file", "", "fixture file, relative to the fixture directory (default: fixtures.yaml)")
	pf.BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")
	pf.String("log-level", "", "log level: debug, info, warn, error (default: warn)")
	pf.String("log-format", "", "log format: text or json (default: text)")
	_ = a.settings.BindPFlag(cfgKeyLogLevel, pf.Lookup("log-level"))
	_ = a.settings.BindPFlag(cfgKeyLogFormat, pf.Lookup("log-format"))

	root.AddCommand(
		newVersionCmd(),
		a.newInitCmd(),
		a.newListCmd(),
		a.newShowCmd(),
		a.newCompareCmd(),
		a.newCheckLoreCmd(),
	)
	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "metamock:", err)
		os.Exit(exitCode(err))
	}
}

// setup reads settings and builds the logger before any subcommand runs.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return sysError(fmt.Errorf("resolve config dir: %w", err))
	}
	if err := loadSettings(a.settings, configDir); err != nil {
		return sysError(err)
	}

	logger, err := logging.New(cmd.ErrOrStderr(), logging.Config{
		Level:  a.settings.GetString(cfgKeyLogLevel),
		Format: a.settings.GetString(cfgKeyLogFormat),
	}, logging.NewRunID())
	if err != nil {
		return userError(err)
	}
	a.logger = logger.With("command", cmd.Name())
	a.logger.Debug("settings loaded", "config_dir", configDir, "config_file", a.settings.ConfigFileUsed())
	return nil
}

// fixturePath resolves the fixture file from flags and settings.
func (a *app) fixturePath() (string, error) {
	dir, err := paths.ResolveFixtureDir(a.flags.fixtureDir, a.settings.GetString(cfgKeyFixtureDir))
	if err != nil {
		return "", fmt.Errorf("resolve fixture dir: %w", err)
	}
	file := a.flags.file
	if file == "" {
		file = a.settings.GetString(cfgKeyFixtureFile)
	}
	return paths.ResolveFixtureFile(dir, file), nil
}

// loadFixtures loads the resolved fixture file.
func (a *app) loadFixtures() (*fixture.Set, error) {
	path, err := a.fixturePath()
	if err != nil {
		return nil, sysError(err)
	}
	set, err := fixture.Load(path)
	if err != nil {
		return nil, classify(err)
	}
	a.logger.Debug("fixtures loaded", "path", path, "count", set.Len())
	return set, nil
}

// buildItem builds the named item from set.
func (a *app) buildItem(set *fixture.Set, name string) (*fixture.Item, error) {
	item, err := set.Build(name)
	if err != nil {
		return nil, classify(err)
	}
	return item, nil
}

// classify marks fixture problems as user errors.
func classify(err error) error {
	switch {
	case errors.Is(err, fixture.ErrFileNotFound),
		errors.Is(err, fixture.ErrNotFound),
		errors.Is(err, fixture.ErrInvalidFixture),
		errors.Is(err, fixture.ErrDuplicateEnchant):
		return userError(err)
	default:
		return sysError(err)
	}
}

// out returns the command's standard output.
func out(cmd *cobra.Command) io.Writer {
	return cmd.OutOrStdout()
}
