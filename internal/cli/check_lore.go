package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/metamock/pkg/meta"
)

type checkResult struct {
	Name    string `json:"name"`
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

func (a *app) newCheckLoreCmd() *cobra.Command {
	var none bool

	cmd := &cobra.Command{
		Use:   "check-lore <name> [lines...]",
		Short: "Check a fixture's lore against the given lines",
		Long: "Build a fixture and check that its lore holds exactly the given lines,\n" +
			"in order. With --none, check that the lore is unset or empty instead.\n" +
			"Exits with status 1 when the check fails.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if none && len(args) > 1 {
				return userError(errors.New("--none takes no lore lines"))
			}

			set, err := a.loadFixtures()
			if err != nil {
				return err
			}
			item, err := a.buildItem(set, args[0])
			if err != nil {
				return err
			}

			var checkErr error
			if none {
				checkErr = item.Meta.CheckNoLore()
			} else {
				checkErr = item.Meta.CheckLore(args[1:]...)
			}
			if checkErr != nil && !errors.Is(checkErr, meta.ErrAssertion) {
				return sysError(checkErr)
			}

			result := checkResult{Name: item.Name, OK: checkErr == nil}
			if checkErr != nil {
				result.Message = checkErr.Error()
			}

			if a.flags.jsonMode {
				if err := writeJSON(out(cmd), result); err != nil {
					return err
				}
			} else if result.OK {
				fmt.Fprintln(out(cmd), "ok")
			} else {
				fmt.Fprintf(out(cmd), "FAIL %s: %s\n", result.Name, result.Message)
			}

			if checkErr != nil {
				return userError(fmt.Errorf("check-lore %s: %w", item.Name, checkErr))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&none, "none", false, "check that the lore is unset or empty")
	return cmd
}
