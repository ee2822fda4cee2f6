package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// errNotEqual is returned by compare when the records differ.
var errNotEqual = errors.New("records are not equal")

type compareResult struct {
	Left      string `json:"left"`
	Right     string `json:"right"`
	Equal     bool   `json:"equal"`
	LeftHash  int32  `json:"left_hash"`
	RightHash int32  `json:"right_hash"`
}

func (a *app) newCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <a> <b>",
		Short: "Compare two fixtures by display name and lore",
		Long: "Build two fixtures and report whether the records are equal. Only the\n" +
			"display name and lore take part; damage and enchantments are ignored.\n" +
			"Exits with status 1 when the records differ.",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := a.loadFixtures()
			if err != nil {
				return err
			}
			left, err := a.buildItem(set, args[0])
			if err != nil {
				return err
			}
			right, err := a.buildItem(set, args[1])
			if err != nil {
				return err
			}

			result := compareResult{
				Left:      left.Name,
				Right:     right.Name,
				Equal:     left.Meta.Equal(right.Meta),
				LeftHash:  left.Meta.Hash(),
				RightHash: right.Meta.Hash(),
			}
			a.logger.Debug("compared fixtures", "left", result.Left, "right", result.Right, "equal", result.Equal)

			if a.flags.jsonMode {
				if err := writeJSON(out(cmd), result); err != nil {
					return err
				}
			} else {
				verdict := "equal"
				if !result.Equal {
					verdict = "not equal"
				}
				fmt.Fprintf(out(cmd), "%s and %s are %s\n", result.Left, result.Right, verdict)
				fmt.Fprintf(out(cmd), "  %s hash: %d\n", result.Left, result.LeftHash)
				fmt.Fprintf(out(cmd), "  %s hash: %d\n", result.Right, result.RightHash)
			}

			if !result.Equal {
				return userError(fmt.Errorf("%s, %s: %w", result.Left, result.Right, errNotEqual))
			}
			return nil
		},
	}
}
