package cli

import (
	"github.com/spf13/cobra"
)

func (a *app) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Build a fixture and print its record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := a.loadFixtures()
			if err != nil {
				return err
			}
			item, err := a.buildItem(set, args[0])
			if err != nil {
				return err
			}

			view := newItemView(item)
			if a.flags.jsonMode {
				return writeJSON(out(cmd), view)
			}
			writeItem(out(cmd), view)
			return nil
		},
	}
}
