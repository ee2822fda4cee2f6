package cli

import (
	"github.com/spf13/cobra"
)

func (a *app) newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the fixtures in the fixture file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			set, err := a.loadFixtures()
			if err != nil {
				return err
			}

			views := make([]itemView, 0, set.Len())
			for _, name := range set.Names() {
				item, err := a.buildItem(set, name)
				if err != nil {
					return err
				}
				views = append(views, newItemView(item))
			}

			if a.flags.jsonMode {
				return writeJSON(out(cmd), views)
			}
			writeItemTable(out(cmd), views)
			return nil
		},
	}
}
