package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the metamock release.
const Version = "0.1.0"

const modulePath = "github.com/mesh-intelligence/metamock"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the metamock version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(out(cmd), "metamock v%s\nmodule: %s\n", Version, modulePath)
			return nil
		},
	}
}
