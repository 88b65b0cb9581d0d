package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the backpack release, overridable at build time with
// -ldflags "-X github.com/mesh-intelligence/backpack/internal/cli.Version=...".
var Version = "0.1.0"

const modulePath = "github.com/mesh-intelligence/backpack"

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the backpack version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "backpack v%s\nmodule: %s\n", Version, modulePath)
			return nil
		},
	}
}
