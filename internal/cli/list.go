package cli

import (
	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	var storeName string
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the records held by a store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(func(s *session) error {
				st, err := s.store(storeName)
				if err != nil {
					return err
				}
				records := st.List()
				if a.flags.jsonMode {
					return writeJSON(cmd.OutOrStdout(), records)
				}
				return printRecords(cmd.OutOrStdout(), records)
			})
		},
	}
	cmd.Flags().StringVar(&storeName, "store", storeArray, "store to list: array or linked")
	return cmd
}
