package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/backpack/pkg/types"
)

type removeOutput struct {
	Name    string         `json:"name"`
	Store   string         `json:"store"`
	Removed bool           `json:"removed"`
	Records []types.Record `json:"records"`
}

func newRemoveCmd(a *app) *cobra.Command {
	var (
		storeName string
		name      string
	)
	cmd := &cobra.Command{
		Use:   "remove",
		Short: "Remove a record by name and list what remains",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.withSession(func(s *session) error {
				st, err := s.store(storeName)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				err = st.RemoveByName(name)
				if err != nil && !errors.Is(err, types.ErrNotFound) {
					return err
				}
				removed := err == nil
				if a.flags.jsonMode {
					return writeJSON(out, removeOutput{Name: name, Store: storeName, Removed: removed, Records: st.List()})
				}
				if removed {
					fmt.Fprintf(out, "removed %q from %s store\n", name, storeName)
				} else {
					fmt.Fprintf(out, "%q not found in %s store\n", name, storeName)
				}
				return printRecords(out, st.List())
			})
		},
	}
	cmd.Flags().StringVar(&storeName, "store", storeArray, "store to remove from: array or linked")
	cmd.Flags().StringVar(&name, "name", "", "name of the record to remove")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}
