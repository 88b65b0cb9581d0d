package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/mesh-intelligence/backpack/pkg/types"
)

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printRecords writes records as a numbered table.
func printRecords(w io.Writer, records []types.Record) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "(empty)")
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tNAME\tCATEGORY\tQUANTITY\tPRIORITY")
	for i, r := range records {
		priority := "-"
		if r.HasPriority() {
			priority = fmt.Sprint(r.Priority)
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\t%s\n", i+1, r.Name, r.Category, r.Quantity, priority)
	}
	return tw.Flush()
}
