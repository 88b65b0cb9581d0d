package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/backpack/internal/bench"
)

func newBenchCmd(a *app) *cobra.Command {
	var (
		target    string
		algorithm string
		trials    int
		name      string
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Run repeated trials of a search or sort and report comparisons and timings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			targets, err := bench.ParseTargets(target)
			if err != nil {
				return err
			}
			alg, err := bench.ParseAlgorithm(algorithm)
			if err != nil {
				return err
			}
			if trials == 0 {
				trials = a.cfg.Trials
			}
			req := bench.Request{Targets: targets, Algorithm: alg, Trials: trials, Name: name}
			if err := req.Validate(); err != nil {
				return err
			}

			return a.withSession(func(s *session) error {
				h := bench.New(a.logger)
				h.Register(bench.TargetArray, s.array)
				h.Register(bench.TargetLinked, s.linked)

				report, err := h.Run(req)
				if err != nil {
					return err
				}
				if a.flags.jsonMode {
					return writeJSON(cmd.OutOrStdout(), report)
				}
				return printReport(cmd, report)
			})
		},
	}
	cmd.Flags().StringVar(&target, "target", "both", "store to measure: array, linked, or both")
	cmd.Flags().StringVar(&algorithm, "algorithm", string(bench.LinearSearch), "linear, binary, exchange, insertion, or selection")
	cmd.Flags().IntVar(&trials, "trials", 0, "number of trials (default from config)")
	cmd.Flags().StringVar(&name, "name", "", "record name to search for")
	return cmd
}

func printReport(cmd *cobra.Command, report bench.Report) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "run %s: %s x %d\n", report.RunID, report.Algorithm, report.Trials)

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "TARGET\tRECORDS\tTOTAL CMP\tAVG CMP\tTOTAL TIME\tAVG TIME\tNOTE")
	for _, r := range report.Results {
		if r.Outcome == bench.OutcomeSkipped {
			fmt.Fprintf(tw, "%s\t%d\t-\t-\t-\t-\tskipped: %s\n", r.Target, r.Records, r.SkipReason)
			continue
		}
		note := ""
		if report.Algorithm.IsSearch() {
			note = "not found"
			if r.Found {
				note = "found"
			}
		}
		if r.Setup != nil {
			note += fmt.Sprintf("; setup sort %d cmp in %s", r.Setup.Comparisons, r.Setup.Elapsed)
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%.2f\t%s\t%s\t%s\n",
			r.Target, r.Records, r.TotalComparisons, r.AverageComparisons, r.TotalElapsed, r.AverageElapsed, note)
	}
	return tw.Flush()
}
