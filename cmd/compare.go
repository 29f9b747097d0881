package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/youpesh/schedsim/render"
	"github.com/youpesh/schedsim/sim"
	"github.com/youpesh/schedsim/sim/workload"
)

var (
	compareWorkload   string   // Path to JSON, CSV, or YAML workload file
	compareAlgorithms []string // Algorithms to compare
	compareQuantum    int64    // Quantum used for rr/mlfq when included
)

// compareCmd runs several algorithms over one workload and tabulates the
// average waiting/turnaround/response per algorithm.
var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Run multiple algorithms on the same workload and compare average metrics",
	Run: func(cmd *cobra.Command, args []string) {
		procs, err := workload.Load(compareWorkload)
		if err != nil {
			logrus.Fatalf("unable to load workload: %v", err)
		}

		rows, err := compareRows(procs, compareAlgorithms, compareQuantum)
		if err != nil {
			logrus.Fatalf("comparison failed: %v", err)
		}
		render.Comparison(os.Stdout, rows)
	},
}

// compareRows runs each named algorithm over the workload. The quantum is
// passed only to algorithms that use one.
func compareRows(procs []sim.Process, names []string, quantum int64) ([]render.ComparisonRow, error) {
	rows := make([]render.ComparisonRow, 0, len(names))
	for _, name := range names {
		algo, err := sim.ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		q := int64(0)
		if algo.UsesQuantum() {
			q = quantum
		}
		result, err := sim.Run(algo, procs, q)
		if err != nil {
			return nil, err
		}
		rows = append(rows, render.ComparisonRow{
			Algorithm: result.Algorithm,
			Quantum:   result.Quantum,
			Averages:  sim.Summarize(result.Processes),
		})
	}
	return rows, nil
}

func init() {
	compareCmd.Flags().StringVarP(&compareWorkload, "workload", "w", "", "Path to JSON, CSV, or YAML workload file")
	compareCmd.Flags().StringSliceVarP(&compareAlgorithms, "algorithms", "a", sim.Identifiers(), "Algorithms to compare")
	compareCmd.Flags().Int64VarP(&compareQuantum, "quantum", "q", 2, "Time quantum used for rr/mlfq when included")
	_ = compareCmd.MarkFlagRequired("workload")

	rootCmd.AddCommand(compareCmd)
}
