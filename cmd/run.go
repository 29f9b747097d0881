package cmd

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/youpesh/schedsim/render"
	"github.com/youpesh/schedsim/sim"
	"github.com/youpesh/schedsim/sim/workload"
)

var (
	runAlgorithm string  // Algorithm identifier (fcfs, sjf, rr, priority, srtf, mlfq)
	runWorkload  string  // Path to JSON, CSV, or YAML workload file
	runQuantum   int64   // Time quantum for rr/mlfq
	runStep      bool    // Replay the schedule tick by tick before the summary
	runStepDelay float64 // Seconds between ticks when --step is used
)

// runCmd executes one algorithm over a workload file and prints the report.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a scheduling algorithm on a workload file",
	Run: func(cmd *cobra.Command, args []string) {
		procs, err := workload.Load(runWorkload)
		if err != nil {
			logrus.Fatalf("unable to load workload: %v", err)
		}
		logrus.Infof("loaded %d processes from %s", len(procs), runWorkload)

		result, err := sim.RunByName(runAlgorithm, procs, runQuantum)
		if err != nil {
			logrus.Fatalf("simulation failed: %v", err)
		}

		if runStep {
			render.Animate(os.Stdout, result, time.Duration(runStepDelay*float64(time.Second)))
		}
		render.Result(os.Stdout, result)
	},
}

func init() {
	runCmd.Flags().StringVarP(&runAlgorithm, "algorithm", "a", "", "Algorithm to use (fcfs, sjf, rr, priority, srtf, mlfq)")
	runCmd.Flags().StringVarP(&runWorkload, "workload", "w", "", "Path to JSON, CSV, or YAML workload file")
	runCmd.Flags().Int64VarP(&runQuantum, "quantum", "q", 0, "Time quantum for rr/mlfq (ignored by fcfs, sjf, priority, srtf)")
	runCmd.Flags().BoolVar(&runStep, "step", false, "Show a time-stepped replay of the schedule")
	runCmd.Flags().Float64Var(&runStepDelay, "step-delay", 0.3, "Seconds between steps when --step is used")
	_ = runCmd.MarkFlagRequired("algorithm")
	_ = runCmd.MarkFlagRequired("workload")

	rootCmd.AddCommand(runCmd)
}
