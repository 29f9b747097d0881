package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/youpesh/schedsim/render"
	"github.com/youpesh/schedsim/sim"
	"github.com/youpesh/schedsim/sim/workload"
)

var (
	menuWorkload string // Workload path to prefill in the menu
	menuQuantum  int64  // Default quantum to prefill for rr/mlfq
)

// menuCmd starts an interactive loop: pick an algorithm or a comparison,
// optionally change the workload, tune the quantum, and replay the run.
var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Interactive menu to pick an algorithm and workload at runtime",
	Run: func(cmd *cobra.Command, args []string) {
		runMenu(os.Stdin, os.Stdout, menuWorkload, menuQuantum)
	},
}

// runMenu drives the interactive loop. Reads selections from in and writes
// everything to out; returns when the user quits or input ends. Errors from
// a single run are reported and the loop continues.
func runMenu(in io.Reader, out io.Writer, workloadPath string, defaultQuantum int64) {
	scanner := bufio.NewScanner(in)
	prompt := func(msg string) (string, bool) {
		fmt.Fprint(out, msg)
		if !scanner.Scan() {
			return "", false
		}
		return strings.TrimSpace(scanner.Text()), true
	}

	identifiers := sim.Identifiers()
	compareIdx := len(identifiers) + 1

	for {
		fmt.Fprintf(out, "\nschedsim menu (q to quit)\n")
		fmt.Fprintf(out, "Current workload: %s\n", workloadPath)
		for i, name := range identifiers {
			fmt.Fprintf(out, "  %d. %s\n", i+1, name)
		}
		fmt.Fprintf(out, "  %d. compare all algorithms\n", compareIdx)

		choice, ok := prompt(fmt.Sprintf("Choice [1-%d or q]: ", compareIdx))
		if !ok || choice == "q" || choice == "quit" || choice == "exit" {
			return
		}
		idx, err := strconv.Atoi(choice)
		if err != nil || idx < 1 || idx > compareIdx {
			fmt.Fprintln(out, "Invalid selection.")
			continue
		}

		if path, ok := prompt(fmt.Sprintf("Workload path [Enter=%s]: ", workloadPath)); ok && path != "" {
			workloadPath = path
		}

		procs, err := workload.Load(workloadPath)
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			continue
		}

		quantum := defaultQuantum
		if raw, ok := prompt(fmt.Sprintf("Quantum for rr/mlfq [%d]: ", defaultQuantum)); ok && raw != "" {
			q, err := strconv.ParseInt(raw, 10, 64)
			if err != nil {
				fmt.Fprintln(out, "Invalid quantum; using default.")
			} else {
				quantum = q
			}
		}

		if idx == compareIdx {
			rows, err := compareRows(procs, identifiers, quantum)
			if err != nil {
				fmt.Fprintf(out, "Error: %v\n", err)
				continue
			}
			render.Comparison(out, rows)
			continue
		}

		algo, err := sim.ParseAlgorithm(identifiers[idx-1])
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			continue
		}
		q := int64(0)
		if algo.UsesQuantum() {
			q = quantum
		}
		result, err := sim.Run(algo, procs, q)
		if err != nil {
			fmt.Fprintf(out, "Error: %v\n", err)
			continue
		}

		if answer, ok := prompt("Animate this run? [Enter=no, y=yes]: "); ok && answer == "y" {
			render.Animate(out, result, 300*time.Millisecond)
		}
		render.Result(out, result)
	}
}

func init() {
	menuCmd.Flags().StringVarP(&menuWorkload, "workload", "w", "examples/workload_small.json", "Default workload path to prefill in the menu")
	menuCmd.Flags().Int64VarP(&menuQuantum, "quantum", "q", 2, "Default quantum to prefill for rr/mlfq")

	rootCmd.AddCommand(menuCmd)
}
