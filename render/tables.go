package render

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/youpesh/schedsim/sim"
)

// Result writes a full report for one run: header, Gantt chart, per-process
// metrics table, and the system metrics table.
func Result(w io.Writer, res *sim.ScheduleResult) {
	fmt.Fprintf(w, "Algorithm: %s\n", res.Algorithm)
	if res.Quantum > 0 {
		fmt.Fprintf(w, "Quantum:   %d\n", res.Quantum)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, Gantt(res.Timeline))
	fmt.Fprintln(w)
	ProcessTable(w, res.Processes)
	fmt.Fprintln(w)
	SystemTable(w, res)
}

// ProcessTable writes the per-process metrics table.
func ProcessTable(w io.Writer, processes []sim.ProcessMetrics) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "Arrive", "Burst", "Start", "Complete", "Wait", "Turnaround", "Response", "Priority"})
	for _, p := range processes {
		priority := ""
		if p.Priority != nil {
			priority = fmt.Sprint(*p.Priority)
		}
		table.Append([]string{
			p.PID,
			fmt.Sprint(p.ArrivalTime),
			fmt.Sprint(p.BurstTime),
			fmt.Sprint(p.StartTime),
			fmt.Sprint(p.CompletionTime),
			fmt.Sprint(p.WaitingTime),
			fmt.Sprint(p.TurnaroundTime),
			fmt.Sprint(p.ResponseTime),
			priority,
		})
	}
	table.Render()
}

// SystemTable writes the run-wide averages and system metrics.
func SystemTable(w io.Writer, res *sim.ScheduleResult) {
	if res.System == nil {
		return
	}
	avg := sim.Summarize(res.Processes)

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Metric", "Value"})
	table.Append([]string{"Avg waiting", fmt.Sprintf("%.2f", avg.Waiting)})
	table.Append([]string{"Avg turnaround", fmt.Sprintf("%.2f", avg.Turnaround)})
	table.Append([]string{"Avg response", fmt.Sprintf("%.2f", avg.Response)})
	table.Append([]string{"Throughput (proc/time)", fmt.Sprintf("%.3f", res.System.Throughput)})
	table.Append([]string{"CPU utilization", fmt.Sprintf("%.1f%%", res.System.CPUUtilization*100)})
	table.Append([]string{"Starvation count", fmt.Sprint(res.System.StarvationCount)})
	table.Render()
}

// ComparisonRow is one line of the algorithm comparison table.
type ComparisonRow struct {
	Algorithm string
	Quantum   int64
	Averages  sim.MetricAverages
}

// Comparison writes the side-by-side averages table used by the compare
// command.
func Comparison(w io.Writer, rows []ComparisonRow) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Quantum", "Avg waiting", "Avg turnaround", "Avg response"})
	for _, row := range rows {
		quantum := ""
		if row.Quantum > 0 {
			quantum = fmt.Sprint(row.Quantum)
		}
		table.Append([]string{
			row.Algorithm,
			quantum,
			fmt.Sprintf("%.2f", row.Averages.Waiting),
			fmt.Sprintf("%.2f", row.Averages.Turnaround),
			fmt.Sprintf("%.2f", row.Averages.Response),
		})
	}
	table.Render()
}
