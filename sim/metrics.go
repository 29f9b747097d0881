// Derives per-process and system-wide performance metrics from a completed
// run's timeline. Algorithms only record slices while they run; everything
// here is a pure pass over immutable data afterwards, so no metrics record is
// ever half-populated mid-simulation.

package sim

import "github.com/google/uuid"

// newScheduleResult assembles a result from the recorded timeline, deriving
// all per-process metrics in one pass. Process metrics appear in
// first-dispatch order.
func newScheduleResult(algo Algorithm, quantum int64, procs []Process, timeline []Slice) *ScheduleResult {
	return &ScheduleResult{
		RunID:     uuid.NewString(),
		Algorithm: algo.String(),
		Quantum:   quantum,
		Processes: deriveProcessMetrics(procs, timeline),
		Timeline:  timeline,
	}
}

// deriveProcessMetrics turns a timeline into per-process metrics. A process's
// first slice fixes its start (and response) time; its last slice fixes
// completion. Waiting time is always computed post-hoc as turnaround minus
// burst, which stays correct for preemptive algorithms where a process waits
// in several disjoint intervals.
func deriveProcessMetrics(procs []Process, timeline []Slice) []ProcessMetrics {
	byPID := make(map[string]Process, len(procs))
	for _, p := range procs {
		byPID[p.PID] = p
	}

	type span struct {
		first int64
		last  int64
	}
	spans := make(map[string]*span, len(procs))
	order := make([]string, 0, len(procs))
	for _, sl := range timeline {
		if sp, ok := spans[sl.PID]; ok {
			sp.last = sl.End
			continue
		}
		spans[sl.PID] = &span{first: sl.Start, last: sl.End}
		order = append(order, sl.PID)
	}

	metrics := make([]ProcessMetrics, 0, len(order))
	for _, pid := range order {
		p := byPID[pid]
		sp := spans[pid]
		turnaround := sp.last - p.ArrivalTime
		metrics = append(metrics, ProcessMetrics{
			PID:            p.PID,
			ArrivalTime:    p.ArrivalTime,
			BurstTime:      p.BurstTime,
			StartTime:      sp.first,
			CompletionTime: sp.last,
			WaitingTime:    turnaround - p.BurstTime,
			TurnaroundTime: turnaround,
			ResponseTime:   sp.first - p.ArrivalTime,
			Priority:       p.Priority,
		})
	}
	return metrics
}

// ComputeSystemMetrics computes run-wide aggregates from a result with
// populated per-process metrics and timeline, attaches them to the result,
// and returns them. An empty run yields all-zero metrics.
func ComputeSystemMetrics(result *ScheduleResult) SystemMetrics {
	system := SystemMetrics{}
	if len(result.Processes) == 0 {
		result.System = &system
		return system
	}

	var totalWait int64
	for _, p := range result.Processes {
		if p.CompletionTime > system.Makespan {
			system.Makespan = p.CompletionTime
		}
		totalWait += p.WaitingTime
	}
	for _, sl := range result.Timeline {
		system.CPUBusyTime += sl.Duration()
	}

	if system.Makespan > 0 {
		system.Throughput = float64(len(result.Processes)) / float64(system.Makespan)
		system.CPUUtilization = float64(system.CPUBusyTime) / float64(system.Makespan)
	}

	// Comparative starvation heuristic: waiting more than twice the mean.
	meanWait := float64(totalWait) / float64(len(result.Processes))
	for _, p := range result.Processes {
		if float64(p.WaitingTime) > 2*meanWait {
			system.StarvationCount++
		}
	}

	result.System = &system
	return system
}

// MetricAverages summarizes a set of per-process metrics for quick
// side-by-side comparison of algorithms.
type MetricAverages struct {
	Waiting    float64 `json:"avg_waiting"`
	Turnaround float64 `json:"avg_turnaround"`
	Response   float64 `json:"avg_response"`
}

// Summarize returns the average waiting, turnaround, and response times over
// a metrics collection. All fields are zero for an empty collection.
func Summarize(processes []ProcessMetrics) MetricAverages {
	if len(processes) == 0 {
		return MetricAverages{}
	}
	var wait, turnaround, response int64
	for _, p := range processes {
		wait += p.WaitingTime
		turnaround += p.TurnaroundTime
		response += p.ResponseTime
	}
	n := float64(len(processes))
	return MetricAverages{
		Waiting:    float64(wait) / n,
		Turnaround: float64(turnaround) / n,
		Response:   float64(response) / n,
	}
}
