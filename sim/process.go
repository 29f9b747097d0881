// Defines the workload and result data model shared by every scheduling
// algorithm: input processes, execution slices, and derived metrics.

package sim

// Process describes one unit of work in a workload. A Process is immutable
// input: algorithms never modify it and keep any derived state (such as
// remaining burst time) in their own bookkeeping, so the same slice of
// processes can be run through several algorithms without interference.
type Process struct {
	PID         string `json:"pid" yaml:"pid"`
	ArrivalTime int64  `json:"arrival_time" yaml:"arrival_time"`
	BurstTime   int64  `json:"burst_time" yaml:"burst_time"`
	// Priority is optional; lower values mean higher precedence.
	// A nil priority sorts after every explicit one.
	Priority *int `json:"priority,omitempty" yaml:"priority,omitempty"`
}

// Slice is one contiguous interval [Start, End) during which exactly one
// process occupied the CPU. Slices from a single run never overlap.
type Slice struct {
	PID   string `json:"pid"`
	Start int64  `json:"start_time"`
	End   int64  `json:"end_time"`
}

// Duration returns the length of the slice in ticks.
func (s Slice) Duration() int64 {
	return s.End - s.Start
}

// ProcessMetrics holds the derived per-process figures for one completed run.
// StartTime is the instant of first dispatch; CompletionTime is the end of the
// last slice. For non-preemptive algorithms ResponseTime equals WaitingTime.
type ProcessMetrics struct {
	PID            string `json:"pid"`
	ArrivalTime    int64  `json:"arrival_time"`
	BurstTime      int64  `json:"burst_time"`
	StartTime      int64  `json:"start_time"`
	CompletionTime int64  `json:"completion_time"`
	WaitingTime    int64  `json:"waiting_time"`
	TurnaroundTime int64  `json:"turnaround_time"`
	ResponseTime   int64  `json:"response_time"`
	Priority       *int   `json:"priority,omitempty"`
}

// SystemMetrics aggregates run-wide figures derived from a completed timeline.
type SystemMetrics struct {
	CPUBusyTime    int64   `json:"cpu_busy_time"`
	Makespan       int64   `json:"makespan"`
	Throughput     float64 `json:"throughput"`
	CPUUtilization float64 `json:"cpu_utilization"`
	// StarvationCount is a comparative heuristic: processes whose waiting
	// time exceeds twice the run's mean waiting time. Not a formal guarantee.
	StarvationCount int `json:"starvation_count"`
}

// ScheduleResult is the complete output of one simulation pass: the ordered
// timeline, per-process metrics in first-dispatch order, and the system-wide
// aggregates. Once returned it is never mutated by the engine.
type ScheduleResult struct {
	RunID     string           `json:"run_id"`
	Algorithm string           `json:"algorithm"`
	Quantum   int64            `json:"quantum,omitempty"`
	Processes []ProcessMetrics `json:"processes"`
	Timeline  []Slice          `json:"timeline"`
	System    *SystemMetrics   `json:"system,omitempty"`
}
