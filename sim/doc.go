// Package sim implements a deterministic, discrete-time CPU scheduling
// simulator over a fixed workload.
//
// # Reading Guide
//
// Start with these three files to understand the engine:
//   - process.go: the data model (Process, Slice, ProcessMetrics, ScheduleResult)
//   - state.go: the per-run simulation state (clock, remaining burst, timeline)
//   - algorithm.go: the Algorithm enum and the Run dispatcher
//
// Each algorithm lives in its own file (fcfs.go, sjf.go, round_robin.go,
// priority.go, srtf.go, mlfq.go) and is a pure function of
// (workload, optional quantum) -> ScheduleResult. Algorithms only record
// execution slices while they run; metrics.go derives every per-process and
// system-wide figure from the recorded timeline in a single pass afterwards.
//
// Workload loading lives in the sim/workload sub-package.
package sim
