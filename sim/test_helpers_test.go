package sim

// Shared fixtures for the engine tests.

func intPtr(v int) *int {
	return &v
}

// canonicalProcs returns the three-process workload used across the
// algorithm tests: P1 arrives first, P2 is shortest and highest priority,
// P3 is the long tail.
func canonicalProcs() []Process {
	return []Process{
		{PID: "P1", ArrivalTime: 0, BurstTime: 5, Priority: intPtr(2)},
		{PID: "P2", ArrivalTime: 1, BurstTime: 3, Priority: intPtr(1)},
		{PID: "P3", ArrivalTime: 2, BurstTime: 8, Priority: intPtr(3)},
	}
}

// timelinePIDs flattens a timeline to its pid sequence.
func timelinePIDs(timeline []Slice) []string {
	pids := make([]string, 0, len(timeline))
	for _, sl := range timeline {
		pids = append(pids, sl.PID)
	}
	return pids
}

// totalBurst sums the burst time of a workload.
func totalBurst(procs []Process) int64 {
	var sum int64
	for _, p := range procs {
		sum += p.BurstTime
	}
	return sum
}
