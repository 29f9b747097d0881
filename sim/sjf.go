package sim

// ScheduleSJF runs shortest-job-first scheduling, non-preemptive: at each
// decision point the arrived, incomplete process with the smallest burst time
// runs to completion. Ties break by earlier arrival, then pid.
func ScheduleSJF(processes []Process) *ScheduleResult {
	st := newRunState(processes)
	for st.unfinished() {
		ready := st.ready()
		if len(ready) == 0 {
			if !st.advanceToNextArrival() {
				break
			}
			continue
		}

		best := ready[0]
		for _, p := range ready[1:] {
			if shorterJob(p, best) {
				best = p
			}
		}
		st.record(best.PID, best.BurstTime)
	}
	return st.finish(SJF, 0)
}

// shorterJob orders by (burst_time, arrival_time, pid).
func shorterJob(a, b Process) bool {
	if a.BurstTime != b.BurstTime {
		return a.BurstTime < b.BurstTime
	}
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	return a.PID < b.PID
}
