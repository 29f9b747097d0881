package sim

// ScheduleSRTF runs shortest-remaining-time-first scheduling, the preemptive
// variant of SJF. The chosen process runs until it completes or the next
// arrival instant, whichever is sooner; the selection is re-evaluated after
// each segment, so a new arrival with less remaining work preempts. Ties
// break by earlier arrival, then pid.
func ScheduleSRTF(processes []Process) *ScheduleResult {
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
			if lessRemaining(st, p, best) {
				best = p
			}
		}

		run := st.remaining[best.PID]
		if next := st.nextArrival(); next != -1 && next-st.clock < run {
			run = next - st.clock
		}
		st.record(best.PID, run)
	}
	return st.finish(SRTF, 0)
}

// lessRemaining orders by (remaining_burst, arrival_time, pid).
func lessRemaining(st *runState, a, b Process) bool {
	ra, rb := st.remaining[a.PID], st.remaining[b.PID]
	if ra != rb {
		return ra < rb
	}
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	return a.PID < b.PID
}
