package sim

import "math"

// SchedulePriority runs static priority scheduling, non-preemptive: among
// arrived, incomplete processes the one with the smallest priority value runs
// to completion. A higher-priority arrival never interrupts the running
// process. Missing priorities sort after every explicit one; ties break by
// earlier arrival, then pid.
func SchedulePriority(processes []Process) *ScheduleResult {
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
			if higherPriority(p, best) {
				best = p
			}
		}
		st.record(best.PID, best.BurstTime)
	}
	return st.finish(Priority, 0)
}

// priorityRank maps an optional priority to a sortable value; nil sorts last.
func priorityRank(p Process) int64 {
	if p.Priority == nil {
		return math.MaxInt64
	}
	return int64(*p.Priority)
}

// higherPriority orders by (priority-or-infinity, arrival_time, pid); lower
// priority values take precedence.
func higherPriority(a, b Process) bool {
	ra, rb := priorityRank(a), priorityRank(b)
	if ra != rb {
		return ra < rb
	}
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	return a.PID < b.PID
}
