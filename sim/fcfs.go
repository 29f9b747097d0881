package sim

import "sort"

// ScheduleFCFS runs first-come-first-serve scheduling: processes execute to
// completion in arrival order. Equal arrival times are broken explicitly by
// pid rather than relying on input-order stability.
func ScheduleFCFS(processes []Process) *ScheduleResult {
	order := make([]Process, len(processes))
	copy(order, processes)
	sort.Slice(order, func(i, j int) bool {
		if order[i].ArrivalTime != order[j].ArrivalTime {
			return order[i].ArrivalTime < order[j].ArrivalTime
		}
		return order[i].PID < order[j].PID
	})

	st := newRunState(processes)
	for _, p := range order {
		if st.clock < p.ArrivalTime {
			st.clock = p.ArrivalTime
		}
		st.record(p.PID, p.BurstTime)
	}
	return st.finish(FCFS, 0)
}
