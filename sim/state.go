// Per-run simulation state. Algorithms thread a single runState through their
// loop instead of sharing mutable maps and closures; the input processes are
// never touched.

package sim

import (
	"sort"

	"github.com/sirupsen/logrus"
)

// runState carries the mutable bookkeeping for one simulation pass: the
// integer clock, the remaining burst time per pid, and the recorded timeline.
// The clock is monotonically non-decreasing; it advances either by recording
// a slice or by jumping straight to the next unmet arrival when idle.
type runState struct {
	procs     []Process
	byPID     map[string]Process
	remaining map[string]int64
	clock     int64
	timeline  []Slice
}

func newRunState(procs []Process) *runState {
	st := &runState{
		procs:     procs,
		byPID:     make(map[string]Process, len(procs)),
		remaining: make(map[string]int64, len(procs)),
	}
	for _, p := range procs {
		st.byPID[p.PID] = p
		st.remaining[p.PID] = p.BurstTime
	}
	return st
}

// unfinished reports whether any process still has burst time left.
func (st *runState) unfinished() bool {
	for _, rt := range st.remaining {
		if rt > 0 {
			return true
		}
	}
	return false
}

// ready returns the arrived, incomplete processes at the current clock,
// preserving input order.
func (st *runState) ready() []Process {
	var out []Process
	for _, p := range st.procs {
		if p.ArrivalTime <= st.clock && st.remaining[p.PID] > 0 {
			out = append(out, p)
		}
	}
	return out
}

// nextArrival returns the earliest arrival time strictly after the clock
// among incomplete processes, or -1 if no such arrival exists.
func (st *runState) nextArrival() int64 {
	next := int64(-1)
	for _, p := range st.procs {
		if p.ArrivalTime > st.clock && st.remaining[p.PID] > 0 {
			if next == -1 || p.ArrivalTime < next {
				next = p.ArrivalTime
			}
		}
	}
	return next
}

// advanceToNextArrival jumps the idle clock to the next unmet arrival.
// It returns false when no future arrival exists, meaning all remaining
// work has been accounted for and the run must terminate.
func (st *runState) advanceToNextArrival() bool {
	next := st.nextArrival()
	if next == -1 {
		return false
	}
	logrus.Debugf("cpu idle at %d, jumping to next arrival at %d", st.clock, next)
	st.clock = next
	return true
}

// record appends one execution slice of the given duration for pid and
// advances the clock to its end. Durations are always positive: callers only
// dispatch processes with remaining burst, and preemption points are strictly
// after the current clock.
func (st *runState) record(pid string, duration int64) {
	start := st.clock
	st.clock += duration
	st.remaining[pid] -= duration
	st.timeline = append(st.timeline, Slice{PID: pid, Start: start, End: st.clock})
	logrus.Debugf("dispatch %s [%d, %d), remaining=%d", pid, start, st.clock, st.remaining[pid])
}

// finish derives per-process and system metrics from the completed pass and
// packages everything into an immutable ScheduleResult.
func (st *runState) finish(algo Algorithm, quantum int64) *ScheduleResult {
	res := newScheduleResult(algo, quantum, st.procs, st.timeline)
	ComputeSystemMetrics(res)
	return res
}

// arrivalFeed hands processes out in arrival order as the clock advances.
// Each process is released exactly once, which keeps queue-based algorithms
// (Round Robin, MLFQ) free of membership scans: newly-arrived processes are
// enqueued before the just-preempted process is re-enqueued at the same
// instant simply by releasing arrivals first.
type arrivalFeed struct {
	order []Process
	next  int
}

func newArrivalFeed(procs []Process) *arrivalFeed {
	order := make([]Process, len(procs))
	copy(order, procs)
	// Stable keeps input order for equal arrival times.
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].ArrivalTime < order[j].ArrivalTime
	})
	return &arrivalFeed{order: order}
}

// releaseUpTo returns, in arrival order, every not-yet-released process whose
// arrival time is at or before now.
func (f *arrivalFeed) releaseUpTo(now int64) []Process {
	start := f.next
	for f.next < len(f.order) && f.order[f.next].ArrivalTime <= now {
		f.next++
	}
	return f.order[start:f.next]
}
