package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// mlfqLevels is the number of feedback levels.
const mlfqLevels = 3

// ScheduleMLFQ runs a three-level feedback queue. All arrivals enter level 0;
// each level round-robins with a quantum that doubles per level (B, 2B, 4B
// for base quantum B). A process exhausting its level's quantum without
// finishing is demoted one level, capped at the lowest; the lowest-numbered
// non-empty level is always served first.
//
// A zero quantum means "not supplied" and substitutes DefaultMLFQQuantum.
// A negative quantum is a configuration error, matching Round Robin's
// rejection of invalid values.
func ScheduleMLFQ(processes []Process, quantum int64) (*ScheduleResult, error) {
	if quantum < 0 {
		return nil, fmt.Errorf("%w: mlfq quantum must not be negative, got %d", ErrInvalidQuantum, quantum)
	}
	base := quantum
	if base == 0 {
		base = DefaultMLFQQuantum
	}
	quanta := [mlfqLevels]int64{base, base * 2, base * 4}

	st := newRunState(processes)
	feed := newArrivalFeed(processes)
	var queues [mlfqLevels]ReadyQueue
	for _, p := range feed.releaseUpTo(st.clock) {
		queues[0].Enqueue(p.PID)
	}

	for st.unfinished() {
		level := -1
		for i := range queues {
			if queues[i].Len() > 0 {
				level = i
				break
			}
		}
		if level == -1 {
			if !st.advanceToNextArrival() {
				break
			}
			for _, p := range feed.releaseUpTo(st.clock) {
				queues[0].Enqueue(p.PID)
			}
			continue
		}

		pid := queues[level].Dequeue()
		run := quanta[level]
		if rem := st.remaining[pid]; rem < run {
			run = rem
		}
		st.record(pid, run)

		for _, p := range feed.releaseUpTo(st.clock) {
			queues[0].Enqueue(p.PID)
		}
		if st.remaining[pid] > 0 {
			demoted := level + 1
			if demoted >= mlfqLevels {
				demoted = mlfqLevels - 1
			}
			queues[demoted].Enqueue(pid)
			logrus.Debugf("mlfq demoting %s from level %d to %d", pid, level, demoted)
		}
	}
	return st.finish(MLFQ, base), nil
}
