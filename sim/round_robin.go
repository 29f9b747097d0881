package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// ScheduleRoundRobin runs round-robin scheduling with a fixed time quantum.
// The ready queue is FIFO; when a slice ends, processes that arrived during
// it (including exactly at its end) enqueue before the preempted process is
// re-enqueued. A missing or non-positive quantum is a configuration error.
func ScheduleRoundRobin(processes []Process, quantum int64) (*ScheduleResult, error) {
	if quantum <= 0 {
		return nil, fmt.Errorf("%w: round robin requires a positive quantum, got %d", ErrInvalidQuantum, quantum)
	}

	st := newRunState(processes)
	feed := newArrivalFeed(processes)
	queue := &ReadyQueue{}
	for _, p := range feed.releaseUpTo(st.clock) {
		queue.Enqueue(p.PID)
	}

	for st.unfinished() {
		if queue.Len() == 0 {
			if !st.advanceToNextArrival() {
				break
			}
			for _, p := range feed.releaseUpTo(st.clock) {
				queue.Enqueue(p.PID)
			}
			continue
		}

		pid := queue.Dequeue()
		run := quantum
		if rem := st.remaining[pid]; rem < run {
			run = rem
		}
		st.record(pid, run)

		// Arrivals during the slice go in ahead of the preempted process.
		for _, p := range feed.releaseUpTo(st.clock) {
			queue.Enqueue(p.PID)
		}
		if st.remaining[pid] > 0 {
			queue.Enqueue(pid)
		}
		logrus.Debugf("round robin ready queue %s", queue)
	}
	return st.finish(RoundRobin, quantum), nil
}
