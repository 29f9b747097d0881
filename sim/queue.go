// Implements the ReadyQueue, which holds the pids of arrived processes
// waiting for the CPU. Round Robin uses a single queue; MLFQ keeps one per
// feedback level.

package sim

import "strings"

// ReadyQueue is a FIFO of pids eligible for dispatch. The zero value is an
// empty queue ready for use.
type ReadyQueue struct {
	pids []string
}

// Enqueue adds a pid to the back of the queue.
func (q *ReadyQueue) Enqueue(pid string) {
	q.pids = append(q.pids, pid)
}

// Dequeue removes and returns the pid at the front of the queue.
// Returns "" if the queue is empty.
func (q *ReadyQueue) Dequeue() string {
	if len(q.pids) == 0 {
		return ""
	}
	front := q.pids[0]
	q.pids = q.pids[1:]
	return front
}

// Peek returns the pid at the front of the queue without removing it.
// Returns "" if the queue is empty.
func (q *ReadyQueue) Peek() string {
	if len(q.pids) == 0 {
		return ""
	}
	return q.pids[0]
}

// Len returns the number of pids in the queue.
func (q *ReadyQueue) Len() int {
	return len(q.pids)
}

func (q *ReadyQueue) String() string {
	return "[" + strings.Join(q.pids, " ") + "]"
}
