package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleSRTF_PreemptsOnShorterArrival(t *testing.T) {
	// GIVEN the canonical workload: P2 arrives at t=1 with burst 3 while P1
	// has 4 ticks remaining
	res := ScheduleSRTF(canonicalProcs())

	// THEN P2 preempts at its arrival; segments end at arrival instants
	want := []Slice{
		{PID: "P1", Start: 0, End: 1},
		{PID: "P2", Start: 1, End: 2},
		{PID: "P2", Start: 2, End: 4},
		{PID: "P1", Start: 4, End: 8},
		{PID: "P3", Start: 8, End: 16},
	}
	assert.Equal(t, want, res.Timeline)

	byPID := make(map[string]ProcessMetrics)
	for _, p := range res.Processes {
		byPID[p.PID] = p
	}
	// Completion bookkeeping happens only when remaining burst hits zero.
	assert.Equal(t, int64(8), byPID["P1"].CompletionTime)
	assert.Equal(t, int64(4), byPID["P2"].CompletionTime)
	assert.Equal(t, int64(16), byPID["P3"].CompletionTime)
	// Response is recorded at first dispatch, before any preemption.
	assert.Equal(t, int64(0), byPID["P1"].ResponseTime)
	assert.Equal(t, int64(0), byPID["P2"].ResponseTime)
	assert.Equal(t, int64(6), byPID["P3"].ResponseTime)
}

func TestScheduleSRTF_NoZeroDurationSlices(t *testing.T) {
	// GIVEN arrivals that coincide with preemption checks
	procs := []Process{
		{PID: "A", ArrivalTime: 0, BurstTime: 4},
		{PID: "B", ArrivalTime: 2, BurstTime: 4},
		{PID: "C", ArrivalTime: 2, BurstTime: 1},
	}

	res := ScheduleSRTF(procs)

	for _, sl := range res.Timeline {
		assert.Positive(t, sl.Duration(), "slice %+v", sl)
	}
	require.NotNil(t, res.System)
	assert.Equal(t, totalBurst(procs), res.System.CPUBusyTime)
}

func TestScheduleSRTF_LongerArrivalDoesNotPreempt(t *testing.T) {
	procs := []Process{
		{PID: "short", ArrivalTime: 0, BurstTime: 3},
		{PID: "long", ArrivalTime: 1, BurstTime: 9},
	}

	res := ScheduleSRTF(procs)

	// The running process keeps the CPU; its segments stay contiguous.
	assert.Equal(t, []string{"short", "short", "long"}, timelinePIDs(res.Timeline))
	assert.Equal(t, int64(3), res.Timeline[1].End)
}
