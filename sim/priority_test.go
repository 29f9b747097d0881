package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchedulePriority_NonPreemptive_RunningProcessFinishes(t *testing.T) {
	// GIVEN the canonical workload: P1 (priority 2) is alone at t=0 while
	// the higher-priority P2 (priority 1) arrives at t=1
	res := SchedulePriority(canonicalProcs())

	// THEN P1 runs to completion before P2 despite the priority inversion
	want := []Slice{
		{PID: "P1", Start: 0, End: 5},
		{PID: "P2", Start: 5, End: 8},
		{PID: "P3", Start: 8, End: 16},
	}
	assert.Equal(t, want, res.Timeline)
}

func TestSchedulePriority_SelectsLowestValueAmongReady(t *testing.T) {
	procs := []Process{
		{PID: "low", ArrivalTime: 0, BurstTime: 2, Priority: intPtr(9)},
		{PID: "mid", ArrivalTime: 0, BurstTime: 2, Priority: intPtr(5)},
		{PID: "high", ArrivalTime: 0, BurstTime: 2, Priority: intPtr(1)},
	}

	res := SchedulePriority(procs)

	assert.Equal(t, []string{"high", "mid", "low"}, timelinePIDs(res.Timeline))
}

func TestSchedulePriority_MissingPriority_SortsLast(t *testing.T) {
	procs := []Process{
		{PID: "none", ArrivalTime: 0, BurstTime: 2},
		{PID: "weak", ArrivalTime: 0, BurstTime: 2, Priority: intPtr(100)},
	}

	res := SchedulePriority(procs)

	// Any explicit priority beats a missing one.
	assert.Equal(t, []string{"weak", "none"}, timelinePIDs(res.Timeline))
	require.Len(t, res.Processes, 2)
	assert.Nil(t, res.Processes[1].Priority)
}

func TestSchedulePriority_EqualPriorities_TieBreakByArrivalThenPID(t *testing.T) {
	procs := []Process{
		{PID: "B", ArrivalTime: 0, BurstTime: 1, Priority: intPtr(1)},
		{PID: "A", ArrivalTime: 0, BurstTime: 1, Priority: intPtr(1)},
		{PID: "C", ArrivalTime: 1, BurstTime: 1, Priority: intPtr(1)},
	}

	res := SchedulePriority(procs)

	assert.Equal(t, []string{"A", "B", "C"}, timelinePIDs(res.Timeline))
}
