package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScheduleSJF_CanonicalWorkload_MatchesFCFS(t *testing.T) {
	// P1 is the only ready process at t=0; afterwards P2 beats P3 on burst
	// time, so the timeline coincides with FCFS on this workload.
	res := ScheduleSJF(canonicalProcs())

	want := []Slice{
		{PID: "P1", Start: 0, End: 5},
		{PID: "P2", Start: 5, End: 8},
		{PID: "P3", Start: 8, End: 16},
	}
	assert.Equal(t, want, res.Timeline)
}

func TestScheduleSJF_PicksShortestAmongReady(t *testing.T) {
	// GIVEN a long process running while two shorter ones queue up
	procs := []Process{
		{PID: "long", ArrivalTime: 0, BurstTime: 10},
		{PID: "mid", ArrivalTime: 1, BurstTime: 4},
		{PID: "tiny", ArrivalTime: 2, BurstTime: 1},
	}

	res := ScheduleSJF(procs)

	// THEN once the long process finishes, the shortest ready job goes first
	assert.Equal(t, []string{"long", "tiny", "mid"}, timelinePIDs(res.Timeline))
}

func TestScheduleSJF_EqualBursts_TieBreakByArrivalThenPID(t *testing.T) {
	procs := []Process{
		{PID: "C", ArrivalTime: 0, BurstTime: 3},
		{PID: "B", ArrivalTime: 0, BurstTime: 3},
		{PID: "A", ArrivalTime: 1, BurstTime: 3},
	}

	res := ScheduleSJF(procs)

	// B and C tie on burst and arrival, so pid decides; A arrived later.
	assert.Equal(t, []string{"B", "C", "A"}, timelinePIDs(res.Timeline))
}

func TestScheduleSJF_IdleGap_JumpsToNextArrival(t *testing.T) {
	procs := []Process{
		{PID: "A", ArrivalTime: 2, BurstTime: 2},
		{PID: "B", ArrivalTime: 10, BurstTime: 1},
	}

	res := ScheduleSJF(procs)

	want := []Slice{
		{PID: "A", Start: 2, End: 4},
		{PID: "B", Start: 10, End: 11},
	}
	assert.Equal(t, want, res.Timeline)
}
