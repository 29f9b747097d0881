package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeSystemMetrics_CanonicalFCFSRun(t *testing.T) {
	res := ScheduleFCFS(canonicalProcs())

	require.NotNil(t, res.System)
	assert.Equal(t, int64(16), res.System.CPUBusyTime)
	assert.Equal(t, int64(16), res.System.Makespan)
	assert.InDelta(t, 3.0/16.0, res.System.Throughput, 1e-9)
	assert.InDelta(t, 1.0, res.System.CPUUtilization, 1e-9)
	// Waits are 0, 4, 6 (mean 10/3); nobody exceeds twice the mean.
	assert.Equal(t, 0, res.System.StarvationCount)
}

func TestComputeSystemMetrics_EmptyRun_AllZero(t *testing.T) {
	res := &ScheduleResult{Algorithm: FCFS.String()}

	system := ComputeSystemMetrics(res)

	assert.Equal(t, SystemMetrics{}, system)
	require.NotNil(t, res.System)
	assert.Equal(t, system, *res.System)
}

func TestComputeSystemMetrics_IdleTime_LowersUtilization(t *testing.T) {
	// GIVEN a run with a 6-tick idle gap before the second process
	procs := []Process{
		{PID: "A", ArrivalTime: 0, BurstTime: 2},
		{PID: "B", ArrivalTime: 8, BurstTime: 2},
	}
	res := ScheduleFCFS(procs)

	require.NotNil(t, res.System)
	assert.Equal(t, int64(4), res.System.CPUBusyTime)
	assert.Equal(t, int64(10), res.System.Makespan)
	assert.InDelta(t, 0.4, res.System.CPUUtilization, 1e-9)
}

func TestComputeSystemMetrics_StarvationHeuristic(t *testing.T) {
	// GIVEN one process waiting far beyond twice the mean waiting time
	res := &ScheduleResult{
		Processes: []ProcessMetrics{
			{PID: "a", WaitingTime: 0, CompletionTime: 5},
			{PID: "b", WaitingTime: 1, CompletionTime: 9},
			{PID: "c", WaitingTime: 20, CompletionTime: 30},
		},
		Timeline: []Slice{{PID: "a", Start: 0, End: 30}},
	}

	system := ComputeSystemMetrics(res)

	// Mean wait is 7; only c exceeds 14.
	assert.Equal(t, 1, system.StarvationCount)
}

func TestSummarize_Averages(t *testing.T) {
	metrics := []ProcessMetrics{
		{WaitingTime: 0, TurnaroundTime: 5, ResponseTime: 0},
		{WaitingTime: 4, TurnaroundTime: 7, ResponseTime: 4},
		{WaitingTime: 6, TurnaroundTime: 14, ResponseTime: 6},
	}

	avg := Summarize(metrics)

	assert.InDelta(t, 10.0/3.0, avg.Waiting, 1e-9)
	assert.InDelta(t, 26.0/3.0, avg.Turnaround, 1e-9)
	assert.InDelta(t, 10.0/3.0, avg.Response, 1e-9)
}

func TestSummarize_Empty_AllZero(t *testing.T) {
	assert.Equal(t, MetricAverages{}, Summarize(nil))
}

func TestDeriveProcessMetrics_FirstDispatchOrder(t *testing.T) {
	// GIVEN a preempted timeline where B completes before A
	procs := []Process{
		{PID: "A", ArrivalTime: 0, BurstTime: 4},
		{PID: "B", ArrivalTime: 1, BurstTime: 2},
	}
	timeline := []Slice{
		{PID: "A", Start: 0, End: 2},
		{PID: "B", Start: 2, End: 4},
		{PID: "A", Start: 4, End: 6},
	}

	metrics := deriveProcessMetrics(procs, timeline)

	require.Len(t, metrics, 2)
	assert.Equal(t, "A", metrics[0].PID)
	assert.Equal(t, "B", metrics[1].PID)
	// A: first dispatch 0, completion 6; B: first dispatch 2, completion 4.
	assert.Equal(t, int64(0), metrics[0].StartTime)
	assert.Equal(t, int64(6), metrics[0].CompletionTime)
	assert.Equal(t, int64(2), metrics[0].WaitingTime)
	assert.Equal(t, int64(2), metrics[1].StartTime)
	assert.Equal(t, int64(4), metrics[1].CompletionTime)
	assert.Equal(t, int64(1), metrics[1].ResponseTime)
}
