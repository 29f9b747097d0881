package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAlgorithm_ValidIdentifiers(t *testing.T) {
	cases := map[string]Algorithm{
		"fcfs":     FCFS,
		"sjf":      SJF,
		"rr":       RoundRobin,
		"priority": Priority,
		"srtf":     SRTF,
		"mlfq":     MLFQ,
		"FCFS":     FCFS,
		" rr ":     RoundRobin,
	}
	for name, want := range cases {
		got, err := ParseAlgorithm(name)
		require.NoError(t, err, "identifier %q", name)
		assert.Equal(t, want, got, "identifier %q", name)
	}
}

func TestParseAlgorithm_Unknown_ConfigError(t *testing.T) {
	_, err := ParseAlgorithm("lottery")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestRunByName_UnknownIdentifier_ConfigError(t *testing.T) {
	_, err := RunByName("edf", canonicalProcs(), 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownAlgorithm)
}

func TestRun_DispatchesEveryAlgorithm(t *testing.T) {
	for _, name := range Identifiers() {
		algo, err := ParseAlgorithm(name)
		require.NoError(t, err)

		quantum := int64(0)
		if algo.UsesQuantum() {
			quantum = 2
		}
		res, err := Run(algo, canonicalProcs(), quantum)
		require.NoError(t, err, "algorithm %s", name)
		assert.Equal(t, algo.String(), res.Algorithm)
		assert.Len(t, res.Processes, 3, "algorithm %s", name)
		assert.NotEmpty(t, res.RunID, "algorithm %s", name)
	}
}

func TestRun_InputProcessesNeverMutated(t *testing.T) {
	// GIVEN one workload shared across all algorithms
	procs := canonicalProcs()
	want := canonicalProcs()

	for _, name := range Identifiers() {
		_, err := RunByName(name, procs, 2)
		require.NoError(t, err)
	}

	// THEN the input is byte-for-byte untouched
	assert.Equal(t, want, procs)
}

func TestRun_Determinism_IdenticalCopiesIdenticalResults(t *testing.T) {
	for _, name := range Identifiers() {
		first, err := RunByName(name, canonicalProcs(), 2)
		require.NoError(t, err)
		second, err := RunByName(name, canonicalProcs(), 2)
		require.NoError(t, err)

		assert.Equal(t, first.Timeline, second.Timeline, "algorithm %s", name)
		assert.Equal(t, first.Processes, second.Processes, "algorithm %s", name)
		assert.Equal(t, first.System, second.System, "algorithm %s", name)
	}
}
