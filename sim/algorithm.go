package sim

import (
	"errors"
	"fmt"
	"strings"
)

// Configuration errors surfaced by the dispatcher. Callers are expected to
// check them with errors.Is; the engine never retries or recovers.
var (
	// ErrUnknownAlgorithm reports an algorithm identifier outside the
	// supported set {fcfs, sjf, rr, priority, srtf, mlfq}.
	ErrUnknownAlgorithm = errors.New("unknown scheduling algorithm")
	// ErrInvalidQuantum reports a missing or non-positive quantum for an
	// algorithm that requires one.
	ErrInvalidQuantum = errors.New("invalid quantum")
)

// Algorithm enumerates the supported scheduling policies. Using a closed enum
// instead of a string-keyed function map lets the dispatcher switch
// exhaustively, so a missing case is a build-time smell rather than a runtime
// lookup failure.
type Algorithm int

const (
	FCFS Algorithm = iota
	SJF
	RoundRobin
	Priority
	SRTF
	MLFQ
)

// DefaultMLFQQuantum is the base quantum MLFQ substitutes when none is given.
const DefaultMLFQQuantum = 2

// Identifiers lists the accepted algorithm identifiers in canonical order.
func Identifiers() []string {
	return []string{"fcfs", "sjf", "rr", "priority", "srtf", "mlfq"}
}

// String returns the display name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case FCFS:
		return "FCFS"
	case SJF:
		return "SJF (non-preemptive)"
	case RoundRobin:
		return "Round Robin"
	case Priority:
		return "Priority (static)"
	case SRTF:
		return "SRTF"
	case MLFQ:
		return "MLFQ"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// UsesQuantum reports whether the algorithm consumes a time quantum.
func (a Algorithm) UsesQuantum() bool {
	return a == RoundRobin || a == MLFQ
}

// ParseAlgorithm maps an identifier from the set {fcfs, sjf, rr, priority,
// srtf, mlfq} (case-insensitive) to its Algorithm. Unrecognized identifiers
// return an error wrapping ErrUnknownAlgorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fcfs":
		return FCFS, nil
	case "sjf":
		return SJF, nil
	case "rr":
		return RoundRobin, nil
	case "priority":
		return Priority, nil
	case "srtf":
		return SRTF, nil
	case "mlfq":
		return MLFQ, nil
	default:
		return 0, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownAlgorithm, name, strings.Join(Identifiers(), ", "))
	}
}

// Run dispatches the workload to the selected algorithm. The quantum is
// required by Round Robin, optional for MLFQ (zero substitutes
// DefaultMLFQQuantum) and ignored by everything else.
func Run(algo Algorithm, processes []Process, quantum int64) (*ScheduleResult, error) {
	switch algo {
	case FCFS:
		return ScheduleFCFS(processes), nil
	case SJF:
		return ScheduleSJF(processes), nil
	case RoundRobin:
		return ScheduleRoundRobin(processes, quantum)
	case Priority:
		return SchedulePriority(processes), nil
	case SRTF:
		return ScheduleSRTF(processes), nil
	case MLFQ:
		return ScheduleMLFQ(processes, quantum)
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, algo)
	}
}

// RunByName parses the identifier and dispatches in one step. Convenience for
// callers that receive the algorithm as text (CLI flags, HTTP paths).
func RunByName(name string, processes []Process, quantum int64) (*ScheduleResult, error) {
	algo, err := ParseAlgorithm(name)
	if err != nil {
		return nil, err
	}
	return Run(algo, processes, quantum)
}
