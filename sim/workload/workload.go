// Package workload loads process workloads from JSON, CSV, or YAML files
// into the engine's Process records. Malformed or missing values are the
// loader's errors to raise; the scheduling engine assumes validated input.
package workload

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/youpesh/schedsim/sim"
)

// rawEntry is the permissive on-disk shape of one process. The pid is
// accepted as any scalar and stringified; times must be integral; priority is
// optional and defaults to none when absent or empty.
type rawEntry struct {
	PID         any    `json:"pid" yaml:"pid"`
	ArrivalTime *int64 `json:"arrival_time" yaml:"arrival_time"`
	BurstTime   *int64 `json:"burst_time" yaml:"burst_time"`
	Priority    *int   `json:"priority" yaml:"priority"`
}

// Load reads a workload file into Process records. The format follows the
// file extension: .json (array of objects), .csv (header row with pid,
// arrival_time, burst_time and optional priority), or .yaml/.yml.
func Load(path string) ([]sim.Process, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading workload: %w", err)
	}

	var procs []sim.Process
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		procs, err = parseJSON(data)
	case ".csv":
		procs, err = parseCSV(data)
	case ".yaml", ".yml":
		procs, err = parseYAML(data)
	default:
		return nil, fmt.Errorf("unsupported workload format %q (use .json, .csv, or .yaml)", ext)
	}
	if err != nil {
		return nil, err
	}
	if err := Validate(procs); err != nil {
		return nil, err
	}
	return procs, nil
}

func parseJSON(data []byte) ([]sim.Process, error) {
	var entries []rawEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing JSON workload: %w", err)
	}
	return fromEntries(entries)
}

func parseYAML(data []byte) ([]sim.Process, error) {
	var entries []rawEntry
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&entries); err != nil {
		return nil, fmt.Errorf("parsing YAML workload: %w", err)
	}
	return fromEntries(entries)
}

func parseCSV(data []byte) ([]sim.Process, error) {
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parsing CSV workload: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("CSV workload is empty (expected a header row)")
	}

	col := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"pid", "arrival_time", "burst_time"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("CSV workload missing required column %q", required)
		}
	}

	entries := make([]rawEntry, 0, len(rows)-1)
	for n, row := range rows[1:] {
		entry := rawEntry{PID: strings.TrimSpace(row[col["pid"]])}
		arrival, err := strconv.ParseInt(strings.TrimSpace(row[col["arrival_time"]]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("CSV row %d: bad arrival_time: %w", n+1, err)
		}
		burst, err := strconv.ParseInt(strings.TrimSpace(row[col["burst_time"]]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("CSV row %d: bad burst_time: %w", n+1, err)
		}
		entry.ArrivalTime = &arrival
		entry.BurstTime = &burst

		if i, ok := col["priority"]; ok && i < len(row) {
			if raw := strings.TrimSpace(row[i]); raw != "" {
				prio, err := strconv.Atoi(raw)
				if err != nil {
					return nil, fmt.Errorf("CSV row %d: bad priority: %w", n+1, err)
				}
				entry.Priority = &prio
			}
		}
		entries = append(entries, entry)
	}
	return fromEntries(entries)
}

func fromEntries(entries []rawEntry) ([]sim.Process, error) {
	procs := make([]sim.Process, 0, len(entries))
	for i, e := range entries {
		if e.PID == nil {
			return nil, fmt.Errorf("process[%d]: missing pid", i)
		}
		if e.ArrivalTime == nil {
			return nil, fmt.Errorf("process[%d]: missing arrival_time", i)
		}
		if e.BurstTime == nil {
			return nil, fmt.Errorf("process[%d]: missing burst_time", i)
		}
		procs = append(procs, sim.Process{
			PID:         fmt.Sprint(e.PID),
			ArrivalTime: *e.ArrivalTime,
			BurstTime:   *e.BurstTime,
			Priority:    e.Priority,
		})
	}
	return procs, nil
}

// Validate checks that every process is well-formed: non-empty unique pid,
// non-negative arrival time, and positive burst time.
func Validate(procs []sim.Process) error {
	seen := make(map[string]bool, len(procs))
	for i, p := range procs {
		prefix := fmt.Sprintf("process[%d]", i)
		if p.PID == "" {
			return fmt.Errorf("%s: pid must not be empty", prefix)
		}
		if seen[p.PID] {
			return fmt.Errorf("%s: duplicate pid %q", prefix, p.PID)
		}
		seen[p.PID] = true
		if p.ArrivalTime < 0 {
			return fmt.Errorf("%s: arrival_time must be non-negative, got %d", prefix, p.ArrivalTime)
		}
		if p.BurstTime <= 0 {
			return fmt.Errorf("%s: burst_time must be positive, got %d", prefix, p.BurstTime)
		}
	}
	return nil
}
