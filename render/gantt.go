// Package render turns completed schedule results into terminal output:
// an ASCII Gantt chart, per-process and system metric tables, and an
// optional time-stepped replay of the run.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/youpesh/schedsim/sim"
)

// Gantt renders the timeline as a plain-text Gantt chart: one bar row, one
// pid label row, and a row of time marks. Idle gaps show as dots.
func Gantt(timeline []sim.Slice) string {
	if len(timeline) == 0 {
		return "(no execution)"
	}

	slices := make([]sim.Slice, len(timeline))
	copy(slices, timeline)
	sort.Slice(slices, func(i, j int) bool {
		if slices[i].Start != slices[j].Start {
			return slices[i].Start < slices[j].Start
		}
		return slices[i].End < slices[j].End
	})

	var bars, labels, marks strings.Builder
	bars.WriteString("|")
	marks.WriteString("0")
	labels.WriteString(" ")
	last := int64(0)

	for _, sl := range slices {
		if gap := sl.Start - last; gap > 0 {
			bars.WriteString(strings.Repeat(".", int(gap)))
			labels.WriteString(strings.Repeat(" ", int(gap)))
			last = sl.Start
			fmt.Fprintf(&marks, "%*d", gap+2, last)
		}

		width := int(sl.Duration())
		if width < 1 {
			width = 1
		}
		bars.WriteString(strings.Repeat("=", width))
		label := sl.PID
		if len(label) > width {
			label = label[:width]
		}
		labels.WriteString(label + strings.Repeat(" ", width-len(label)))
		last = sl.End
		fmt.Fprintf(&marks, "%*d", width+2, last)
	}
	bars.WriteString("|")

	return strings.Join([]string{"Gantt Chart:", bars.String(), labels.String(), marks.String()}, "\n")
}
