package render

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/youpesh/schedsim/sim"
)

// Animate replays a completed schedule tick by tick, printing which process
// occupies the CPU at each instant. The delay between ticks is cosmetic; a
// zero delay replays instantly (used by tests).
func Animate(w io.Writer, res *sim.ScheduleResult, delay time.Duration) {
	timeline := make([]sim.Slice, len(res.Timeline))
	copy(timeline, res.Timeline)
	sort.Slice(timeline, func(i, j int) bool {
		if timeline[i].Start != timeline[j].Start {
			return timeline[i].Start < timeline[j].Start
		}
		return timeline[i].End < timeline[j].End
	})
	if len(timeline) == 0 {
		fmt.Fprintln(w, "No execution to animate.")
		return
	}

	makespan := int64(0)
	for _, sl := range timeline {
		if sl.End > makespan {
			makespan = sl.End
		}
	}
	fmt.Fprintf(w, "Simulating %s (duration %d time units)\n", res.Algorithm, makespan)

	for t := int64(0); t < makespan; t++ {
		running := ""
		progress := ""
		for _, sl := range timeline {
			if sl.Start <= t && t < sl.End {
				running = sl.PID
				progress = strings.Repeat("#", int(t-sl.Start+1))
				break
			}
		}
		if running == "" {
			fmt.Fprintf(w, "t=%2d: [idle]\n", t)
		} else {
			fmt.Fprintf(w, "t=%2d: %s %s\n", t, running, progress)
		}
		if delay > 0 {
			time.Sleep(delay)
		}
	}
}
