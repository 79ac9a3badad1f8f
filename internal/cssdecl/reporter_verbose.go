package cssdecl

import (
	"fmt"
	"io"
	"sort"
)

// VerboseReporter handles detailed statistics
type VerboseReporter struct {
	w         io.Writer
	useColors bool
}

// NewVerboseReporter creates a verbose reporter
func NewVerboseReporter(w io.Writer, useColors bool) *VerboseReporter {
	return &VerboseReporter{
		w:         w,
		useColors: useColors,
	}
}

// PrintStatistics outputs detailed audit statistics
func (r *VerboseReporter) PrintStatistics(stats AuditStats) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "CSS Compatibility Statistics", r.useColors))
	fmt.Fprintln(r.w, "----------------------------")

	fmt.Fprintf(r.w, "Files Scanned:           %d\n", stats.FilesScanned)
	fmt.Fprintf(r.w, "Files Skipped:           %d\n", stats.FilesSkipped)
	fmt.Fprintf(r.w, "Declarations:            %d\n", stats.Declarations)
	fmt.Fprintf(r.w, "Universal:               %d\n", stats.Universal)
	fmt.Fprintf(r.w, "Not Universal:           %d\n", stats.Unsupported)
	fmt.Fprintf(r.w, "Unknown:                 %d\n", stats.Unknown)
	fmt.Fprintf(r.w, "Ignored:                 %d\n", stats.Ignored)
}

// PrintCompatibility shows a progress bar of universal declarations
func (r *VerboseReporter) PrintCompatibility(stats AuditStats) {
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Compatibility", r.useColors))
	fmt.Fprintln(r.w, "-------------")
	printProgressBar(r.w, stats.CompatPercentage())
}

// PrintTopOffenders lists the most frequent non-universal properties
func (r *VerboseReporter) PrintTopOffenders(issues []Issue) {
	counts := make(map[string]int)
	for _, issue := range issues {
		counts[issue.Property]++
	}
	if len(counts) == 0 {
		return
	}

	props := make([]string, 0, len(counts))
	for p := range counts {
		props = append(props, p)
	}
	sort.Slice(props, func(i, j int) bool {
		if counts[props[i]] != counts[props[j]] {
			return counts[props[i]] > counts[props[j]]
		}
		return props[i] < props[j]
	})

	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleYellow, "Most Frequent", r.useColors))
	fmt.Fprintln(r.w, "-------------")
	for i, p := range props {
		if i >= 10 {
			break
		}
		fmt.Fprintf(r.w, "%d. %q - %d occurrences\n", i+1, p, counts[p])
	}
}

// printProgressBar prints a visual progress bar
func printProgressBar(w io.Writer, percentage float64) {
	barWidth := 20
	filled := int(percentage / 100 * float64(barWidth))

	fmt.Fprint(w, "[")
	for i := 0; i < barWidth; i++ {
		if i < filled {
			fmt.Fprint(w, "█")
		} else {
			fmt.Fprint(w, "░")
		}
	}
	fmt.Fprintf(w, "] %.1f%%\n", percentage)
}
