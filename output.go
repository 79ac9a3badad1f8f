package cssdeclgen

import (
	"fmt"
	"io"

	"github.com/yacobolo/cssdeclgen/internal/cssdecl"
)

// DetermineOutputFormat selects the output format from flags
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	// Explicit -quiet flag wins (exit code only)
	if quiet {
		return OutputIssues
	}

	switch formatFlag {
	case "summary":
		return OutputSummary
	case "full":
		return OutputFull
	case "json":
		return OutputJSON
	default:
		// Following golangci-lint's UX: issues only by default
		return OutputIssues
	}
}

// WriteOutput writes the audit result in the specified format
func WriteOutput(w io.Writer, result *AuditResult, format OutputFormat, opts cssdecl.ReporterOptions) error {
	switch format {
	case OutputSummary:
		verboseReporter := cssdecl.NewVerboseReporter(w, opts.UseColors)
		verboseReporter.PrintStatistics(result.Stats)
		verboseReporter.PrintCompatibility(result.Stats)
		verboseReporter.PrintTopOffenders(result.Issues)
		printWarnings(w, result.Warnings, opts.UseColors)

	case OutputFull:
		reporter := cssdecl.NewReporter(w, opts)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(result.Issues, result.Stats.TruncatedCount)

		verboseReporter := cssdecl.NewVerboseReporter(w, reporter.UseColors())
		verboseReporter.PrintStatistics(result.Stats)
		verboseReporter.PrintCompatibility(result.Stats)
		verboseReporter.PrintTopOffenders(result.Issues)
		printWarnings(w, result.Warnings, opts.UseColors)

	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			return fmt.Errorf("writing JSON: %w", err)
		}

	default:
		reporter := cssdecl.NewReporter(w, opts)
		reporter.PrintIssues(result.Issues)
		reporter.PrintSummary(result.Issues, result.Stats.TruncatedCount)
	}

	return nil
}

func printWarnings(w io.Writer, warnings []string, useColors bool) {
	if len(warnings) == 0 {
		return
	}

	fmt.Fprintln(w, "")
	fmt.Fprintln(w, cssdecl.RenderStyle(cssdecl.StyleYellow, "Warnings", useColors))
	fmt.Fprintln(w, "--------")
	for _, warning := range warnings {
		fmt.Fprintf(w, "• %s\n", warning)
	}
}
