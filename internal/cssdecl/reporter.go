package cssdecl

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// ReporterOptions controls issue formatting
type ReporterOptions struct {
	UseColors       bool
	PrintLines      bool
	PrintLinterName bool
}

// Reporter handles formatting and outputting audit issues
type Reporter struct {
	w               io.Writer
	useColors       bool
	printLines      bool
	printLinterName bool
}

// NewReporter creates a new reporter with the given options
func NewReporter(w io.Writer, opts ReporterOptions) *Reporter {
	return &Reporter{
		w:               w,
		useColors:       opts.UseColors,
		printLines:      opts.PrintLines,
		printLinterName: opts.PrintLinterName,
	}
}

// ShouldUseColors determines if colors should be enabled
func ShouldUseColors(force bool) bool {
	// Explicit flag wins
	if force {
		return true
	}

	// Check for FORCE_COLOR environment variable (GitHub Actions, etc.)
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	// GitHub Actions supports colors
	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// SortIssues orders issues by file, then line, then column
func SortIssues(issues []Issue) {
	sort.SliceStable(issues, func(i, j int) bool {
		if issues[i].Pos.Filename != issues[j].Pos.Filename {
			return issues[i].Pos.Filename < issues[j].Pos.Filename
		}
		if issues[i].Pos.Line != issues[j].Pos.Line {
			return issues[i].Pos.Line < issues[j].Pos.Line
		}
		return issues[i].Pos.Column < issues[j].Pos.Column
	})
}

// PrintIssues outputs issues in golangci-lint format
func (r *Reporter) PrintIssues(issues []Issue) {
	for _, issue := range issues {
		r.printIssue(issue)
	}
}

// printIssue formats a single issue in golangci-lint style
func (r *Reporter) printIssue(issue Issue) {
	// Format: file:line:col: message (linter)
	location := fmt.Sprintf("%s:%d:%d:", issue.Pos.Filename, issue.Pos.Line, issue.Pos.Column)

	linterSuffix := ""
	if r.printLinterName {
		linterSuffix = fmt.Sprintf(" (%s)", issue.FromLinter)
	}

	text := issue.Text
	if issue.Severity == SeverityError {
		text = RenderStyle(StyleRed, text, r.useColors)
	}

	fmt.Fprintf(r.w, "%s %s%s\n",
		RenderStyle(StyleCyan, location, r.useColors),
		text,
		RenderStyle(StyleGray, linterSuffix, r.useColors))

	// Print source lines with caret indicator
	if r.printLines && len(issue.SourceLines) > 0 {
		for _, line := range issue.SourceLines {
			fmt.Fprintf(r.w, "\t%s\n", line)
		}

		caret := r.buildCaretIndicator(issue.SourceLines[0], issue.Pos.Column)
		fmt.Fprintf(r.w, "\t%s\n", RenderStyle(StyleYellow, caret, r.useColors))
	}
}

// buildCaretIndicator creates the "^" indicator aligned with the column.
// Tabs in the prefix are kept so the caret lines up in the terminal.
func (r *Reporter) buildCaretIndicator(sourceLine string, column int) string {
	if column <= 0 {
		return "^"
	}

	prefixLen := column - 1
	if prefixLen > len(sourceLine) {
		prefixLen = len(sourceLine)
	}

	var padding strings.Builder
	for _, ch := range sourceLine[:prefixLen] {
		if ch == '\t' {
			padding.WriteRune('\t')
		} else {
			padding.WriteRune(' ')
		}
	}

	return padding.String() + "^"
}

// PrintSummary outputs the issue count summary
func (r *Reporter) PrintSummary(issues []Issue, truncated int) {
	var errors, warnings int
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityError:
			errors++
		case SeverityWarning:
			warnings++
		}
	}

	fmt.Fprintln(r.w, "")

	counts := pluralizeCount(len(issues), "issue", "issues")
	var details []string
	if errors > 0 && warnings > 0 {
		details = append(details,
			pluralizeCount(errors, "error", "errors"),
			pluralizeCount(warnings, "warning", "warnings"))
	}
	if truncated > 0 {
		details = append(details, pluralizeCount(truncated, "issue", "issues")+" truncated")
	}
	if len(details) > 0 {
		counts += " (" + strings.Join(details, ", ") + ")"
	}
	fmt.Fprintf(r.w, "%s:\n", counts)

	linterCounts := make(map[string]int)
	for _, issue := range issues {
		linterCounts[issue.FromLinter]++
	}
	linters := make([]string, 0, len(linterCounts))
	for linter := range linterCounts {
		linters = append(linters, linter)
	}
	sort.Strings(linters)
	for _, linter := range linters {
		fmt.Fprintf(r.w, "* %s: %d\n", linter, linterCounts[linter])
	}

	if len(issues) > 0 {
		fmt.Fprintln(r.w, "")
		fmt.Fprintln(r.w, RenderStyle(StyleGray, "Hint: Run with --output-format full to see statistics", r.useColors))
	}
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}
