package cssdeclgen

import (
	"fmt"
	"strings"

	"github.com/yacobolo/cssdeclgen/internal/cssdecl"
)

// compatibility classifies one declared property
type compatibility int

const (
	compatUniversal compatibility = iota
	compatUnsupported
	compatUnknown
	compatIgnored
)

// Audit checks every declaration in the matched stylesheets against the
// universal property set.
func Audit(config AuditConfig) (*AuditResult, error) {
	// Step 1: Resolve capability data
	set, err := Resolve(config.Generate)
	if err != nil {
		return nil, err
	}

	// Step 2: Find stylesheets
	files, stats, err := expandGlobPatterns(config.Paths)
	if err != nil {
		return nil, fmt.Errorf("failed to scan files: %w", err)
	}

	if config.Verbose && stats.FilesSkipped > 0 {
		fmt.Printf("Skipped %d minified/ignored files\n", stats.FilesSkipped)
	}

	result := &AuditResult{}

	// Step 3: Parse and classify declarations
	for _, file := range files {
		decls, err := cssdecl.ParseFile(file)
		if err != nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("Failed to parse %s: %v", file, err))
			continue
		}
		stats.FilesScanned++

		for _, decl := range decls {
			stats.Declarations++
			switch classifyProperty(decl.Property, set) {
			case compatUniversal:
				stats.Universal++
			case compatIgnored:
				stats.Ignored++
			case compatUnsupported:
				stats.Unsupported++
				result.Issues = append(result.Issues, newIssue(decl, cssdecl.SeverityWarning, cssdecl.IssueUnsupportedProperty))
			case compatUnknown:
				stats.Unknown++
				result.Issues = append(result.Issues, newIssue(decl, cssdecl.SeverityError, cssdecl.IssueUnknownProperty))
			}
		}
	}

	result.ErrorCount = stats.Unknown
	result.WarningCount = stats.Unsupported
	cssdecl.SortIssues(result.Issues)

	// Step 4: Apply issue limiting if configured
	if config.MaxIssues > 0 || config.MaxSameIssues > 0 {
		result.Issues, stats.TruncatedCount = limitIssues(result.Issues, config)
	}
	result.Stats = stats

	return result, nil
}

// classifyProperty decides how a declared property relates to the
// capability data. Custom properties and non-webkit vendor prefixes are
// outside the tracked lists.
func classifyProperty(property string, set *PropertySet) compatibility {
	if strings.HasPrefix(property, "--") {
		return compatIgnored
	}
	if strings.HasPrefix(property, "-") && !strings.HasPrefix(property, "-webkit-") {
		return compatIgnored
	}

	camel := cssdecl.CamelCase(property)
	switch {
	case set.IsUniversal(camel):
		return compatUniversal
	case set.IsKnown(camel):
		return compatUnsupported
	default:
		return compatUnknown
	}
}

func newIssue(decl cssdecl.Declaration, severity, format string) cssdecl.Issue {
	return cssdecl.Issue{
		FromLinter:  cssdecl.LinterName,
		Text:        fmt.Sprintf(format, decl.Property),
		Severity:    severity,
		Property:    decl.Property,
		SourceLines: []string{decl.Text},
		Pos: cssdecl.IssuePos{
			Filename: decl.File,
			Line:     decl.Line,
			Column:   decl.Column,
		},
	}
}

// limitIssues applies max-issues and max-same-issues constraints
func limitIssues(issues []cssdecl.Issue, config AuditConfig) ([]cssdecl.Issue, int) {
	originalCount := len(issues)

	// Apply max-same-issues (deduplication by message text)
	if config.MaxSameIssues > 0 {
		issues = deduplicateSameIssues(issues, config.MaxSameIssues)
	}

	if config.MaxIssues > 0 && len(issues) > config.MaxIssues {
		issues = issues[:config.MaxIssues]
	}

	return issues, originalCount - len(issues)
}

// deduplicateSameIssues limits how many times the same message appears
func deduplicateSameIssues(issues []cssdecl.Issue, maxSame int) []cssdecl.Issue {
	messageCounts := make(map[string]int)
	var filtered []cssdecl.Issue

	for _, issue := range issues {
		if messageCounts[issue.Text] < maxSame {
			filtered = append(filtered, issue)
			messageCounts[issue.Text]++
		}
	}

	return filtered
}
