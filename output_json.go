package cssdeclgen

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Stats     JSONStats   `json:"stats"`
	Issues    []JSONIssue `json:"issues"`
	Warnings  []string    `json:"warnings,omitempty"`
}

// JSONSummary contains high-level issue counts
type JSONSummary struct {
	TotalIssues  int `json:"total_issues"`
	Errors       int `json:"errors"`
	Warnings     int `json:"warnings"`
	Truncated    int `json:"truncated"`
	FilesScanned int `json:"files_scanned"`
}

// JSONStats contains declaration statistics
type JSONStats struct {
	Declarations     int     `json:"declarations"`
	Universal        int     `json:"universal"`
	Unsupported      int     `json:"unsupported"`
	Unknown          int     `json:"unknown"`
	Ignored          int     `json:"ignored"`
	CompatPercentage float64 `json:"compat_percentage"`
}

// JSONIssue represents a single audit issue
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Severity string `json:"severity"`
	Property string `json:"property"`
	Message  string `json:"message"`
	Linter   string `json:"linter"`
	Source   string `json:"source,omitempty"` // Optional source line
}

// JSONUniversal is the JSON form of the list command output
type JSONUniversal struct {
	Source     string         `json:"source"`
	Browsers   []string       `json:"browsers"`
	Properties []JSONProperty `json:"properties"`
}

// JSONProperty is one universal property
type JSONProperty struct {
	Name  string `json:"name"`
	Camel string `json:"camel"`
}

// WriteJSON writes the audit result as JSON
func WriteJSON(w io.Writer, result *AuditResult) error {
	return encodeJSON(w, buildJSONOutput(result))
}

func encodeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// buildJSONOutput converts AuditResult to JSONOutput
func buildJSONOutput(result *AuditResult) JSONOutput {
	jsonIssues := make([]JSONIssue, len(result.Issues))
	for i, issue := range result.Issues {
		source := ""
		if len(issue.SourceLines) > 0 {
			source = issue.SourceLines[0]
		}
		jsonIssues[i] = JSONIssue{
			File:     issue.Pos.Filename,
			Line:     issue.Pos.Line,
			Column:   issue.Pos.Column,
			Severity: issue.Severity,
			Property: issue.Property,
			Message:  issue.Text,
			Linter:   issue.FromLinter,
			Source:   source,
		}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: time.Now().Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:  len(result.Issues),
			Errors:       result.ErrorCount,
			Warnings:     result.WarningCount,
			Truncated:    result.Stats.TruncatedCount,
			FilesScanned: result.Stats.FilesScanned,
		},
		Stats: JSONStats{
			Declarations:     result.Stats.Declarations,
			Universal:        result.Stats.Universal,
			Unsupported:      result.Stats.Unsupported,
			Unknown:          result.Stats.Unknown,
			Ignored:          result.Stats.Ignored,
			CompatPercentage: result.Stats.CompatPercentage(),
		},
		Issues:   jsonIssues,
		Warnings: result.Warnings,
	}
}
