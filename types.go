package cssdeclgen

import (
	"errors"

	"github.com/yacobolo/cssdeclgen/internal/cssdecl"
)

var (
	// ErrNoBrowserLists is returned when no browser capability file is configured.
	ErrNoBrowserLists = errors.New("no browser capability files configured")
	// ErrStale is returned in check mode when the output file is out of date.
	ErrStale = errors.New("generated template is out of date")
)

// DefaultBrowsers are the capability snapshots of every supported browser.
var DefaultBrowsers = []string{
	"cssProperties.CSS21.txt",
	"cssProperties.ie9.txt",
	"cssProperties.ie10.txt",
	"cssProperties.ie11.txt",
	"cssProperties.ff36.txt",
	"cssProperties.chrome40.txt",
	"cssProperties.safari-7.1.3.txt",
	"cssProperties.mobileSafari-8.2.txt",
	"cssProperties.iPad4Air.onGoogleSites.txt",
}

// Default input and output locations, relative to Config.DataDir.
const (
	DefaultSource = "CSSPropertyNames.in"
	DefaultOutput = "../templates/html/impl/impl_CSSStyleDeclaration.darttemplate"
)

// Config holds generator configuration
type Config struct {
	DataDir     string            // Base directory for relative paths (".")
	Source      string            // Master property list ("CSSPropertyNames.in")
	Browsers    []string          // Capability files or doublestar globs
	Output      string            // Template file to write
	Exclude     []string          // camelCase names never treated as universal (["cssText"])
	Annotations map[string]string // Overrides merged over the built-in annotations
	Check       bool              // Compare instead of write; ErrStale on drift
	Verbose     bool              // Enable debug logging
}

// DefaultConfig returns the configuration of a plain, argument-less run.
func DefaultConfig() Config {
	return Config{
		DataDir:  ".",
		Source:   DefaultSource,
		Browsers: append([]string(nil), DefaultBrowsers...),
		Output:   DefaultOutput,
		Exclude:  append([]string(nil), cssdecl.DefaultExclude...),
	}
}

// PropertySet is the resolved capability data of one run.
type PropertySet struct {
	Master       []string    // Hyphenated master entries, file order
	BrowserFiles []string    // Capability files read, in configuration order
	Universal    []string    // Sorted camelCase universal names
	universal    cssdecl.Set // Universal, as a set
	known        cssdecl.Set // camelCase forms of Master
}

// IsUniversal reports whether camel is supported by every tracked browser.
func (s *PropertySet) IsUniversal(camel string) bool {
	return s.universal.Has(camel)
}

// IsKnown reports whether camel names a master-list property.
func (s *PropertySet) IsKnown(camel string) bool {
	return s.known.Has(camel)
}

// GenerateResult contains generation stats
type GenerateResult struct {
	OutputPath          string
	BrowserFilesRead    int
	MasterEntries       int
	UniversalProperties int
	BaseProperties      int // Accessor pairs in CssStyleDeclarationBase
	Changed             bool
	Warnings            []string
}

// AuditConfig holds audit configuration
type AuditConfig struct {
	Generate      Config   // Where the capability data lives
	Paths         []string // Stylesheet globs ("web/**/*.css")
	Strict        bool     // Any issue fails the run
	MaxIssues     int      // 0 = unlimited
	MaxSameIssues int      // 0 = unlimited
	Verbose       bool
}

// AuditResult contains audit findings
type AuditResult struct {
	Issues       []cssdecl.Issue
	Stats        cssdecl.AuditStats
	ErrorCount   int
	WarningCount int
	Warnings     []string // Files that could not be parsed
}

// Failed applies the exit-code gate: errors always fail, warnings only in
// strict mode.
func (r *AuditResult) Failed(strict bool) bool {
	if strict {
		return len(r.Issues) > 0 || r.Stats.TruncatedCount > 0
	}
	return r.ErrorCount > 0
}

// OutputFormat represents the audit output format
type OutputFormat string

const (
	// OutputIssues shows only errors/warnings in golangci-lint format (CI-friendly)
	OutputIssues OutputFormat = "issues"
	// OutputSummary shows statistics only
	OutputSummary OutputFormat = "summary"
	// OutputFull shows issues + statistics
	OutputFull OutputFormat = "full"
	// OutputJSON exports structured data in JSON format (tooling integration)
	OutputJSON OutputFormat = "json"
)
