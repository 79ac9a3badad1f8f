package cssdecl

// Issue represents a single audit finding in golangci-lint format
type Issue struct {
	FromLinter  string   // "csscompat"
	Text        string   // "unknown CSS property \"colr\""
	Severity    string   // "warning", "error"
	Property    string   // "colr"
	SourceLines []string // Lines of code with issue
	Pos         IssuePos // File location
}

// IssuePos specifies the exact location of an issue
type IssuePos struct {
	Filename string // "web/styles/app.css"
	Line     int    // 35
	Column   int    // 3 (1-based, start of the property name)
}

// LinterName is reported in the (linter) suffix of every issue.
const LinterName = "csscompat"

// IssueSeverity constants
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Issue message formats
const (
	IssueUnknownProperty     = "unknown CSS property %q"
	IssueUnsupportedProperty = "property %q is not supported by every tracked browser"
)

// AuditStats summarizes an audit run.
type AuditStats struct {
	FilesDiscovered int // Files matched by the glob patterns
	FilesScanned    int // Files parsed
	FilesSkipped    int // Ignored or minified files
	Declarations    int // Declarations checked
	Universal       int // Declarations using universal properties
	Unsupported     int // Declarations using non-universal master properties
	Unknown         int // Declarations using properties missing from the master list
	Ignored         int // Custom properties and foreign vendor prefixes
	TruncatedCount  int // Issues removed due to limits
}

// CompatPercentage is the share of checked declarations that are universal.
func (s AuditStats) CompatPercentage() float64 {
	checked := s.Universal + s.Unsupported + s.Unknown
	if checked == 0 {
		return 100
	}
	return float64(s.Universal) / float64(checked) * 100
}
