package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/cssdeclgen"
	"github.com/yacobolo/cssdeclgen/internal/cssdecl"
)

var auditCmd = &cobra.Command{
	Use:   "audit [patterns...]",
	Short: "Check stylesheets for properties not every browser supports",
	Long: `Scan stylesheets and report declarations whose property is not supported
by every tracked browser (warning) or is missing from the master list (error).
Custom properties and non-webkit vendor prefixes are ignored.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runAudit,
}

func init() {
	f := auditCmd.Flags()
	f.StringSlice("paths", []string{"**/*.css"}, "Stylesheet glob patterns")
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.String("output-format", "", "Output format: issues|summary|full|json")
	f.Int("max-issues", 0, "Max issues to show (0=unlimited)")
	f.Int("max-same-issues", 0, "Max repeated issues to show (0=unlimited)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (csscompat) suffix on issues")
}

func runAudit(_ *cobra.Command, args []string) error {
	config := buildAuditConfig(args)

	quiet := getBoolWithFallback("quiet", "quiet", false)
	outputFormat := getStringWithFallback("output-format", "audit.output-format", "")
	format := cssdeclgen.DetermineOutputFormat(outputFormat, quiet)
	if format == cssdeclgen.OutputJSON {
		// stdout carries the JSON document
		config.Verbose = false
		config.Generate.Verbose = false
	}

	result, err := cssdeclgen.Audit(config)
	if err != nil {
		return fmt.Errorf("audit failed: %w", err)
	}

	if !quiet {
		opts := cssdecl.ReporterOptions{
			UseColors:       cssdecl.ShouldUseColors(getBoolWithFallback("color", "color", false)),
			PrintLines:      getBoolWithFallback("print-lines", "audit.print-lines", true),
			PrintLinterName: getBoolWithFallback("print-linter-name", "audit.print-linter-name", true),
		}
		if err := cssdeclgen.WriteOutput(os.Stdout, result, format, opts); err != nil {
			return err
		}
	}

	// Exit code logic - "Soft Gate" approach
	if result.Failed(config.Strict) {
		return &exitError{code: 1}
	}
	return nil
}
