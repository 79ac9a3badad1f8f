package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/yacobolo/cssdeclgen"
	"github.com/yacobolo/cssdeclgen/internal/cssdecl"
)

var generateCmd = &cobra.Command{
	Use:     "generate",
	Aliases: []string{"gen"},
	Short:   "Generate the CssStyleDeclaration template",
	Long: `Intersect the browser capability lists, filter them against the master
property list and write the CssStyleDeclaration template.
The output file is fully regenerated on every run.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.String("source", cssdeclgen.DefaultSource, "Master property list")
	f.String("output", cssdeclgen.DefaultOutput, "Template file to write")
	f.StringSlice("browsers", nil, "Browser capability files or glob patterns")
	f.StringSlice("exclude", nil, "camelCase names never treated as universal")
	f.Bool("check", false, "Fail if the template is out of date instead of writing it")
}

func runGenerate(_ *cobra.Command, _ []string) error {
	config := buildGenerateConfig()
	quiet := getBoolWithFallback("quiet", "quiet", false)
	useColors := cssdecl.ShouldUseColors(getBoolWithFallback("color", "color", false))

	result, err := cssdeclgen.Generate(config)
	if errors.Is(err, cssdeclgen.ErrStale) {
		if !quiet {
			fmt.Println(cssdecl.RenderStyle(cssdecl.StyleRed, result.OutputPath+" is out of date", useColors))
			fmt.Println("Run cssdeclgen generate to update it")
		}
		return &exitError{code: 1}
	}
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	if quiet {
		return nil
	}

	status := "Generated"
	switch {
	case config.Check:
		status = "Up to date"
	case !result.Changed:
		status = "Unchanged"
	}

	fmt.Printf("%s %s\n", cssdecl.RenderStyle(cssdecl.StyleGreen, status, useColors), result.OutputPath)
	fmt.Printf("  Browser files: %d\n", result.BrowserFilesRead)
	fmt.Printf("  Master entries: %d\n", result.MasterEntries)
	fmt.Printf("  Universal properties: %d\n", result.UniversalProperties)
	fmt.Printf("  Base properties: %d\n", result.BaseProperties)

	for _, w := range result.Warnings {
		fmt.Printf("  %s %s\n", cssdecl.RenderStyle(cssdecl.StyleYellow, "Warning:", useColors), w)
	}

	return nil
}
