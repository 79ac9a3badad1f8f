package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/yacobolo/cssdeclgen"
	"github.com/yacobolo/cssdeclgen/internal/cssdecl"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print the properties every tracked browser supports",
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		config := buildGenerateConfig()
		format := getStringWithFallback("format", "list.format", "text")
		if format == "json" {
			// stdout carries the JSON document
			config.Verbose = false
		}

		set, err := cssdeclgen.List(config)
		if err != nil {
			return fmt.Errorf("list failed: %w", err)
		}

		useColors := cssdecl.ShouldUseColors(getBoolWithFallback("color", "color", false))
		return cssdeclgen.WriteList(os.Stdout, set, config, format, useColors)
	},
}

func init() {
	f := listCmd.Flags()
	f.String("format", "text", "Output format: text|json")
	f.String("source", cssdeclgen.DefaultSource, "Master property list")
	f.StringSlice("browsers", nil, "Browser capability files or glob patterns")
	f.StringSlice("exclude", nil, "camelCase names never treated as universal")
}
