package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cssdeclgen",
	Short: "CssStyleDeclaration template generator",
	Long: `Generate the CssStyleDeclaration template from CSS property definitions.
Properties supported by every tracked browser get native accessors;
every known property gets getPropertyValue/setProperty accessors.`,
	// Default behavior: run generate when no subcommand is given.
	// We must call loadConfig here because PreRunE of generateCmd
	// is not triggered when delegating via rootCmd.RunE.
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := loadConfig(cmd); err != nil {
			return err
		}
		return runGenerate(generateCmd, nil)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".cssdeclgen.yaml", "Config file path")
	rootCmd.PersistentFlags().String("data-dir", ".", "Directory holding the property lists")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(auditCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
