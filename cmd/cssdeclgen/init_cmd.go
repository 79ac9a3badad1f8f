package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .cssdeclgen.yaml config file",
	Long:  `Create a .cssdeclgen.yaml configuration file in the current directory with the built-in defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".cssdeclgen.yaml"); err == nil && !force {
			return fmt.Errorf(".cssdeclgen.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".cssdeclgen.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .cssdeclgen.yaml")
		return nil
	},
}

const defaultConfig = `# cssdeclgen configuration
# Docs: https://github.com/yacobolo/cssdeclgen

verbose: false

# Generation settings (paths are relative to data-dir)
generate:
  data-dir: .
  source: CSSPropertyNames.in
  output: ../templates/html/impl/impl_CSSStyleDeclaration.darttemplate
  browsers:
    - cssProperties.CSS21.txt
    - cssProperties.ie9.txt
    - cssProperties.ie10.txt
    - cssProperties.ie11.txt
    - cssProperties.ff36.txt
    - cssProperties.chrome40.txt
    - cssProperties.safari-7.1.3.txt
    - cssProperties.mobileSafari-8.2.txt
    - cssProperties.iPad4Air.onGoogleSites.txt
  exclude:
    - cssText
  # Extra annotations written before a property's accessors.
  # An empty value removes a built-in annotation.
  # annotations:
  #   transition: "@SupportedBrowser(SupportedBrowser.CHROME)"

# Audit settings
audit:
  paths:
    - "**/*.css"
  strict: false
  output-format: issues    # issues | summary | full | json
  max-issues: 0            # 0 = unlimited
  max-same-issues: 0       # 0 = unlimited
  print-lines: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
