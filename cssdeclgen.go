// Package cssdeclgen generates the CssStyleDeclaration template from CSS
// property definitions and browser capability snapshots.
//
// The generator reads a master property list (hyphenated names, one per
// line) and one capability file per tracked browser (camelCase names, one
// per line). Properties present in every browser file are "universal" and
// get native accessors; every master-list property gets a generic
// getPropertyValue/setProperty accessor pair.
//
// # Generation
//
//	config := cssdeclgen.DefaultConfig()
//	config.DataDir = "tools/dom/scripts"
//	result, err := cssdeclgen.Generate(config)
//
// Running twice with unchanged inputs produces byte-identical output.
// Set Config.Check to verify the output file is current without writing it.
//
// # Auditing
//
// Audit checks stylesheets against the same capability data:
//
//	result, err := cssdeclgen.Audit(cssdeclgen.AuditConfig{
//		Generate: cssdeclgen.DefaultConfig(),
//		Paths:    []string{"web/**/*.css"},
//	})
//
// # CLI Tool
//
//	go install github.com/yacobolo/cssdeclgen/cmd/cssdeclgen@latest
package cssdeclgen
