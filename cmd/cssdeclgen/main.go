// Package main provides the cssdeclgen CLI tool for generating the
// CssStyleDeclaration template from CSS property lists.
package main

import (
	"errors"
	"fmt"
	"os"
)

// exitError carries a process exit code without an error message.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit status %d", e.code)
}

func main() {
	os.Exit(main1())
}

func main1() int {
	if err := rootCmd.Execute(); err != nil {
		var ee *exitError
		if errors.As(err, &ee) {
			return ee.code
		}
		fmt.Fprintf(os.Stderr, "cssdeclgen: %v\n", err)
		return 1
	}
	return 0
}
