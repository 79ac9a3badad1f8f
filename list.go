package cssdeclgen

import (
	"fmt"
	"io"
	"strings"

	"github.com/yacobolo/cssdeclgen/internal/cssdecl"
)

// List resolves the capability data without rendering anything.
func List(config Config) (*PropertySet, error) {
	return Resolve(config)
}

// WriteList prints the universal properties of set.
// format is "text" (hyphenated and camelCase names, aligned) or "json".
func WriteList(w io.Writer, set *PropertySet, config Config, format string, useColors bool) error {
	if format == "json" {
		out := JSONUniversal{
			Source:     config.Source,
			Browsers:   set.BrowserFiles,
			Properties: make([]JSONProperty, len(set.Universal)),
		}
		for i, camel := range set.Universal {
			out.Properties[i] = JSONProperty{Name: cssdecl.Hyphenate(camel), Camel: camel}
		}
		return encodeJSON(w, out)
	}

	width := 0
	for _, camel := range set.Universal {
		if n := len(cssdecl.Hyphenate(camel)); n > width {
			width = n
		}
	}

	for _, camel := range set.Universal {
		name := cssdecl.Hyphenate(camel)
		pad := strings.Repeat(" ", width-len(name)+2)
		if _, err := fmt.Fprintf(w, "%s%s%s\n", name, pad, cssdecl.RenderStyle(cssdecl.StyleGray, camel, useColors)); err != nil {
			return err
		}
	}
	return nil
}
