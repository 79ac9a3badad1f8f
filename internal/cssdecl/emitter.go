package cssdecl

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"sort"
	"text/template"
)

// GeneratorName is written into the provenance line of every template.
const GeneratorName = "cssdeclgen"

//go:embed templates/css_style_declaration.tmpl
var declarationTemplateText string

var declarationTemplate = template.Must(template.New("css_style_declaration").Parse(declarationTemplateText))

// DefaultAnnotations maps a vendor-stripped property name to the annotation
// block written before its accessors in CssStyleDeclarationBase.
var DefaultAnnotations = map[string]string{
	"transition": `@SupportedBrowser(SupportedBrowser.CHROME)
  @SupportedBrowser(SupportedBrowser.FIREFOX)
  @SupportedBrowser(SupportedBrowser.IE, '10')
  @SupportedBrowser(SupportedBrowser.SAFARI)`,
}

// UniversalProperty is a property with native accessors on every browser.
type UniversalProperty struct {
	Name    string // "backgroundColor"
	CSSName string // "background-color"
}

// BaseProperty is one accessor pair of CssStyleDeclarationBase.
type BaseProperty struct {
	Name       string // vendor-stripped hyphenated name: "transform"
	Camel      string // "transform"
	Annotation string // literal text, empty when none
}

// TemplateData is everything the declaration template needs.
type TemplateData struct {
	Generator string
	Source    string
	Universal []UniversalProperty
	Base      []BaseProperty
}

// BuildTemplateData prepares the template input.
//
// universal must already be sorted. master is the raw master list; it is
// stable-sorted by camelCase key and collapsed on the vendor-stripped name,
// so the first entry in sort order wins. Names starting with "-internal"
// are dropped.
func BuildTemplateData(source string, universal, master []string, annotations map[string]string) TemplateData {
	data := TemplateData{
		Generator: GeneratorName,
		Source:    source,
		Universal: make([]UniversalProperty, 0, len(universal)),
	}

	for _, name := range universal {
		data.Universal = append(data.Universal, UniversalProperty{
			Name:    name,
			CSSName: Hyphenate(name),
		})
	}

	sorted := make([]string, len(master))
	copy(sorted, master)
	sort.SliceStable(sorted, func(i, j int) bool {
		return CamelCase(sorted[i]) < CamelCase(sorted[j])
	})

	seen := make(Set, len(sorted))
	for _, prop := range sorted {
		stripped := StripVendorPrefix(prop)
		if seen.Has(stripped) || IsInternal(stripped) {
			continue
		}
		seen.Add(stripped)

		data.Base = append(data.Base, BaseProperty{
			Name:       stripped,
			Camel:      CamelCase(prop),
			Annotation: annotations[stripped],
		})
	}

	return data
}

// Render writes the declaration template for data to w.
func Render(w io.Writer, data TemplateData) error {
	if err := declarationTemplate.Execute(w, data); err != nil {
		return fmt.Errorf("execute template: %w", err)
	}
	return nil
}

// RenderBytes renders data into memory.
func RenderBytes(data TemplateData) ([]byte, error) {
	var buf bytes.Buffer
	if err := Render(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MergeAnnotations layers overrides on top of DefaultAnnotations.
// An empty override value removes the default entry.
func MergeAnnotations(overrides map[string]string) map[string]string {
	merged := make(map[string]string, len(DefaultAnnotations)+len(overrides))
	for k, v := range DefaultAnnotations {
		merged[k] = v
	}
	for k, v := range overrides {
		if v == "" {
			delete(merged, k)
			continue
		}
		merged[k] = v
	}
	return merged
}
