package cssdecl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, universal, master []string, annotations map[string]string) string {
	t.Helper()
	out, err := RenderBytes(BuildTemplateData("CSSPropertyNames.in", universal, master, annotations))
	require.NoError(t, err)
	return string(out)
}

func TestBuildTemplateData(t *testing.T) {
	master := []string{"transform", "-webkit-transform", "color", "-internal-marker", "background-color"}
	data := BuildTemplateData("CSSPropertyNames.in", []string{"backgroundColor", "color"}, master, nil)

	assert.Equal(t, GeneratorName, data.Generator)
	assert.Equal(t, "CSSPropertyNames.in", data.Source)
	assert.Equal(t, []UniversalProperty{
		{Name: "backgroundColor", CSSName: "background-color"},
		{Name: "color", CSSName: "color"},
	}, data.Universal)
	assert.Equal(t, []BaseProperty{
		{Name: "background-color", Camel: "backgroundColor"},
		{Name: "color", Camel: "color"},
		{Name: "transform", Camel: "transform"},
	}, data.Base)
}

func TestBuildTemplateData_StableOrder(t *testing.T) {
	master := []string{"-webkit-transform", "transform"}
	data := BuildTemplateData("src", nil, master, nil)
	require.Len(t, data.Base, 1)
	assert.Equal(t, "transform", data.Base[0].Name)
}

func TestRender_Header(t *testing.T) {
	out := render(t, nil, nil, nil)

	assert.True(t, strings.HasPrefix(out, "\n// Copyright (c) 2014, the Dart project authors."))
	assert.Contains(t, out, "// WARNING: DO NOT EDIT THIS TEMPLATE FILE.\n")
	assert.Contains(t, out, "// The template file was generated by cssdeclgen\n")
	assert.Contains(t, out, "// Source of CSS properties:\n//   CSSPropertyNames.in\n")
	assert.Contains(t, out, "part of $LIBRARYNAME;\n")
	assert.Contains(t, out, "$!MEMBERS\n")
	assert.True(t, strings.HasSuffix(out, "      [String$NULLABLE priority]);\n}\n"))
}

func TestRender_UniversalAccessors(t *testing.T) {
	out := render(t, []string{"backgroundColor"}, []string{"background-color"}, nil)

	assert.Contains(t, out, `
  /** Gets the value of "background-color" */
  String get backgroundColor => this._backgroundColor;

  /** Sets the value of "background-color" */
  set backgroundColor(String$NULLABLE value) {
    _backgroundColor = value == null ? '' : value;
  }
  @Returns('String')
  @JSName('backgroundColor')
  String get _backgroundColor native;

  @JSName('backgroundColor')
  set _backgroundColor(String value) native;
    `)

	assert.Contains(t, out, `
  /** Sets the value of "background-color" */
  set backgroundColor(String value) {
    _setAll('backgroundColor', value);
  }
    `)
}

func TestRender_InternalNeverEmitted(t *testing.T) {
	out := render(t, nil, []string{"-internal-marker", "color"}, nil)

	assert.NotContains(t, out, "internal-marker")
	assert.NotContains(t, out, "InternalMarker")
	assert.Contains(t, out, "getPropertyValue('color');")
}

func TestRender_VendorPrefixCollapses(t *testing.T) {
	out := render(t, nil, []string{"-webkit-transform", "transform"}, nil)

	assert.Equal(t, 1, strings.Count(out, "String get transform =>"))
	assert.Equal(t, 1, strings.Count(out, "set transform(String value) {"))
	assert.Contains(t, out, "getPropertyValue('transform');")
	assert.NotContains(t, out, "-webkit-")
}

func TestRender_AnnotationPrecedesGetterAndSetter(t *testing.T) {
	out := render(t, nil, []string{"transition", "color"}, DefaultAnnotations)
	annotation := DefaultAnnotations["transition"]

	assert.Contains(t, out, `  /** Gets the value of "transition" */`+annotation+`
  String get transition =>
    getPropertyValue('transition');
`)
	assert.Contains(t, out, `  /** Sets the value of "transition" */`+annotation+`
  set transition(String value) {
    setProperty('transition', value, '');
  }
`)
	assert.Equal(t, 2, strings.Count(out, "@SupportedBrowser(SupportedBrowser.CHROME)"))

	// Properties without an override get none
	assert.Contains(t, out, `  /** Gets the value of "color" */
  String get color =>`)
}

func TestRender_Idempotent(t *testing.T) {
	universal := []string{"color", "width"}
	master := []string{"width", "color", "-webkit-transform", "transition"}

	first := render(t, universal, master, DefaultAnnotations)
	second := render(t, universal, master, DefaultAnnotations)
	assert.Equal(t, first, second)
}

func TestMergeAnnotations(t *testing.T) {
	merged := MergeAnnotations(map[string]string{
		"color":      "@Experimental()",
		"transition": "",
	})
	assert.Equal(t, map[string]string{"color": "@Experimental()"}, merged)

	assert.Equal(t, DefaultAnnotations, MergeAnnotations(nil))
}
