package cssdeclgen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fixtureDir = "testdata/props"

// fixtureConfig points the default configuration at the fixture data and
// writes into a temporary directory.
func fixtureConfig(t *testing.T) Config {
	t.Helper()
	config := DefaultConfig()
	config.DataDir = fixtureDir
	config.Output = filepath.Join(t.TempDir(), "templates", "impl_CSSStyleDeclaration.darttemplate")
	return config
}

func TestGenerate_Golden(t *testing.T) {
	config := fixtureConfig(t)

	result, err := Generate(config)
	require.NoError(t, err)

	got, err := os.ReadFile(config.Output)
	require.NoError(t, err)
	want, err := os.ReadFile("testdata/impl_CSSStyleDeclaration.darttemplate.golden")
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got))

	assert.Equal(t, config.Output, result.OutputPath)
	assert.Equal(t, 9, result.BrowserFilesRead)
	assert.Equal(t, 13, result.MasterEntries)
	assert.Equal(t, 7, result.UniversalProperties)
	assert.Equal(t, 11, result.BaseProperties)
	assert.True(t, result.Changed)
	assert.Empty(t, result.Warnings)
}

func TestGenerate_Idempotent(t *testing.T) {
	config := fixtureConfig(t)

	_, err := Generate(config)
	require.NoError(t, err)
	first, err := os.ReadFile(config.Output)
	require.NoError(t, err)

	result, err := Generate(config)
	require.NoError(t, err)
	second, err := os.ReadFile(config.Output)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.False(t, result.Changed)
}

func TestGenerate_TruncatesPreviousOutput(t *testing.T) {
	config := fixtureConfig(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(config.Output), 0755))
	require.NoError(t, os.WriteFile(config.Output, make([]byte, 1<<16), 0644))

	_, err := Generate(config)
	require.NoError(t, err)

	want, err := os.ReadFile("testdata/impl_CSSStyleDeclaration.darttemplate.golden")
	require.NoError(t, err)
	got, err := os.ReadFile(config.Output)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestGenerate_Check(t *testing.T) {
	config := fixtureConfig(t)
	config.Check = true

	// Nothing written yet
	result, err := Generate(config)
	require.ErrorIs(t, err, ErrStale)
	assert.True(t, result.Changed)
	_, statErr := os.Stat(config.Output)
	assert.True(t, os.IsNotExist(statErr), "check mode must not write")

	config.Check = false
	_, err = Generate(config)
	require.NoError(t, err)

	config.Check = true
	result, err = Generate(config)
	require.NoError(t, err)
	assert.False(t, result.Changed)
}

func TestGenerate_MissingBrowserFile(t *testing.T) {
	config := fixtureConfig(t)
	config.Browsers = append(config.Browsers, "cssProperties.netscape4.txt")

	_, err := Generate(config)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "cssProperties.netscape4.txt")

	_, statErr := os.Stat(config.Output)
	assert.True(t, os.IsNotExist(statErr), "no output on failed load")
}

func TestGenerate_MissingMasterList(t *testing.T) {
	config := fixtureConfig(t)
	config.Source = "CSSPropertyNames.missing"

	_, err := Generate(config)
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestGenerate_NoBrowsers(t *testing.T) {
	config := fixtureConfig(t)
	config.Browsers = nil

	_, err := Generate(config)
	assert.ErrorIs(t, err, ErrNoBrowserLists)
}

func TestGenerate_EmptyBrowserList(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "CSSPropertyNames.in"), []byte("color\nwidth\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("color\nwidth\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.txt"), []byte("# nothing yet\n"), 0644))

	config := DefaultConfig()
	config.DataDir = dir
	config.Browsers = []string{"a.txt", "b.txt"}
	config.Output = "out/template.darttemplate"

	result, err := Generate(config)
	require.NoError(t, err)
	assert.Equal(t, 0, result.UniversalProperties)
	assert.Equal(t, 2, result.BaseProperties)
	assert.Len(t, result.Warnings, 1)
	assert.FileExists(t, filepath.Join(dir, "out", "template.darttemplate"))
}

func TestResolve_GlobBrowsers(t *testing.T) {
	config := fixtureConfig(t)
	config.Browsers = []string{"cssProperties.*.txt"}

	set, err := Resolve(config)
	require.NoError(t, err)

	assert.Len(t, set.BrowserFiles, 9)
	assert.Equal(t, []string{
		"backgroundColor", "color", "fontSize", "height", "transform", "width", "zIndex",
	}, set.Universal)
	assert.True(t, set.IsUniversal("color"))
	assert.False(t, set.IsUniversal("boxShadow"))
	assert.True(t, set.IsKnown("boxShadow"))
	assert.False(t, set.IsKnown("cssText"))
}

func TestResolve_GlobMatchesNothing(t *testing.T) {
	config := fixtureConfig(t)
	config.Browsers = []string{"cssProperties.opera*.txt"}

	_, err := Resolve(config)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "matched no files")
}

func TestResolve_Exclude(t *testing.T) {
	config := fixtureConfig(t)
	config.Exclude = []string{"cssText", "zIndex"}

	set, err := Resolve(config)
	require.NoError(t, err)
	assert.NotContains(t, set.Universal, "zIndex")
	assert.Contains(t, set.Universal, "color")
}

func TestGenerate_AnnotationOverride(t *testing.T) {
	config := fixtureConfig(t)
	config.Annotations = map[string]string{
		"transition": "",
		"color":      "@Experimental()",
	}

	_, err := Generate(config)
	require.NoError(t, err)

	out, err := os.ReadFile(config.Output)
	require.NoError(t, err)
	assert.NotContains(t, string(out), "@SupportedBrowser")
	assert.Contains(t, string(out), `/** Gets the value of "color" */@Experimental()`)
	assert.Contains(t, string(out), `/** Sets the value of "color" */@Experimental()`)
}

func TestResolvePath(t *testing.T) {
	assert.Equal(t, filepath.Join("data", "a.txt"), resolvePath("data", "a.txt"))
	assert.Equal(t, "a.txt", resolvePath("", "a.txt"))
	abs := filepath.Join(t.TempDir(), "a.txt")
	assert.Equal(t, abs, resolvePath("data", abs))
}

func TestHasGlobMeta(t *testing.T) {
	assert.True(t, hasGlobMeta("cssProperties.*.txt"))
	assert.True(t, hasGlobMeta("**/x.txt"))
	assert.True(t, hasGlobMeta("{a,b}.txt"))
	assert.False(t, hasGlobMeta("cssProperties.safari-7.1.3.txt"))
}
