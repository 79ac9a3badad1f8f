package cssdeclgen

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteList_Text(t *testing.T) {
	config := fixtureConfig(t)
	set, err := List(config)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteList(&buf, set, config, "text", false))

	want := "" +
		"background-color  backgroundColor\n" +
		"color             color\n" +
		"font-size         fontSize\n" +
		"height            height\n" +
		"transform         transform\n" +
		"width             width\n" +
		"z-index           zIndex\n"
	assert.Equal(t, want, buf.String())
}

func TestWriteList_JSON(t *testing.T) {
	config := fixtureConfig(t)
	set, err := List(config)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteList(&buf, set, config, "json", false))

	var got JSONUniversal
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "CSSPropertyNames.in", got.Source)
	assert.Len(t, got.Browsers, 9)
	require.Len(t, got.Properties, 7)
	assert.Equal(t, JSONProperty{Name: "background-color", Camel: "backgroundColor"}, got.Properties[0])
	assert.Equal(t, JSONProperty{Name: "z-index", Camel: "zIndex"}, got.Properties[6])
}

func TestWriteList_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteList(&buf, &PropertySet{}, DefaultConfig(), "text", false))
	assert.Empty(t, buf.String())
}
