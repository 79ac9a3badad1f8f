package cssdecl

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIntersect(t *testing.T) {
	tests := []struct {
		name     string
		lists    [][]string
		expected []string
	}{
		{
			name: "three browsers",
			lists: [][]string{
				{"color", "width"},
				{"color", "width", "height"},
				{"color"},
			},
			expected: []string{"color"},
		},
		{
			name:     "single list",
			lists:    [][]string{{"width", "color"}},
			expected: []string{"color", "width"},
		},
		{
			name:     "empty list empties the result",
			lists:    [][]string{{"color"}, {}},
			expected: []string{},
		},
		{
			name:     "no lists",
			lists:    nil,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Intersect(tt.lists).Sorted())
		})
	}
}

func TestUniversalProperties(t *testing.T) {
	browsers := [][]string{
		{"color", "width", "cssText", "backgroundColor", "zoom"},
		{"color", "width", "height", "cssText", "backgroundColor", "zoom"},
	}
	master := []string{"color", "width", "background-color", "-webkit-transform"}

	got := UniversalProperties(browsers, []string{"cssText"}, master)

	// zoom is not in the master list, cssText is excluded
	assert.Equal(t, []string{"backgroundColor", "color", "width"}, got)
}

func TestUniversalProperties_ExclusionBeforeMasterFilter(t *testing.T) {
	browsers := [][]string{
		{"color", "width"},
		{"color", "width", "height"},
		{"color"},
	}
	got := UniversalProperties(browsers, DefaultExclude, []string{"color", "width", "height"})
	assert.Equal(t, []string{"color"}, got)
}

func TestUniversalProperties_EmptyBrowser(t *testing.T) {
	got := UniversalProperties([][]string{{"color"}, {}}, DefaultExclude, []string{"color"})
	assert.Empty(t, got)
}

func TestUniversalProperties_VendorPrefixedMaster(t *testing.T) {
	got := UniversalProperties([][]string{{"transform"}}, nil, []string{"-webkit-transform"})
	assert.Equal(t, []string{"transform"}, got)
}
