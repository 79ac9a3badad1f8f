package cssdecl

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strings"
)

// IsCommentLine reports whether a raw input line carries no property:
// blank lines and lines starting with "#" or "//".
func IsCommentLine(line string) bool {
	return strings.TrimSpace(line) == "" ||
		strings.HasPrefix(line, "#") ||
		strings.HasPrefix(line, "//")
}

// LoadPropertyList reads a browser capability file.
// See ReadPropertyList for the normalization rules.
func LoadPropertyList(path string) ([]string, error) {
	// #nosec G304 - path comes from trusted configuration
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open property list: %w", err)
	}
	defer f.Close()

	props, err := ReadPropertyList(f)
	if err != nil {
		return nil, fmt.Errorf("read property list %s: %w", path, err)
	}
	return props, nil
}

// ReadPropertyList returns the trimmed, deduplicated, sorted property names
// in r, skipping comment lines.
func ReadPropertyList(r io.Reader) ([]string, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}

	set := make(Set, len(lines))
	for _, line := range lines {
		if IsCommentLine(line) {
			continue
		}
		set.Add(strings.TrimSpace(line))
	}
	return set.Sorted(), nil
}

// LoadMasterList reads the canonical property source file.
// See ReadMasterList for the normalization rules.
func LoadMasterList(path string) ([]string, error) {
	// #nosec G304 - path comes from trusted configuration
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open master list: %w", err)
	}
	defer f.Close()

	props, err := ReadMasterList(f)
	if err != nil {
		return nil, fmt.Errorf("read master list %s: %w", path, err)
	}
	return props, nil
}

// ReadMasterList returns the trimmed hyphenated property names in r, in file
// order and with duplicates kept. Comment lines and "key=value" directive
// lines are dropped.
func ReadMasterList(r io.Reader) ([]string, error) {
	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}

	props := make([]string, 0, len(lines))
	for _, line := range lines {
		if IsCommentLine(line) || strings.Contains(line, "=") {
			continue
		}
		props = append(props, strings.TrimSpace(line))
	}
	return props, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	// Lines have no length limit
	scanner.Buffer(nil, math.MaxInt32)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// Set is an unordered collection of property names.
type Set map[string]struct{}

// NewSet builds a set from names.
func NewSet(names ...string) Set {
	s := make(Set, len(names))
	for _, n := range names {
		s.Add(n)
	}
	return s
}

// Add inserts name.
func (s Set) Add(name string) {
	s[name] = struct{}{}
}

// Has reports whether name is in the set.
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Sorted returns the members in ascending order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}
