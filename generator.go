package cssdeclgen

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/yacobolo/cssdeclgen/internal/cssdecl"
)

// Generate is the main entry point
func Generate(config Config) (*GenerateResult, error) {
	// 1. Load inputs and compute the universal set
	set, err := Resolve(config)
	if err != nil {
		return nil, err
	}

	result := &GenerateResult{
		OutputPath:          resolvePath(config.DataDir, config.Output),
		BrowserFilesRead:    len(set.BrowserFiles),
		MasterEntries:       len(set.Master),
		UniversalProperties: len(set.Universal),
	}
	if len(set.Universal) == 0 {
		result.Warnings = append(result.Warnings, "no property is supported by every browser")
	}

	// 2. Render the whole template in memory
	data := cssdecl.BuildTemplateData(config.Source, set.Universal, set.Master,
		cssdecl.MergeAnnotations(config.Annotations))
	result.BaseProperties = len(data.Base)

	content, err := cssdecl.RenderBytes(data)
	if err != nil {
		return nil, fmt.Errorf("render failed: %w", err)
	}

	// 3. Compare with the previous output
	existing, err := os.ReadFile(result.OutputPath)
	result.Changed = err != nil || !bytes.Equal(existing, content)

	if config.Check {
		if result.Changed {
			return result, fmt.Errorf("%s: %w", result.OutputPath, ErrStale)
		}
		return result, nil
	}

	// 4. Truncate and rewrite
	if err := writeOutput(result.OutputPath, content); err != nil {
		return nil, fmt.Errorf("write failed: %w", err)
	}

	if config.Verbose {
		fmt.Printf("Wrote %d bytes to %s\n", len(content), result.OutputPath)
	}

	return result, nil
}

// Resolve loads the master list and every browser capability file and
// computes the universal property set. Any missing input is fatal.
func Resolve(config Config) (*PropertySet, error) {
	files, err := resolveBrowserFiles(config.DataDir, config.Browsers)
	if err != nil {
		return nil, fmt.Errorf("resolve browsers failed: %w", err)
	}

	if config.Verbose {
		fmt.Printf("Found %d browser capability files\n", len(files))
	}

	sourcePath := resolvePath(config.DataDir, config.Source)
	master, err := cssdecl.LoadMasterList(sourcePath)
	if err != nil {
		return nil, fmt.Errorf("load failed: %w", err)
	}

	if config.Verbose {
		fmt.Printf("Read %d master entries from %s\n", len(master), sourcePath)
	}

	browsers := make([][]string, 0, len(files))
	for _, file := range files {
		props, err := cssdecl.LoadPropertyList(file)
		if err != nil {
			return nil, fmt.Errorf("load failed: %w", err)
		}

		if config.Verbose {
			fmt.Printf("Read %d properties from %s\n", len(props), file)
		}
		browsers = append(browsers, props)
	}

	universal := cssdecl.UniversalProperties(browsers, config.Exclude, master)

	if config.Verbose {
		fmt.Printf("Found %d universal properties\n", len(universal))
	}

	known := make(cssdecl.Set, len(master))
	for _, prop := range master {
		known.Add(cssdecl.CamelCase(prop))
	}

	return &PropertySet{
		Master:       master,
		BrowserFiles: files,
		Universal:    universal,
		universal:    cssdecl.NewSet(universal...),
		known:        known,
	}, nil
}

// resolveBrowserFiles expands the configured browser entries.
// Literal paths are kept even when missing so loading reports them;
// globs must match at least one file.
func resolveBrowserFiles(dataDir string, patterns []string) ([]string, error) {
	var files []string
	seen := make(map[string]bool)

	for _, pattern := range patterns {
		fullPattern := resolvePath(dataDir, pattern)

		if !hasGlobMeta(pattern) {
			if !seen[fullPattern] {
				seen[fullPattern] = true
				files = append(files, fullPattern)
			}
			continue
		}

		// Use doublestar for ** glob support
		matches, err := doublestar.FilepathGlob(fullPattern)
		if err != nil {
			return nil, fmt.Errorf("glob pattern %q: %w", pattern, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("glob pattern %q matched no files", pattern)
		}

		sort.Strings(matches)
		for _, m := range matches {
			if !seen[m] {
				seen[m] = true
				files = append(files, m)
			}
		}
	}

	if len(files) == 0 {
		return nil, ErrNoBrowserLists
	}
	return files, nil
}

func hasGlobMeta(pattern string) bool {
	return strings.ContainsAny(pattern, "*?[{")
}

// resolvePath joins relative paths onto dir.
func resolvePath(dir, path string) string {
	if filepath.IsAbs(path) || dir == "" {
		return path
	}
	return filepath.Join(dir, path)
}

// writeOutput replaces path with content. A failure mid-write leaves a
// truncated file; the next run regenerates it.
func writeOutput(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	// #nosec G306 - generated source is world-readable
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
