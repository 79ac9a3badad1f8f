package cssdeclgen

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
	"github.com/yacobolo/cssdeclgen/internal/cssdecl"
)

var (
	// gitignore caching
	gitIgnoreCache *ignore.GitIgnore
	gitIgnoreOnce  sync.Once
)

// isMinified checks if a file is a minified build artifact
func isMinified(path string) bool {
	return strings.HasSuffix(path, ".min.css")
}

// loadGitIgnore loads the .gitignore file once (thread-safe)
// Gracefully degrades if .gitignore doesn't exist
func loadGitIgnore() *ignore.GitIgnore {
	gitIgnoreOnce.Do(func() {
		gi, err := ignore.CompileIgnoreFile(".gitignore")
		if err != nil {
			// No .gitignore is fine
			gitIgnoreCache = nil
			return
		}
		gitIgnoreCache = gi
	})
	return gitIgnoreCache
}

// shouldSkipFile determines if a stylesheet should be excluded from the audit
//
// Two-layer filtering:
// 1. Pattern check (fast): Skip *.min.css files
// 2. Gitignore check: Skip gitignored files (only for relative paths)
func shouldSkipFile(path string) bool {
	if isMinified(path) {
		return true
	}

	// Absolute paths (like /tmp/...) are outside the project gitignore
	if !filepath.IsAbs(path) {
		gi := loadGitIgnore()
		if gi != nil && gi.MatchesPath(path) {
			return true
		}
	}

	return false
}

// expandGlobPatterns expands globs to stylesheet paths and tracks statistics
func expandGlobPatterns(patterns []string) ([]string, cssdecl.AuditStats, error) {
	var allFiles []string
	seen := make(map[string]bool)
	stats := cssdecl.AuditStats{}

	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, stats, err
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true

			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			stats.FilesDiscovered++

			if shouldSkipFile(match) {
				stats.FilesSkipped++
				continue
			}
			allFiles = append(allFiles, match)
		}
	}

	return allFiles, stats, nil
}
