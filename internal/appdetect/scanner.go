package appdetect

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// defaultMaxDepth bounds the recursive scan. Depth 0 is the root's direct
// children; files deeper than the bound are never visited. The bound is also
// the sole protection against symlink cycles.
const defaultMaxDepth = 2

type scanConfig struct {
	maxDepth int
	// Exclude patterns for directories scanned, matched as doublestar globs
	// against the slash-separated path relative to the scan root. These are
	// consulted in addition to the built-in skips, never instead of them.
	excludePatterns []string
}

type ScanOption interface {
	apply(scanConfig) scanConfig
}

type maxDepthOption int

func (o maxDepthOption) apply(c scanConfig) scanConfig {
	c.maxDepth = int(o)
	return c
}

// WithMaxDepth overrides the default depth bound of 2.
func WithMaxDepth(depth int) ScanOption {
	return maxDepthOption(depth)
}

type excludePatternsOption []string

func (o excludePatternsOption) apply(c scanConfig) scanConfig {
	c.excludePatterns = append(c.excludePatterns, o...)
	return c
}

// WithExcludePatterns skips directories whose root-relative path matches any
// of the given glob patterns, e.g. "**/dist" or "packages/*/generated".
func WithExcludePatterns(patterns ...string) ScanOption {
	return excludePatternsOption(patterns)
}

func newScanConfig(options ...ScanOption) scanConfig {
	c := scanConfig{maxDepth: defaultMaxDepth}
	for _, opt := range options {
		c = opt.apply(c)
	}

	return c
}

// FindFilesByExtension returns the files under dir whose extension (including
// the leading dot, case-sensitive) is one of exts. Paths are absolute and in
// directory-listing order. Unreadable directories are skipped silently.
func FindFilesByExtension(dir string, exts []string, options ...ScanOption) []string {
	return scanFiles(dir, func(name string) bool {
		return slices.Contains(exts, filepath.Ext(name))
	}, newScanConfig(options...))
}

// FindFilesByPattern returns the files under dir whose name contains pattern
// as a case-sensitive substring. Same traversal rules as FindFilesByExtension.
func FindFilesByPattern(dir string, pattern string, options ...ScanOption) []string {
	return scanFiles(dir, func(name string) bool {
		return strings.Contains(name, pattern)
	}, newScanConfig(options...))
}

func scanFiles(dir string, match func(name string) bool, c scanConfig) []string {
	root, err := filepath.Abs(dir)
	if err != nil {
		root = dir
	}

	found := []string{}
	walkLimited(root, root, 0, c, func(path string, entry fs.DirEntry) {
		if match(entry.Name()) {
			found = append(found, path)
		}
	})

	return found
}

// walkLimited visits the files under dir depth-first. depth is the level of
// dir's entries relative to the scan root. A directory that cannot be read is
// treated as empty and the walk continues elsewhere.
func walkLimited(root, dir string, depth int, c scanConfig, visit func(path string, entry fs.DirEntry)) {
	if depth > c.maxDepth {
		return
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return
	}

	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())

		if entry.IsDir() {
			if shouldSkipDir(entry.Name()) || excludedDir(root, path, c.excludePatterns) {
				continue
			}

			walkLimited(root, path, depth+1, c, visit)
			continue
		}

		visit(path, entry)
	}
}

// shouldSkipDir reports whether a directory is never scanned: hidden
// directories and node_modules, unconditionally.
func shouldSkipDir(name string) bool {
	return strings.HasPrefix(name, ".") || name == "node_modules"
}

func excludedDir(root, path string, patterns []string) bool {
	if len(patterns) == 0 {
		return false
	}

	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}

	rel = filepath.ToSlash(rel)
	for _, pattern := range patterns {
		if matched, err := doublestar.Match(pattern, rel); err == nil && matched {
			return true
		}
	}

	return false
}
