package appdetect

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
)

// packagesJSON is the subset of package.json read for detection.
type packagesJSON struct {
	Name            string            `json:"name"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// hasDependency checks dependencies and devDependencies for name. Both
// sections contribute; a dev entry never shadows a prod entry of the same
// name since only presence matters.
func (p *packagesJSON) hasDependency(name string) bool {
	if _, ok := p.Dependencies[name]; ok {
		return true
	}

	_, ok := p.DevDependencies[name]
	return ok
}

// readPackageJSON parses dir/package.json. Malformed JSON or a read failure
// is logged and reported as absent.
func readPackageJSON(dir string) (*packagesJSON, bool) {
	path := filepath.Join(dir, "package.json")
	contents, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("skipping unreadable package.json", "path", path, "error", err)
		}
		return nil, false
	}

	var packages packagesJSON
	if err := json.Unmarshal(contents, &packages); err != nil {
		slog.Warn("skipping malformed package.json", "path", path, "error", err)
		return nil, false
	}

	return &packages, true
}

// readMarkerFile returns the text of the file at path, or absent on any
// read error. Marker reads are best-effort and never fail detection.
func readMarkerFile(path string) (string, bool) {
	contents, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("skipping unreadable marker file", "path", path, "error", err)
		}
		return "", false
	}

	return string(contents), true
}

func entryExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func dirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
