// Package appdetect allows for detection of application projects.
//
// Projects are detected based on criteria such as:
// 1. Presence of well-known marker files (package.json, Gemfile, go.mod).
// 2. Source code language file extensions.
// 3. Dependency names read from a project's marker files.
//
// Detection is best-effort by design: unreadable directories and malformed
// marker files degrade the evidence but never fail the scan.
//
// - `Detect()` to detect the languages and frameworks under a root directory.
// - `ProjectSummary()` to collect auxiliary environment facts for display.
package appdetect
