package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jaredthirsk/claude-code-templates/pkg/osutil"
	"github.com/stretchr/testify/require"
)

func runCommand(t *testing.T, args ...string) string {
	t.Helper()

	var buf bytes.Buffer
	root := NewRootCommand()
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)
	require.NoError(t, root.Execute())

	return buf.String()
}

func TestDetectCommandJson(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(
		filepath.Join(dir, "package.json"),
		[]byte(`{"name": "demo", "dependencies": {"react": "^18.0.0"}}`),
		osutil.PermissionFile)
	require.NoError(t, err)

	out := runCommand(t, "detect", dir, "-o", "json")

	var result struct {
		DetectedLanguage  string   `json:"detectedLanguage"`
		DetectedFramework string   `json:"detectedFramework"`
		AllLanguages      []string `json:"allLanguages"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	require.Equal(t, "javascript-typescript", result.DetectedLanguage)
	require.Equal(t, "react", result.DetectedFramework)
	require.Equal(t, []string{"javascript-typescript"}, result.AllLanguages)
}

func TestDetectCommandHumanReport(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte("module example.com/demo\n"), osutil.PermissionFile))

	out := runCommand(t, "detect", dir)
	require.Contains(t, out, "Go")
	require.Contains(t, out, "example.com/demo")
}

func TestDetectCommandEmptyDir(t *testing.T) {
	out := runCommand(t, "detect", t.TempDir())
	require.Contains(t, out, "No recognizable project detected.")
}

func TestDetectCommandUnsupportedFormat(t *testing.T) {
	root := NewRootCommand()
	root.SetOut(new(bytes.Buffer))
	root.SetErr(new(bytes.Buffer))
	root.SetArgs([]string{"detect", t.TempDir(), "-o", "xml"})
	require.Error(t, root.Execute())
}

func TestSummaryCommandJson(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".git"), osutil.PermissionDirectory))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), nil, osutil.PermissionFile))

	out := runCommand(t, "summary", dir, "-o", "json")

	var summary struct {
		HasGit      bool     `json:"hasGit"`
		ConfigFiles []string `json:"configFiles"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &summary))
	require.True(t, summary.HasGit)
	require.Equal(t, []string{"README.md"}, summary.ConfigFiles)
}

func TestVersionCommand(t *testing.T) {
	out := runCommand(t, "version")
	require.Contains(t, out, Version)
}
