package appdetect

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPythonDetector(t *testing.T) {
	tests := []struct {
		name           string
		files          map[string]string
		wantMatch      bool
		wantFrameworks []Framework
	}{
		{
			name:      "NoEvidence",
			files:     map[string]string{"requirements.txt": "django==4.2\n"},
			wantMatch: false,
		},
		{
			name:           "PlainScript",
			files:          map[string]string{"tool.py": ""},
			wantMatch:      true,
			wantFrameworks: []Framework{},
		},
		{
			name: "RequirementsNeedles",
			files: map[string]string{
				"main.py":          "",
				"requirements.txt": "django==4.2\nflask>=2\nfastapi\n",
			},
			wantMatch:      true,
			wantFrameworks: []Framework{Django, Flask, FastApi},
		},
		{
			name: "AllSourcesAppendIndependently",
			files: map[string]string{
				"requirements.txt":   "django==4.2\nflask>=2\n",
				"mysite/settings.py": "",
				"web/app.py":         "",
			},
			wantMatch: true,
			// requirements needles first, then the settings.py and app.py
			// filename checks; django and flask repeat.
			wantFrameworks: []Framework{Django, Flask, Django, Flask},
		},
		{
			name: "DeepFilesIgnored",
			files: map[string]string{
				"main.py":             "",
				"a/b/c/d/settings.py": "",
			},
			wantMatch:      true,
			wantFrameworks: []Framework{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeTree(t, dir, tt.files)

			detector := &pythonDetector{}
			matched, frameworks := detector.DetectProject(dir)
			require.Equal(t, tt.wantMatch, matched)
			if tt.wantMatch {
				require.Equal(t, tt.wantFrameworks, frameworks)
			}
		})
	}
}
