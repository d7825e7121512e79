package appdetect

import (
	"path/filepath"
	"strings"
)

type pythonDetector struct {
}

func (pd *pythonDetector) Language() Language {
	return Python
}

func (pd *pythonDetector) DetectProject(root string) (bool, []Framework) {
	if len(FindFilesByExtension(root, []string{".py"})) == 0 {
		return false, nil
	}

	// The three framework sources below are independent: requirements.txt
	// needles, settings.py presence and app.py presence each append on their
	// own, so the same framework can legitimately appear more than once.
	frameworks := []Framework{}

	if requirements, ok := readMarkerFile(filepath.Join(root, "requirements.txt")); ok {
		if strings.Contains(requirements, "django") {
			frameworks = append(frameworks, Django)
		}

		if strings.Contains(requirements, "flask") {
			frameworks = append(frameworks, Flask)
		}

		if strings.Contains(requirements, "fastapi") {
			frameworks = append(frameworks, FastApi)
		}
	}

	if len(FindFilesByPattern(root, "settings.py")) > 0 {
		frameworks = append(frameworks, Django)
	}

	if len(FindFilesByPattern(root, "app.py")) > 0 {
		frameworks = append(frameworks, Flask)
	}

	return true, frameworks
}
