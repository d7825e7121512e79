package appdetect

import "path/filepath"

type goDetector struct {
}

func (gd *goDetector) Language() Language {
	return Go
}

func (gd *goDetector) DetectProject(root string) (bool, []Framework) {
	if entryExists(filepath.Join(root, "go.mod")) {
		return true, nil
	}

	return len(FindFilesByExtension(root, []string{".go"})) > 0, nil
}
