package appdetect

import "path/filepath"

type rustDetector struct {
}

func (rd *rustDetector) Language() Language {
	return Rust
}

func (rd *rustDetector) DetectProject(root string) (bool, []Framework) {
	if entryExists(filepath.Join(root, "Cargo.toml")) {
		return true, nil
	}

	return len(FindFilesByExtension(root, []string{".rs"})) > 0, nil
}
