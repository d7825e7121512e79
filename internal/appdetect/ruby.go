package appdetect

import (
	"path/filepath"
	"strings"
)

type rubyDetector struct {
}

func (rd *rubyDetector) Language() Language {
	return Ruby
}

func (rd *rubyDetector) DetectProject(root string) (bool, []Framework) {
	hasGemfile := entryExists(filepath.Join(root, "Gemfile"))
	if !hasGemfile && len(FindFilesByExtension(root, []string{".rb"})) == 0 {
		return false, nil
	}

	frameworks := []Framework{}

	if gemfile, ok := readMarkerFile(filepath.Join(root, "Gemfile")); ok {
		if strings.Contains(gemfile, "rails") {
			frameworks = append(frameworks, Rails)
		}

		if strings.Contains(gemfile, "sinatra") {
			frameworks = append(frameworks, Sinatra)
		}
	}

	// Rails layout and Rakefile checks are independent evidence sources and
	// may re-append rails alongside the Gemfile hit.
	if entryExists(filepath.Join(root, "config", "application.rb")) ||
		entryExists(filepath.Join(root, "config", "routes.rb")) {
		frameworks = append(frameworks, Rails)
	}

	if rakefile, ok := readMarkerFile(filepath.Join(root, "Rakefile")); ok {
		if strings.Contains(rakefile, "Rails.application.load_tasks") {
			frameworks = append(frameworks, Rails)
		}
	}

	return true, frameworks
}
