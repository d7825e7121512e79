package appdetect

import (
	"path/filepath"
	"strings"
)

type dotNetDetector struct {
}

func (dd *dotNetDetector) Language() Language {
	return DotNet
}

var dotNetExtensions = []string{".cs", ".fs", ".csproj", ".fsproj", ".sln"}

func (dd *dotNetDetector) DetectProject(root string) (bool, []Framework) {
	if len(FindFilesByExtension(root, dotNetExtensions)) == 0 {
		return false, nil
	}

	frameworks := []Framework{}

	// Project files, Blazor component layout and the Controllers convention
	// are each checked on their own; overlapping evidence appends duplicate
	// framework tags.
	for _, projectFile := range FindFilesByExtension(root, []string{".csproj"}) {
		contents, ok := readMarkerFile(projectFile)
		if !ok {
			continue
		}

		if strings.Contains(contents, "Microsoft.AspNetCore") &&
			(strings.Contains(contents, "OpenApi") || strings.Contains(contents, "Swashbuckle")) {
			frameworks = append(frameworks, AspNetWebApi)
		}

		if strings.Contains(contents, "Components.Server") || strings.Contains(contents, ">blazorserver<") {
			frameworks = append(frameworks, BlazorServer)
		}

		if strings.Contains(contents, "Components.WebAssembly") || strings.Contains(contents, ">blazorwasm<") {
			frameworks = append(frameworks, BlazorWasm)
		}
	}

	if dirExists(filepath.Join(root, "Components", "Pages")) || dirExists(filepath.Join(root, "Components")) {
		for _, programFile := range FindFilesByPattern(root, "Program.cs") {
			contents, ok := readMarkerFile(programFile)
			if !ok {
				continue
			}

			if strings.Contains(contents, "MapBlazorHub") || strings.Contains(contents, "AddServerSideBlazor") {
				frameworks = append(frameworks, BlazorServer)
			}

			if strings.Contains(contents, "WebAssembly") || strings.Contains(contents, "blazorwasm") {
				frameworks = append(frameworks, BlazorWasm)
			}
		}
	}

	if dirExists(filepath.Join(root, "Controllers")) {
		frameworks = append(frameworks, AspNetWebApi)
	}

	return true, frameworks
}
