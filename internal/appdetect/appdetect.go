package appdetect

type Language string

const (
	JavaScriptTypeScript Language = "javascript-typescript"
	Python               Language = "python"
	Ruby                 Language = "ruby"
	Rust                 Language = "rust"
	DotNet               Language = "dotnet"
	Go                   Language = "go"
)

func (l Language) Display() string {
	switch l {
	case JavaScriptTypeScript:
		return "JavaScript/TypeScript"
	case Python:
		return "Python"
	case Ruby:
		return "Ruby"
	case Rust:
		return "Rust"
	case DotNet:
		return ".NET"
	case Go:
		return "Go"
	}

	return ""
}

type Framework string

const (
	React   Framework = "react"
	Vue     Framework = "vue"
	Angular Framework = "angular"
	Node    Framework = "node"

	Django  Framework = "django"
	Flask   Framework = "flask"
	FastApi Framework = "fastapi"

	Rails   Framework = "rails"
	Sinatra Framework = "sinatra"

	AspNetWebApi Framework = "aspnet-webapi"
	BlazorServer Framework = "blazor-server"
	BlazorWasm   Framework = "blazor-wasm"
)

// DetectionResult is the aggregate outcome of one project scan. Languages
// holds every language with evidence present, in rule evaluation order;
// the first entry decides Language. Frameworks is likewise ordered, but
// duplicates are possible: independent evidence sources for the same
// framework each append their own tag, and callers must tolerate repeats.
type DetectionResult struct {
	Language   Language    `json:"detectedLanguage,omitempty" yaml:"detectedLanguage,omitempty"`
	Framework  Framework   `json:"detectedFramework,omitempty" yaml:"detectedFramework,omitempty"`
	Languages  []Language  `json:"allLanguages" yaml:"allLanguages"`
	Frameworks []Framework `json:"allFrameworks" yaml:"allFrameworks"`
	Summary    *Summary    `json:"projectFiles" yaml:"projectFiles"`
}

// languageDetector evaluates one language's evidence under a project root.
// DetectProject reports whether the language is present and which framework
// tags its evidence supports, in the order the sub-rules are checked.
type languageDetector interface {
	Language() Language
	DetectProject(root string) (bool, []Framework)
}

var detectors = []languageDetector{
	// Order here is the documented detection priority: the first language
	// matched becomes the detected language. Not alphabetical, not ranked
	// by confidence.
	&javaScriptDetector{},
	&pythonDetector{},
	&rubyDetector{},
	&rustDetector{},
	&dotNetDetector{},
	&goDetector{},
}

// Detect scans root and returns the languages and frameworks inferred from
// marker files and source extensions. It never fails: missing, unreadable or
// malformed evidence is treated as absent and the scan continues elsewhere.
func Detect(root string) *DetectionResult {
	result := &DetectionResult{
		Languages:  []Language{},
		Frameworks: []Framework{},
		Summary:    ProjectSummary(root),
	}

	for _, detector := range detectors {
		matched, frameworks := detector.DetectProject(root)
		if !matched {
			continue
		}

		result.Languages = append(result.Languages, detector.Language())
		result.Frameworks = append(result.Frameworks, frameworks...)
	}

	if len(result.Languages) > 0 {
		result.Language = result.Languages[0]
	}

	if len(result.Frameworks) > 0 {
		result.Framework = result.Frameworks[0]
	}

	return result
}
