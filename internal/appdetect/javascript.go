package appdetect

import "path/filepath"

type javaScriptDetector struct {
}

func (jd *javaScriptDetector) Language() Language {
	return JavaScriptTypeScript
}

func (jd *javaScriptDetector) DetectProject(root string) (bool, []Framework) {
	packages, parsed := readPackageJSON(root)
	if !parsed {
		// An unparseable package.json still marks a JS/TS project; only the
		// framework evidence is lost.
		if !entryExists(filepath.Join(root, "package.json")) {
			return false, nil
		}
		return true, nil
	}

	frameworks := []Framework{}
	if packages.hasDependency("react") || packages.hasDependency("@types/react") {
		frameworks = append(frameworks, React)
	}

	if packages.hasDependency("vue") || packages.hasDependency("@vue/cli") {
		frameworks = append(frameworks, Vue)
	}

	if packages.hasDependency("@angular/core") {
		frameworks = append(frameworks, Angular)
	}

	if packages.hasDependency("express") || packages.hasDependency("fastify") || packages.hasDependency("koa") {
		frameworks = append(frameworks, Node)
	}

	return true, frameworks
}
