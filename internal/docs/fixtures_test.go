package docs

import (
	"git.home.luguber.info/inful/docnav/internal/sources"
)

const fixtureRoot = "/var/www/.cache/docs"

func file(version, filePath, content string) SourceFile {
	return SourceFile{
		AbsolutePath: fixtureRoot + "/v" + version + "/" + filePath,
		FilePath:     filePath,
		Content:      []byte(content),
		Version:      version,
		Category:     sources.CategoryDocs,
	}
}

func featureFile(version, feature, filePath, content string) SourceFile {
	f := file(version, "optional_features/"+feature+"/"+filePath, content)
	f.FilePath = filePath
	f.Feature = feature
	return f
}

func fixtureFiles() []SourceFile {
	return []SourceFile{
		file("6", "index.md", "---\ntitle: Silverstripe CMS 6\n---\n# Welcome\n"),
		file("6", "01_Getting_Started/index.md", "# Getting started\n"),
		file("6", "01_Getting_Started/02_Installation.md", "---\nsummary: Install it\n---\n# Installation\n"),
		file("6", "01_Getting_Started/01_Environment.md", "# Environment\n"),
		file("6", "01_Getting_Started/03_Secret.md", "---\nhideSelf: \"true\"\n---\n# Secret\n"),
		file("6", "02_Developer_Guides/index.md", "---\ntitle: Developer Guides\nicon: code\nhideChildren: true\n---\n"),
		file("6", "02_Developer_Guides/01_Model/index.md", "# Model\n"),
		file("6", "optional_features/index.md", "# Optional features\n"),
		featureFile("6", "advancedworkflow", "index.md", "# Advanced workflow\n"),
		featureFile("6", "advancedworkflow", "01_adding-workflows.md", "See [security](./04_security.md).\n"),
		featureFile("6", "advancedworkflow", "04_security.md", "# Security\n"),
		file("5", "index.md", "# Five\n"),
	}
}

func fixtureCorpus() (*Corpus, []Diagnostic) {
	return Build(fixtureFiles(), BuildOptions{Category: sources.CategoryDocs})
}
