package sources

// Default returns the built-in registry for a category.
func Default(category Category) *Registry {
	switch category {
	case CategoryUser:
		return NewRegistry(CategoryUser, defaultUserEntries())
	default:
		return NewRegistry(CategoryDocs, defaultDocsEntries())
	}
}

func core(version, owner, repo, branch, docsPath string) Entry {
	return Entry{Version: version, Config: SourceConfig{Owner: owner, Repo: repo, Branch: branch, DocsPath: docsPath}}
}

func feature(version, name, owner, repo, branch, docsPath string) Entry {
	return Entry{Version: version, Feature: name, Config: SourceConfig{Owner: owner, Repo: repo, Branch: branch, DocsPath: docsPath}}
}

func defaultDocsEntries() []Entry {
	return []Entry{
		core("6", "silverstripe", "developer-docs", "6.1", "en"),
		core("5", "silverstripe", "developer-docs", "5.4", "en"),
		core("4", "silverstripe", "developer-docs", "4.13", "en"),
		core("3", "silverstripe", "developer-docs", "3", "en"),

		feature("6", "advancedworkflow", "symbiote", "silverstripe-advancedworkflow", "7.1", "docs/en"),
		feature("6", "linkfield", "silverstripe", "silverstripe-linkfield", "5.1", "docs/en"),
		feature("6", "fluent", "tractorcow-farm", "silverstripe-fluent", "8.1", "docs/en"),
		feature("6", "staticpublishqueue", "silverstripe", "silverstripe-staticpublishqueue", "7.1", "docs/en"),
		feature("5", "advancedworkflow", "symbiote", "silverstripe-advancedworkflow", "6.4", "docs/en"),
		feature("5", "linkfield", "silverstripe", "silverstripe-linkfield", "4.1", "docs/en"),
		feature("5", "fluent", "tractorcow-farm", "silverstripe-fluent", "7.3", "docs/en"),
		feature("5", "staticpublishqueue", "silverstripe", "silverstripe-staticpublishqueue", "6.3", "docs/en"),
	}
}

func defaultUserEntries() []Entry {
	return []Entry{
		core("6", "silverstripe", "silverstripe-userhelp-content", "6", "docs/en"),
		core("5", "silverstripe", "silverstripe-userhelp-content", "5", "docs/en"),
		core("4", "silverstripe", "silverstripe-userhelp-content", "4", "docs/en"),
		core("3", "silverstripe", "silverstripe-userhelp-content", "3", "docs/en"),

		feature("6", "advancedworkflow", "symbiote", "silverstripe-advancedworkflow", "7.1", "docs/en/userguide"),
		feature("6", "fluent", "tractorcow-farm", "silverstripe-fluent", "8.1", "docs/en/userguide"),
		feature("5", "advancedworkflow", "symbiote", "silverstripe-advancedworkflow", "6.4", "docs/en/userguide"),
		feature("5", "fluent", "tractorcow-farm", "silverstripe-fluent", "7.3", "docs/en/userguide"),
	}
}
