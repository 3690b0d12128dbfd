package catalog

// Static JSON-schema descriptions of the three document kinds, served at
// /schema so viewers and clients can understand the collections. Maintained
// by hand and versioned with the code instead of reflecting over live model
// types.

type fieldSchema map[string]interface{}

func urlField(desc string) fieldSchema {
	return fieldSchema{"type": "string", "format": "uri", "description": desc}
}

func strField(desc string) fieldSchema {
	return fieldSchema{"type": "string", "description": desc}
}

func tagsField() fieldSchema {
	return fieldSchema{
		"type":        "array",
		"items":       map[string]interface{}{"type": "string"},
		"default":     []string{},
		"description": "Topic tags for discovery",
	}
}

// Schemas maps each kind name to its JSON-schema description.
var Schemas = map[string]interface{}{
	"dataset": map[string]interface{}{
		"title": "Dataset",
		"type":  "object",
		"properties": map[string]interface{}{
			"name":        strField("Dataset name"),
			"description": strField("What this dataset contains"),
			"url":         urlField("Primary download or landing page URL"),
			"repo_url":    urlField("Repository URL if versioned on Git or similar"),
			"license":     strField("License name or SPDX identifier"),
			"maintainer":  strField("Maintainer or organization name"),
			"size_mb": fieldSchema{
				"type":        "number",
				"minimum":     0,
				"description": "Approximate size in MB",
			},
			"tags": tagsField(),
		},
		"required": []string{"name", "description", "url"},
	},
	"tool": map[string]interface{}{
		"title": "Tool",
		"type":  "object",
		"properties": map[string]interface{}{
			"name":         strField("Tool name"),
			"description":  strField("What this tool does"),
			"repo_url":     urlField("Repository URL"),
			"homepage_url": urlField("Project website"),
			"license":      strField("License name or SPDX identifier"),
			"tags":         tagsField(),
		},
		"required": []string{"name", "description", "repo_url"},
	},
	"snippet": map[string]interface{}{
		"title": "Snippet",
		"type":  "object",
		"properties": map[string]interface{}{
			"title":       strField("Snippet title"),
			"description": strField("Context or usage notes"),
			"language":    strField("Primary language, e.g., python, js, sql"),
			"code":        strField("Code content"),
			"repo_url":    urlField("Related repository URL"),
			"tags":        tagsField(),
		},
		"required": []string{"title", "description", "language", "code"},
	},
}
