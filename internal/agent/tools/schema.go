package tools

func objectSchema(properties map[string]interface{}, required ...string) map[string]interface{} {
	schema := map[string]interface{}{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func stringProp(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": description,
	}
}

func integerProp(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "integer",
		"description": description,
	}
}

const (
	projectDescription    = "Azure DevOps project name. Falls back to the configured default project."
	dateFilterDescription = "Natural language date filter, e.g. 'today', 'last week', 'last 30 days', 'this month', 'since 2025-01-01', '2025-01-01 to 2025-01-31'"
)
