package activitycfg

// BuildCatalogSchema returns a JSON-Schema (draft 2020-12 subset) for the
// activity catalog file, as a generic map. Validated locally before the
// catalog replaces the compiled-in defaults.
func BuildCatalogSchema(allowedIDs []string) map[string]any {
	keywordList := map[string]any{
		"type":  "array",
		"items": map[string]any{"type": "string", "minLength": 1},
	}

	entry := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"id":              map[string]any{"type": "string", "enum": allowedIDs},
			"label":           map[string]any{"type": "string", "minLength": 1},
			"icon":            map[string]any{"type": "string"},
			"color":           map[string]any{"type": "string"},
			"description":     map[string]any{"type": "string"},
			"carType":         map[string]any{"type": "string", "enum": []string{"H"}},
			"keywords":        keywordList,
			"zeroKeywords":    keywordList,
			"recycleKeywords": keywordList,
		},
		"required": []string{"id", "label", "keywords"},
	}

	return map[string]any{
		"type":     "array",
		"minItems": 1,
		"items":    entry,
	}
}
