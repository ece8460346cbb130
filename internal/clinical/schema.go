package clinical

// catalogSchema is the JSON schema a catalog override file must satisfy.
// Validation happens before decoding so malformed files fail with a
// schema-level message instead of a partial catalog.
var catalogSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"specialties": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"topics": map[string]any{
						"type":     "array",
						"minItems": 1,
						"items": map[string]any{
							"type":      "string",
							"minLength": 1,
						},
					},
					"requirement": map[string]any{
						"type": "object",
						"properties": map[string]any{
							"min_shifts": map[string]any{
								"type":    "integer",
								"minimum": 0,
							},
							"min_accuracy": map[string]any{
								"type":    "number",
								"minimum": 0,
								"maximum": 1,
							},
							"required_difficulty": map[string]any{
								"type": "string",
								"enum": []any{"Intern", "Resident", "Attending"},
							},
							"required_mastery": map[string]any{
								"type": "object",
								"properties": map[string]any{
									"specialty": map[string]any{
										"type":      "string",
										"minLength": 1,
									},
									"threshold": map[string]any{
										"type":    "number",
										"minimum": 0,
										"maximum": 1,
									},
								},
								"required":             []any{"specialty", "threshold"},
								"additionalProperties": false,
							},
						},
						"additionalProperties": false,
					},
				},
				"required":             []any{"name", "topics"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"specialties"},
	"additionalProperties": false,
}
