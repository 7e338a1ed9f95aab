package caseauthor

import "github.com/abhisek/clincase/internal/llm"

// CaseSchema defines the JSON schema for LLM case authoring responses.
var CaseSchema = &llm.Schema{
	Name:        "case-definition",
	Description: "A complete staged clinical case for physician continuing education",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Case title in the form '<age>-year-old with <presenting complaint>'",
			},
			"reference_text": map[string]any{
				"type":        "string",
				"description": "The full clinical narrative in Markdown: presentation, vitals, labs with reference ranges, imaging, the optimal management path, learning points, and correct path indicators. This grounds the narrator and is never shown verbatim to the learner.",
			},
			"stages": map[string]any{
				"type":        "array",
				"minItems":    4,
				"maxItems":    4,
				"description": "The four decision points in case order: initial workup, initial treatment, definitive intervention, post-intervention management",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"stage_id": map[string]any{
							"type": "string",
							"enum": []any{"initial", "treatment", "catheterization", "post_intervention"},
						},
						"header": map[string]any{
							"type":        "string",
							"description": "Display title for this decision point",
						},
						"options": map[string]any{
							"type":        "array",
							"minItems":    4,
							"maxItems":    4,
							"items":       map[string]any{"type": "string"},
							"description": "Exactly 4 candidate decisions. Distractors should be plausible but suboptimal per guidelines.",
						},
						"optimal": map[string]any{
							"type":        "string",
							"description": "The guideline-endorsed option, repeated verbatim from the options list",
						},
					},
					"required":             []any{"stage_id", "header", "options", "optimal"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"title", "reference_text", "stages"},
		"additionalProperties": false,
	},
}
