package caseauthor

import (
	"fmt"
	"strings"
)

const authorSystemPrompt = `You are a medical education content author creating staged clinical cases for physician continuing education.

Rules:
- Build a single realistic case with exactly four decision points, in order: initial diagnostic workup, initial treatment, definitive intervention, post-intervention management.
- The reference text must be a complete clinical narrative in Markdown: presentation, vital signs, labs with reference ranges, imaging findings, the optimal management path, numbered learning points, and a list of correct path indicators.
- Every stage has exactly 4 options. Exactly one is the guideline-endorsed optimal choice, repeated verbatim in the "optimal" field. Distractors must be plausible but suboptimal, reflecting real clinical missteps.
- The post-intervention optimal option must name the full secondary-prevention bundle: dual antiplatelet therapy, a statin, and an ACE inhibitor or beta-blocker, alongside any scenario-specific therapy.
- Lab values and findings must be internally consistent and clinically realistic.
- Do not duplicate any case from the "existing cases" list.`

// buildUserMessage constructs the authoring request from the input.
func buildUserMessage(input AuthorInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Specialty: %s\n", input.Specialty)
	fmt.Fprintf(&b, "Topic: %s\n", input.Topic)
	fmt.Fprintf(&b, "Difficulty: %s\n", input.Difficulty)

	b.WriteString("\nExisting cases:\n")
	if len(input.ExistingTitles) == 0 {
		b.WriteString("None\n")
	} else {
		for _, title := range input.ExistingTitles {
			fmt.Fprintf(&b, "- %s\n", title)
		}
	}

	return b.String()
}
