package casedef

import (
	"fmt"
	"strings"
)

// Validate performs all structural checks on a single case definition.
// Returns a combined error describing all problems found, or nil if valid.
func Validate(c *CaseDefinition) error {
	var errs []string

	if c.ID == "" {
		errs = append(errs, "case ID must not be empty")
	}
	if c.Title == "" {
		errs = append(errs, "case title must not be empty")
	}
	if strings.TrimSpace(c.ReferenceText) == "" {
		errs = append(errs, "case reference text must not be empty")
	}
	if c.Credits <= 0 {
		errs = append(errs, fmt.Sprintf("credits must be > 0, got %g", c.Credits))
	}
	if len(c.Stages) == 0 {
		errs = append(errs, "case must have at least one stage")
	}

	known := make(map[StageID]bool)
	for _, id := range AllStageIDs() {
		known[id] = true
	}

	for i, st := range c.Stages {
		prefix := fmt.Sprintf("stage %d (%s)", i, st.ID)
		if !known[st.ID] {
			errs = append(errs, fmt.Sprintf("%s: unknown stage ID", prefix))
		}
		if st.Header == "" {
			errs = append(errs, fmt.Sprintf("%s: header must not be empty", prefix))
		}
		seen := make(map[string]bool, OptionCount)
		optimalListed := false
		for j, opt := range st.Options {
			if strings.TrimSpace(opt) == "" {
				errs = append(errs, fmt.Sprintf("%s: option %d is empty", prefix, j))
				continue
			}
			if seen[opt] {
				errs = append(errs, fmt.Sprintf("%s: duplicate option %q", prefix, opt))
			}
			seen[opt] = true
			if opt == st.Optimal {
				optimalListed = true
			}
		}
		if st.Optimal == "" {
			errs = append(errs, fmt.Sprintf("%s: optimal option must be set", prefix))
		} else if !optimalListed {
			errs = append(errs, fmt.Sprintf("%s: optimal option %q is not among the options", prefix, st.Optimal))
		}

		// Only the last stage may be terminal, and it must be.
		last := i == len(c.Stages)-1
		if st.IsTerminal != last {
			if last {
				errs = append(errs, fmt.Sprintf("%s: final stage must be terminal", prefix))
			} else {
				errs = append(errs, fmt.Sprintf("%s: only the final stage may be terminal", prefix))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("case %q validation failed:\n  %s", c.ID, strings.Join(errs, "\n  "))
	}
	return nil
}
