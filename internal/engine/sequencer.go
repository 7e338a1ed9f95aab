package engine

import "github.com/abhisek/clincase/internal/casedef"

// StageContext is the resolved decision-point context for a step index.
type StageContext struct {
	ID         casedef.StageID
	Header     string
	Options    [casedef.OptionCount]string
	IsTerminal bool

	// Extra is true when the step index ran past the defined sequence and
	// this context is the synthetic fallback stage.
	Extra bool
}

// extraHeader is the generic header for steps beyond the defined sequence.
const extraHeader = "Decision Point"

// extraOptions is the generic fallback option set for extra steps.
func extraOptions() [casedef.OptionCount]string {
	return [casedef.OptionCount]string{
		"Adjust the management plan",
		"Order additional testing",
		"Request a specialist consultation",
		"Make no further changes",
	}
}

// ResolveStage maps a zero-based step index to its stage context.
//
// Indices within the defined sequence return that stage verbatim. Indices
// past the end degrade to a synthetic "extra" stage carrying the last
// stage's ID, a generic header and option set, and IsTerminal=false, so
// the engine never fails on out-of-range input.
func ResolveStage(c *casedef.CaseDefinition, stepIndex int) StageContext {
	if stepIndex >= 0 && stepIndex < len(c.Stages) {
		st := c.Stages[stepIndex]
		return StageContext{
			ID:         st.ID,
			Header:     st.Header,
			Options:    st.Options,
			IsTerminal: st.IsTerminal,
		}
	}
	return StageContext{
		ID:      c.TerminalStage().ID,
		Header:  extraHeader,
		Options: extraOptions(),
		Extra:   true,
	}
}
