package casedef

// StageID identifies a decision point within a case.
type StageID string

const (
	StageInitial          StageID = "initial"
	StageTreatment        StageID = "treatment"
	StageCatheterization  StageID = "catheterization"
	StagePostIntervention StageID = "post_intervention"
)

// AllStageIDs returns the known stage IDs in case order.
func AllStageIDs() []StageID {
	return []StageID{
		StageInitial,
		StageTreatment,
		StageCatheterization,
		StagePostIntervention,
	}
}

// DisplayName returns a human-readable name for a stage ID.
func (s StageID) DisplayName() string {
	switch s {
	case StageInitial:
		return "Initial Workup"
	case StageTreatment:
		return "Initial Treatment"
	case StageCatheterization:
		return "Catheterization"
	case StagePostIntervention:
		return "Post-Intervention"
	default:
		return string(s)
	}
}

// OptionCount is the fixed number of candidate decisions per stage.
const OptionCount = 4

// StageSpec describes one decision point: its identity, display header,
// the fixed option set the UI renders, and whether reaching a correct
// decision here completes the case.
type StageSpec struct {
	ID         StageID
	Header     string
	Options    [OptionCount]string
	IsTerminal bool

	// Optimal is the guideline-endorsed option for this stage. Non-terminal
	// stages do not gate progression on it, but the narrative layer uses it
	// to steer the learner back on course.
	Optimal string
}

// CaseDefinition is the immutable description of one clinical case.
type CaseDefinition struct {
	ID         string
	Title      string
	Specialty  string
	Difficulty string

	// Credits is the CME credit value awarded on completion.
	Credits float64

	// ReferenceText is the full clinical narrative. It grounds the
	// narrative generator and is never shown verbatim to the learner.
	ReferenceText string

	// Stages is the ordered decision-point sequence. The last stage is
	// the terminal one.
	Stages []StageSpec
}

// TerminalStage returns the terminal stage spec.
// Definitions registered through this package are validated to have
// exactly one, as the final stage.
func (c *CaseDefinition) TerminalStage() StageSpec {
	return c.Stages[len(c.Stages)-1]
}

// StageCount returns the number of decision points in the case.
func (c *CaseDefinition) StageCount() int {
	return len(c.Stages)
}
