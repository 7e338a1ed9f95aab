package narrative

import (
	"github.com/abhisek/clincase/internal/casedef"
	"github.com/abhisek/clincase/internal/engine"
)

// ProgressInput holds everything needed to narrate one submitted decision.
type ProgressInput struct {
	Case      *casedef.CaseDefinition
	Stage     engine.StageContext
	Decision  string
	History   []string
	Decisions []string
	Verdict   engine.Verdict
}

// QuestionInput holds the context for a freeform question. Questions are a
// side channel: they never advance the case, so the input carries the
// learner's position rather than a pending decision.
type QuestionInput struct {
	Case      *casedef.CaseDefinition
	Question  string
	StepIndex int
	StageID   casedef.StageID
	History   []string
	Decisions []string
	Completed bool
}
