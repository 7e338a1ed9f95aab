package narrative

import (
	"fmt"
	"strings"

	"github.com/abhisek/clincase/internal/casedef"
)

const educatorSystemPrompt = `You are an expert medical educator specializing in case-based learning for physicians. You guide medical professionals through realistic patient cases, presenting clinical information in stages and evaluating their decision-making. Present information in a clear, professional manner with realistic lab values and clinical findings. Evaluate outcomes against evidence-based guidelines and reference medical literature where appropriate.`

// Directives appended to every instruction. The interface owns option
// rendering, and stage pacing is the engine's job, not the narrator's.
const standingDirectives = `
Directives:
- Do not list, number, or suggest any decision options yourself. The interface presents them.
- Do not reveal findings, diagnoses, or treatments that belong to a later stage of the case.
- Do not echo the case reference text verbatim.`

func buildOpeningMessage(c *casedef.CaseDefinition) string {
	var b strings.Builder

	writeReference(&b, c)

	b.WriteString(`
You are starting this case with a physician learner. Present only the initial clinical presentation:
1. Brief patient demographics
2. Chief complaint
3. Key history elements
4. Initial vital signs

Do not reveal the diagnosis, workup results, or full case details yet. End by asking what initial workup the physician would like to pursue.`)
	b.WriteString(standingDirectives)

	return b.String()
}

func buildProgressMessage(in ProgressInput) string {
	var b strings.Builder

	writeReference(&b, in.Case)
	writeTranscript(&b, in.History, in.Decisions)

	b.WriteString(fmt.Sprintf("\nThe physician has chosen: %q\n", in.Decision))
	b.WriteString(stageDirectives(in))
	b.WriteString(standingDirectives)

	return b.String()
}

const terminalSuccessDirectives = `
This is the correct comprehensive approach and completes the case management. Provide:
1. A detailed description of the positive outcome for the patient.
2. A comprehensive explanation of why this was the optimal approach.
3. An educational summary of the key learning points from this case.
4. Evidence-based rationale with 2-3 specific literature references.
5. An explicit congratulation on completing the case successfully, stating that continuing-education credit has been earned.

Make the response comprehensive and educational, suitable for accredited continuing medical education.`

// stageDirectives returns the authoring block for one decision point. One
// entry per stage ID plus the fallback for steps past the defined
// sequence; the terminal stage forks on the evaluator's verdict.
func stageDirectives(in ProgressInput) string {
	if in.Stage.Extra {
		// A retry past the defined sequence still carries the terminal
		// stage's ID; when it finally satisfies the gate, the learner
		// gets the completion narration, not generic feedback.
		if in.Stage.ID == in.Case.TerminalStage().ID && in.Verdict.MatchesOptimal {
			return terminalSuccessDirectives
		}
		return `
Provide feedback on this decision and ask whether the physician would like to make any additional changes to the management plan.`
	}

	switch in.Stage.ID {
	case casedef.StageInitial:
		return `
Provide the requested initial results: appropriate lab values, imaging findings, or other clinical data. Include the diagnostic findings the reference text establishes for the initial workup. Then present the patient's current status and ask what initial intervention the physician would like to pursue.`

	case casedef.StageTreatment:
		return `
Advance the case:
1. Describe the patient's response to the initial treatment.
2. Explain the consulting specialist's recommendation for the definitive next step per the reference text.
3. Describe the definitive diagnostic findings the reference text establishes.
4. Ask what intervention the physician recommends for these findings.`

	case casedef.StageCatheterization:
		return `
Advance the case:
1. Describe the procedure and its immediate result per the reference text.
2. Detail the post-procedure findings and patient status.
3. Confirm the patient is now stable.
4. Ask what management plan the physician would like to implement going forward.`

	case casedef.StagePostIntervention:
		if in.Verdict.MatchesOptimal {
			return terminalSuccessDirectives
		}
		return `
Explain what is missing or suboptimal about this management selection compared to guideline-recommended therapy per the reference text. State clearly what comprehensive care the guidelines call for, then ask what management plan the physician would like to choose instead.`
	}

	// Unknown stage IDs only reach here through an unvalidated definition.
	return `
Provide feedback on this decision and ask the physician how they would like to proceed.`
}

func buildQuestionMessage(in QuestionInput) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("The physician has a question about the current case:\n\n%q\n", in.Question))

	writeReference(&b, in.Case)
	writeTranscript(&b, in.History, in.Decisions)

	b.WriteString("\nCurrent progression:\n")
	b.WriteString(fmt.Sprintf("- Step index: %d\n", in.StepIndex))
	b.WriteString(fmt.Sprintf("- Current stage: %s\n", in.StageID))
	if in.Completed {
		b.WriteString("- Case completed: yes\n")
	} else {
		b.WriteString("- Case completed: no\n")
	}

	b.WriteString(`
Answer the question knowledgeably, considering where the physician currently is in the case and what the history has already revealed. If they ask what to do next, guide them to use the decision interface rather than telling them directly. If they ask about content not yet revealed, explain that it would be premature to discuss it at this stage.`)

	if in.Completed {
		b.WriteString(`
The case is completed, so you may discuss the full case freely, including the diagnosis, findings, and management rationale.`)
	}
	b.WriteString(standingDirectives)

	return b.String()
}

// writeReference writes the case grounding block. The reference text is
// for the narrator only and is guarded against by the standing directives.
func writeReference(b *strings.Builder, c *casedef.CaseDefinition) {
	b.WriteString("Case reference (for your grounding only, not to be revealed wholesale to the learner):\n")
	b.WriteString(c.ReferenceText)
	b.WriteString("\n")
}

// writeTranscript writes the history and numbered decision sections,
// omitting either when empty.
func writeTranscript(b *strings.Builder, history, decisions []string) {
	if len(history) > 0 {
		b.WriteString("\nConversation history:\n")
		b.WriteString(strings.Join(history, "\n\n"))
		b.WriteString("\n")
	}
	if len(decisions) > 0 {
		b.WriteString("\nPhysician decisions so far:\n")
		for i, d := range decisions {
			b.WriteString(fmt.Sprintf("Step %d: %s\n", i+1, d))
		}
	}
}
