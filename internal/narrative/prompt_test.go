package narrative

import (
	"strings"
	"testing"

	"github.com/abhisek/clincase/internal/casedef"
	"github.com/abhisek/clincase/internal/engine"
)

func testCase(t *testing.T) *casedef.CaseDefinition {
	t.Helper()
	c, err := casedef.Get("stemi-001")
	if err != nil {
		t.Fatalf("seed case not registered: %v", err)
	}
	return c
}

func progressInput(t *testing.T, stepIndex int, decision string) ProgressInput {
	t.Helper()
	c := testCase(t)
	stage := engine.ResolveStage(c, stepIndex)
	return ProgressInput{
		Case:     c,
		Stage:    stage,
		Decision: decision,
		History:  []string{"A 58-year-old male presents with crushing chest pain."},
		Verdict:  engine.Evaluate(stage.ID, decision),
	}
}

func TestBuildOpeningMessage(t *testing.T) {
	c := testCase(t)
	msg := buildOpeningMessage(c)

	if !strings.Contains(msg, c.ReferenceText) {
		t.Error("opening message missing case reference text")
	}
	if !strings.Contains(msg, "initial clinical presentation") {
		t.Error("opening message missing presentation instructions")
	}
	if !strings.Contains(msg, "Do not list, number, or suggest any decision options") {
		t.Error("opening message missing option directive")
	}
	if strings.Contains(msg, "Conversation history") {
		t.Error("opening message should not carry a history section")
	}
}

func TestBuildProgressMessage_SectionsOmittedWhenEmpty(t *testing.T) {
	in := progressInput(t, 0, "Complete Blood Count, Metabolic Panel, and EKG")
	in.History = nil
	in.Decisions = nil

	msg := buildProgressMessage(in)

	if strings.Contains(msg, "Conversation history") {
		t.Error("empty history should omit the history section")
	}
	if strings.Contains(msg, "Physician decisions so far") {
		t.Error("empty decisions should omit the decisions section")
	}
}

func TestBuildProgressMessage_DecisionsNumbered(t *testing.T) {
	in := progressInput(t, 2, "Percutaneous Coronary Intervention (PCI) with stent")
	in.Decisions = []string{
		"Complete Blood Count, Metabolic Panel, and EKG",
		"Administer aspirin and nitroglycerin",
	}

	msg := buildProgressMessage(in)

	if !strings.Contains(msg, "Step 1: Complete Blood Count, Metabolic Panel, and EKG") {
		t.Error("first decision not numbered as Step 1")
	}
	if !strings.Contains(msg, "Step 2: Administer aspirin and nitroglycerin") {
		t.Error("second decision not numbered as Step 2")
	}
}

func TestBuildProgressMessage_StageDirectives(t *testing.T) {
	tests := []struct {
		name      string
		stepIndex int
		decision  string
		want      string
		notWant   string
	}{
		{
			name:      "initial workup asks for intervention",
			stepIndex: 0,
			decision:  "Complete Blood Count, Metabolic Panel, and EKG",
			want:      "initial intervention",
		},
		{
			name:      "treatment advances toward definitive step",
			stepIndex: 1,
			decision:  "Administer aspirin and nitroglycerin",
			want:      "definitive next step",
		},
		{
			name:      "catheterization confirms stability",
			stepIndex: 2,
			decision:  "Percutaneous Coronary Intervention (PCI) with stent",
			want:      "now stable",
		},
		{
			name:      "terminal correct congratulates",
			stepIndex: 3,
			decision:  "Initiate dual antiplatelet therapy, high-intensity statin, beta-blocker, and ACE inhibitor",
			want:      "congratulation on completing the case",
			notWant:   "what is missing or suboptimal",
		},
		{
			name:      "terminal incorrect re-prompts",
			stepIndex: 3,
			decision:  "Administer aspirin only and continue previous medications",
			want:      "missing or suboptimal",
			notWant:   "congratulation",
		},
		{
			name:      "extra step falls back to generic feedback",
			stepIndex: 7,
			decision:  "Order additional testing",
			want:      "additional changes to the management plan",
		},
		{
			name:      "correct retry past the sequence still congratulates",
			stepIndex: 5,
			decision:  "Start dual antiplatelet therapy with a statin and ACE inhibitor",
			want:      "congratulation on completing the case",
			notWant:   "additional changes to the management plan",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := buildProgressMessage(progressInput(t, tt.stepIndex, tt.decision))
			if !strings.Contains(msg, tt.want) {
				t.Errorf("directive missing %q", tt.want)
			}
			if tt.notWant != "" && strings.Contains(msg, tt.notWant) {
				t.Errorf("directive unexpectedly contains %q", tt.notWant)
			}
		})
	}
}

func TestBuildProgressMessage_AlwaysCarriesStandingDirectives(t *testing.T) {
	for _, stepIndex := range []int{0, 1, 2, 3, 9} {
		msg := buildProgressMessage(progressInput(t, stepIndex, "anything"))
		if !strings.Contains(msg, "Do not list, number, or suggest any decision options") {
			t.Errorf("step %d: missing option directive", stepIndex)
		}
		if !strings.Contains(msg, "later stage of the case") {
			t.Errorf("step %d: missing future-stage directive", stepIndex)
		}
	}
}

func TestBuildQuestionMessage(t *testing.T) {
	c := testCase(t)
	in := QuestionInput{
		Case:      c,
		Question:  "Why is troponin elevated?",
		StepIndex: 1,
		StageID:   casedef.StageTreatment,
		History:   []string{"opening", "labs returned"},
		Decisions: []string{"Complete Blood Count, Metabolic Panel, and EKG"},
	}

	msg := buildQuestionMessage(in)

	if !strings.Contains(msg, `"Why is troponin elevated?"`) {
		t.Error("question text not embedded")
	}
	if !strings.Contains(msg, "Step index: 1") {
		t.Error("step index not embedded")
	}
	if !strings.Contains(msg, "Current stage: treatment") {
		t.Error("stage not embedded")
	}
	if !strings.Contains(msg, "Case completed: no") {
		t.Error("completion status not embedded")
	}
	if strings.Contains(msg, "discuss the full case freely") {
		t.Error("in-progress question should not relax disclosure")
	}
}

func TestBuildQuestionMessage_CompletedRelaxesDisclosure(t *testing.T) {
	in := QuestionInput{
		Case:      testCase(t),
		Question:  "What was the occluded vessel?",
		StepIndex: 4,
		StageID:   casedef.StagePostIntervention,
		Completed: true,
	}

	msg := buildQuestionMessage(in)

	if !strings.Contains(msg, "Case completed: yes") {
		t.Error("completion status not embedded")
	}
	if !strings.Contains(msg, "discuss the full case freely") {
		t.Error("completed question should relax disclosure")
	}
}
