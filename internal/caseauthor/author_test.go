package caseauthor

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/abhisek/clincase/internal/llm"
)

func validCaseJSON() json.RawMessage {
	return json.RawMessage(`{
		"title": "72-year-old with Sudden Left-Sided Weakness",
		"reference_text": "# Case: 72-year-old with Sudden Left-Sided Weakness\n\n## Initial Presentation\nA 72-year-old female presents with sudden left-sided weakness and facial droop beginning 90 minutes ago. History of atrial fibrillation and hypertension.\n\n## Optimal Management Path\nNon-contrast head CT, then thrombolysis within the window, followed by thrombectomy evaluation. Secondary prevention with dual antiplatelet therapy, high-intensity statin, and ACE inhibitor.",
		"stages": [
			{
				"stage_id": "initial",
				"header": "Initial Diagnostic Workup",
				"options": ["Non-contrast head CT and glucose", "MRI brain with diffusion", "Lumbar puncture", "Carotid ultrasound"],
				"optimal": "Non-contrast head CT and glucose"
			},
			{
				"stage_id": "treatment",
				"header": "Initial Treatment Decision",
				"options": ["Administer IV thrombolysis", "Start therapeutic heparin", "Give aspirin 325 mg only", "Urgent blood pressure reduction"],
				"optimal": "Administer IV thrombolysis"
			},
			{
				"stage_id": "catheterization",
				"header": "Definitive Intervention",
				"options": ["Mechanical thrombectomy", "Repeat thrombolysis", "Decompressive craniectomy", "Observation in the stroke unit"],
				"optimal": "Mechanical thrombectomy"
			},
			{
				"stage_id": "post_intervention",
				"header": "Post-Intervention Management",
				"options": ["Start dual antiplatelet therapy, high-intensity statin, and ACE inhibitor", "Continue aspirin only", "Therapeutic anticoagulation immediately", "Discharge with outpatient follow-up"],
				"optimal": "Start dual antiplatelet therapy, high-intensity statin, and ACE inhibitor"
			}
		]
	}`)
}

func testInput() AuthorInput {
	return AuthorInput{
		Specialty:      "Neurology",
		Topic:          "acute ischemic stroke",
		Difficulty:     "Moderate",
		Credits:        1.0,
		ExistingTitles: []string{"58-year-old with Acute Chest Pain"},
	}
}

func TestAuthor_ValidCase(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validCaseJSON()})
	author := New(mock, DefaultConfig())

	c, err := author.Author(t.Context(), testInput())
	if err != nil {
		t.Fatalf("Author: %v", err)
	}

	if c.Title != "72-year-old with Sudden Left-Sided Weakness" {
		t.Errorf("unexpected title: %q", c.Title)
	}
	if c.Specialty != "Neurology" || c.Difficulty != "Moderate" || c.Credits != 1.0 {
		t.Errorf("input metadata not carried: %+v", c)
	}
	if !strings.HasPrefix(c.ID, "72-year-old-with-sudden-left-sided-weakn") {
		t.Errorf("unexpected case ID: %q", c.ID)
	}
	if len(c.Stages) != 4 {
		t.Fatalf("expected 4 stages, got %d", len(c.Stages))
	}
	if !c.TerminalStage().IsTerminal {
		t.Error("final stage should be terminal")
	}
	for i, st := range c.Stages[:3] {
		if st.IsTerminal {
			t.Errorf("stage %d should not be terminal", i)
		}
	}

	if mock.Calls[0].Schema != CaseSchema {
		t.Error("request should carry the case schema")
	}
}

func TestAuthor_PromptCarriesInput(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validCaseJSON()})
	author := New(mock, DefaultConfig())

	if _, err := author.Author(t.Context(), testInput()); err != nil {
		t.Fatal(err)
	}

	msg := mock.Calls[0].Messages[0].Content
	for _, want := range []string{
		"Specialty: Neurology",
		"Topic: acute ischemic stroke",
		"- 58-year-old with Acute Chest Pain",
	} {
		if !strings.Contains(msg, want) {
			t.Errorf("user message missing %q", want)
		}
	}
}

func TestAuthor_UncompletableCaseRejected(t *testing.T) {
	bad := strings.Replace(string(validCaseJSON()),
		`"optimal": "Start dual antiplatelet therapy, high-intensity statin, and ACE inhibitor"`,
		`"optimal": "Continue aspirin only"`, 1)
	bad = strings.Replace(bad,
		`"Start dual antiplatelet therapy, high-intensity statin, and ACE inhibitor", "Continue aspirin only"`,
		`"Continue aspirin only", "Start dual antiplatelet therapy, high-intensity statin, and ACE inhibitor"`, 1)

	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(bad)})
	author := New(mock, DefaultConfig())

	_, err := author.Author(t.Context(), testInput())
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Validator != "completable" {
		t.Errorf("expected completable validator to fail, got %q", verr.Validator)
	}
}

func TestAuthor_StructurallyInvalidCaseRejected(t *testing.T) {
	bad := strings.Replace(string(validCaseJSON()),
		`"optimal": "Mechanical thrombectomy"`,
		`"optimal": "An option not in the list"`, 1)

	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(bad)})
	author := New(mock, DefaultConfig())

	_, err := author.Author(t.Context(), testInput())
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if verr.Validator != "definition" {
		t.Errorf("expected definition validator to fail, got %q", verr.Validator)
	}
}

func TestAuthor_ProviderErrorSurfaces(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	author := New(mock, DefaultConfig())

	_, err := author.Author(t.Context(), testInput())
	var unavailable *llm.ErrProviderUnavailable
	if !errors.As(err, &unavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}

func TestCaseID(t *testing.T) {
	id := caseID("58-year-old with Acute Chest Pain!")
	if !strings.HasPrefix(id, "58-year-old-with-acute-chest-pain-") {
		t.Errorf("unexpected slug: %q", id)
	}
	if id == caseID("58-year-old with Acute Chest Pain!") {
		t.Error("IDs for identical titles should still differ")
	}
}
