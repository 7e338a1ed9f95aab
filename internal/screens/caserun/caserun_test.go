package caserun

import (
	"encoding/json"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/clincase/internal/llm"
	"github.com/abhisek/clincase/internal/narrative"
	"github.com/abhisek/clincase/internal/router"
	"github.com/abhisek/clincase/internal/screen"
	"github.com/abhisek/clincase/internal/trainer"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// testScreen builds a CaseScreen whose trainer returns the given canned
// narrative texts in order.
func testScreen(texts ...string) *CaseScreen {
	mock := llm.NewMockProvider()
	for _, text := range texts {
		mock.AddResponse(llm.MockResponse{Content: json.RawMessage(text)})
	}
	narrator := narrative.NewService(mock, narrative.DefaultConfig())
	tr := trainer.New(narrator, nil, nil)
	return New(tr, "stemi-001")
}

// startScreen drives the screen through the opening generation.
func startScreen(t *testing.T, s *CaseScreen) {
	t.Helper()
	msg := s.startCase()()
	started, ok := msg.(caseStartedMsg)
	if !ok {
		t.Fatalf("startCase returned %T, want caseStartedMsg", msg)
	}
	if started.Err != nil {
		t.Fatalf("startCase: %v", started.Err)
	}
	s.Update(started)
	if s.phase != phaseDeciding {
		t.Fatalf("phase = %d after start, want deciding", s.phase)
	}
}

func TestCaseScreen_TitleFollowsCase(t *testing.T) {
	s := testScreen("Opening presentation.")
	if s.Title() != "Case" {
		t.Errorf("Title before start = %q, want %q", s.Title(), "Case")
	}
	startScreen(t, s)
	if s.Title() == "Case" {
		t.Error("expected case title after start")
	}
}

func TestCaseScreen_StartError(t *testing.T) {
	s := testScreen() // empty mock queue: provider unavailable
	msg := s.startCase()()
	s.Update(msg)
	if s.errMsg == "" {
		t.Error("expected error message when opening generation fails")
	}
	view := s.View(80, 24)
	if !strings.Contains(view, "Something went wrong") {
		t.Error("expected error view")
	}
}

func TestCaseScreen_SubmitAdvances(t *testing.T) {
	s := testScreen("Opening presentation.", "Good call, the patient improves.")
	startScreen(t, s)

	var scr screen.Screen = s
	scr, cmd := scr.Update(specialKey(tea.KeyEnter))
	ss := scr.(*CaseScreen)
	if ss.phase != phaseSubmitting {
		t.Fatalf("phase = %d after enter, want submitting", ss.phase)
	}
	if cmd == nil {
		t.Fatal("expected a submit command")
	}

	ss.Update(ss.submit(ss.picker.Value())())
	if ss.phase != phaseDeciding {
		t.Errorf("phase = %d after result, want deciding", ss.phase)
	}
	if ss.sess.CurrentStepIndex != 1 {
		t.Errorf("step index = %d, want 1", ss.sess.CurrentStepIndex)
	}
}

func TestCaseScreen_BusyGateBlocksResubmit(t *testing.T) {
	s := testScreen("Opening presentation.")
	startScreen(t, s)
	s.phase = phaseSubmitting

	var scr screen.Screen = s
	_, cmd := scr.Update(specialKey(tea.KeyEnter))
	if cmd != nil {
		t.Error("expected enter to be ignored while a submission is in flight")
	}
	if s.sess.CurrentStepIndex != 0 {
		t.Errorf("step index = %d, want 0", s.sess.CurrentStepIndex)
	}
}

func TestCaseScreen_QuestionMode(t *testing.T) {
	s := testScreen("Opening presentation.", "Troponin confirms myocardial injury.")
	startScreen(t, s)

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('a'))
	ss := scr.(*CaseScreen)
	if ss.phase != phaseAsking {
		t.Fatalf("phase = %d after 'a', want asking", ss.phase)
	}

	// Esc cancels question entry without leaving the screen.
	scr, _ = ss.Update(specialKey(tea.KeyEscape))
	ss = scr.(*CaseScreen)
	if ss.phase != phaseDeciding {
		t.Fatalf("phase = %d after esc, want deciding", ss.phase)
	}

	// Ask for real this time.
	scr, _ = ss.Update(keyPress('a'))
	ss = scr.(*CaseScreen)
	ss.input.Model.SetValue("Why troponin?")
	scr, _ = ss.Update(specialKey(tea.KeyEnter))
	ss = scr.(*CaseScreen)
	if ss.phase != phaseAnswering {
		t.Fatalf("phase = %d after enter, want answering", ss.phase)
	}

	ss.Update(ss.askQuestion("Why troponin?")())
	if len(ss.answers) != 1 {
		t.Fatalf("answers = %d, want 1", len(ss.answers))
	}
	if ss.sess.CurrentStepIndex != 0 {
		t.Error("questions must not advance the session")
	}
}

func TestCaseScreen_EscPops(t *testing.T) {
	s := testScreen("Opening presentation.")
	startScreen(t, s)

	var scr screen.Screen = s
	_, cmd := scr.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("expected a pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg on esc")
	}
}

func TestCaseScreen_ViewStates(t *testing.T) {
	s := testScreen("Opening presentation.")
	if s.View(80, 24) == "" {
		t.Error("expected non-empty loading view")
	}

	startScreen(t, s)
	view := s.View(80, 24)
	if !strings.Contains(view, "Opening presentation.") {
		t.Error("expected narrative in view")
	}
	if !strings.Contains(view, "Decision 1 of") {
		t.Error("expected progress label in view")
	}
}
