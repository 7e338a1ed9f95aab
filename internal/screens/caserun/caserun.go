package caserun

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/clincase/internal/engine"
	"github.com/abhisek/clincase/internal/router"
	"github.com/abhisek/clincase/internal/screen"
	"github.com/abhisek/clincase/internal/trainer"
	"github.com/abhisek/clincase/internal/ui/components"
	"github.com/abhisek/clincase/internal/ui/layout"
)

// phase tracks what the screen is waiting on. Any generating phase gates
// resubmission: decisions and questions are only accepted while idle.
type phase int

const (
	phaseOpening    phase = iota // opening presentation in flight
	phaseDeciding                // option picker active
	phaseSubmitting              // decision narration in flight
	phaseAsking                  // question input active
	phaseAnswering               // question answer in flight
)

// qa is one freeform exchange shown beneath the narrative.
type qa struct {
	Question string
	Answer   string
}

// CaseScreen runs one clinical case end to end.
type CaseScreen struct {
	tr     *trainer.Trainer
	caseID string

	sess    *engine.SessionState
	phase   phase
	picker  components.OptionPicker
	input   components.TextInput
	answers []qa

	scroll  int
	spinner int
	errMsg  string
}

var _ screen.Screen = (*CaseScreen)(nil)
var _ screen.KeyHintProvider = (*CaseScreen)(nil)

// New creates a CaseScreen for the given case.
func New(tr *trainer.Trainer, caseID string) *CaseScreen {
	return &CaseScreen{
		tr:     tr,
		caseID: caseID,
		input:  components.NewTextInput("Ask the educator a question...", 300),
	}
}

func (s *CaseScreen) Init() tea.Cmd {
	return tea.Batch(s.startCase(), spinnerTick())
}

func (s *CaseScreen) Title() string {
	if s.sess != nil {
		return s.sess.Case.Title
	}
	return "Case"
}

func (s *CaseScreen) KeyHints() []layout.KeyHint {
	switch s.phase {
	case phaseAsking:
		return []layout.KeyHint{
			{Key: "Enter", Description: "Ask"},
			{Key: "Esc", Description: "Cancel"},
		}
	case phaseDeciding:
		if s.sess != nil && s.sess.Completed {
			return []layout.KeyHint{
				{Key: "A", Description: "Ask a question"},
				{Key: "R", Description: "Restart"},
				{Key: "Esc", Description: "Home"},
			}
		}
		return []layout.KeyHint{
			{Key: "↑↓/1-4", Description: "Choose"},
			{Key: "Enter", Description: "Submit"},
			{Key: "A", Description: "Ask"},
			{Key: "PgUp/PgDn", Description: "Scroll"},
			{Key: "Esc", Description: "Home"},
		}
	}
	return []layout.KeyHint{
		{Key: "Esc", Description: "Home"},
	}
}

func (s *CaseScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case caseStartedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.sess = msg.State
		s.resetPicker()
		s.phase = phaseDeciding
		return s, nil

	case decisionResultMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			s.phase = phaseDeciding
			return s, nil
		}
		s.scroll = 0
		s.answers = nil
		s.resetPicker()
		s.phase = phaseDeciding
		return s, nil

	case answerMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			s.phase = phaseDeciding
			return s, nil
		}
		s.answers = append(s.answers, qa{Question: msg.Question, Answer: msg.Answer})
		s.phase = phaseDeciding
		return s, nil

	case restartedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			s.phase = phaseDeciding
			return s, nil
		}
		s.scroll = 0
		s.answers = nil
		s.resetPicker()
		s.phase = phaseDeciding
		return s, nil

	case spinnerTickMsg:
		if s.busy() {
			s.spinner++
			return s, spinnerTick()
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.phase == phaseAsking {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *CaseScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// The error banner clears on any key.
	if s.errMsg != "" {
		s.errMsg = ""
	}

	if s.phase == phaseAsking {
		switch key {
		case "esc":
			s.phase = phaseDeciding
			s.input.Reset()
			return s, nil
		case "enter":
			question := s.input.Value()
			if question == "" {
				return s, nil
			}
			s.input.Reset()
			s.phase = phaseAnswering
			return s, tea.Batch(s.askQuestion(question), spinnerTick())
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	if s.busy() {
		if key == "esc" {
			return s.leave()
		}
		return s, nil
	}

	switch key {
	case "esc":
		return s.leave()
	case "pgup":
		if s.scroll > 0 {
			s.scroll--
		}
		return s, nil
	case "pgdown":
		s.scroll++
		return s, nil
	case "a":
		s.phase = phaseAsking
		return s, s.input.Init()
	case "r":
		s.phase = phaseOpening
		return s, tea.Batch(s.restart(), spinnerTick())
	case "enter":
		if s.sess == nil || s.sess.Completed {
			return s, nil
		}
		decision := s.picker.Value()
		s.phase = phaseSubmitting
		return s, tea.Batch(s.submit(decision), spinnerTick())
	}

	if s.sess != nil && !s.sess.Completed {
		var cmd tea.Cmd
		s.picker, cmd = s.picker.Update(msg)
		return s, cmd
	}
	return s, nil
}

// leave records the session end and pops back to the home screen.
func (s *CaseScreen) leave() (screen.Screen, tea.Cmd) {
	if s.sess != nil {
		s.tr.End(context.Background(), s.sess)
	}
	return s, func() tea.Msg { return router.PopScreenMsg{} }
}

func (s *CaseScreen) busy() bool {
	return s.phase == phaseOpening || s.phase == phaseSubmitting || s.phase == phaseAnswering
}

// resetPicker rebuilds the option picker for the current step.
func (s *CaseScreen) resetPicker() {
	if s.sess == nil || s.sess.Completed {
		return
	}
	stage := engine.ResolveStage(s.sess.Case, s.sess.CurrentStepIndex)
	s.picker = components.NewOptionPicker(stage.Header, stage.Options[:])
}

func (s *CaseScreen) startCase() tea.Cmd {
	return func() tea.Msg {
		state, err := s.tr.StartCase(context.Background(), s.caseID)
		return caseStartedMsg{State: state, Err: err}
	}
}

func (s *CaseScreen) submit(decision string) tea.Cmd {
	return func() tea.Msg {
		res, err := s.tr.SubmitDecision(context.Background(), s.sess, decision)
		return decisionResultMsg{Result: res, Err: err}
	}
}

func (s *CaseScreen) askQuestion(question string) tea.Cmd {
	return func() tea.Msg {
		answer, err := s.tr.AskQuestion(context.Background(), s.sess, question)
		return answerMsg{Question: question, Answer: answer, Err: err}
	}
}

func (s *CaseScreen) restart() tea.Cmd {
	return func() tea.Msg {
		return restartedMsg{Err: s.tr.Restart(context.Background(), s.sess)}
	}
}

func spinnerTick() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(t time.Time) tea.Msg {
		return spinnerTickMsg(t)
	})
}

// InterceptEsc is true: the screen records the session end itself before
// popping, and uses esc to cancel question entry.
func (s *CaseScreen) InterceptEsc() bool { return true }
