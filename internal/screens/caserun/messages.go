package caserun

import (
	"time"

	"github.com/abhisek/clincase/internal/engine"
	"github.com/abhisek/clincase/internal/trainer"
)

// caseStartedMsg is sent when the opening presentation has been generated.
type caseStartedMsg struct {
	State *engine.SessionState
	Err   error
}

// decisionResultMsg is sent when a submitted decision has been narrated.
type decisionResultMsg struct {
	Result *trainer.Result
	Err    error
}

// answerMsg is sent when a freeform question has been answered.
type answerMsg struct {
	Question string
	Answer   string
	Err      error
}

// restartedMsg is sent when a restart's fresh opening is ready.
type restartedMsg struct {
	Err error
}

// spinnerTickMsg animates the busy indicator.
type spinnerTickMsg time.Time
