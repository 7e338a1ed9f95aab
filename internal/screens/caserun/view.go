package caserun

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/clincase/internal/ui/components"
	"github.com/abhisek/clincase/internal/ui/theme"
)

var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

func (s *CaseScreen) View(width, height int) string {
	if s.errMsg != "" {
		return s.renderError(width)
	}
	if s.sess == nil {
		return s.renderBusy("Preparing the case...", width)
	}

	var b strings.Builder

	b.WriteString(s.renderProgress(width))
	b.WriteString("\n\n")
	b.WriteString(s.renderNarrative(width, height))
	b.WriteString("\n")

	switch s.phase {
	case phaseSubmitting:
		b.WriteString(s.renderBusy("The educator is reviewing your decision...", width))
	case phaseAnswering:
		b.WriteString(s.renderBusy("The educator is answering...", width))
	case phaseOpening:
		b.WriteString(s.renderBusy("Restarting the case...", width))
	case phaseAsking:
		b.WriteString(s.renderQuestionInput(width))
	default:
		if s.sess.Completed {
			b.WriteString(s.renderCompletion(width))
		} else {
			b.WriteString(s.picker.View())
		}
	}

	return b.String()
}

// renderProgress shows where the learner is in the decision sequence.
func (s *CaseScreen) renderProgress(width int) string {
	total := len(s.sess.Case.Stages)
	step := s.sess.CurrentStepIndex
	if step > total {
		step = total
	}

	label := fmt.Sprintf("Decision %d of %d", min(s.sess.CurrentStepIndex+1, total), total)
	if s.sess.CurrentStepIndex >= total {
		label = "Beyond the planned sequence"
	}
	if s.sess.Completed {
		label = fmt.Sprintf("Case complete · %.1f CME credits earned", s.sess.Case.Credits)
	}

	percent := 0.0
	if total > 0 {
		percent = float64(step) / float64(total)
	}
	bar := components.NewProgressBar("", percent, false, 24)

	return bar.View() + "  " +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(label)
}

// renderNarrative shows the most recent educator message plus any freeform
// exchanges since, wrapped to the frame width.
func (s *CaseScreen) renderNarrative(width, height int) string {
	wrap := lipgloss.NewStyle().Width(width - 4).Foreground(theme.Text)

	var parts []string
	if len(s.sess.History) > 0 {
		parts = append(parts, wrap.Render(s.sess.History[len(s.sess.History)-1]))
	}

	qStyle := lipgloss.NewStyle().Width(width - 4).Foreground(theme.Accent).Italic(true)
	for _, exch := range s.answers {
		parts = append(parts, qStyle.Render("You asked: "+exch.Question))
		parts = append(parts, wrap.Render(exch.Answer))
	}

	text := strings.Join(parts, "\n\n")

	// Keep the tail visible by default; PgUp walks back through history.
	lines := strings.Split(text, "\n")
	avail := height - 14
	if avail < 5 {
		avail = 5
	}
	if len(lines) > avail {
		start := len(lines) - avail - s.scroll
		if start < 0 {
			start = 0
			s.scroll = len(lines) - avail
		}
		lines = lines[start : start+avail]
	} else {
		s.scroll = 0
	}

	return strings.Join(lines, "\n")
}

func (s *CaseScreen) renderQuestionInput(width int) string {
	label := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render("Ask the educator")
	return label + "\n\n" + s.input.View()
}

func (s *CaseScreen) renderCompletion(width int) string {
	banner := lipgloss.NewStyle().
		Foreground(theme.Success).
		Bold(true).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Success).
		Padding(0, 2).
		Render(fmt.Sprintf("✓ Case complete — %.1f CME credits earned", s.sess.Case.Credits))

	hint := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render("Press A to ask a question, R to run the case again, or Esc to return home.")

	return banner + "\n\n" + hint
}

func (s *CaseScreen) renderBusy(label string, width int) string {
	frame := spinnerFrames[s.spinner%len(spinnerFrames)]
	return lipgloss.NewStyle().Foreground(theme.Primary).Render(frame) + " " +
		lipgloss.NewStyle().Foreground(theme.TextDim).Render(label)
}

func (s *CaseScreen) renderError(width int) string {
	box := lipgloss.NewStyle().
		Foreground(theme.Error).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Error).
		Padding(0, 2).
		Width(width - 8).
		Render("Something went wrong:\n\n" + s.errMsg)

	hint := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render("Press any key to continue, or Esc to return home.")

	return box + "\n\n" + hint
}
