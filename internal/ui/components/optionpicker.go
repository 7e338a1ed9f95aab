package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/clincase/internal/ui/theme"
)

// OptionPicker is a four-option decision selector. It never marks which
// option is correct; correctness feedback arrives through the narrative.
type OptionPicker struct {
	Header   string
	Options  []string
	Selected int
	Disabled bool
}

// NewOptionPicker creates a picker for one decision point.
func NewOptionPicker(header string, options []string) OptionPicker {
	return OptionPicker{
		Header:  header,
		Options: options,
	}
}

// Init returns nil.
func (p OptionPicker) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation. Submission (enter) is the owning
// screen's responsibility; the picker only tracks the highlight.
func (p OptionPicker) Update(msg tea.Msg) (OptionPicker, tea.Cmd) {
	if p.Disabled {
		return p, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if p.Selected > 0 {
			p.Selected--
		}
	case "down", "j":
		if p.Selected < len(p.Options)-1 {
			p.Selected++
		}
	case "1", "2", "3", "4":
		idx := int(kmsg.String()[0] - '1')
		if idx < len(p.Options) {
			p.Selected = idx
		}
	}

	return p, nil
}

// Value returns the currently highlighted option text.
func (p OptionPicker) Value() string {
	if p.Selected < 0 || p.Selected >= len(p.Options) {
		return ""
	}
	return p.Options[p.Selected]
}

// View renders the picker.
func (p OptionPicker) View() string {
	headerStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	s := headerStyle.Render(p.Header) + "\n\n"

	labels := []string{"A", "B", "C", "D"}

	for i, opt := range p.Options {
		label := labels[i%len(labels)]
		prefix := "  "
		if i == p.Selected && !p.Disabled {
			prefix = "▸ "
		}

		line := fmt.Sprintf("%s%s)  %s", prefix, label, opt)

		switch {
		case p.Disabled:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == p.Selected:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}

	return s
}
