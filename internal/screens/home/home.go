package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/clincase/internal/casedef"
	"github.com/abhisek/clincase/internal/router"
	"github.com/abhisek/clincase/internal/screen"
	"github.com/abhisek/clincase/internal/screens/caserun"
	"github.com/abhisek/clincase/internal/screens/credits"
	"github.com/abhisek/clincase/internal/screens/placeholder"
	"github.com/abhisek/clincase/internal/store"
	"github.com/abhisek/clincase/internal/trainer"
	"github.com/abhisek/clincase/internal/ui/components"
	"github.com/abhisek/clincase/internal/ui/theme"
)

// HomeScreen is the case catalog and main navigation.
type HomeScreen struct {
	menu         components.Menu
	cases        []*casedef.CaseDefinition
	completed    map[string]bool
	totalCredits float64
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(tr *trainer.Trainer, eventRepo store.EventRepo, snapRepo store.SnapshotRepo) *HomeScreen {
	cases := casedef.All()

	// The latest snapshot carries the earned-credential summary.
	completed := make(map[string]bool)
	var totalCredits float64
	if snapRepo != nil {
		if snap, err := snapRepo.Latest(context.Background()); err == nil && snap != nil {
			for _, c := range snap.Data.Credentials {
				completed[c.CaseID] = true
				totalCredits += c.Credits
			}
		}
	}

	var items []components.MenuItem
	for _, c := range cases {
		c := c
		label := c.Title
		if completed[c.ID] {
			label = "✓ " + label
		}
		items = append(items, components.MenuItem{Label: label, Action: func() tea.Cmd {
			if tr == nil {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: placeholder.New(c.Title)}
				}
			}
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: caserun.New(tr, c.ID)}
			}
		}})
	}

	items = append(items, components.MenuItem{Label: "EARNED CREDITS", Action: func() tea.Cmd {
		if eventRepo == nil {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: placeholder.New("Earned Credits")}
			}
		}
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: credits.New(eventRepo)}
		}
	}})
	items = append(items, components.MenuItem{Label: "EXIT", Action: func() tea.Cmd {
		return tea.Quit
	}})

	return &HomeScreen{
		menu:         components.NewMenu(items),
		cases:        cases,
		completed:    completed,
		totalCredits: totalCredits,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

// TotalCredits returns the credit total from the latest snapshot, for
// the header.
func (h *HomeScreen) TotalCredits() float64 {
	return h.totalCredits
}

func (h *HomeScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(theme.Title.Width(width).Render("Clinical Case Trainer"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("Interactive CME for physicians"))
	b.WriteString("\n\n")

	// Case metadata for the highlighted entry.
	if h.menu.Selected < len(h.cases) {
		c := h.cases[h.menu.Selected]
		meta := fmt.Sprintf("%s  ·  %s  ·  %.1f credits", c.Specialty, c.Difficulty, c.Credits)
		if h.completed[c.ID] {
			meta += "  ·  " + lipgloss.NewStyle().Foreground(theme.Success).Render("credit earned")
		}
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(meta))
	}
	b.WriteString("\n\n")

	menuView := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(h.menu.View())
	b.WriteString(menuView)

	if h.totalCredits > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(fmt.Sprintf("★ %.1f CME credits earned", h.totalCredits)))
	}

	return b.String()
}

func (h *HomeScreen) Title() string {
	return "Home"
}
