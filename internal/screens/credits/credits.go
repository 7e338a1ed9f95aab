package credits

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/clincase/internal/router"
	"github.com/abhisek/clincase/internal/screen"
	"github.com/abhisek/clincase/internal/store"
	"github.com/abhisek/clincase/internal/ui/layout"
	"github.com/abhisek/clincase/internal/ui/theme"
)

type creditsLoadedMsg struct {
	Records []store.CredentialRecord
	Total   float64
	Err     error
}

// CreditsScreen lists every earned CME credential, newest first.
type CreditsScreen struct {
	eventRepo    store.EventRepo
	records      []store.CredentialRecord
	total        float64
	scrollOffset int
	loaded       bool
	errMsg       string
}

var _ screen.Screen = (*CreditsScreen)(nil)
var _ screen.KeyHintProvider = (*CreditsScreen)(nil)

// New creates a new CreditsScreen.
func New(eventRepo store.EventRepo) *CreditsScreen {
	return &CreditsScreen{
		eventRepo: eventRepo,
	}
}

func (s *CreditsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		records, err := s.eventRepo.QueryCredentials(ctx, store.QueryOpts{})
		if err != nil {
			return creditsLoadedMsg{Err: err}
		}
		total, err := s.eventRepo.TotalCredits(ctx)
		return creditsLoadedMsg{Records: records, Total: total, Err: err}
	}
}

func (s *CreditsScreen) Title() string {
	return "Earned Credits"
}

func (s *CreditsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *CreditsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case creditsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.records = msg.Records
			s.total = msg.Total
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "up", "k":
			if s.scrollOffset > 0 {
				s.scrollOffset--
			}
		case "down", "j":
			if s.scrollOffset < len(s.records)-1 {
				s.scrollOffset++
			}
		}
	}

	return s, nil
}

func (s *CreditsScreen) View(width, height int) string {
	if !s.loaded {
		return lipgloss.NewStyle().Foreground(theme.TextDim).Render("Loading credentials...")
	}
	if s.errMsg != "" {
		return lipgloss.NewStyle().Foreground(theme.Error).Render("Error: " + s.errMsg)
	}

	var b strings.Builder

	total := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).
		Render(fmt.Sprintf("★ %.1f CME credits earned", s.total))
	b.WriteString(total)
	b.WriteString("\n\n")

	if len(s.records) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).
			Render("No credentials yet. Complete a case to earn CME credit."))
		return b.String()
	}

	avail := height - 8
	if avail < 3 {
		avail = 3
	}

	end := s.scrollOffset + avail
	if end > len(s.records) {
		end = len(s.records)
	}

	titleStyle := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	metaStyle := lipgloss.NewStyle().Foreground(theme.TextDim)

	for _, rec := range s.records[s.scrollOffset:end] {
		line := fmt.Sprintf("%s  %s",
			titleStyle.Render(rec.CaseTitle),
			lipgloss.NewStyle().Foreground(theme.Success).Render(fmt.Sprintf("%.1f credits", rec.Credits)),
		)
		b.WriteString(line)
		b.WriteString("\n")
		b.WriteString(metaStyle.Render(fmt.Sprintf("   %s · %d decisions · earned %s",
			rec.CaseID, rec.StepsTaken, rec.Timestamp.Format("Jan 2, 2006"))))
		b.WriteString("\n\n")
	}

	if end < len(s.records) {
		b.WriteString(metaStyle.Render(fmt.Sprintf("... %d more", len(s.records)-end)))
	}

	return b.String()
}
