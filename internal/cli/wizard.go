package cli

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/nextup/internal/cli/formatter"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// nextupHuhTheme returns a custom huh theme using the existing Gruvbox palette.
func nextupHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// wizardConnect creates a huh form that collects the NUSMods share link and,
// optionally, a Canvas token.
func wizardConnect(link, token *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("NUSMods share link").
				Description("Share/Sync on nusmods.com gives you a shortlink; paste the expanded URL.").
				Placeholder("https://nusmods.com/timetable/sem-1/share?...").
				Value(link).
				Validate(validateShareLink),
			huh.NewInput().
				Title("Canvas access token (optional)").
				Description("Canvas > Account > Settings > New access token. Leave empty to skip assignments.").
				EchoMode(huh.EchoModePassword).
				Value(token),
		),
	).WithTheme(nextupHuhTheme()).WithShowHelp(false)
}

func validateShareLink(s string) error {
	if s == "" {
		return fmt.Errorf("share link is required")
	}
	if !strings.Contains(s, "?") {
		return fmt.Errorf("link carries no module selections")
	}
	return nil
}
