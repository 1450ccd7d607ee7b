package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/nextup/internal/cli/formatter"
	"github.com/alexanderramin/nextup/internal/contract"
	"github.com/alexanderramin/nextup/internal/domain"
	"github.com/alexanderramin/nextup/internal/rightnow"
	"github.com/alexanderramin/nextup/internal/service"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

type sessionLoadedMsg struct {
	engine *rightnow.Engine
	resp   *contract.RightNowResponse
}

type sessionErrMsg struct{ err error }

// nowModel is the interactive Right Now loop. It loads the session
// asynchronously, then cycles suggestions on finish/skip until the student
// quits or runs out of tasks.
type nowModel struct {
	app      *App
	req      contract.RightNowRequest
	spin     spinner.Model
	loading  bool
	engine   *rightnow.Engine
	current  *domain.Task
	warnings []string
	err      error
	finished int
	quitting bool
}

func newNowModel(app *App, req contract.RightNowRequest) nowModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = formatter.StylePurple
	return nowModel{app: app, req: req, spin: sp, loading: true}
}

func (m nowModel) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.loadSession())
}

func (m nowModel) loadSession() tea.Cmd {
	app, req := m.app, m.req
	return func() tea.Msg {
		engine, resp, err := app.RightNow.NewSession(context.Background(), req)
		if err != nil {
			return sessionErrMsg{err: err}
		}
		return sessionLoadedMsg{engine: engine, resp: resp}
	}
}

func (m nowModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionLoadedMsg:
		m.loading = false
		m.engine = msg.engine
		m.warnings = msg.resp.Warnings
		if msg.resp.Suggestion != nil {
			task := msg.resp.Suggestion.Task
			m.current = &task
		}
		return m, nil

	case sessionErrMsg:
		m.loading = false
		m.err = msg.err
		m.quitting = true
		return m, tea.Quit

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m nowModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}
	if m.loading || m.engine == nil {
		return m, nil
	}

	switch key {
	case "f":
		if m.current != nil {
			m.finished++
			m.current = m.engine.Finish()
		}
	case "s":
		if m.current != nil {
			m.current = m.engine.Skip()
		}
	case "1", "2", "3", "4", "5":
		level, _ := strconv.Atoi(key)
		m.engine.SetEnergy(level)
		// Rescore under the new energy level.
		m.current = m.engine.Prompt()
	}
	return m, nil
}

func (m nowModel) View() string {
	if m.quitting {
		if m.err != nil {
			out, rerr := renderedError(m.err)
			if rerr != nil {
				return formatter.StyleRed.Render("Error: "+rerr.Error()) + "\n"
			}
			return out
		}
		return formatter.Dim(fmt.Sprintf("Finished %d task(s) this session.", m.finished)) + "\n"
	}

	if m.loading {
		return fmt.Sprintf("\n  %s %s\n", m.spin.View(), formatter.Dim("Building your planner..."))
	}

	var b strings.Builder
	if m.current == nil {
		b.WriteString(formatter.Dim("Nothing left to do. Enjoy the break."))
		b.WriteString("\n")
	} else {
		suggestion := service.SuggestionFor(m.engine, m.current)
		b.WriteString(formatter.FormatSuggestion(suggestion, time.Now()))
		b.WriteString("\n")
		b.WriteString(formatter.Dim(fmt.Sprintf("Energy %d/5", m.engine.Energy())) + "\n")
	}

	for _, w := range m.warnings {
		b.WriteString(formatter.StyleYellow.Render("  WARNING: "+w) + "\n")
	}

	footer := formatter.Dim("[f] finish  [s] skip  [1-5] energy  [q] quit")
	return formatter.RenderBox("Right now", b.String()+"\n"+footer) + "\n"
}
