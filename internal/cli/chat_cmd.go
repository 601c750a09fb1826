package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexanderramin/healthbot/internal/bot"
	"github.com/alexanderramin/healthbot/internal/formatter"
)

func newChatCmd(app *App) *cobra.Command {
	var userID int64

	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Talk to the bot from the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.IsInteractive() {
				return runLines(cmd.Context(), app, userID, cmd.InOrStdin(), cmd.OutOrStdout())
			}
			p := tea.NewProgram(newChatModel(cmd.Context(), app, userID), tea.WithContext(cmd.Context()))
			_, err := p.Run()
			return err
		},
	}

	addUserFlag(cmd, &userID)
	return cmd
}

// runLines feeds stdin to the dispatcher one line at a time and prints the
// plain replies.
func runLines(ctx context.Context, app *App, userID int64, in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	for sc.Scan() {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		reply := app.Dispatcher.Handle(ctx, bot.Message{UserID: userID, Text: text})
		fmt.Fprintln(out, reply.Text)
	}
	return sc.Err()
}

// replyMsg carries the dispatcher's answer back into the update loop.
type replyMsg struct {
	reply bot.Reply
}

// chatModel is the bubbletea Model for the terminal chat.
type chatModel struct {
	ctx    context.Context
	app    *App
	userID int64

	input    textinput.Model
	history  viewport.Model
	lines    []string
	waiting  bool
	quitting bool
}

func menuLabels() []string {
	var out []string
	for _, row := range bot.MenuRows() {
		out = append(out, row...)
	}
	return out
}

func chatSuggestions() []string {
	return append(menuLabels(),
		"/start", "/help", "/set_profile", "/log_water", "/log_food", "/log_workout",
		"/check_progress", "/week_progress", "/reset_history", "/seed_week", "/cancel",
	)
}

func newChatModel(ctx context.Context, app *App, userID int64) chatModel {
	ti := textinput.New()
	ti.Focus()
	ti.Prompt = ""
	ti.CharLimit = 200
	ti.ShowSuggestions = true
	ti.SetSuggestions(chatSuggestions())
	ti.KeyMap.NextSuggestion = key.NewBinding(key.WithKeys("ctrl+n"))
	ti.KeyMap.PrevSuggestion = key.NewBinding(key.WithKeys("ctrl+p"))
	ti.Cursor.SetMode(cursor.CursorStatic)

	m := chatModel{
		ctx:     ctx,
		app:     app,
		userID:  userID,
		input:   ti,
		history: viewport.New(80, 20),
	}
	m.appendLines(formatter.Dim("Type /start, or Tab through the menu. Ctrl+C quits."))
	return m
}

func (m chatModel) Init() tea.Cmd {
	return nil
}

func (m chatModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.history.Width = msg.Width
		m.history.Height = max(msg.Height-2, 1)
		m.input.Width = msg.Width - 4
		m.history.GotoBottom()
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m.submit()
		case tea.KeyPgUp, tea.KeyPgDown:
			var cmd tea.Cmd
			m.history, cmd = m.history.Update(msg)
			return m, cmd
		}

	case replyMsg:
		m.waiting = false
		m.appendLines(msg.reply.Text)
		if msg.reply.ShowMenu {
			m.appendLines(formatter.Dim(strings.Join(menuLabels(), " · ")))
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m chatModel) submit() (tea.Model, tea.Cmd) {
	if m.waiting {
		return m, nil
	}
	text := strings.TrimSpace(m.input.Value())
	m.input.Reset()
	if text == "" {
		return m, nil
	}
	m.waiting = true
	m.appendLines(formatter.StyleHeader.Render("you") + formatter.Dim(" ❯ ") + text)

	ctx, app, userID := m.ctx, m.app, m.userID
	return m, func() tea.Msg {
		return replyMsg{reply: app.Dispatcher.Handle(ctx, bot.Message{UserID: userID, Text: text})}
	}
}

func (m *chatModel) appendLines(text string) {
	m.lines = append(m.lines, text)
	m.history.SetContent(strings.Join(m.lines, "\n"))
	m.history.GotoBottom()
}

func (m chatModel) View() string {
	if m.quitting {
		return formatter.Dim("Goodbye.") + "\n"
	}
	prompt := formatter.StyleGreen.Render("healthbot") + " " + formatter.Dim("❯") + " "
	if m.waiting {
		prompt = formatter.Dim("… ")
	}
	return m.history.View() + "\n" + prompt + m.input.View()
}
