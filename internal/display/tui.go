package display

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// ErrPromptCancelled is returned when the player quits a TUI prompt.
var ErrPromptCancelled = errors.New("prompt cancelled")

// promptModel is a single-question Bubble Tea model
type promptModel struct {
	title     string
	help      string
	input     textinput.Model
	styles    Styles
	submitted bool
	cancelled bool
}

func newPromptModel(styles Styles, title, help, placeholder string) promptModel {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	ti.CharLimit = 64
	ti.Width = 40
	ti.PromptStyle = styles.Prompt
	ti.Prompt = "> "

	return promptModel{
		title:  title,
		help:   help,
		input:  ti,
		styles: styles,
	}
}

// Init initializes the prompt
func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses
func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.cancelled = true
			return m, tea.Quit
		case tea.KeyEnter:
			m.submitted = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt
func (m promptModel) View() string {
	if m.submitted || m.cancelled {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Turn.Render(m.title),
		m.input.View(),
		m.styles.Info.Render(m.help),
	) + "\n"
}

// Value returns the trimmed answer
func (m promptModel) Value() string {
	return strings.TrimSpace(m.input.Value())
}

// TUIPrompter asks each question with a small inline Bubble Tea program. It
// satisfies game.DecisionSource.
type TUIPrompter struct {
	in     io.Reader
	out    io.Writer
	styles Styles
	logger *log.Logger
}

// NewTUIPrompter creates a prompter bound to a terminal. The console's
// renderer is reused so prompts and narration share a color profile.
func NewTUIPrompter(in io.Reader, out io.Writer, renderer *lipgloss.Renderer, logger *log.Logger) *TUIPrompter {
	return &TUIPrompter{
		in:     in,
		out:    out,
		styles: NewStyles(renderer),
		logger: logger.WithPrefix("tui"),
	}
}

// PromptForAction asks playerName to roll or hold.
func (p *TUIPrompter) PromptForAction(ctx context.Context, playerName string) (string, error) {
	model := newPromptModel(p.styles,
		fmt.Sprintf("%s, roll or hold?", playerName),
		"r/roll to roll the die, h/hold to bank your turn, esc to quit",
		"roll or hold")
	return p.run(ctx, model)
}

// PromptForName asks for the name of the player in seat.
func (p *TUIPrompter) PromptForName(ctx context.Context, seat int) (string, error) {
	model := newPromptModel(p.styles,
		fmt.Sprintf("What is Player %d's name?", seat),
		"enter to confirm, esc to quit",
		fmt.Sprintf("Player %d", seat))
	return p.run(ctx, model)
}

func (p *TUIPrompter) run(ctx context.Context, model promptModel) (string, error) {
	program := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(p.in),
		tea.WithOutput(p.out))

	final, err := program.Run()
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", fmt.Errorf("tui prompt: %w", err)
	}

	result := final.(promptModel)
	if result.cancelled {
		p.logger.Debug("Prompt cancelled")
		return "", ErrPromptCancelled
	}
	return result.Value(), nil
}
