package display

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/lox/pig/internal/game"
	"github.com/muesli/termenv"
)

// Console narrates game events to a terminal. It is a game.EventSubscriber.
type Console struct {
	w         io.Writer
	renderer  *lipgloss.Renderer
	styles    Styles
	formatter *EventFormatter
}

// ConsoleOption configures a Console
type ConsoleOption func(*Console)

// WithColor forces plain ASCII output when enabled is false.
func WithColor(enabled bool) ConsoleOption {
	return func(c *Console) {
		if !enabled {
			c.renderer.SetColorProfile(termenv.Ascii)
		}
	}
}

// WithFormattingOptions overrides the default formatting options
func WithFormattingOptions(opts FormattingOptions) ConsoleOption {
	return func(c *Console) { c.formatter = NewEventFormatter(opts) }
}

// NewConsole creates a console writing to w. The color profile is detected
// from w unless WithColor(false) is given.
func NewConsole(w io.Writer, opts ...ConsoleOption) *Console {
	c := &Console{
		w:         w,
		renderer:  lipgloss.NewRenderer(w),
		formatter: NewEventFormatter(FormattingOptions{ShowTimeRemaining: true}),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.styles = NewStyles(c.renderer)
	return c
}

// Renderer returns the console's renderer so prompts can share its color profile.
func (c *Console) Renderer() *lipgloss.Renderer {
	return c.renderer
}

// OnEvent implements game.EventSubscriber
func (c *Console) OnEvent(event game.GameEvent) {
	line := c.formatter.Format(event)

	switch e := event.(type) {
	case game.GameStartEvent:
		c.println(c.styles.Header.Render(line))
	case game.TurnStartEvent:
		c.println("")
		c.println(c.styles.Turn.Render(line))
	case game.TimeRemainingEvent:
		if line != "" {
			c.println(c.styles.Info.Render(line))
		}
	case game.ProgressEvent:
		c.println(c.styles.Progress.Render(line))
	case game.BustEvent:
		c.println(c.styles.Bust.Render(line))
	case game.HoldEvent:
		c.println(c.styles.Hold.Render(line))
	case game.WinEvent:
		c.println("")
		c.println(c.styles.Win.Render(line))
	case game.InvalidActionEvent, game.TimeExpiredEvent:
		c.println(c.styles.Warning.Render(line))
	case game.GameOverEvent:
		if line != "" {
			c.println("")
			c.println(c.styles.Win.Render(line))
		}
		c.println("")
		c.println(c.styles.Header.Render("LEADERBOARD"))
		c.println(Leaderboard(c.styles, e.Result.Standings))
	}
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.w, s)
}

// Leaderboard renders final standings as a table.
func Leaderboard(styles Styles, standings []game.Standing) string {
	rows := make([][]string, len(standings))
	for i, s := range standings {
		rows[i] = []string{strconv.Itoa(s.Rank), s.Name, strconv.Itoa(s.Score), strconv.Itoa(s.Rolls)}
	}
	return Table(styles, []string{"#", "PLAYER", "SCORE", "ROLLS"}, rows, 1)
}

// Table renders rows under headers. Every column except textCol is right aligned.
func Table(styles Styles, headers []string, rows [][]string, textCol int) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styles.TableBorder).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := styles.TableCell
			if row == table.HeaderRow {
				style = styles.TableHeader
			}
			if col != textCol {
				style = style.Align(lipgloss.Right)
			}
			return style
		})
	return t.String()
}
