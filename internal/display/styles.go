package display

import "github.com/charmbracelet/lipgloss"

// Styles holds every style the console and prompts use. Styles are bound to a
// renderer so output written to a pipe or with --no-color stays plain.
type Styles struct {
	Header   lipgloss.Style
	Turn     lipgloss.Style
	Progress lipgloss.Style
	Bust     lipgloss.Style
	Hold     lipgloss.Style
	Win      lipgloss.Style
	Warning  lipgloss.Style
	Info     lipgloss.Style
	Prompt   lipgloss.Style

	TableHeader lipgloss.Style
	TableCell   lipgloss.Style
	TableBorder lipgloss.Style
}

// NewStyles creates the palette for r
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Header: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		Turn: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Progress: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")),
		Bust: r.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Hold: r.NewStyle().
			Foreground(lipgloss.Color("#FFD700")),
		Win: r.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Warning: r.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true),
		Info: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
		Prompt: r.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true),

		TableHeader: r.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true).
			Padding(0, 1),
		TableCell: r.NewStyle().
			Padding(0, 1),
		TableBorder: r.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}
