package console

import (
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	Accent   = lipgloss.Color("#E5A00D")
	DimGray  = lipgloss.Color("#6B7280")
	Green    = lipgloss.Color("#10B981")
	Red      = lipgloss.Color("#EF4444")
	Blue     = lipgloss.Color("#3B82F6")
	OffWhite = lipgloss.Color("#F9FAFB")
)

// Styles are bound to one output so color detection follows that writer:
// plain text when it is not a terminal.
type Styles struct {
	Title   lipgloss.Style
	Dim     lipgloss.Style
	Done    lipgloss.Style
	Pending lipgloss.Style
	Error   lipgloss.Style
	Notice  lipgloss.Style
}

// NewStyles builds the console styles for out.
func NewStyles(out io.Writer) Styles {
	r := lipgloss.NewRenderer(out)
	return Styles{
		Title:   r.NewStyle().Foreground(OffWhite).Bold(true),
		Dim:     r.NewStyle().Foreground(DimGray),
		Done:    r.NewStyle().Foreground(Green),
		Pending: r.NewStyle().Foreground(Accent),
		Error:   r.NewStyle().Foreground(Red),
		Notice:  r.NewStyle().Foreground(Blue).Bold(true),
	}
}

func (s Styles) yesNo(done bool) string {
	if done {
		return s.Done.Render("Yes")
	}
	return s.Pending.Render("No")
}
