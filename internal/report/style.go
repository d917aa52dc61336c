package report

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	noteStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
)

func (r *Reporter) header(s string) string {
	if !r.opts.Styled {
		return s
	}
	return headerStyle.Render(s)
}

func (r *Reporter) note(s string) string {
	if !r.opts.Styled {
		return s
	}
	return noteStyle.Render(s)
}
