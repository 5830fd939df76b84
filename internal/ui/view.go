package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

type styledLine struct {
	text  string
	style *lipgloss.Style
	raw   bool // text is already styled; skip style wrapping
}

// View implements tea.Model.
func (m *Model) View() string {
	width := m.contentWidth()
	lines := make([]styledLine, 0, 16)
	lines = append(lines,
		styledLine{text: titleText(m.search.Query()), style: m.styles.Title},
		styledLine{text: m.input.View(), raw: true},
		styledLine{text: strings.Repeat("─", width), style: m.styles.Rule},
	)
	for _, line := range strings.Split(m.resultsView(), "\n") {
		lines = append(lines, styledLine{text: line, raw: true})
	}
	lines = append(lines, m.statusLine())
	if m.showFooter {
		lines = append(lines, styledLine{text: m.help.View(m.keys), raw: true})
	}
	lines = applyWidth(lines, m.width)
	return renderLines(lines)
}

func (m *Model) resultsView() string {
	if m.bodyHeight() == 0 {
		return bodyText(m.search.State(), m.styles, m.contentWidth())
	}
	return m.results.View()
}

func (m *Model) statusLine() styledLine {
	if m.search.Loading() {
		text := m.spinner.View() + " " + m.styles.Loading.Render(loadingText(m.search.Query()))
		return styledLine{text: text, raw: true}
	}
	if info := m.currentInfo(); info != "" {
		return styledLine{text: info, style: m.styles.Info}
	}
	return styledLine{}
}

func applyWidth(lines []styledLine, width int) []styledLine {
	if width <= 0 {
		return lines
	}
	result := make([]styledLine, len(lines))
	for i, line := range lines {
		result[i] = styledLine{text: truncateText(line.text, width), style: line.style, raw: line.raw}
	}
	return result
}

func renderLines(lines []styledLine) string {
	out := make([]string, len(lines))
	for i, line := range lines {
		text := line.text
		if !line.raw && line.style != nil {
			text = line.style.Render(text)
		}
		out[i] = text
	}
	return strings.Join(out, "\n")
}

// truncateText fits text into width terminal cells, ending with an ellipsis
// when anything was cut. ANSI sequences are preserved.
func truncateText(text string, width int) string {
	if width <= 0 || lipgloss.Width(text) <= width {
		return text
	}
	if width == 1 {
		return truncate.String(text, 1)
	}
	return truncate.StringWithTail(text, uint(width), "…")
}
