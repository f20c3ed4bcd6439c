package viz

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ffffff")).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("#444466"))

	// Field name column
	KeyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888899"))

	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ccff")).
			Bold(true)

	// Values that differ from the schema default
	OverrideStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff00ff"))

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666688"))

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ff4444"))
)

// Row is one line of a parameter table.
type Row struct {
	Name    string
	Value   float64
	Default float64
}

// FormatValue prints v the same way the document encoder does.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// ParamTable renders rows as aligned name / value / default columns.
func ParamTable(title string, rows []Row) string {
	nameW, valW := len("field"), len("value")
	for _, r := range rows {
		nameW = max(nameW, len(r.Name))
		valW = max(valW, len(FormatValue(r.Value)))
	}

	var b strings.Builder
	header := padRight("field", nameW) + "  " + padRight("value", valW) + "  default"
	if title != "" {
		b.WriteString(HeaderStyle.Render(title))
		b.WriteString("\n")
	}
	b.WriteString(Subtle.Render(header))
	b.WriteString("\n")

	for _, r := range rows {
		val := padRight(FormatValue(r.Value), valW)
		style := ValueStyle
		if r.Value != r.Default {
			style = OverrideStyle
		}
		b.WriteString(KeyStyle.Render(padRight(r.Name, nameW)))
		b.WriteString("  ")
		b.WriteString(style.Render(val))
		b.WriteString("  ")
		b.WriteString(Subtle.Render(FormatValue(r.Default)))
		b.WriteString("\n")
	}
	return b.String()
}

func padRight(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}
