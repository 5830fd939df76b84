package theme

import "github.com/charmbracelet/lipgloss"

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Name         string
	Title        *lipgloss.Style
	Prompt       *lipgloss.Style
	Input        *lipgloss.Style
	Placeholder  *lipgloss.Style
	Loading      *lipgloss.Style
	Spinner      *lipgloss.Style
	Info         *lipgloss.Style
	Error        *lipgloss.Style
	Word         *lipgloss.Style
	Phonetic     *lipgloss.Style
	PartOfSpeech *lipgloss.Style
	Number       *lipgloss.Style
	Definition   *lipgloss.Style
	Example      *lipgloss.Style
	Label        *lipgloss.Style
	Related      *lipgloss.Style
	Source       *lipgloss.Style
	Rule         *lipgloss.Style
	Footer       *lipgloss.Style
}

var darkStyles = Styles{
	Name:         "dark",
	Title:        ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)),
	Prompt:       ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("141")).Bold(true)),
	Input:        ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("255"))),
	Placeholder:  ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("241"))),
	Loading:      ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("141")).Italic(true)),
	Spinner:      ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("141"))),
	Info:         ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("249"))),
	Error:        ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)),
	Word:         ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)),
	Phonetic:     ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("141"))),
	PartOfSpeech: ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true)),
	Number:       ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("141"))),
	Definition:   ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("252"))),
	Example:      ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)),
	Label:        ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("245"))),
	Related:      ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("141"))),
	Source:       ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Underline(true)),
	Rule:         ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("238"))),
	Footer:       ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("241"))),
}

var lightStyles = Styles{
	Name:         "light",
	Title:        ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Bold(true)),
	Prompt:       ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("92")).Bold(true)),
	Input:        ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("235"))),
	Placeholder:  ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("246"))),
	Loading:      ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("92")).Italic(true)),
	Spinner:      ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("92"))),
	Info:         ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))),
	Error:        ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("160")).Bold(true)),
	Word:         ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("235")).Bold(true)),
	Phonetic:     ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("92"))),
	PartOfSpeech: ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("238")).Bold(true)),
	Number:       ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("92"))),
	Definition:   ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("236"))),
	Example:      ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("242")).Italic(true)),
	Label:        ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("242"))),
	Related:      ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("92"))),
	Source:       ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("242")).Underline(true)),
	Rule:         ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("250"))),
	Footer:       ptr(lipgloss.NewStyle().Foreground(lipgloss.Color("244"))),
}

// Dark is the default style set.
func Dark() *Styles {
	return &darkStyles
}

// Light is used when the dark preference is off.
func Light() *Styles {
	return &lightStyles
}

// For picks the style set matching the dark preference.
func For(dark bool) *Styles {
	if dark {
		return Dark()
	}
	return Light()
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
