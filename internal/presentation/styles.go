package presentation

import "github.com/charmbracelet/lipgloss"

var (
	bannerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	headlineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).Bold(true)
	dangerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	fileStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	dimStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	iconCheck = successStyle.Render("✓")
)
