// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ovumlab/ovumsort/internal/model"
)

var (
	// PrimaryColor is the main theme color (yolk yellow).
	PrimaryColor = lipgloss.Color("#F2C14E")
	// SuccessColor indicates successful operations.
	SuccessColor = lipgloss.Color("#4ECDC4")
	// WarningColor indicates warnings or caution messages.
	WarningColor = lipgloss.Color("#FFE66D")
	// ErrorColor indicates errors or failure messages.
	ErrorColor = lipgloss.Color("#FF6B6B")
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666")
	// MaleColor marks male predictions.
	MaleColor = lipgloss.Color("#6BA8FF")
	// FemaleColor marks female predictions.
	FemaleColor = lipgloss.Color("#FF8FB1")

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// SuccessStyle formats success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// WarningStyle formats warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats errors or failure tallies.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// BoldStyle makes text bold.
	BoldStyle = lipgloss.NewStyle().
			Bold(true)

	// TableHeaderStyle is used for table headers.
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(lipgloss.Color("#333"))

	maleStyle      = lipgloss.NewStyle().Foreground(MaleColor)
	femaleStyle    = lipgloss.NewStyle().Foreground(FemaleColor)
	uncertainStyle = lipgloss.NewStyle().Foreground(SubtleColor)
)

// GenderStyle returns the display style for a predicted gender.
func GenderStyle(gender model.Gender) lipgloss.Style {
	switch gender {
	case model.GenderMale:
		return maleStyle
	case model.GenderFemale:
		return femaleStyle
	default:
		return uncertainStyle
	}
}
