package controllers

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rios0rios0/profilereport/internal/domain/entities"
)

//nolint:gochecknoglobals // shared terminal styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#10B981"))

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#EF4444"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))
)

// generationFailedMessage is the only failure text shown to users; the
// failure kind is only written to the log.
const generationFailedMessage = "Error generating report"

// RenderResult formats the outcome of a run and the repositories it saw.
func RenderResult(result entities.ReportResult, location string) string {
	var sb strings.Builder

	if !result.Generated {
		sb.WriteString(errorStyle.Render("✗ " + generationFailedMessage))
		sb.WriteString("\n")
		return sb.String()
	}

	sb.WriteString(successStyle.Render("✓ Report generated: " + location))
	sb.WriteString("\n\n")
	sb.WriteString(titleStyle.Render(fmt.Sprintf("Repositories of %s (%d)", result.Identifier, len(result.Artifacts))))
	sb.WriteString("\n")

	for _, artifact := range result.Artifacts {
		sb.WriteString(fmt.Sprintf("  • %s ", artifact.Name))
		sb.WriteString(mutedStyle.Render(fmt.Sprintf("[%s] %d stars, %d forks",
			artifact.LanguageOrUnknown(), artifact.Stars, artifact.Forks)))
		sb.WriteString("\n")
	}

	return sb.String()
}
