package entities

import (
	"fmt"
	"strings"
)

const (
	// UnknownLanguage groups repositories without a detected language.
	UnknownLanguage = "Unknown"

	NoTechStackInformation = "No tech stack information available."
	NoImpactInformation    = "No repository impact information available."
)

// TechStackSummary counts repositories per language. Lines keep the order in
// which each language was first seen, not an alphabetical one.
func TechStackSummary(artifacts []ArtifactSummary) string {
	if len(artifacts) == 0 {
		return NoTechStackInformation
	}

	var order []string
	counts := make(map[string]int)
	for _, artifact := range artifacts {
		language := artifact.LanguageOrUnknown()
		if _, seen := counts[language]; !seen {
			order = append(order, language)
		}
		counts[language]++
	}

	lines := make([]string, 0, len(order))
	for _, language := range order {
		lines = append(lines, fmt.Sprintf("%s: %d repo(s)", language, counts[language]))
	}
	return strings.Join(lines, "\n")
}

// ExperienceSummary reports how many repositories the account owns.
func ExperienceSummary(artifacts []ArtifactSummary) string {
	return fmt.Sprintf("Number of repositories: %d", len(artifacts))
}

// ImpactSummary lists stars and forks per repository in input order.
func ImpactSummary(artifacts []ArtifactSummary) string {
	if len(artifacts) == 0 {
		return NoImpactInformation
	}

	lines := make([]string, 0, len(artifacts))
	for _, artifact := range artifacts {
		lines = append(lines, fmt.Sprintf("%s: %d stars, %d forks", artifact.Name, artifact.Stars, artifact.Forks))
	}
	return strings.Join(lines, "\n")
}
