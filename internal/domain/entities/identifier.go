package entities

import "strings"

const identifierSeparator = "/"

// ExtractIdentifier returns the account identifier trailing a profile URL.
// Bare logins are returned as-is. Query strings, fragments and trailing
// separators are ignored. Nothing about the identifier itself is validated.
func ExtractIdentifier(input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	if idx := strings.IndexAny(trimmed, "?#"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	trimmed = strings.TrimRight(trimmed, identifierSeparator)
	if trimmed == "" {
		return "", ErrEmptyIdentifier
	}

	segments := strings.Split(trimmed, identifierSeparator)
	return segments[len(segments)-1], nil
}
