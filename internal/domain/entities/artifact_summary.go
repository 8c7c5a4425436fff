package entities

// ArtifactSummary is one repository owned by the account, kept in API order.
type ArtifactSummary struct {
	Name     string
	Language *string // nil when GitHub could not detect a language
	Stars    int
	Forks    int
}

// LanguageOrUnknown returns the language tag, or UnknownLanguage when it is missing.
func (a ArtifactSummary) LanguageOrUnknown() string {
	if a.Language == nil || *a.Language == "" {
		return UnknownLanguage
	}
	return *a.Language
}
