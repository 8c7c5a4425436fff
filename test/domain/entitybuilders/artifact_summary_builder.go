//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/profilereport/internal/domain/entities"
)

// ArtifactSummaryBuilder helps create test repositories with a fluent interface.
type ArtifactSummaryBuilder struct {
	*testkit.BaseBuilder
	name     string
	language *string
	stars    int
	forks    int
}

// NewArtifactSummaryBuilder creates a new artifact builder with sensible defaults.
func NewArtifactSummaryBuilder() *ArtifactSummaryBuilder {
	language := "Go"
	return &ArtifactSummaryBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		name:        "test-repo",
		language:    &language,
	}
}

// WithName sets the repository name.
func (b *ArtifactSummaryBuilder) WithName(name string) *ArtifactSummaryBuilder {
	b.name = name
	return b
}

// WithLanguage sets the language tag.
func (b *ArtifactSummaryBuilder) WithLanguage(language string) *ArtifactSummaryBuilder {
	b.language = &language
	return b
}

// WithoutLanguage clears the language tag.
func (b *ArtifactSummaryBuilder) WithoutLanguage() *ArtifactSummaryBuilder {
	b.language = nil
	return b
}

// WithStars sets the stargazers count.
func (b *ArtifactSummaryBuilder) WithStars(stars int) *ArtifactSummaryBuilder {
	b.stars = stars
	return b
}

// WithForks sets the forks count.
func (b *ArtifactSummaryBuilder) WithForks(forks int) *ArtifactSummaryBuilder {
	b.forks = forks
	return b
}

// Build creates the artifact (satisfies testkit.Builder interface).
func (b *ArtifactSummaryBuilder) Build() interface{} {
	return b.BuildArtifactSummary()
}

// BuildArtifactSummary creates the artifact with a concrete return type.
func (b *ArtifactSummaryBuilder) BuildArtifactSummary() entities.ArtifactSummary {
	var language *string
	if b.language != nil {
		value := *b.language
		language = &value
	}
	return entities.ArtifactSummary{
		Name:     b.name,
		Language: language,
		Stars:    b.stars,
		Forks:    b.forks,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *ArtifactSummaryBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	language := "Go"
	b.name = "test-repo"
	b.language = &language
	b.stars = 0
	b.forks = 0
	return b
}

// Clone creates a deep copy of the ArtifactSummaryBuilder.
func (b *ArtifactSummaryBuilder) Clone() testkit.Builder {
	clone := &ArtifactSummaryBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		name:        b.name,
		stars:       b.stars,
		forks:       b.forks,
	}
	if b.language != nil {
		language := *b.language
		clone.language = &language
	}
	return clone
}
