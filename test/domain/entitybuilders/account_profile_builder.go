//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/profilereport/internal/domain/entities"
)

// AccountProfileBuilder helps create test accounts with a fluent interface.
type AccountProfileBuilder struct {
	*testkit.BaseBuilder
	login       string
	name        string
	publicRepos *int
	followers   *int
	following   *int
}

// NewAccountProfileBuilder creates a new account builder with every counter set.
func NewAccountProfileBuilder() *AccountProfileBuilder {
	return &AccountProfileBuilder{
		BaseBuilder: testkit.NewBaseBuilder(),
		login:       "octocat",
		name:        "The Octocat",
		publicRepos: intPtr(8),
		followers:   intPtr(100),
		following:   intPtr(9),
	}
}

// WithLogin sets the login.
func (b *AccountProfileBuilder) WithLogin(login string) *AccountProfileBuilder {
	b.login = login
	return b
}

// WithName sets the display name.
func (b *AccountProfileBuilder) WithName(name string) *AccountProfileBuilder {
	b.name = name
	return b
}

// WithoutCounters leaves public repos, followers and following unset.
func (b *AccountProfileBuilder) WithoutCounters() *AccountProfileBuilder {
	b.publicRepos = nil
	b.followers = nil
	b.following = nil
	return b
}

// WithCounters sets public repos, followers and following.
func (b *AccountProfileBuilder) WithCounters(publicRepos, followers, following int) *AccountProfileBuilder {
	b.publicRepos = intPtr(publicRepos)
	b.followers = intPtr(followers)
	b.following = intPtr(following)
	return b
}

// Build creates the account (satisfies testkit.Builder interface).
func (b *AccountProfileBuilder) Build() interface{} {
	return b.BuildAccountProfile()
}

// BuildAccountProfile creates the account with a concrete return type.
func (b *AccountProfileBuilder) BuildAccountProfile() entities.AccountProfile {
	return entities.AccountProfile{
		Login:       b.login,
		Name:        b.name,
		PublicRepos: copyInt(b.publicRepos),
		Followers:   copyInt(b.followers),
		Following:   copyInt(b.following),
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *AccountProfileBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	b.login = "octocat"
	b.name = "The Octocat"
	b.publicRepos = intPtr(8)
	b.followers = intPtr(100)
	b.following = intPtr(9)
	return b
}

// Clone creates a deep copy of the AccountProfileBuilder.
func (b *AccountProfileBuilder) Clone() testkit.Builder {
	return &AccountProfileBuilder{
		BaseBuilder: b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		login:       b.login,
		name:        b.name,
		publicRepos: copyInt(b.publicRepos),
		followers:   copyInt(b.followers),
		following:   copyInt(b.following),
	}
}

func intPtr(value int) *int {
	return &value
}

func copyInt(value *int) *int {
	if value == nil {
		return nil
	}
	return intPtr(*value)
}
