//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations, no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"

	"github.com/rios0rios0/profilereport/internal/domain/entities"
	"github.com/rios0rios0/profilereport/internal/domain/repositories"
)

// SpyProfileRepository implements repositories.ProfileRepository as a configurable spy.
type SpyProfileRepository struct {
	// --- GetAccount ---
	Account       *entities.AccountProfile
	GetAccountErr error
	// spy: identifiers requested
	AccountCalls []string

	// --- ListArtifacts ---
	Artifacts        []entities.ArtifactSummary
	ListArtifactsErr error
	// spy: identifiers requested
	ArtifactCalls []string
}

var _ repositories.ProfileRepository = (*SpyProfileRepository)(nil)

func (p *SpyProfileRepository) GetAccount(
	_ context.Context, identifier string,
) (*entities.AccountProfile, error) {
	p.AccountCalls = append(p.AccountCalls, identifier)
	return p.Account, p.GetAccountErr
}

func (p *SpyProfileRepository) ListArtifacts(
	_ context.Context, identifier string,
) ([]entities.ArtifactSummary, error) {
	p.ArtifactCalls = append(p.ArtifactCalls, identifier)
	return p.Artifacts, p.ListArtifactsErr
}

// Factory returns a ProfileRepositoryFactory that always hands out this spy
// and records the arguments it was called with.
func (p *SpyProfileRepository) Factory(calls *[]string) repositories.ProfileRepositoryFactory {
	return func(apiURL, token string) (repositories.ProfileRepository, error) {
		if calls != nil {
			*calls = append(*calls, apiURL+"|"+token)
		}
		return p, nil
	}
}
