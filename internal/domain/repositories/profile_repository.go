package repositories

import (
	"context"

	"github.com/rios0rios0/profilereport/internal/domain/entities"
)

// ProfileRepository reads public account data from a code hosting service.
// Both calls are single, read-only requests: no retries, no pagination.
type ProfileRepository interface {
	// GetAccount fetches the account record. A response without a login is
	// reported as entities.ErrShape.
	GetAccount(ctx context.Context, identifier string) (*entities.AccountProfile, error)

	// ListArtifacts fetches the repositories of the account in API order.
	// A response that is not a list is reported as entities.ErrShape.
	ListArtifacts(ctx context.Context, identifier string) ([]entities.ArtifactSummary, error)
}

// ProfileRepositoryFactory builds a ProfileRepository for an API root and an
// optional auth token.
type ProfileRepositoryFactory func(apiURL, token string) (ProfileRepository, error)
