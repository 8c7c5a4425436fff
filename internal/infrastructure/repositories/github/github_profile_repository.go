package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"

	gh "github.com/google/go-github/v66/github"
	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/profilereport/internal/domain/entities"
	"github.com/rios0rios0/profilereport/internal/domain/repositories"
)

// GitHubProfileRepository implements repositories.ProfileRepository on the GitHub REST API.
type GitHubProfileRepository struct {
	client *gh.Client
}

// NewGitHubProfileRepository creates a client for apiURL. An empty token keeps
// the requests anonymous.
func NewGitHubProfileRepository(apiURL, token string) (repositories.ProfileRepository, error) {
	client := gh.NewClient(nil)
	if token != "" {
		client = client.WithAuthToken(token)
	}

	if apiURL != "" {
		if !strings.HasSuffix(apiURL, "/") {
			apiURL += "/"
		}
		baseURL, err := url.Parse(apiURL)
		if err != nil {
			return nil, fmt.Errorf("invalid API URL %q: %w", apiURL, err)
		}
		client.BaseURL = baseURL
	}

	return &GitHubProfileRepository{client: client}, nil
}

// GetAccount fetches GET /users/{identifier}.
func (p *GitHubProfileRepository) GetAccount(
	ctx context.Context,
	identifier string,
) (*entities.AccountProfile, error) {
	user, _, err := p.client.Users.Get(ctx, identifier)
	if err != nil {
		return nil, classifyError(err)
	}
	if user.GetLogin() == "" {
		return nil, fmt.Errorf("%w: account response has no login", entities.ErrShape)
	}

	return &entities.AccountProfile{
		Login:       user.GetLogin(),
		Name:        user.GetName(),
		PublicRepos: user.PublicRepos,
		Followers:   user.Followers,
		Following:   user.Following,
	}, nil
}

// ListArtifacts fetches GET /users/{identifier}/repos as a single page.
func (p *GitHubProfileRepository) ListArtifacts(
	ctx context.Context,
	identifier string,
) ([]entities.ArtifactSummary, error) {
	repos, _, err := p.client.Repositories.ListByUser(ctx, identifier, nil)
	if err != nil {
		return nil, classifyError(err)
	}
	if repos == nil {
		return nil, fmt.Errorf("%w: repository response is not a list", entities.ErrShape)
	}

	artifacts := make([]entities.ArtifactSummary, 0, len(repos))
	for i, r := range repos {
		if r == nil {
			return nil, fmt.Errorf("%w: repository entry %d is null", entities.ErrShape, i)
		}
		artifacts = append(artifacts, entities.ArtifactSummary{
			Name:     r.GetName(),
			Language: r.Language,
			Stars:    r.GetStargazersCount(),
			Forks:    r.GetForksCount(),
		})
	}

	return artifacts, nil
}

// classifyError maps go-github failures onto the domain error kinds.
func classifyError(err error) error {
	var (
		syntaxErr   *json.SyntaxError
		typeErr     *json.UnmarshalTypeError
		rateErr     *gh.RateLimitError
		abuseErr    *gh.AbuseRateLimitError
		responseErr *gh.ErrorResponse
	)

	switch {
	case errors.As(err, &syntaxErr), errors.As(err, &typeErr):
		return fmt.Errorf("%w: %w", entities.ErrShape, err)
	case errors.As(err, &rateErr), errors.As(err, &abuseErr):
		logger.Warn("GitHub API rate limit reached")
		return fmt.Errorf("%w: rate limited: %w", entities.ErrTransport, err)
	case errors.As(err, &responseErr) && responseErr.Response != nil:
		return fmt.Errorf("%w: API returned status %d: %w",
			entities.ErrTransport, responseErr.Response.StatusCode, err)
	default:
		return fmt.Errorf("%w: %w", entities.ErrTransport, err)
	}
}
