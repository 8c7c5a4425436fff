//go:build unit

package github_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/profilereport/internal/domain/entities"
	"github.com/rios0rios0/profilereport/internal/infrastructure/repositories/github"
)

const (
	octocatBody = `{"login":"octocat","name":"The Octocat","public_repos":8,"followers":100,"following":9}`
	reposBody   = `[
		{"name":"Hello-World","language":"Go","stargazers_count":3,"forks_count":1},
		{"name":"Spoon-Knife","language":null,"stargazers_count":0,"forks_count":0}
	]`
)

// newServer answers /users/{login} and /users/{login}/repos with fixed bodies
// and counts the requests it receives.
func newServer(t *testing.T, status int, userBody, repositoriesBody string, calls *int32) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/users/octocat", func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(calls, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(userBody))
	})
	mux.HandleFunc("/users/octocat/repos", func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(calls, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(repositoriesBody))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestGitHubProfileRepositoryGetAccount(t *testing.T) {
	t.Parallel()

	t.Run("should map the account record", func(t *testing.T) {
		t.Parallel()

		// given
		var calls int32
		server := newServer(t, http.StatusOK, octocatBody, reposBody, &calls)
		repo, err := github.NewGitHubProfileRepository(server.URL, "")
		require.NoError(t, err)

		// when
		account, err := repo.GetAccount(context.Background(), "octocat")

		// then
		require.NoError(t, err)
		assert.Equal(t, "octocat", account.Login)
		assert.Equal(t, "The Octocat", account.Name)
		require.NotNil(t, account.PublicRepos)
		assert.Equal(t, 8, *account.PublicRepos)
		require.NotNil(t, account.Followers)
		assert.Equal(t, 100, *account.Followers)
		require.NotNil(t, account.Following)
		assert.Equal(t, 9, *account.Following)
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})

	t.Run("should leave absent fields unset", func(t *testing.T) {
		t.Parallel()

		// given
		var calls int32
		server := newServer(t, http.StatusOK, `{"login":"octocat"}`, reposBody, &calls)
		repo, err := github.NewGitHubProfileRepository(server.URL, "")
		require.NoError(t, err)

		// when
		account, err := repo.GetAccount(context.Background(), "octocat")

		// then
		require.NoError(t, err)
		assert.Empty(t, account.Name)
		assert.Nil(t, account.PublicRepos)
		assert.Nil(t, account.Followers)
		assert.Nil(t, account.Following)
	})

	t.Run("should report a shape failure when login is missing", func(t *testing.T) {
		t.Parallel()

		// given
		var calls int32
		server := newServer(t, http.StatusOK, `{"message":"Not Found"}`, reposBody, &calls)
		repo, err := github.NewGitHubProfileRepository(server.URL, "")
		require.NoError(t, err)

		// when
		account, err := repo.GetAccount(context.Background(), "octocat")

		// then
		require.ErrorIs(t, err, entities.ErrShape)
		assert.Nil(t, account)
	})

	t.Run("should report a transport failure on a 404 status", func(t *testing.T) {
		t.Parallel()

		// given
		var calls int32
		server := newServer(t, http.StatusNotFound, `{"message":"Not Found"}`, reposBody, &calls)
		repo, err := github.NewGitHubProfileRepository(server.URL, "")
		require.NoError(t, err)

		// when
		account, err := repo.GetAccount(context.Background(), "octocat")

		// then
		require.ErrorIs(t, err, entities.ErrTransport)
		assert.Nil(t, account)
	})

	t.Run("should report a transport failure when the host is unreachable", func(t *testing.T) {
		t.Parallel()

		// given
		server := httptest.NewServer(http.NotFoundHandler())
		url := server.URL
		server.Close()
		repo, err := github.NewGitHubProfileRepository(url, "")
		require.NoError(t, err)

		// when
		_, err = repo.GetAccount(context.Background(), "octocat")

		// then
		require.ErrorIs(t, err, entities.ErrTransport)
	})

	t.Run("should send the token when one is configured", func(t *testing.T) {
		t.Parallel()

		// given
		var authorization atomic.Value
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authorization.Store(r.Header.Get("Authorization"))
			_, _ = w.Write([]byte(octocatBody))
		}))
		t.Cleanup(server.Close)
		repo, err := github.NewGitHubProfileRepository(server.URL, "ghp_secret")
		require.NoError(t, err)

		// when
		_, err = repo.GetAccount(context.Background(), "octocat")

		// then
		require.NoError(t, err)
		assert.Equal(t, "Bearer ghp_secret", authorization.Load())
	})
}

func TestGitHubProfileRepositoryListArtifacts(t *testing.T) {
	t.Parallel()

	t.Run("should keep repositories in API order", func(t *testing.T) {
		t.Parallel()

		// given
		var calls int32
		server := newServer(t, http.StatusOK, octocatBody, reposBody, &calls)
		repo, err := github.NewGitHubProfileRepository(server.URL, "")
		require.NoError(t, err)

		// when
		artifacts, err := repo.ListArtifacts(context.Background(), "octocat")

		// then
		require.NoError(t, err)
		require.Len(t, artifacts, 2)
		assert.Equal(t, "Hello-World", artifacts[0].Name)
		require.NotNil(t, artifacts[0].Language)
		assert.Equal(t, "Go", *artifacts[0].Language)
		assert.Equal(t, 3, artifacts[0].Stars)
		assert.Equal(t, 1, artifacts[0].Forks)
		assert.Equal(t, "Spoon-Knife", artifacts[1].Name)
		assert.Nil(t, artifacts[1].Language)
		assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	})

	t.Run("should return an empty list for an account without repositories", func(t *testing.T) {
		t.Parallel()

		// given
		var calls int32
		server := newServer(t, http.StatusOK, octocatBody, `[]`, &calls)
		repo, err := github.NewGitHubProfileRepository(server.URL, "")
		require.NoError(t, err)

		// when
		artifacts, err := repo.ListArtifacts(context.Background(), "octocat")

		// then
		require.NoError(t, err)
		assert.NotNil(t, artifacts)
		assert.Empty(t, artifacts)
	})

	t.Run("should report a shape failure when the body is not a list", func(t *testing.T) {
		t.Parallel()

		// given
		var calls int32
		server := newServer(t, http.StatusOK, octocatBody, `{"message":"Not Found"}`, &calls)
		repo, err := github.NewGitHubProfileRepository(server.URL, "")
		require.NoError(t, err)

		// when
		artifacts, err := repo.ListArtifacts(context.Background(), "octocat")

		// then
		require.ErrorIs(t, err, entities.ErrShape)
		assert.Nil(t, artifacts)
	})

	t.Run("should report a shape failure when the body is null", func(t *testing.T) {
		t.Parallel()

		// given
		var calls int32
		server := newServer(t, http.StatusOK, octocatBody, `null`, &calls)
		repo, err := github.NewGitHubProfileRepository(server.URL, "")
		require.NoError(t, err)

		// when
		artifacts, err := repo.ListArtifacts(context.Background(), "octocat")

		// then
		require.ErrorIs(t, err, entities.ErrShape)
		assert.Nil(t, artifacts)
	})
}
