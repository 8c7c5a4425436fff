//go:build unit

package entities_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/profilereport/internal/domain/entities"
)

//nolint:tparallel // some subtests use t.Setenv which is incompatible with t.Parallel on parent
func TestResolveToken(t *testing.T) {
	t.Run("should return empty string for empty input", func(t *testing.T) {
		t.Parallel()

		// when
		result := entities.ResolveToken("")

		// then
		assert.Empty(t, result)
	})

	t.Run("should return inline token unchanged", func(t *testing.T) {
		t.Parallel()

		// when
		result := entities.ResolveToken("ghp_abc123xyz")

		// then
		assert.Equal(t, "ghp_abc123xyz", result)
	})

	t.Run("should expand environment variable reference", func(t *testing.T) {
		// NOTE: cannot use t.Parallel() with t.Setenv()

		// given
		t.Setenv("TEST_PROFILE_REPORT_TOKEN", "my-secret-token")

		// when
		result := entities.ResolveToken("${TEST_PROFILE_REPORT_TOKEN}")

		// then
		assert.Equal(t, "my-secret-token", result)
	})

	t.Run("should read the token from a file path", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "token")
		require.NoError(t, os.WriteFile(path, []byte("file-token\n"), 0o600))

		// when
		result := entities.ResolveToken(path)

		// then
		assert.Equal(t, "file-token", result)
	})
}

func TestNewSettings(t *testing.T) {
	t.Parallel()

	t.Run("should fill unset keys with defaults", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "profilereport.yaml")
		require.NoError(t, os.WriteFile(path, []byte("output: out.pdf\n"), 0o600))

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, entities.DefaultAPIURL, settings.APIURL)
		assert.Equal(t, "out.pdf", settings.Output)
		assert.Equal(t, entities.DefaultListen, settings.Listen)
		assert.Empty(t, settings.Token)
	})

	t.Run("should add a trailing slash to the API URL", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "profilereport.yaml")
		require.NoError(t, os.WriteFile(path, []byte("api_url: https://ghe.example.com/api/v3\n"), 0o600))

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.NoError(t, err)
		assert.Equal(t, "https://ghe.example.com/api/v3/", settings.APIURL)
	})

	t.Run("should report every invalid key at once", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "profilereport.yaml")
		content := "api_url: not-a-url\noutput: \"\"\nlisten: \"\"\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		// when
		settings, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
		assert.Nil(t, settings)
		assert.Contains(t, err.Error(), "api_url")
		assert.Contains(t, err.Error(), "output must not be empty")
		assert.Contains(t, err.Error(), "listen must not be empty")
	})

	t.Run("should fail on a missing file", func(t *testing.T) {
		t.Parallel()

		// when
		_, err := entities.NewSettings(filepath.Join(t.TempDir(), "missing.yaml"))

		// then
		require.Error(t, err)
	})

	t.Run("should fail on malformed YAML", func(t *testing.T) {
		t.Parallel()

		// given
		path := filepath.Join(t.TempDir(), "profilereport.yaml")
		require.NoError(t, os.WriteFile(path, []byte("output: [unterminated\n"), 0o600))

		// when
		_, err := entities.NewSettings(path)

		// then
		require.Error(t, err)
	})
}

func TestErrorKind(t *testing.T) {
	t.Parallel()

	t.Run("should name wrapped domain errors", func(t *testing.T) {
		t.Parallel()

		// then
		assert.Equal(t, "extraction", entities.ErrorKind(entities.ErrEmptyIdentifier))
		assert.Equal(t, "transport", entities.ErrorKind(wrap(entities.ErrTransport)))
		assert.Equal(t, "shape", entities.ErrorKind(wrap(entities.ErrShape)))
		assert.Equal(t, "internal", entities.ErrorKind(os.ErrClosed))
		assert.Empty(t, entities.ErrorKind(nil))
	})
}

func wrap(err error) error {
	return fmt.Errorf("wrapped: %w", err)
}
