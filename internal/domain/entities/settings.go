package entities

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/hashicorp/go-multierror"
	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	DefaultAPIURL = "https://api.github.com/"
	DefaultListen = ":8080"
)

// Settings is the optional configuration file of profilereport.
type Settings struct {
	APIURL string `yaml:"api_url"` // GitHub REST API root
	Token  string `yaml:"token"`   // Inline, ${ENV_VAR}, or file path; empty means anonymous
	Output string `yaml:"output"`  // Where the CLI writes the document
	Listen string `yaml:"listen"`  // Address of the serve mode
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// DefaultSettings returns the settings used when no configuration file exists.
func DefaultSettings() *Settings {
	return &Settings{
		APIURL: DefaultAPIURL,
		Output: ReportFileName,
		Listen: DefaultListen,
	}
}

// NewSettings reads and parses a configuration file, filling unset keys with
// defaults, expanding environment variables and resolving token file paths.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	settings := DefaultSettings()
	if unmarshalErr := yaml.Unmarshal(data, settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.Token = ResolveToken(settings.Token)
	if !strings.HasSuffix(settings.APIURL, "/") {
		settings.APIURL += "/"
	}

	if validateErr := settings.validate(); validateErr != nil {
		return nil, validateErr
	}

	return settings, nil
}

// LoadSettings loads the file at path, or the first file found by
// FindConfigFile when path is empty. Without any file the defaults apply.
func LoadSettings(path string) (*Settings, error) {
	if path != "" {
		return NewSettings(path)
	}

	found, err := FindConfigFile()
	if err != nil {
		logger.Debugf("No config file found, using defaults: %v", err)
		return DefaultSettings(), nil
	}

	logger.Infof("Using config file: %s", found)
	return NewSettings(found)
}

// FindConfigFile searches for a configuration file in standard locations.
// Returns the path to the first file found or an error if none is found.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{
		".",
		".config",
		"configs",
	}
	if homeDir != "" {
		locations = append(
			locations,
			homeDir,
			filepath.Join(homeDir, ".config"),
		)
	}

	patterns := []string{
		".profilereport.yaml",
		".profilereport.yml",
		"profilereport.yaml",
		"profilereport.yml",
	}

	for _, loc := range locations {
		for _, pat := range patterns {
			p := filepath.Join(loc, pat)
			if _, statErr := os.Stat(p); statErr == nil {
				return p, nil
			}
		}
	}

	return "", errors.New("config file not found in default locations")
}

// ResolveToken expands environment variable references (${VAR}) and, if the
// resulting string is a path to an existing file, reads the token from the file.
func ResolveToken(raw string) string {
	if raw == "" {
		return raw
	}

	resolved := envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})

	if resolved == "" {
		return resolved
	}

	if _, statErr := os.Stat(resolved); statErr == nil {
		data, readErr := os.ReadFile(resolved)
		if readErr != nil {
			logger.Warnf("Failed to read token file %q: %v", resolved, readErr)
			return resolved
		}
		logger.Infof("Read token from file %q", resolved)
		return strings.TrimSpace(string(data))
	}

	return resolved
}

// validate reports every invalid key at once.
func (s *Settings) validate() error {
	var result *multierror.Error

	parsed, err := url.Parse(s.APIURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		result = multierror.Append(result, fmt.Errorf("api_url %q must be an absolute URL", s.APIURL))
	}
	if strings.TrimSpace(s.Output) == "" {
		result = multierror.Append(result, errors.New("output must not be empty"))
	}
	if strings.TrimSpace(s.Listen) == "" {
		result = multierror.Append(result, errors.New("listen must not be empty"))
	}

	return result.ErrorOrNil()
}
