package sanity

import (
	"fmt"
	"regexp"
	"strings"
)

// DefaultAPIVersion is the dated API version used when none is configured.
const DefaultAPIVersion = "2024-01-01"

var (
	projectIDPattern  = regexp.MustCompile(`^[a-z0-9-]+$`)
	datasetPattern    = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,63}$`)
	apiVersionPattern = regexp.MustCompile(`^(1|X|\d{4}-\d{2}-\d{2})$`)
)

// Config holds the content source identifiers and client tunables.
type Config struct {
	ProjectID  string `env:"SANITY_PROJECT_ID"`
	Dataset    string `env:"SANITY_DATASET"`
	APIVersion string `env:"SANITY_API_VERSION" envDefault:"2024-01-01"`
	UseCDN     bool   `env:"SANITY_USE_CDN" envDefault:"false"`
}

// Configured reports whether the guard accepts this configuration.
func (c Config) Configured() bool {
	return IsConfigured(c.ProjectID, c.Dataset)
}

func (c Config) normalized() Config {
	c.ProjectID = strings.TrimSpace(c.ProjectID)
	c.Dataset = strings.TrimSpace(c.Dataset)
	c.APIVersion = strings.TrimPrefix(strings.TrimSpace(c.APIVersion), "v")
	if c.APIVersion == "" {
		c.APIVersion = DefaultAPIVersion
	}
	return c
}

// validate checks identifier syntax; the guard only rules out placeholders.
func (c Config) validate() error {
	if !c.Configured() {
		return fmt.Errorf("content source is not configured")
	}
	if !projectIDPattern.MatchString(c.ProjectID) {
		return fmt.Errorf("project id %q must contain only a-z, 0-9 and dashes", c.ProjectID)
	}
	if !datasetPattern.MatchString(c.Dataset) {
		return fmt.Errorf("dataset %q must be 1-64 characters of a-z, 0-9, _ and -", c.Dataset)
	}
	if !apiVersionPattern.MatchString(c.APIVersion) {
		return fmt.Errorf("api version %q must be 1, X or a YYYY-MM-DD date", c.APIVersion)
	}
	return nil
}
