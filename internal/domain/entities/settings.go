package entities

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"time"

	logger "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

const (
	DefaultHost          = "git.uwaterloo.ca"
	DefaultBranch        = "main"
	DefaultSettleDelay   = 10 * time.Second
	AuthBearer           = "bearer"
	AuthPrivateToken     = "private-token"
	BackoffExponential   = "exponential"
	BackoffLinearJitter  = "linear-jitter"
	defaultReadyAttempts = 5
	defaultReadyDelay    = time.Second
	defaultHTTPRetryMax  = 3
)

// Settings tunes how a provisioning run talks to the platform.
type Settings struct {
	Host          string            `yaml:"host"`
	DefaultBranch string            `yaml:"default_branch"`
	Auth          string            `yaml:"auth"`
	TokenFile     string            `yaml:"token_file"`
	SettleDelay   *time.Duration    `yaml:"settle_delay"`
	Readiness     ReadinessSettings `yaml:"readiness"`
	HTTP          HTTPSettings      `yaml:"http"`
	SkipExisting  *bool             `yaml:"skip_existing"`
	CheckTemplate *bool             `yaml:"check_template"`
}

// ReadinessSettings bounds the poll for the new project's default branch.
type ReadinessSettings struct {
	MaxAttempts  int           `yaml:"max_attempts"`
	InitialDelay time.Duration `yaml:"initial_delay"`
}

// HTTPSettings configures transport-level retries of the API client.
type HTTPSettings struct {
	RetryMax int    `yaml:"retry_max"`
	Backoff  string `yaml:"backoff"`
}

// envVarPattern matches ${VAR_NAME} placeholders.
var envVarPattern = regexp.MustCompile(`\$\{([^}]+)}`)

// NewDefaultSettings returns the settings used when no config file is present.
func NewDefaultSettings() *Settings {
	settings := &Settings{}
	settings.applyDefaults()
	return settings
}

// NewSettings reads and validates a settings file, filling unset values with defaults.
func NewSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %q: %w", path, err)
	}

	var settings Settings
	if unmarshalErr := yaml.Unmarshal(data, &settings); unmarshalErr != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", unmarshalErr)
	}

	settings.TokenFile = expandEnv(settings.TokenFile)
	settings.applyDefaults()

	if validateErr := settings.Validate(); validateErr != nil {
		return nil, validateErr
	}
	return &settings, nil
}

// FindConfigFile searches for a configuration file in standard locations.
func FindConfigFile() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = ""
	}

	locations := []string{".", ".config", "configs"}
	if homeDir != "" {
		locations = append(locations, homeDir, filepath.Join(homeDir, ".config"))
	}

	patterns := []string{
		".classrepos.yaml",
		".classrepos.yml",
		"classrepos.yaml",
		"classrepos.yml",
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

// ShouldSkipExisting reports whether existing projects are looked up before creation.
func (s *Settings) ShouldSkipExisting() bool { return s.SkipExisting == nil || *s.SkipExisting }

// Settle returns the pause after project creation. An explicit zero disables it.
func (s *Settings) Settle() time.Duration {
	if s.SettleDelay == nil {
		return DefaultSettleDelay
	}
	return *s.SettleDelay
}

// ShouldCheckTemplate reports whether the template is probed before the batch starts.
func (s *Settings) ShouldCheckTemplate() bool { return s.CheckTemplate == nil || *s.CheckTemplate }

// Validate checks for unsupported values.
func (s *Settings) Validate() error {
	if s.Host == "" {
		return errors.New("host is required")
	}
	if s.DefaultBranch == "" {
		return errors.New("default_branch is required")
	}
	if s.Auth != AuthBearer && s.Auth != AuthPrivateToken {
		return fmt.Errorf("auth must be %q or %q, got %q", AuthBearer, AuthPrivateToken, s.Auth)
	}
	if s.HTTP.Backoff != BackoffExponential && s.HTTP.Backoff != BackoffLinearJitter {
		return fmt.Errorf(
			"http.backoff must be %q or %q, got %q",
			BackoffExponential, BackoffLinearJitter, s.HTTP.Backoff,
		)
	}
	if s.Settle() < 0 {
		return errors.New("settle_delay must not be negative")
	}
	if s.Readiness.MaxAttempts < 1 {
		return errors.New("readiness.max_attempts must be at least 1")
	}
	return nil
}

func (s *Settings) applyDefaults() {
	if s.Host == "" {
		s.Host = DefaultHost
	}
	if s.DefaultBranch == "" {
		s.DefaultBranch = DefaultBranch
	}
	if s.Auth == "" {
		s.Auth = AuthBearer
	}
	if s.SettleDelay == nil {
		settle := DefaultSettleDelay
		s.SettleDelay = &settle
	}
	if s.Readiness.MaxAttempts == 0 {
		s.Readiness.MaxAttempts = defaultReadyAttempts
	}
	if s.Readiness.InitialDelay == 0 {
		s.Readiness.InitialDelay = defaultReadyDelay
	}
	if s.HTTP.RetryMax == 0 {
		s.HTTP.RetryMax = defaultHTTPRetryMax
	}
	if s.HTTP.Backoff == "" {
		s.HTTP.Backoff = BackoffExponential
	}
}

// expandEnv replaces ${VAR} references with their environment values.
func expandEnv(raw string) string {
	return envVarPattern.ReplaceAllStringFunc(raw, func(match string) string {
		varName := envVarPattern.FindStringSubmatch(match)[1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		logger.Warnf("Environment variable %q is not set", varName)
		return ""
	})
}
