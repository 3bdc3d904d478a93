//go:build integration || unit || test

package entitybuilders //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"time"

	testkit "github.com/rios0rios0/testkit/pkg/test"

	"github.com/rios0rios0/classrepos/internal/domain/entities"
)

// SettingsBuilder helps create run settings that do not wait in tests.
type SettingsBuilder struct {
	*testkit.BaseBuilder
	host          string
	defaultBranch string
	settleDelay   time.Duration
	readyAttempts int
	skipExisting  bool
	checkTemplate bool
}

// NewSettingsBuilder creates a settings builder with instant readiness and no template check.
func NewSettingsBuilder() *SettingsBuilder {
	return &SettingsBuilder{
		BaseBuilder:   testkit.NewBaseBuilder(),
		host:          "git.example.com",
		defaultBranch: "main",
		settleDelay:   0,
		readyAttempts: 1,
		skipExisting:  true,
		checkTemplate: false,
	}
}

// WithHost sets the platform host.
func (b *SettingsBuilder) WithHost(host string) *SettingsBuilder {
	b.host = host
	return b
}

// WithDefaultBranch sets the default branch.
func (b *SettingsBuilder) WithDefaultBranch(branch string) *SettingsBuilder {
	b.defaultBranch = branch
	return b
}

// WithSettleDelay sets the fixed pause after creation.
func (b *SettingsBuilder) WithSettleDelay(delay time.Duration) *SettingsBuilder {
	b.settleDelay = delay
	return b
}

// WithReadyAttempts sets how many times the default branch is polled.
func (b *SettingsBuilder) WithReadyAttempts(attempts int) *SettingsBuilder {
	b.readyAttempts = attempts
	return b
}

// WithSkipExisting toggles the existing-project lookup.
func (b *SettingsBuilder) WithSkipExisting(skip bool) *SettingsBuilder {
	b.skipExisting = skip
	return b
}

// WithCheckTemplate toggles the template preflight.
func (b *SettingsBuilder) WithCheckTemplate(check bool) *SettingsBuilder {
	b.checkTemplate = check
	return b
}

// Build creates the settings (satisfies testkit.Builder interface).
func (b *SettingsBuilder) Build() interface{} {
	return b.BuildSettings()
}

// BuildSettings creates the settings with a concrete return type.
func (b *SettingsBuilder) BuildSettings() *entities.Settings {
	settleDelay := b.settleDelay
	skipExisting := b.skipExisting
	checkTemplate := b.checkTemplate
	return &entities.Settings{
		Host:          b.host,
		DefaultBranch: b.defaultBranch,
		Auth:          entities.AuthBearer,
		SettleDelay:   &settleDelay,
		Readiness: entities.ReadinessSettings{
			MaxAttempts:  b.readyAttempts,
			InitialDelay: time.Millisecond,
		},
		HTTP: entities.HTTPSettings{
			RetryMax: 0,
			Backoff:  entities.BackoffExponential,
		},
		SkipExisting:  &skipExisting,
		CheckTemplate: &checkTemplate,
	}
}

// Reset clears the builder state, allowing it to be reused.
func (b *SettingsBuilder) Reset() testkit.Builder {
	b.BaseBuilder.Reset()
	fresh := NewSettingsBuilder()
	b.host = fresh.host
	b.defaultBranch = fresh.defaultBranch
	b.settleDelay = fresh.settleDelay
	b.readyAttempts = fresh.readyAttempts
	b.skipExisting = fresh.skipExisting
	b.checkTemplate = fresh.checkTemplate
	return b
}

// Clone creates a deep copy of the SettingsBuilder.
func (b *SettingsBuilder) Clone() testkit.Builder {
	return &SettingsBuilder{
		BaseBuilder:   b.BaseBuilder.Clone().(*testkit.BaseBuilder),
		host:          b.host,
		defaultBranch: b.defaultBranch,
		settleDelay:   b.settleDelay,
		readyAttempts: b.readyAttempts,
		skipExisting:  b.skipExisting,
		checkTemplate: b.checkTemplate,
	}
}
