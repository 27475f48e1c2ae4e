package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testSettings struct {
	Output  string `mapstructure:"output"`
	DryRun  bool   `mapstructure:"dry_run"`
	Verbose bool   `mapstructure:"verbose"`
}

func TestLoad(t *testing.T) {
	t.Run("it should fall back to declared defaults", func(t *testing.T) {
		// WHEN
		settings, err := Load[testSettings](
			WithEnvPrefix("BLAZON"),
			WithDefault("output", "blazon_gen.go"),
		)

		// THEN
		require.NoError(t, err)
		assert.Equal(t, "blazon_gen.go", settings.Output)
		assert.False(t, settings.DryRun)
	})

	t.Run("it should read prefixed environment variables", func(t *testing.T) {
		// GIVEN
		t.Setenv("BLAZON_OUTPUT", "registrations.go")
		t.Setenv("BLAZON_DRY_RUN", "true")

		// WHEN
		settings, err := Load[testSettings](
			WithEnvPrefix("BLAZON"),
			WithDefault("output", "blazon_gen.go"),
		)

		// THEN
		require.NoError(t, err)
		assert.Equal(t, "registrations.go", settings.Output)
		assert.True(t, settings.DryRun)
		assert.False(t, settings.Verbose)
	})

	t.Run("it should reject non-struct settings types", func(t *testing.T) {
		// WHEN
		_, err := Load[int](WithEnvPrefix("BLAZON"))

		// THEN
		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be a struct")
	})
}
