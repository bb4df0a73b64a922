package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresGraphQLToken(t *testing.T) {
	t.Setenv("GRAPHQL_TOKEN", "")
	t.Setenv("ORG", "kernelsu-modules")
	_, err := Load()
	require.Error(t, err)
}

func TestLoadAppliesDefaults(t *testing.T) {
	t.Setenv("GRAPHQL_TOKEN", "tok")
	t.Setenv("ORG", "kernelsu-modules")
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 20, cfg.OuterConcurrency)
	assert.Equal(t, 100, cfg.InnerConcurrency)
	assert.Equal(t, "memory", cfg.ProbeCacheBackend)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestValidateRejectsRedisBackendWithoutAddr(t *testing.T) {
	cfg := Config{
		GraphQLToken:      "tok",
		Org:               "kernelsu-modules",
		CacheDir:          "./cache",
		OuterConcurrency:  1,
		InnerConcurrency:  1,
		ProbeCacheBackend: "redis",
		LogLevel:          "info",
		LogFormat:         "text",
	}
	err := Validate(cfg)
	require.Error(t, err)
}

func TestValidateAcceptsCompleteConfig(t *testing.T) {
	cfg := Config{
		GraphQLToken:      "tok",
		Org:               "kernelsu-modules",
		CacheDir:          "./cache",
		OuterConcurrency:  1,
		InnerConcurrency:  1,
		ProbeCacheBackend: "memory",
		LogLevel:          "info",
		LogFormat:         "text",
	}
	assert.NoError(t, Validate(cfg))
}
