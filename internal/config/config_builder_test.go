package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func newTestBuilder(args ...string) *configBuilder {
	b := newConfigBuilder()
	b.args = args
	return b
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs returns a
// zero-value StructuredConfig.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_EarlierConfigWins verifies that a field set by an earlier source
// is not overwritten by a later one.
func TestBuild_EarlierConfigWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "env"}},
		&StructuredConfig{App: App{Version: "json", TokenIssuer: "issuer"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "env", cfg.App.Version)
	assert.Equal(t, "issuer", cfg.App.TokenIssuer)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReadsEnvVars(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("APP_TOKEN_ISSUER", "env-issuer")

	b := newTestBuilder()
	assert.Same(t, b, b.withEnv())

	require.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
	assert.Equal(t, "env-version", b.configs[0].App.Version)
	assert.Equal(t, "env-issuer", b.configs[0].App.TokenIssuer)
}

func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	t.Setenv("TRACKER_MAX_RETRIES", "-x")

	b := newTestBuilder().withEnv()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_AppendsParsedFlags(t *testing.T) {
	b := newTestBuilder("-token-issuer", "flag-issuer")
	assert.Same(t, b, b.withFlags())

	require.Len(t, b.configs, 1)
	assert.Equal(t, "flag-issuer", b.configs[0].App.TokenIssuer)
}

func TestWithFlags_SetsErrorOnUnknownFlag(t *testing.T) {
	b := newTestBuilder("-nope").withFlags()

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withDotEnv ────────────────────────────────────────────────────────────────

func TestWithDotEnv_LoadsExplicitFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(p, []byte("APP_VERSION=from-dotenv\n"), 0o600))
	t.Setenv("DOTENV", p)
	t.Setenv("APP_VERSION", "")
	require.NoError(t, os.Unsetenv("APP_VERSION"))

	b := newTestBuilder().withDotEnv().withEnv()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, "from-dotenv", b.configs[0].App.Version)
}

func TestWithDotEnv_MissingExplicitFile(t *testing.T) {
	t.Setenv("DOTENV", filepath.Join(t.TempDir(), "absent.env"))

	b := newTestBuilder().withDotEnv()

	assert.Error(t, b.err)
}

func TestLoadDotEnv_MissingDefaultIsIgnored(t *testing.T) {
	t.Chdir(t.TempDir())

	assert.NoError(t, loadDotEnv(""))
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newTestBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	assert.Same(t, b, b.withJSON())
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"version": "json-version"},
	})

	b := newTestBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: path})
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)
	assert.Equal(t, "json-version", b.configs[1].App.Version)
}

func TestWithJSON_SetsError_WhenFileNotFound(t *testing.T) {
	b := newTestBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/no/such/file.json"})
	b.withJSON()

	assert.Error(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_UsesFirstPath verifies that the path from the highest priority
// source is used.
func TestWithJSON_UsesFirstPath(t *testing.T) {
	first := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"version": "first"}})
	second := writeTempJSONConfig(t, map[string]any{"app": map[string]any{"version": "second"}})

	b := newTestBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{JSONFilePath: first},
		&StructuredConfig{JSONFilePath: second},
	)
	b.withJSON()

	require.NoError(t, b.err)
	require.Len(t, b.configs, 3)
	assert.Equal(t, "first", b.configs[2].App.Version)
}

// ── full pipeline ─────────────────────────────────────────────────────────────

func TestBuilder_PriorityOrder(t *testing.T) {
	clearEnvVars(t)
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{
			"token_issuer":   "json-issuer",
			"token_sign_key": "json-key",
			"version":        "json-version",
		},
		"storage": map[string]any{"db": map[string]any{"dsn": "sqlite://json.db"}},
	})
	t.Setenv("APP_VERSION", "env-version")

	cfg, err := newTestBuilder("-c", path, "-token-issuer", "flag-issuer", "-token-sign-key", "flag-key").
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()

	require.NoError(t, err)
	assert.Equal(t, "env-version", cfg.App.Version)
	assert.Equal(t, "flag-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, "flag-key", cfg.App.TokenSignKey)
	assert.Equal(t, "sqlite://json.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 24*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.NoError(t, cfg.validate())
}
