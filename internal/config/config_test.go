package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func envMap(m map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}
}

func TestLoad(t *testing.T) {
	t.Run("Should resolve relative directories against the file", func(t *testing.T) {
		dir := t.TempDir()
		path := writeFile(t, dir, `
[generation]
directory = "var/gen"

[run]
jobs = 3
cache_dir = ".cache"
`)
		cfg, err := Load(path)

		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "var/gen"), cfg.GenerationDir)
		assert.Equal(t, dir, cfg.BaseDir)
		assert.Equal(t, 3, cfg.Jobs)
		assert.Equal(t, filepath.Join(dir, ".cache"), cfg.CacheDir)
		assert.Equal(t, DefaultHeader, cfg.Header)
		assert.Nil(t, cfg.InvalidPatterns)
		assert.Equal(t, path, cfg.Source)
	})

	t.Run("Should treat an empty pattern list as an override", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "[policy]\ninvalid_patterns = []\n")

		cfg, err := Load(path)

		require.NoError(t, err)
		require.NotNil(t, cfg.InvalidPatterns)
		assert.Empty(t, cfg.InvalidPatterns)
		policy, err := cfg.Policy()
		require.NoError(t, err)
		assert.True(t, policy.Allows("UserExtensionInterface.php"))
	})

	t.Run("Should reject unknown keys", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "[generation]\ndirectroy = \"x\"\n")

		_, err := Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown key")
	})

	t.Run("Should reject negative jobs", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "[run]\njobs = -1\n")

		_, err := Load(path)

		require.Error(t, err)
	})

	t.Run("Should report TOML syntax errors with the path", func(t *testing.T) {
		path := writeFile(t, t.TempDir(), "[generation\n")

		_, err := Load(path)

		require.Error(t, err)
		assert.Contains(t, err.Error(), path)
	})
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	path := writeFile(t, root, "")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	found, ok, err := Find(nested)

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, path, found)
}

func TestApplyEnv(t *testing.T) {
	t.Run("Should overlay variables", func(t *testing.T) {
		cfg, err := Default().ApplyEnv(envMap(map[string]string{
			EnvGenerationDir:   "/srv/gen",
			EnvInvalidPatterns: "^Proxy\\.php$; Interceptor\n\n",
			EnvJobs:            "2",
		}))

		require.NoError(t, err)
		assert.Equal(t, "/srv/gen", cfg.GenerationDir)
		assert.Equal(t, []string{`^Proxy\.php$`, "Interceptor"}, cfg.InvalidPatterns)
		assert.Equal(t, 2, cfg.Jobs)
	})

	t.Run("Should keep defaults when unset", func(t *testing.T) {
		cfg, err := Default().ApplyEnv(envMap(nil))

		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("Should reject invalid jobs", func(t *testing.T) {
		_, err := Default().ApplyEnv(envMap(map[string]string{EnvJobs: "many"}))

		require.Error(t, err)
	})

	t.Run("Should disable exclusions with an empty pattern variable", func(t *testing.T) {
		cfg, err := Default().ApplyEnv(envMap(map[string]string{EnvInvalidPatterns: ""}))

		require.NoError(t, err)
		assert.NotNil(t, cfg.InvalidPatterns)
		assert.Empty(t, cfg.InvalidPatterns)
	})
}

func TestWriterOptions(t *testing.T) {
	t.Run("Should carry policy and directories", func(t *testing.T) {
		cfg := Default()
		cfg.GenerationDir = "/srv/gen"
		cfg.InvalidPatterns = []string{"^Skip"}

		opts, err := cfg.WriterOptions(nil)

		require.NoError(t, err)
		assert.Equal(t, "/srv/gen", opts.GenerationDir)
		assert.Equal(t, DefaultHeader, opts.Header)
		require.NotNil(t, opts.Policy)
		assert.False(t, opts.Policy.Allows("SkipMe.php"))
		assert.True(t, opts.Policy.Allows("FooExtensionInterface.php"))
	})

	t.Run("Should fail on a broken pattern", func(t *testing.T) {
		cfg := Default()
		cfg.InvalidPatterns = []string{"("}

		_, err := cfg.WriterOptions(nil)

		require.Error(t, err)
	})
}
