package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tocerrors "github.com/pwwang/gentoc/internal/errors"
	"github.com/pwwang/gentoc/internal/navtoc"
)

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), SettingsFile)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingOptionalFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), SettingsFile), false)
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
}

func TestLoad_MissingRequiredFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "custom.yml"), true)
	require.Error(t, err)
	assert.True(t, tocerrors.IsCategory(err, tocerrors.CategoryConfig))
}

func TestLoad_OverlaysDefaults(t *testing.T) {
	t.Setenv("GENTOC_TEST_HOST", "docs.example.org")
	path := writeSettings(t, `
site_url: https://${GENTOC_TEST_HOST}/blog
skip_titles: [Home, About]
strict: true
`)

	cfg, err := Load(path, true)
	require.NoError(t, err)

	assert.Equal(t, "https://docs.example.org/blog", cfg.SiteURL)
	assert.Equal(t, []string{"Home", "About"}, cfg.SkipTitles)
	assert.True(t, cfg.Strict)
	assert.Equal(t, DefaultConfigFile, cfg.ConfigFile)
	assert.Equal(t, navtoc.DefaultHeader, cfg.Header)
	assert.Equal(t, FormatMarkdown, cfg.Format)
}

func TestLoad_KeepsBareDollarNames(t *testing.T) {
	t.Setenv("Pages", "expanded")
	t.Setenv("GENTOC_TEST_TITLE", "Posts")
	path := writeSettings(t, "header: \"## $Pages and ${GENTOC_TEST_TITLE}\"\n")

	cfg, err := Load(path, true)
	require.NoError(t, err)
	assert.Equal(t, "## $Pages and Posts", cfg.Header)
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := Load(writeSettings(t, ""), true)
	require.NoError(t, err)
	assert.Equal(t, Default(), *cfg)
}

func TestLoad_RejectsUnknownKeys(t *testing.T) {
	_, err := Load(writeSettings(t, "site_ulr: https://typo.example\n"), true)
	require.Error(t, err)
	assert.True(t, tocerrors.IsCategory(err, tocerrors.CategoryConfig))
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvSiteURL: "https://env.example/",
		EnvBaseDir: "/srv/blog",
	}
	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}

	cfg := Default()
	cfg.ApplyEnv(lookup)
	assert.Equal(t, "https://env.example/", cfg.SiteURL)
	assert.Equal(t, "/srv/blog", cfg.BaseDir)

	cfg = Default()
	cfg.ApplyEnv(func(string) (string, bool) { return "", true })
	assert.Equal(t, Default(), cfg)
}

func TestNormalize(t *testing.T) {
	cfg := Config{SiteURL: "https://example.org/docs", Format: " HTML "}
	cfg.Normalize()

	assert.Equal(t, "https://example.org/docs/", cfg.SiteURL)
	assert.Equal(t, FormatHTML, cfg.Format)
	assert.Equal(t, ".", cfg.BaseDir)

	cfg = Config{Format: "md"}
	cfg.Normalize()
	assert.Equal(t, FormatMarkdown, cfg.Format)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{"defaults are valid", func(*Config) {}, ""},
		{"empty config file", func(c *Config) { c.ConfigFile = " " }, "config_file"},
		{"empty header", func(c *Config) { c.Header = "" }, "header"},
		{"unknown format", func(c *Config) { c.Format = "pdf" }, "format"},
		{"relative site url", func(c *Config) { c.SiteURL = "datar-blog/" }, "site_url"},
		{"non-http site url", func(c *Config) { c.SiteURL = "ftp://example.org/" }, "site_url"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			var te *tocerrors.TocError
			require.ErrorAs(t, err, &te)
			assert.Equal(t, tocerrors.CategoryConfig, te.Category)
			assert.Equal(t, tt.wantField, te.Context["field"])
		})
	}
}

func TestInputPath(t *testing.T) {
	cfg := Default()
	cfg.BaseDir = filepath.Join("srv", "blog")
	assert.Equal(t, filepath.Join("srv", "blog", "mkdocs.yml"), cfg.InputPath())

	abs := filepath.Join(t.TempDir(), "site.yml")
	cfg.ConfigFile = abs
	assert.Equal(t, abs, cfg.InputPath())
}

func TestLogLevel(t *testing.T) {
	cfg := Default()
	assert.Equal(t, slog.LevelWarn, cfg.LogLevel())
	cfg.Verbose = true
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel())
}

func TestOptions(t *testing.T) {
	cfg := Default()
	cfg.Strict = true

	opts := cfg.Options(nil)
	assert.Equal(t, navtoc.DefaultSiteURL, opts.SiteURL)
	assert.Equal(t, []string{"Home"}, opts.SkipTitles)
	assert.True(t, opts.Strict)

	opts.SkipTitles[0] = "changed"
	assert.Equal(t, []string{"Home"}, cfg.SkipTitles)
}
