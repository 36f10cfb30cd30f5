// Package config resolves gentoc settings from defaults, an optional YAML
// settings file and the environment. Command-line flags are applied on top
// by the caller.
package config

import (
	"errors"
	"io"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	tocerrors "github.com/pwwang/gentoc/internal/errors"
	"github.com/pwwang/gentoc/internal/navtoc"
)

const (
	// SettingsFile is looked up in the base directory when no explicit
	// settings path is given.
	SettingsFile = ".gentoc.yml"
	// DefaultConfigFile is the mkdocs configuration read by default.
	DefaultConfigFile = "mkdocs.yml"

	EnvSiteURL = "GENTOC_SITE_URL"
	EnvBaseDir = "GENTOC_BASE_DIR"
)

// Format selects how the TOC is written to standard output.
type Format string

const (
	FormatMarkdown Format = "markdown"
	FormatHTML     Format = "html"
)

// Config holds everything needed for one generator run.
type Config struct {
	// BaseDir is the directory a relative ConfigFile is resolved against.
	BaseDir    string   `yaml:"base_dir"`
	ConfigFile string   `yaml:"config_file"`
	SiteURL    string   `yaml:"site_url"`
	SkipTitles []string `yaml:"skip_titles"`
	Header     string   `yaml:"header"`
	Strict     bool     `yaml:"strict"`
	Format     Format   `yaml:"format"`
	Verbose    bool     `yaml:"verbose"`
}

// Default returns the settings that reproduce the stock datar-blog TOC.
func Default() Config {
	return Config{
		BaseDir:    ".",
		ConfigFile: DefaultConfigFile,
		SiteURL:    navtoc.DefaultSiteURL,
		SkipTitles: []string{navtoc.DefaultSkipTitle},
		Header:     navtoc.DefaultHeader,
		Format:     FormatMarkdown,
	}
}

// Load starts from Default and overlays the YAML settings file at path.
// A missing file is an error only when required is set. Environment
// variables referenced as ${VAR} inside the file are expanded; a bare $name
// is left as written.
func Load(path string, required bool) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return &cfg, nil
		}
		return nil, tocerrors.ConfigLoadFailed(path, err)
	}

	dec := yaml.NewDecoder(strings.NewReader(expandBraced(string(data))))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, tocerrors.ConfigLoadFailed(path, err)
	}
	return &cfg, nil
}

var bracedVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

func expandBraced(s string) string {
	return bracedVarPattern.ReplaceAllStringFunc(s, func(m string) string {
		return os.Getenv(m[2 : len(m)-1])
	})
}

// ApplyEnv overrides settings from GENTOC_* environment variables.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvSiteURL); ok && v != "" {
		c.SiteURL = v
	}
	if v, ok := lookup(EnvBaseDir); ok && v != "" {
		c.BaseDir = v
	}
}

// Normalize canonicalizes values that have more than one accepted spelling.
func (c *Config) Normalize() {
	c.Format = Format(strings.ToLower(strings.TrimSpace(string(c.Format))))
	if c.Format == "" || c.Format == "md" {
		c.Format = FormatMarkdown
	}
	if c.SiteURL != "" && !strings.HasSuffix(c.SiteURL, "/") {
		c.SiteURL += "/"
	}
	if c.BaseDir == "" {
		c.BaseDir = "."
	}
}

// Validate reports the first invalid setting.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.ConfigFile) == "" {
		return tocerrors.InvalidConfig("config_file", "must not be empty")
	}
	if strings.TrimSpace(c.Header) == "" {
		return tocerrors.InvalidConfig("header", "must not be empty")
	}
	switch c.Format {
	case FormatMarkdown, FormatHTML:
	default:
		return tocerrors.InvalidConfig("format", "unknown format "+string(c.Format)+" (valid options: markdown, html)")
	}

	u, err := url.Parse(c.SiteURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return tocerrors.InvalidConfig("site_url", "must be an absolute http(s) URL")
	}
	return nil
}

// InputPath is the mkdocs configuration to read.
func (c *Config) InputPath() string {
	if filepath.IsAbs(c.ConfigFile) {
		return c.ConfigFile
	}
	return filepath.Join(c.BaseDir, c.ConfigFile)
}

// SettingsPath is where the settings file is looked up for baseDir.
func SettingsPath(baseDir string) string {
	return filepath.Join(baseDir, SettingsFile)
}

// LogLevel maps Verbose to a slog level. Only warnings are shown by default.
func (c *Config) LogLevel() slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

// Options converts the settings into extractor options.
func (c *Config) Options(logger *slog.Logger) navtoc.Options {
	skips := make([]string, len(c.SkipTitles))
	copy(skips, c.SkipTitles)
	return navtoc.Options{
		SiteURL:    c.SiteURL,
		SkipTitles: skips,
		Header:     c.Header,
		Strict:     c.Strict,
		Logger:     logger,
	}
}
