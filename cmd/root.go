package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pwwang/gentoc/internal/config"
	"github.com/pwwang/gentoc/internal/navtoc"
	"github.com/pwwang/gentoc/internal/ui"
	"github.com/pwwang/gentoc/internal/version"
)

// rootFlags holds the raw command-line values. They only override settings
// whose flag was set explicitly.
type rootFlags struct {
	baseDir    string
	configFile string
	settings   string
	siteURL    string
	skip       []string
	header     string
	strict     bool
	format     string
	check      bool
	verbose    bool
}

// NewRootCmd builds the gentoc command.
func NewRootCmd() *cobra.Command {
	f := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "gentoc",
		Short: "Generate a markdown table of contents from an mkdocs nav block",
		Long: `gentoc reads the nav: section of an mkdocs configuration file and prints a
markdown table of contents whose links point at the published site.

Settings are read from .gentoc.yml in the base directory when present, then from
GENTOC_SITE_URL and GENTOC_BASE_DIR, then from flags.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, f)
		},
	}

	cmd.Version = version.Version
	cmd.SetVersionTemplate(version.Template("gentoc"))

	flags := cmd.Flags()
	flags.StringVarP(&f.baseDir, "base-dir", "C", ".", "Directory the mkdocs configuration is resolved against")
	flags.StringVarP(&f.configFile, "config", "f", config.DefaultConfigFile, "mkdocs configuration file")
	flags.StringVar(&f.settings, "settings", "", "Settings file (default: <base-dir>/"+config.SettingsFile+" if present)")
	flags.StringVar(&f.siteURL, "site-url", navtoc.DefaultSiteURL, "Published site URL page paths are resolved against")
	flags.StringArrayVar(&f.skip, "skip", []string{navtoc.DefaultSkipTitle}, "Nav title to leave out (repeatable)")
	flags.StringVar(&f.header, "header", navtoc.DefaultHeader, "First line of the generated TOC")
	flags.BoolVar(&f.strict, "strict", false, "Fail on malformed nav entries instead of skipping them")
	flags.StringVar(&f.format, "format", string(config.FormatMarkdown), "Output format (markdown, html)")
	flags.BoolVar(&f.check, "check", false, "Verify every bullet parses as a link and print a summary to stderr")
	flags.BoolVarP(&f.verbose, "verbose", "v", false, "Log scan details to stderr")

	return cmd
}

// Execute runs the root command
func Execute() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		ui.FormatError(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}
}

func runGenerate(cmd *cobra.Command, f *rootFlags) error {
	cfg, err := resolveConfig(cmd, f)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.LogLevel()}))
	source := cfg.InputPath()

	toc, err := navtoc.Load(source, cfg.Options(logger))
	if err != nil {
		return err
	}

	out := toc.String()

	if f.check {
		ui.FormatSummary(cmd.ErrOrStderr(), ui.Summary{
			Source:    source,
			Entries:   len(toc.Entries),
			Skipped:   toc.Skipped,
			Malformed: toc.Malformed,
			Links:     len(navtoc.Links(out)),
		})
		if err := toc.Check(); err != nil {
			return err
		}
	}

	if cfg.Format == config.FormatHTML {
		if out, err = navtoc.RenderHTML(out); err != nil {
			return fmt.Errorf("render html: %w", err)
		}
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}

// resolveConfig layers defaults, the settings file, the environment and
// explicitly set flags, in that order.
func resolveConfig(cmd *cobra.Command, f *rootFlags) (*config.Config, error) {
	flags := cmd.Flags()

	baseDir := "."
	if v := os.Getenv(config.EnvBaseDir); v != "" {
		baseDir = v
	}
	if flags.Changed("base-dir") {
		baseDir = f.baseDir
	}

	settingsPath, required := f.settings, f.settings != ""
	if !required {
		settingsPath = config.SettingsPath(baseDir)
	}

	cfg, err := config.Load(settingsPath, required)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv(os.LookupEnv)

	if flags.Changed("base-dir") {
		cfg.BaseDir = f.baseDir
	}
	if flags.Changed("config") {
		cfg.ConfigFile = f.configFile
	}
	if flags.Changed("site-url") {
		cfg.SiteURL = f.siteURL
	}
	if flags.Changed("skip") {
		cfg.SkipTitles = f.skip
	}
	if flags.Changed("header") {
		cfg.Header = f.header
	}
	if flags.Changed("strict") {
		cfg.Strict = f.strict
	}
	if flags.Changed("format") {
		cfg.Format = config.Format(f.format)
	}
	if flags.Changed("verbose") {
		cfg.Verbose = f.verbose
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
