package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Gamikaru/thecopysocial/internal/config"
	"github.com/Gamikaru/thecopysocial/internal/content"
	"github.com/Gamikaru/thecopysocial/internal/pages"
)

var (
	cfgFile   string
	verbose   bool
	appConfig config.Config
	logger    = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   "thecopysocial",
	Short: "The Copy Social website",
	Long: `thecopysocial serves The Copy Social marketing site, or exports it
as static HTML. Content comes from built-in defaults, an optional
content/site.yaml and markdown posts under content/blog/.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log at debug level")
}

func initializeConfig(_ *cobra.Command) error {
	cfg, found, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	log, err := newLogger(cfg.Log, verbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	appConfig, logger = cfg, log

	if found {
		logger.Debug("config file loaded")
	} else {
		logger.Debug("no config file found, using defaults and environment")
	}
	return nil
}

func newLogger(lc config.LogConfig, verbose bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	if lc.Development {
		zc = zap.NewDevelopmentConfig()
	}
	level, err := zap.ParseAtomicLevel(lc.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log.level %q: %w", lc.Level, err)
	}
	if verbose {
		level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	zc.Level = level
	return zc.Build()
}

// loadSite reads the content directory. A configured siteTitle wins over the
// content title.
func loadSite(cfg config.Config, log *zap.Logger) (*content.Site, error) {
	site, err := content.Load(cfg.ContentDir, log)
	if err != nil {
		return nil, err
	}
	if cfg.SiteTitle != "" {
		site.Title = cfg.SiteTitle
	}
	return site, nil
}

func pageEnv(cfg config.Config, site *content.Site) pages.Env {
	return pages.Env{
		Site:               site,
		BaseURL:            cfg.BaseURL,
		Breakpoint:         cfg.Device.Breakpoint,
		CarouselInterval:   cfg.Carousel.Interval,
		CarouselTransition: cfg.Carousel.Transition,
		SwipeThreshold:     cfg.Carousel.SwipeThreshold,
	}
}
