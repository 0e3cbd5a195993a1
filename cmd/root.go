package main

import (
	"fmt"
	"log"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/b3/b3t/internal/config"
	"github.com/b3/b3t/internal/config/data"
	"github.com/b3/b3t/internal/dao"
	"github.com/b3/b3t/internal/logger"
	"github.com/b3/b3t/internal/view"
)

const (
	appName    = "b3t"
	appVersion = "0.1.0"
)

var (
	b3tFlags *data.Flags
	rootCmd  = &cobra.Command{
		Use:   appName,
		Short: "A terminal browser for storefront lists",
		Long:  `b3t is a terminal UI for paging, sorting, filtering and bulk selecting storefront resources.`,
		RunE:  run,
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, appVersion)
		},
	}
)

func init() {
	b3tFlags = config.NewFlags()
	initB3tFlags()
	rootCmd.AddCommand(versionCmd, newListCmd())
}

func initB3tFlags() {
	rootCmd.PersistentFlags().StringVar(b3tFlags.Catalog, "catalog", "", "Catalogue file to browse")
	rootCmd.PersistentFlags().StringVarP(b3tFlags.LogLevel, "logLevel", "l", config.DefaultLogLevel, "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(b3tFlags.LogFile, "logFile", "", "Log file path")

	rootCmd.Flags().Float32VarP(b3tFlags.RefreshRate, "refresh", "r", config.DefaultRefreshRate, "Refresh rate in seconds")
	rootCmd.Flags().StringVarP(b3tFlags.Command, "command", "c", "", "Startup view")
	rootCmd.Flags().BoolVar(b3tFlags.Headless, "headless", false, "Hide the header")
	rootCmd.Flags().IntVar(b3tFlags.PageSize, "page-size", 0, "Rows per page")
	rootCmd.Flags().BoolVar(b3tFlags.Mobile, "mobile", false, "Show lists as an infinite scroll grid")
	rootCmd.Flags().BoolVar(b3tFlags.SelectOtherPages, "select-other-pages", false, "Keep selections across pages")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

// loadConfig resolves the configuration from disk and flags.
func loadConfig() (*config.Config, error) {
	if err := config.InitLocs(); err != nil {
		return nil, fmt.Errorf("failed to initialize locations: %w", err)
	}
	if err := config.InitLogLoc(); err != nil {
		return nil, fmt.Errorf("failed to initialize log location: %w", err)
	}

	cfg := config.NewConfig()
	if err := cfg.Load(config.AppConfigFile, false); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.LoadExtras(); err != nil {
		return nil, err
	}
	if err := cfg.Refine(b3tFlags); err != nil {
		return nil, fmt.Errorf("failed to refine configuration: %w", err)
	}
	lc := cfg.B3t.Logger
	if lc.File == "" {
		lc.File = config.AppLogFile
	}
	if _, err := logger.Init(lc); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, nil
}

// newFactory serves the configured catalogue, or the demo one.
func newFactory(path string) (*dao.StoreFactory, error) {
	if path == "" {
		return dao.NewFactory(dao.SeedCatalog()), nil
	}
	c, err := dao.LoadCatalog(path)
	if err != nil {
		return nil, err
	}

	return dao.NewFactory(c), nil
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	defer func() { _ = logger.Close() }()

	_ = cfg.Save(false)

	factory, err := newFactory(cfg.B3t.Catalog)
	if err != nil {
		return err
	}

	app := view.NewApp(cfg, appVersion)
	app.SetFactory(factory)
	if err := app.Init(); err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	logrus.WithField("version", appVersion).Info("b3t starting")

	return app.Run()
}
