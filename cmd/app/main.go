package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/uos-projects/pages/config"
	_ "github.com/uos-projects/pages/docs"
)

var (
	rootCmd = &cobra.Command{
		Use:           "pages",
		Short:         "Content core and preview server of the UOS projects site",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          serve,
	}

	serveCmd = &cobra.Command{
		Use:   "serve",
		Short: "Load content and serve the preview API and public files",
		RunE:  serve,
	}

	checkCmd = &cobra.Command{
		Use:   "check",
		Short: "Validate content and report missing translations",
		RunE:  check,
	}

	exportCmd = &cobra.Command{
		Use:   "export",
		Short: "Write validated records and dictionaries as JSON",
		RunE:  export,
	}

	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	flConfig string
	flDebug  bool
	flWatch  bool
	flStrict bool
	flOut    string

	version = "dev"
)

// @title UOS Pages Preview API
// @version 1.0
// @description Validated content collections and translations of the bilingual site
// @host localhost:4321
// @BasePath /

func main() {
	rootCmd.PersistentFlags().StringVarP(&flConfig, "config", "c", "config.toml", "path to TOML configuration file")
	rootCmd.PersistentFlags().BoolVar(&flDebug, "debug", false, "enable debug logging")

	for _, cmd := range []*cobra.Command{rootCmd, serveCmd} {
		cmd.Flags().BoolVarP(&flWatch, "watch", "w", false, "reload content when files change")
	}
	checkCmd.Flags().BoolVar(&flStrict, "strict", false, "fail on any rejected document or missing translation")
	exportCmd.Flags().StringVarP(&flOut, "out", "o", "", "output directory (default build.out)")

	rootCmd.AddCommand(serveCmd, checkCmd, exportCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		slog.Error("pages failed", "error", err)
		os.Exit(1)
	}
}

func loadConfig() (config.Config, *slog.Logger, error) {
	cfg, err := config.Load(flConfig)
	if err != nil {
		return config.Config{}, nil, err
	}

	lg := newLogger(cfg.Log, flDebug)
	slog.SetDefault(lg)

	return cfg, lg, nil
}

func newLogger(cfg config.Log, debug bool) *slog.Logger {
	logLevel, _ := cfg.SlogLevel()
	if debug {
		logLevel = slog.LevelDebug
	}

	if cfg.Colored {
		return slog.New(tint.NewHandler(os.Stdout, &tint.Options{
			Level:      logLevel,
			TimeFormat: time.TimeOnly,
		}))
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}
