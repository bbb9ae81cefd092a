// Package cmd provides CLI commands for citestyle.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/citestyle/locale"
	"github.com/lehigh-university-libraries/citestyle/settings"
)

var (
	configDir     string
	primaryLocale string
	monthsFile    string
)

func parseLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// newLogHandler writes coloured output to terminals and plain key=value
// text everywhere else.
func newLogHandler(w io.Writer, level slog.Level) slog.Handler {
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		return tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		})
	}
	return slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
}

func setupLogger() {
	slog.SetDefault(slog.New(newLogHandler(os.Stderr, parseLevel(os.Getenv("LOG_LEVEL")))))
}

var rootCmd = &cobra.Command{
	Use:   "citestyle",
	Short: "Render journal citations in ABNT and MLA styles",
	Long: `Citestyle renders journal article citations in ABNT and MLA styles.

Dates follow the bibliographic convention of abbreviating long month
names ("sep. 2024") while keeping short ones whole ("maio 2024").

Examples:
  citestyle date 2024-09-15 --locale pt_BR --style day-month-year
  citestyle cite abnt -i article.yaml --locale pt_BR
  citestyle styles list
  citestyle settings set 1 location "São Paulo" --locale pt_BR`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if configDir != "" {
			settings.SetConfigDir(configDir)
		}
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadCatalog builds the locale catalog, merging --months-file if given.
func loadCatalog() (*locale.Catalog, error) {
	catalog, err := locale.NewCatalog(primaryLocale)
	if err != nil {
		return nil, fmt.Errorf("loading locale catalog: %w", err)
	}
	if monthsFile != "" {
		extra, err := locale.LoadMonthNamesFile(monthsFile)
		if err != nil {
			return nil, err
		}
		if err := catalog.Merge(extra); err != nil {
			return nil, fmt.Errorf("merging %s: %w", monthsFile, err)
		}
		slog.Debug("merged month table", "file", monthsFile, "locales", extra.Locales())
	}
	return catalog, nil
}

func init() {
	setupLogger()
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Configuration directory (default: $CITESTYLE_HOME or ~/.citestyle)")
	rootCmd.PersistentFlags().StringVar(&primaryLocale, "primary-locale", locale.BaseLocale, "Primary locale used as fallback")
	rootCmd.PersistentFlags().StringVar(&monthsFile, "months-file", "", "Additional month-name table (YAML)")
	rootCmd.AddCommand(dateCmd)
	rootCmd.AddCommand(citeCmd)
	rootCmd.AddCommand(stylesCmd)
	rootCmd.AddCommand(settingsCmd)
}
