package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/citestyle/dateformat"
)

var (
	dateStyle  string
	dateLocale string
	dateZone   string
)

var dateCmd = &cobra.Command{
	Use:   "date <date>",
	Short: "Format a date with abbreviated month names",
	Long: `Format a date the way citations print it.

The input is a Unix timestamp or a date string (2024-09-15,
2024-09-15T10:00:00Z, "September 15, 2024", ...). Month names longer than
four characters are cut to three and marked with a period.

Examples:
  citestyle date 1726358400                         # sep. 2024
  citestyle date 2024-05-01 --locale pt_BR          # maio 2024
  citestyle date 2024-09-15 --style day-month-year  # 15 sep. 2024`,
	Args: cobra.ExactArgs(1),
	RunE: runDate,
}

func init() {
	dateCmd.Flags().StringVarP(&dateStyle, "style", "s", "month-year", "Date style: month-year or day-month-year")
	dateCmd.Flags().StringVarP(&dateLocale, "locale", "l", "", "Display locale (default: primary locale)")
	dateCmd.Flags().StringVar(&dateZone, "tz", "UTC", "Time zone dates are rendered in")
}

func runDate(cmd *cobra.Command, args []string) error {
	s, err := dateformat.ParseStyle(dateStyle)
	if err != nil {
		return err
	}

	zone, err := time.LoadLocation(dateZone)
	if err != nil {
		return fmt.Errorf("loading time zone: %w", err)
	}

	catalog, err := loadCatalog()
	if err != nil {
		return err
	}

	loc := dateLocale
	if loc == "" {
		loc = catalog.PrimaryLocale()
	}

	out, err := dateformat.Formatter{Location: zone}.Format(args[0], s, catalog.MonthNames(), loc)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}
