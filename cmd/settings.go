package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lehigh-university-libraries/citestyle/citation"
	"github.com/lehigh-university-libraries/citestyle/settings"
	"github.com/lehigh-university-libraries/citestyle/style/abnt"
)

var (
	settingsLocale  string
	settingsJournal string
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage per-journal style settings",
	Long: `Manage per-journal settings used by citation styles.

Settings live in settings.yaml inside the configuration directory
($CITESTYLE_HOME or ~/.citestyle).

Examples:
  citestyle settings set 1 location "São Paulo" --locale pt_BR
  citestyle settings set 1 location "Sao Paulo" --locale en
  citestyle settings get 1
  citestyle settings get 1 location --locale es`,
}

var settingsGetCmd = &cobra.Command{
	Use:   "get <journal> [name]",
	Short: "Show ABNT settings for a journal",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runSettingsGet,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <journal> location <value>",
	Short: "Set the ABNT location for a journal",
	Args:  cobra.ExactArgs(3),
	RunE:  runSettingsSet,
}

func init() {
	settingsCmd.PersistentFlags().StringVarP(&settingsLocale, "locale", "l", "", "Locale of the value (default: primary locale)")
	settingsCmd.PersistentFlags().StringVar(&settingsJournal, "journal-locale", "", "Journal primary locale (default: --primary-locale)")
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
}

func runSettingsGet(cmd *cobra.Command, args []string) error {
	store, err := settings.OpenDefault()
	if err != nil {
		return err
	}
	journalID := args[0]
	out := cmd.OutOrStdout()

	if len(args) == 1 {
		dump := make(map[string]any)
		for _, name := range store.Names(journalID, abnt.PluginName) {
			v, _ := store.Get(journalID, abnt.PluginName, name)
			dump[name] = v
		}
		if len(dump) == 0 {
			fmt.Fprintf(out, "No settings for journal %s\n", journalID)
			return nil
		}
		data, err := yaml.Marshal(dump)
		if err != nil {
			return err
		}
		_, err = out.Write(data)
		return err
	}

	if args[1] != abnt.SettingLocation {
		return fmt.Errorf("unknown setting %q (supported: %s)", args[1], abnt.SettingLocation)
	}

	catalog, err := loadCatalog()
	if err != nil {
		return err
	}
	current := settingsLocale
	if current == "" {
		current = catalog.CurrentLocale()
	}
	primary := settingsJournal
	if primary == "" {
		primary = catalog.PrimaryLocale()
	}

	loc, ok := abnt.LocalizedLocation(store, citation.Journal{ID: journalID}, current, primary)
	if !ok {
		return fmt.Errorf("journal %s has no location for %s or %s", journalID, current, primary)
	}
	fmt.Fprintln(out, loc)
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	journalID, name, value := args[0], args[1], args[2]
	if name != abnt.SettingLocation {
		return fmt.Errorf("unknown setting %q (supported: %s)", name, abnt.SettingLocation)
	}

	catalog, err := loadCatalog()
	if err != nil {
		return err
	}
	store, err := settings.OpenDefault()
	if err != nil {
		return err
	}

	loc := settingsLocale
	if loc == "" {
		loc = catalog.PrimaryLocale()
	}

	journal := citation.Journal{ID: journalID, PrimaryLocale: settingsJournal}
	form := abnt.NewSettingsForm(store, catalog.WithLocale(loc), journal)
	form.InitData()

	outcome, err := form.Handle(true, map[string]string{"location[" + loc + "]": value})
	if err != nil {
		return err
	}
	if outcome != abnt.Saved {
		return fmt.Errorf("settings not saved: %s", strings.Join(form.Errors(), "; "))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Saved location for journal %s (%s)\n", journalID, loc)
	return nil
}
