package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lehigh-university-libraries/citestyle/style"
)

var stylesLocale string

var stylesCmd = &cobra.Command{
	Use:   "styles",
	Short: "Inspect citation styles",
	Long:  `List and inspect the registered citation styles.`,
}

var stylesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List available styles",
	RunE: func(cmd *cobra.Command, args []string) error {
		catalog, err := loadCatalog()
		if err != nil {
			return err
		}
		loc := stylesLocale
		if loc == "" {
			loc = catalog.PrimaryLocale()
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tFORMAT\tDISPLAY NAME")
		for _, name := range style.List() {
			s, _ := style.Get(name)
			fmt.Fprintf(w, "%s\t%s\t%s\n", name, style.CitationFormatName(s, catalog, loc), style.DisplayName(s, catalog, loc))
		}
		return w.Flush()
	},
}

// styleInfo is what `styles show` prints.
type styleInfo struct {
	Name        string   `yaml:"name"`
	Plugin      string   `yaml:"plugin"`
	DisplayName string   `yaml:"display_name"`
	Format      string   `yaml:"format"`
	Description string   `yaml:"description"`
	Locales     []string `yaml:"locales"`
}

var stylesShowCmd = &cobra.Command{
	Use:   "show <style>",
	Short: "Show style details",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := style.Lookup(args[0])
		if err != nil {
			return err
		}
		catalog, err := loadCatalog()
		if err != nil {
			return err
		}
		loc := stylesLocale
		if loc == "" {
			loc = catalog.PrimaryLocale()
		}

		out, err := yaml.Marshal(styleInfo{
			Name:        s.Name(),
			Plugin:      s.PluginName(),
			DisplayName: style.DisplayName(s, catalog, loc),
			Format:      style.CitationFormatName(s, catalog, loc),
			Description: style.Description(s, catalog, loc),
			Locales:     catalog.Supported(),
		})
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}

func init() {
	stylesCmd.PersistentFlags().StringVarP(&stylesLocale, "locale", "l", "", "Locale for display names")
	stylesCmd.AddCommand(stylesListCmd)
	stylesCmd.AddCommand(stylesShowCmd)
}
