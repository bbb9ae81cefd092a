package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/citestyle/citation"
	"github.com/lehigh-university-libraries/citestyle/dateformat"
	"github.com/lehigh-university-libraries/citestyle/settings"
	"github.com/lehigh-university-libraries/citestyle/style"

	// Register all citation styles
	_ "github.com/lehigh-university-libraries/citestyle/style/abnt"
	_ "github.com/lehigh-university-libraries/citestyle/style/mla"
)

var (
	citeInput      string
	citeInputType  string
	citeLocale     string
	citeHTML       bool
	citeAccessDate string
)

var citeCmd = &cobra.Command{
	Use:   "cite <style>",
	Short: "Render a citation",
	Long: `Render an article citation in the given style.

The input is a YAML or JSON document with journal, issue and article
sections. Journal settings such as the ABNT location are read from the
settings store.

Arguments:
  style   Citation style (abnt, mla)

Input defaults to stdin.

Examples:
  citestyle cite abnt -i article.yaml --locale pt_BR
  citestyle cite mla --html < article.json
  citestyle cite abnt -i article.yaml --access-date 2024-09-15`,
	Args: cobra.ExactArgs(1),
	RunE: runCite,
}

func init() {
	citeCmd.Flags().StringVarP(&citeInput, "input", "i", "", "Input file (default: stdin)")
	citeCmd.Flags().StringVar(&citeInputType, "input-type", "", "Input type when reading stdin: yaml or json (default: detect)")
	citeCmd.Flags().StringVarP(&citeLocale, "locale", "l", "", "Display locale (default: primary locale)")
	citeCmd.Flags().BoolVar(&citeHTML, "html", false, "Emit HTML markup")
	citeCmd.Flags().StringVar(&citeAccessDate, "access-date", "", "Access date to print (default: now)")
}

func runCite(cmd *cobra.Command, args []string) error {
	s, err := style.Lookup(args[0])
	if err != nil {
		return err
	}

	c, err := readCitation(cmd.InOrStdin())
	if err != nil {
		return err
	}

	catalog, err := loadCatalog()
	if err != nil {
		return err
	}

	store, err := settings.OpenDefault()
	if err != nil {
		return fmt.Errorf("opening settings: %w", err)
	}

	opts := style.NewOptions(catalog)
	opts.Locale = citeLocale
	opts.Settings = store
	opts.HTML = citeHTML
	if citeAccessDate != "" {
		t, err := dateformat.Resolve(citeAccessDate)
		if err != nil {
			return fmt.Errorf("access date: %w", err)
		}
		opts.AccessDate = t
	}

	out := cmd.OutOrStdout()
	if err := s.Cite(out, c, opts); err != nil {
		return fmt.Errorf("rendering %s citation: %w", s.Name(), err)
	}
	fmt.Fprintln(out)
	return nil
}

func readCitation(stdin io.Reader) (c *citation.Citation, err error) {
	if citeInput == "" {
		return citation.Load(stdin, citeInputType)
	}
	if citeInputType != "" {
		f, err := os.Open(citeInput)
		if err != nil {
			return nil, fmt.Errorf("opening input file: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("closing input file: %w", cerr)
			}
		}()
		return citation.Load(f, citeInputType)
	}
	return citation.LoadFile(citeInput)
}
