// Package mla provides the MLA (7th edition) citation style.
package mla

import (
	"fmt"
	"io"
	"strings"

	"github.com/lehigh-university-libraries/citestyle/citation"
	"github.com/lehigh-university-libraries/citestyle/dateformat"
	"github.com/lehigh-university-libraries/citestyle/style"
)

const (
	// PluginName is the name settings are stored under.
	PluginName = "MlaCitationOutputPlugin"

	messageKey = "plugins.citationOutput.mla"
)

// Style implements the MLA citation style.
type Style struct{}

var _ style.Style = (*Style)(nil)

// Name returns the style identifier.
func (s *Style) Name() string {
	return "mla"
}

// PluginName returns the unique plugin name.
func (s *Style) PluginName() string {
	return PluginName
}

// MessageKey returns the translation key prefix.
func (s *Style) MessageKey() string {
	return messageKey
}

// Cite writes c as an MLA works-cited entry:
//
//	Smith, John, and Maria da Silva. "Title." Journal [Online], 12.3 (2024): 10-20. Web. 18 Oct. 2026.
func (s *Style) Cite(w io.Writer, c *citation.Citation, opts *style.Options) error {
	if opts == nil || opts.Locales == nil {
		return fmt.Errorf("mla: options with a locale catalog are required")
	}
	if err := c.Validate(); err != nil {
		return err
	}

	var b strings.Builder

	b.WriteString(opts.Escape(Authors(c.Article.Authors)))
	b.WriteString(` "`)
	b.WriteString(opts.Escape(style.Terminate(c.Article.Title, ".")))
	b.WriteString(`" `)

	b.WriteString(opts.Emphasis(c.Journal.Title))
	b.WriteString(" [Online]")
	if vol := volumeNumber(c.Issue); vol != "" {
		b.WriteString(", " + opts.Escape(vol))
	}
	if year := c.Year(); year != "" {
		b.WriteString(" (" + year + ")")
	}
	b.WriteString(": ")
	if c.Article.Pages != "" {
		b.WriteString(opts.Escape(c.Article.Pages) + ".")
	} else {
		b.WriteString("n. pag.")
	}

	b.WriteString(" " + opts.Escape(opts.Tr(messageKey+".web")) + ".")
	if !opts.AccessDate.IsZero() {
		f := dateformat.Formatter{PreserveCase: true}
		accessed, err := f.FormatTime(opts.AccessDate, dateformat.DayMonthYear, opts.Locales.MonthNames(), opts.CurrentLocale())
		if err != nil {
			return fmt.Errorf("mla: access date: %w", err)
		}
		b.WriteString(" " + accessed + ".")
	}

	if c.Article.DOI != "" {
		b.WriteString(" doi:" + opts.Escape(strings.TrimPrefix(c.Article.DOI, "doi:")) + ".")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Authors renders the MLA author list. The first author is inverted, a
// second is written directly, and three or more collapse to "et al.".
func Authors(authors []citation.Author) string {
	switch len(authors) {
	case 0:
		return ""
	case 1:
		return style.Terminate(authors[0].Inverted(), ".")
	case 2:
		return style.Terminate(authors[0].Inverted()+", and "+authors[1].Direct(), ".")
	default:
		return authors[0].Inverted() + ", et al."
	}
}

func volumeNumber(i citation.Issue) string {
	switch {
	case i.Volume != "" && i.Number != "":
		return i.Volume + "." + i.Number
	case i.Volume != "":
		return i.Volume
	default:
		return i.Number
	}
}

func init() {
	style.Register(&Style{})
}
