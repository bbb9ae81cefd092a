package abnt

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"

	"github.com/lehigh-university-libraries/citestyle/citation"
	"github.com/lehigh-university-libraries/citestyle/dateformat"
	"github.com/lehigh-university-libraries/citestyle/locale"
	"github.com/lehigh-university-libraries/citestyle/style"
)

// maxListedAuthors is the most authors named before "et al.".
const maxListedAuthors = 3

// particles are moved after the given names ("SILVA, Maria da").
var particles = map[string]bool{
	"da": true, "das": true, "de": true, "do": true, "dos": true,
	"del": true, "della": true, "di": true, "du": true,
	"van": true, "von": true, "der": true, "le": true, "la": true,
}

// Cite writes c as an ABNT reference:
//
//	SILVA, Maria da. Title. Journal, City, v. 1, n. 2, p. 3-4, set. 2024. ISSN ...
func (s *Style) Cite(w io.Writer, c *citation.Citation, opts *style.Options) error {
	if opts == nil || opts.Locales == nil {
		return fmt.Errorf("abnt: options with a locale catalog are required")
	}
	if err := c.Validate(); err != nil {
		return err
	}

	current := opts.CurrentLocale()
	primary := opts.PrimaryLocale(c.Journal)
	months := opts.Locales.MonthNames()

	var b strings.Builder

	b.WriteString(opts.Escape(Authors(c.Article.Authors, current)))
	b.WriteString(" ")
	b.WriteString(opts.Escape(style.Terminate(c.Article.Title, ".")))
	b.WriteString(" ")

	source := []string{opts.Strong(c.Journal.Title)}
	if loc, ok := LocalizedLocation(opts.Settings, c.Journal, current, primary); ok {
		source = append(source, opts.Escape(loc))
	}
	if c.Issue.Volume != "" {
		source = append(source, "v. "+opts.Escape(c.Issue.Volume))
	}
	if c.Issue.Number != "" {
		source = append(source, "n. "+opts.Escape(c.Issue.Number))
	}
	if c.Article.Pages != "" {
		source = append(source, "p. "+opts.Escape(c.Article.Pages))
	}
	if issued, ok, err := c.PublicationDate(); err != nil {
		return fmt.Errorf("abnt: publication date: %w", err)
	} else if ok {
		date, err := dateformat.Formatter{}.FormatTime(issued, dateformat.MonthYear, months, current)
		if err != nil {
			return fmt.Errorf("abnt: publication date: %w", err)
		}
		source = append(source, date)
	}
	b.WriteString(strings.Join(source, ", "))
	b.WriteString(".")

	if issn := c.Journal.PreferredISSN(); issn != "" {
		b.WriteString(" ISSN " + opts.Escape(issn) + ".")
	}

	if c.Article.URL != "" {
		b.WriteString(" ")
		b.WriteString(opts.Escape(opts.Tr(messageKey+".availableAt", c.Article.URL)))
		b.WriteString(".")
		if !opts.AccessDate.IsZero() {
			accessed, err := dateformat.Formatter{}.FormatTime(opts.AccessDate, dateformat.DayMonthYear, months, current)
			if err != nil {
				return fmt.Errorf("abnt: access date: %w", err)
			}
			b.WriteString(" ")
			b.WriteString(opts.Escape(opts.Tr(messageKey+".accessed", accessed)))
			b.WriteString(".")
		}
	}

	if c.Article.DOI != "" {
		b.WriteString(" DOI: " + opts.Escape(doiURL(c.Article.DOI)) + ".")
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// Authors renders the author list: up to three names separated by "; ",
// otherwise the first name followed by "et al.". The result always ends
// with a period.
func Authors(authors []citation.Author, loc string) string {
	if len(authors) > maxListedAuthors {
		return Name(authors[0], loc) + " et al."
	}
	names := make([]string, 0, len(authors))
	for _, a := range authors {
		names = append(names, Name(a, loc))
	}
	return style.Terminate(strings.Join(names, "; "), ".")
}

// Name renders one author as "FAMILY, Given Middle particle". The family
// name is upper-cased using loc's casing rules.
func Name(a citation.Author, loc string) string {
	family := strings.Fields(a.Family)
	var moved []string
	for len(family) > 1 && particles[strings.ToLower(family[0])] {
		moved = append(moved, family[0])
		family = family[1:]
	}

	surname := strings.Join(family, " ")
	if a.Suffix != "" {
		surname += " " + a.Suffix
	}
	surname = cases.Upper(locale.Tag(loc)).String(surname)

	given := strings.TrimSpace(a.GivenNames() + " " + strings.Join(moved, " "))
	if given == "" {
		return surname
	}
	return surname + ", " + given
}

func doiURL(doi string) string {
	if strings.HasPrefix(doi, "http://") || strings.HasPrefix(doi, "https://") {
		return doi
	}
	return "https://doi.org/" + strings.TrimPrefix(doi, "doi:")
}
