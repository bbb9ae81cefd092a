// Package citation holds the journal, issue and article data a citation
// style renders.
package citation

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lehigh-university-libraries/citestyle/dateformat"
)

// Journal is the publication an article appears in.
type Journal struct {
	ID            string `yaml:"id" json:"id"`
	Title         string `yaml:"title" json:"title"`
	Abbreviation  string `yaml:"abbreviation,omitempty" json:"abbreviation,omitempty"`
	ISSN          string `yaml:"issn,omitempty" json:"issn,omitempty"`
	OnlineISSN    string `yaml:"online_issn,omitempty" json:"online_issn,omitempty"`
	PrimaryLocale string `yaml:"primary_locale,omitempty" json:"primary_locale,omitempty"`
}

// Issue is the journal issue an article belongs to.
type Issue struct {
	Volume string `yaml:"volume,omitempty" json:"volume,omitempty"`
	Number string `yaml:"number,omitempty" json:"number,omitempty"`
	Year   int    `yaml:"year,omitempty" json:"year,omitempty"`

	// DatePublished is any input dateformat.Resolve accepts
	DatePublished string `yaml:"date_published,omitempty" json:"date_published,omitempty"`
}

// Article is the cited work.
type Article struct {
	Title         string   `yaml:"title" json:"title"`
	Authors       []Author `yaml:"authors" json:"authors"`
	Pages         string   `yaml:"pages,omitempty" json:"pages,omitempty"`
	DOI           string   `yaml:"doi,omitempty" json:"doi,omitempty"`
	URL           string   `yaml:"url,omitempty" json:"url,omitempty"`
	DatePublished string   `yaml:"date_published,omitempty" json:"date_published,omitempty"`
}

// Citation bundles everything a style needs for one article.
type Citation struct {
	Journal Journal `yaml:"journal" json:"journal"`
	Issue   Issue   `yaml:"issue" json:"issue"`
	Article Article `yaml:"article" json:"article"`
}

// ValidationError describes a missing or malformed field.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the fields every style relies on.
func (c *Citation) Validate() error {
	var errs []string
	if strings.TrimSpace(c.Article.Title) == "" {
		errs = append(errs, ValidationError{Field: "article.title", Message: "required"}.Error())
	}
	if strings.TrimSpace(c.Journal.Title) == "" {
		errs = append(errs, ValidationError{Field: "journal.title", Message: "required"}.Error())
	}
	if len(c.Article.Authors) == 0 {
		errs = append(errs, ValidationError{Field: "article.authors", Message: "at least one author is required"}.Error())
	}
	for i, a := range c.Article.Authors {
		if a.Family == "" && a.Given == "" {
			errs = append(errs, ValidationError{Field: fmt.Sprintf("article.authors[%d]", i), Message: "empty name"}.Error())
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("validation failed: %s", strings.Join(errs, "; "))
	}
	return nil
}

// PublicationDate returns the date to cite the issue by: the issue's
// publication date, then the article's, then January of Issue.Year.
// ok is false when none is set.
func (c *Citation) PublicationDate() (time.Time, bool, error) {
	for _, raw := range []string{c.Issue.DatePublished, c.Article.DatePublished} {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		t, err := dateformat.Resolve(raw)
		if err != nil {
			return time.Time{}, false, err
		}
		return t, true, nil
	}
	if c.Issue.Year > 0 {
		return time.Date(c.Issue.Year, time.January, 1, 0, 0, 0, 0, time.UTC), true, nil
	}
	return time.Time{}, false, nil
}

// Year returns the publication year as a string, or "".
func (c *Citation) Year() string {
	if c.Issue.Year > 0 {
		return strconv.Itoa(c.Issue.Year)
	}
	t, ok, err := c.PublicationDate()
	if err != nil || !ok {
		return ""
	}
	return strconv.Itoa(t.Year())
}

// PreferredISSN returns the print ISSN, falling back to the online one.
func (j Journal) PreferredISSN() string {
	if j.ISSN != "" {
		return j.ISSN
	}
	return j.OnlineISSN
}
