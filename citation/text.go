package citation

import (
	"html"
	"regexp"
	"strings"
)

var (
	htmlTagRegex     = regexp.MustCompile(`<[^>]*>`)
	htmlCommentRegex = regexp.MustCompile(`<!--[\s\S]*?-->`)
)

// CleanText strips markup from a title, decodes entities and collapses
// whitespace. Journal systems commonly store titles with inline <i> and
// <sup> tags, which citations print as plain text.
func CleanText(s string) string {
	if s == "" {
		return ""
	}
	s = htmlCommentRegex.ReplaceAllString(s, "")
	s = htmlTagRegex.ReplaceAllString(s, "")
	s = html.UnescapeString(s)
	s = multiSpaceRegex.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// Normalize cleans the free-text fields of c in place.
func (c *Citation) Normalize() {
	c.Journal.Title = CleanText(c.Journal.Title)
	c.Journal.Abbreviation = CleanText(c.Journal.Abbreviation)
	c.Article.Title = CleanText(c.Article.Title)
	c.Article.Pages = strings.TrimSpace(c.Article.Pages)
	c.Article.DOI = strings.TrimSpace(c.Article.DOI)
	c.Article.URL = strings.TrimSpace(c.Article.URL)
	for i := range c.Article.Authors {
		a := &c.Article.Authors[i]
		a.Given = CleanText(a.Given)
		a.Middle = CleanText(a.Middle)
		a.Family = CleanText(a.Family)
		a.Suffix = CleanText(a.Suffix)
	}
}
