// Package style defines the interface for citation style plugins.
package style

import (
	"html"
	"io"
	"strings"
	"time"

	"github.com/lehigh-university-libraries/citestyle/citation"
	"github.com/lehigh-university-libraries/citestyle/locale"
	"github.com/lehigh-university-libraries/citestyle/settings"
)

// Style is implemented by every citation style plugin.
type Style interface {
	// Name returns the style identifier (e.g., "abnt", "mla")
	Name() string

	// PluginName returns the unique plugin name settings are stored under
	PluginName() string

	// MessageKey returns the prefix of the style's translation keys
	MessageKey() string

	// Cite writes one formatted citation to w
	Cite(w io.Writer, c *citation.Citation, opts *Options) error
}

// Locales is what styles need from the locale subsystem.
type Locales interface {
	locale.Service

	// MonthNames returns the month tables used for date rendering
	MonthNames() locale.MonthNames

	// Tr translates a message key for a locale
	Tr(loc, msgid string, vars ...string) string
}

// Options configures a single Cite call.
type Options struct {
	// Locales supplies month names, translations and the locale pair
	Locales Locales

	// Locale overrides Locales.CurrentLocale() when set
	Locale string

	// Settings is an optional per-journal settings store
	Settings *settings.Store

	// HTML escapes text and marks up titles
	HTML bool

	// AccessDate is printed as the date the work was accessed
	AccessDate time.Time
}

// NewOptions creates Options with defaults.
func NewOptions(l Locales) *Options {
	return &Options{
		Locales:    l,
		AccessDate: time.Now(),
	}
}

// CurrentLocale returns the locale to render in.
func (o *Options) CurrentLocale() string {
	if o.Locale != "" {
		return locale.Canonical(o.Locale)
	}
	if o.Locales != nil {
		return o.Locales.CurrentLocale()
	}
	return locale.BaseLocale
}

// PrimaryLocale returns the journal's primary locale, falling back to the
// locale subsystem's.
func (o *Options) PrimaryLocale(j citation.Journal) string {
	if j.PrimaryLocale != "" {
		return locale.Canonical(j.PrimaryLocale)
	}
	if o.Locales != nil {
		return o.Locales.PrimaryLocale()
	}
	return locale.BaseLocale
}

// Tr translates msgid in the current locale.
func (o *Options) Tr(msgid string, vars ...string) string {
	if o.Locales == nil {
		return msgid
	}
	return o.Locales.Tr(o.CurrentLocale(), msgid, vars...)
}

// Escape escapes s for HTML output.
func (o *Options) Escape(s string) string {
	if o.HTML {
		return html.EscapeString(s)
	}
	return s
}

// Strong marks s as bold in HTML output.
func (o *Options) Strong(s string) string {
	if o.HTML {
		return "<strong>" + html.EscapeString(s) + "</strong>"
	}
	return s
}

// Emphasis marks s as italic in HTML output.
func (o *Options) Emphasis(s string) string {
	if o.HTML {
		return "<em>" + html.EscapeString(s) + "</em>"
	}
	return s
}

// Terminate appends mark unless s already ends with sentence punctuation.
func Terminate(s, mark string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return s
	}
	if strings.HasSuffix(s, ".") || strings.HasSuffix(s, "?") || strings.HasSuffix(s, "!") {
		return s
	}
	return s + mark
}

// DisplayName returns the style's translated display name.
func DisplayName(s Style, l Locales, loc string) string {
	return l.Tr(loc, s.MessageKey()+".displayName")
}

// Description returns the style's translated description.
func Description(s Style, l Locales, loc string) string {
	return l.Tr(loc, s.MessageKey()+".description")
}

// CitationFormatName returns the short name shown in citation menus.
func CitationFormatName(s Style, l Locales, loc string) string {
	return l.Tr(loc, s.MessageKey()+".citationFormatName")
}
