// Package locale supplies month-name tables, translated plugin strings and
// the current/primary locale pair that citation styles read from.
package locale

import (
	"embed"
	"fmt"
	"log/slog"
	"path"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"
	"golang.org/x/text/language"
)

// BaseLocale is used when no primary locale is configured.
const BaseLocale = "en"

// poDomain is the gettext domain loaded for each locale.
const poDomain = "citestyle"

//go:embed months/*.yaml po/*.po
var assets embed.FS

// Service is what formatters and styles need from the locale subsystem.
type Service interface {
	// FullMonthNames returns the twelve month names for loc.
	FullMonthNames(loc string) ([]string, error)

	// CurrentLocale is the locale content is being displayed in.
	CurrentLocale() string

	// PrimaryLocale is the journal's designated fallback locale.
	PrimaryLocale() string
}

// Canonical normalises a locale identifier to its BCP 47 form. Both the
// underscore form ("pt_BR") and the hyphen form ("pt-BR") are accepted.
// Identifiers x/text cannot parse are returned trimmed but otherwise as given.
func Canonical(loc string) string {
	loc = strings.TrimSpace(loc)
	if loc == "" {
		return ""
	}
	t, err := language.Parse(strings.ReplaceAll(loc, "_", "-"))
	if err != nil {
		return loc
	}
	return t.String()
}

// Tag returns the language tag for loc, or language.Und.
func Tag(loc string) language.Tag {
	t, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(loc), "_", "-"))
	if err != nil {
		return language.Und
	}
	return t
}

// Catalog is the default Service: embedded month tables and gettext
// catalogs plus a current/primary locale pair. A Catalog is read-only after
// construction; WithLocale returns a copy rather than mutating.
type Catalog struct {
	months  MonthNames
	locales map[string]*gotext.Locale
	tags    []language.Tag
	matcher language.Matcher
	current string
	primary string
}

var _ Service = (*Catalog)(nil)

// NewCatalog loads the embedded tables and catalogs. primary becomes both
// the primary and the current locale; it defaults to BaseLocale.
func NewCatalog(primary string) (*Catalog, error) {
	if primary == "" {
		primary = BaseLocale
	}

	months, err := loadMonthDir(assets, "months")
	if err != nil {
		return nil, err
	}

	c := &Catalog{
		months:  months,
		locales: make(map[string]*gotext.Locale),
		current: Canonical(primary),
		primary: Canonical(primary),
	}

	entries, err := assets.ReadDir("po")
	if err != nil {
		return nil, fmt.Errorf("reading po directory: %w", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".po") {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".po")
		t, err := language.Parse(strings.ReplaceAll(name, "_", "-"))
		if err != nil {
			slog.Warn("skipping invalid locale catalog", "file", entry.Name(), "err", err)
			continue
		}

		po := gotext.NewPoFS(assets)
		po.ParseFile(path.Join("po", entry.Name()))

		loc := gotext.NewLocale("", t.String())
		loc.AddTranslator(poDomain, po)
		c.locales[t.String()] = loc
	}

	c.rebuildMatcher()
	slog.Debug("loaded locale catalog", "months", len(c.months), "catalogs", len(c.locales), "primary", c.primary)
	return c, nil
}

// rebuildMatcher derives the supported tag list from the month tables.
// The primary locale goes first so it is the matcher's default.
func (c *Catalog) rebuildMatcher() {
	var rest []language.Tag
	primary := Tag(c.primary)
	for loc := range c.months {
		t := Tag(loc)
		if t == language.Und || t == primary {
			continue
		}
		rest = append(rest, t)
	}
	sort.Slice(rest, func(i, j int) bool { return rest[i].String() < rest[j].String() })

	c.tags = append([]language.Tag{primary}, rest...)
	c.matcher = language.NewMatcher(c.tags)
}

// Merge adds or replaces month tables. It must be called before the
// Catalog is shared.
func (c *Catalog) Merge(extra MonthNames) error {
	if err := extra.Validate(); err != nil {
		return err
	}
	for loc, names := range extra {
		c.months[Canonical(loc)] = names
	}
	c.rebuildMatcher()
	return nil
}

// WithLocale returns a copy of c whose current locale is loc.
func (c *Catalog) WithLocale(loc string) *Catalog {
	cp := *c
	if loc != "" {
		cp.current = Canonical(loc)
	}
	return &cp
}

// FullMonthNames implements Service.
func (c *Catalog) FullMonthNames(loc string) ([]string, error) {
	names, ok := c.months.Lookup(loc)
	if !ok {
		return nil, fmt.Errorf("no month names for locale %q", loc)
	}
	return names, nil
}

// MonthNames returns the catalog's tables. Callers must not modify them.
func (c *Catalog) MonthNames() MonthNames {
	return c.months
}

// CurrentLocale implements Service.
func (c *Catalog) CurrentLocale() string {
	return c.current
}

// PrimaryLocale implements Service.
func (c *Catalog) PrimaryLocale() string {
	return c.primary
}

// Supported returns the locales with month tables, primary first.
func (c *Catalog) Supported() []string {
	out := make([]string, len(c.tags))
	for i, t := range c.tags {
		out[i] = t.String()
	}
	return out
}

// IsSupported reports whether loc has a month table.
func (c *Catalog) IsSupported(loc string) bool {
	_, ok := c.months.Lookup(loc)
	return ok
}

// Match returns the supported locale closest to loc. With no confident
// match the primary locale is returned.
func (c *Catalog) Match(loc string) string {
	_, idx, conf := c.matcher.Match(Tag(loc))
	if conf == language.No {
		return c.primary
	}
	return c.tags[idx].String()
}

// Tr translates msgid for loc. Missing translations fall back to the
// primary locale's catalog, then to BaseLocale, then to msgid itself. vars
// fill the translation's Printf verbs; an untranslated msgid is returned
// as is.
func (c *Catalog) Tr(loc, msgid string, vars ...string) string {
	args := make([]any, len(vars))
	for i, v := range vars {
		args[i] = v
	}
	for _, candidate := range []string{Canonical(loc), c.primary, BaseLocale} {
		l, ok := c.locales[candidate]
		if !ok {
			continue
		}
		// Singular lookups must ask for n=1: n=0 selects the plural form
		// under "plural=(n != 1)".
		if l.IsTranslatedND(poDomain, msgid, 1) {
			return l.GetD(poDomain, msgid, args...)
		}
	}
	return msgid
}
