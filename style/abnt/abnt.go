// Package abnt provides the ABNT (NBR 6023) citation style.
package abnt

import (
	"net/url"
	"path"

	"github.com/lehigh-university-libraries/citestyle/citation"
	"github.com/lehigh-university-libraries/citestyle/settings"
	"github.com/lehigh-university-libraries/citestyle/style"
)

const (
	// PluginName is the name settings are stored under.
	PluginName = "AbntCitationPlugin"

	// SettingLocation is the localised city-of-publication setting.
	SettingLocation = "location"

	messageKey = "plugins.citationFormats.abnt"
)

// Style implements the ABNT citation style.
type Style struct{}

var _ style.Style = (*Style)(nil)

// Name returns the style identifier.
func (s *Style) Name() string {
	return "abnt"
}

// PluginName returns the unique plugin name.
func (s *Style) PluginName() string {
	return PluginName
}

// MessageKey returns the translation key prefix.
func (s *Style) MessageKey() string {
	return messageKey
}

// LocalizedLocation returns the journal's location in the current locale,
// falling back to the journal's primary locale.
func LocalizedLocation(store *settings.Store, j citation.Journal, current, primary string) (string, bool) {
	if store == nil {
		return "", false
	}
	values, ok := store.GetLocalized(j.ID, PluginName, SettingLocation)
	if !ok {
		return "", false
	}
	return settings.Localized(values, current, primary)
}

// SettingsURL returns the management page the "settings" verb links to.
// nonce is added as a query parameter so the page is always reloaded.
func SettingsURL(base *url.URL, journalPath, nonce string) string {
	u := *base
	u.Path = path.Join("/", u.Path, journalPath, "management", "settings", "website")
	q := url.Values{}
	if nonce != "" {
		q.Set("uid", nonce)
	}
	u.RawQuery = q.Encode()
	u.Fragment = "staticPages"
	return u.String()
}

func init() {
	style.Register(&Style{})
}
