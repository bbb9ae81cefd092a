package abnt_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lehigh-university-libraries/citestyle/citation"
	"github.com/lehigh-university-libraries/citestyle/locale"
	"github.com/lehigh-university-libraries/citestyle/settings"
	"github.com/lehigh-university-libraries/citestyle/style/abnt"
)

func newForm(t *testing.T) (*abnt.SettingsForm, *settings.Store, *locale.Catalog) {
	t.Helper()
	catalog, err := locale.NewCatalog("en")
	require.NoError(t, err)
	store, err := settings.Open(filepath.Join(t.TempDir(), "settings.yaml"))
	require.NoError(t, err)
	journal := citation.Journal{ID: "7", Title: "J", PrimaryLocale: "pt_BR"}
	return abnt.NewSettingsForm(store, catalog, journal), store, catalog
}

func TestSettingsFormSave(t *testing.T) {
	form, store, _ := newForm(t)

	outcome, err := form.Handle(true, map[string]string{
		"location[pt_BR]": " Rio de Janeiro ",
		"location[en]":    "Rio de Janeiro",
		"unrelated":       "ignored",
	})
	require.NoError(t, err)
	assert.Equal(t, abnt.Saved, outcome)

	values, ok := store.GetLocalized("7", abnt.PluginName, abnt.SettingLocation)
	require.True(t, ok)
	assert.Equal(t, map[string]string{"pt-BR": "Rio de Janeiro", "en": "Rio de Janeiro"}, values)

	got, ok := abnt.LocalizedLocation(store, citation.Journal{ID: "7"}, "es", "pt-BR")
	require.True(t, ok)
	assert.Equal(t, "Rio de Janeiro", got)
}

func TestSettingsFormRequiresPrimaryLocale(t *testing.T) {
	form, store, _ := newForm(t)

	outcome, err := form.Handle(true, map[string]string{"location": "Somewhere"})
	require.NoError(t, err)
	assert.Equal(t, abnt.Display, outcome)
	require.Len(t, form.Errors(), 1)
	assert.Equal(t, "Please enter the city of publication for the primary locale.", form.Errors()[0])

	_, ok := store.Get("7", abnt.PluginName, abnt.SettingLocation)
	assert.False(t, ok, "invalid input is not persisted")
}

func TestSettingsFormRejectsUnsupportedLocale(t *testing.T) {
	form, _, _ := newForm(t)

	outcome, err := form.Handle(true, map[string]string{
		"location[pt_BR]": "Recife",
		"location[xx]":    "Nowhere",
	})
	require.NoError(t, err)
	assert.Equal(t, abnt.Display, outcome)
	assert.Equal(t, []string{"Unsupported locale: xx"}, form.Errors())
}

func TestSettingsFormDisplay(t *testing.T) {
	form, store, _ := newForm(t)
	require.NoError(t, store.Set("7", abnt.PluginName, abnt.SettingLocation, map[string]string{"pt_BR": "Recife"}))

	outcome, err := form.Handle(false, nil)
	require.NoError(t, err)
	assert.Equal(t, abnt.Display, outcome)
	assert.Equal(t, "Recife", form.Location["pt-BR"])

	// A locale resubmission keeps what the user typed instead of reloading.
	resubmit, _, _ := newForm(t)
	outcome, err = resubmit.Handle(false, map[string]string{"location[en]": "Typed"})
	require.NoError(t, err)
	assert.Equal(t, abnt.Display, outcome)
	assert.Equal(t, "Typed", resubmit.Location["en"])
}

func TestLocalizedLocationWithoutStore(t *testing.T) {
	_, ok := abnt.LocalizedLocation(nil, citation.Journal{ID: "1"}, "en", "en")
	assert.False(t, ok)
}
