package locale_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lehigh-university-libraries/citestyle/locale"
)

func TestCanonical(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"pt_BR", "pt-BR"},
		{"pt-BR", "pt-BR"},
		{"EN", "en"},
		{" en_US ", "en-US"},
		{"", ""},
		{"not a locale", "not a locale"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, locale.Canonical(tt.in))
		})
	}
}

func TestMonthNamesLookup(t *testing.T) {
	names := locale.MonthNames{
		"pt-BR": {"janeiro", "fevereiro", "março", "abril", "maio", "junho", "julho", "agosto", "setembro", "outubro", "novembro", "dezembro"},
		"short": {"a", "b"},
	}

	got, ok := names.Lookup("pt_BR")
	require.True(t, ok)
	assert.Equal(t, "maio", got[4])

	_, ok = names.Lookup("xx")
	assert.False(t, ok)

	_, ok = names.Lookup("short")
	assert.False(t, ok, "tables without 12 names are not usable")
}

func TestMonthNamesLookupCanonicalCollision(t *testing.T) {
	hyphen := []string{"janeiro", "fevereiro", "março", "abril", "maio", "junho", "julho", "agosto", "setembro", "outubro", "novembro", "dezembro"}
	underscore := []string{"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho", "Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro"}
	names := locale.MonthNames{"pt_BR": underscore, "pt-BR": hyphen}

	for i := 0; i < 50; i++ {
		got, ok := names.Lookup("pt-br")
		require.True(t, ok)
		assert.Equal(t, "maio", got[4])
	}

	got, ok := names.Lookup("pt_BR")
	require.True(t, ok)
	assert.Equal(t, "Maio", got[4], "an exact key is used as is")
}

func TestMonthNamesValidate(t *testing.T) {
	err := locale.MonthNames{"en": {"January"}}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 12 names")
}

func TestParseMonthNames(t *testing.T) {
	single := []byte(`locale: it_IT
months: [gennaio, febbraio, marzo, aprile, maggio, giugno, luglio, agosto, settembre, ottobre, novembre, dicembre]
`)
	table, err := locale.ParseMonthNames(single)
	require.NoError(t, err)
	names, ok := table.Lookup("it-IT")
	require.True(t, ok)
	assert.Equal(t, "maggio", names[4])

	multi := []byte(`nl:
  [januari, februari, maart, april, mei, juni, juli, augustus, september, oktober, november, december]
`)
	table, err = locale.ParseMonthNames(multi)
	require.NoError(t, err)
	names, ok = table.Lookup("nl")
	require.True(t, ok)
	assert.Equal(t, "mei", names[4])

	_, err = locale.ParseMonthNames([]byte("locale: en\nmonths: [January]\n"))
	assert.Error(t, err)
}

func TestLoadMonthNamesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "months.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`locale: tr
months: [Ocak, Şubat, Mart, Nisan, Mayıs, Haziran, Temmuz, Ağustos, Eylül, Ekim, Kasım, Aralık]
`), 0o644))

	table, err := locale.LoadMonthNamesFile(path)
	require.NoError(t, err)
	names, ok := table.Lookup("tr")
	require.True(t, ok)
	assert.Equal(t, "Eylül", names[8])

	_, err = locale.LoadMonthNamesFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestCatalogEmbeddedTables(t *testing.T) {
	c, err := locale.NewCatalog("pt_BR")
	require.NoError(t, err)

	assert.Equal(t, "pt-BR", c.PrimaryLocale())
	assert.Equal(t, "pt-BR", c.CurrentLocale())

	for _, loc := range []string{"en", "pt-BR", "es", "fr", "de", "it"} {
		names, err := c.FullMonthNames(loc)
		require.NoError(t, err, loc)
		assert.Len(t, names, 12, loc)
	}

	_, err = c.FullMonthNames("xx")
	assert.Error(t, err)

	assert.Equal(t, "pt-BR", c.Supported()[0])
	assert.True(t, c.IsSupported("fr"))
	assert.False(t, c.IsSupported("ja"))
}

func TestCatalogWithLocale(t *testing.T) {
	c, err := locale.NewCatalog("en")
	require.NoError(t, err)

	es := c.WithLocale("es")
	assert.Equal(t, "es", es.CurrentLocale())
	assert.Equal(t, "en", es.PrimaryLocale())
	assert.Equal(t, "en", c.CurrentLocale(), "original catalog is unchanged")
}

func TestCatalogMerge(t *testing.T) {
	c, err := locale.NewCatalog("en")
	require.NoError(t, err)

	require.NoError(t, c.Merge(locale.MonthNames{
		"nl": {"januari", "februari", "maart", "april", "mei", "juni", "juli", "augustus", "september", "oktober", "november", "december"},
	}))
	assert.True(t, c.IsSupported("nl"))

	assert.Error(t, c.Merge(locale.MonthNames{"xx": {"one"}}))
}

func TestCatalogMatch(t *testing.T) {
	c, err := locale.NewCatalog("en")
	require.NoError(t, err)

	assert.Equal(t, "pt-BR", c.Match("pt_BR"))
	assert.Equal(t, "en", c.Match("ja"))
}

func TestCatalogTr(t *testing.T) {
	c, err := locale.NewCatalog("en")
	require.NoError(t, err)

	assert.Equal(t, "Formato de citação ABNT", c.Tr("pt_BR", "plugins.citationFormats.abnt.displayName"))
	assert.Equal(t, "ABNT Citation Format", c.Tr("en", "plugins.citationFormats.abnt.displayName"))
	// fr has month names but no catalog, so the primary locale answers
	assert.Equal(t, "ABNT Citation Format", c.Tr("fr", "plugins.citationFormats.abnt.displayName"))
	assert.Equal(t, "Acesso em: 15 set. 2024", c.Tr("pt-BR", "plugins.citationFormats.abnt.accessed", "15 set. 2024"))
	assert.Equal(t, "no.such.key", c.Tr("en", "no.such.key"))
}

func TestCatalogTrSingularMessages(t *testing.T) {
	c, err := locale.NewCatalog("pt_BR")
	require.NoError(t, err)

	tests := []struct {
		loc, msgid string
		vars       []string
		want       string
	}{
		{"en", "plugins.citationOutput.mla.displayName", nil, "MLA Citation Output"},
		{"pt-BR", "plugins.citationFormats.abnt.availableAt", []string{"https://example.org"}, "Disponível em: <https://example.org>"},
		{"en", "plugins.citationFormats.abnt.accessed", []string{"18 Oct. 2026"}, "Accessed on: 18 Oct. 2026"},
		{"es", "plugins.citationFormats.abnt.location.required", nil, "Introduzca la ciudad de publicación en el idioma principal."},
		// fr has no catalog; the pt-BR primary answers
		{"fr", "plugins.citationFormats.abnt.accessed", []string{"18 out. 2026"}, "Acesso em: 18 out. 2026"},
		// untranslated keys come back untouched, arguments dropped
		{"en", "no.such.key", []string{"x"}, "no.such.key"},
	}
	for _, tt := range tests {
		got := c.Tr(tt.loc, tt.msgid, tt.vars...)
		assert.Equal(t, tt.want, got, "%s %s", tt.loc, tt.msgid)
		assert.NotContains(t, got, "%!")
	}
}
