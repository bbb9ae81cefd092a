package style_test

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lehigh-university-libraries/citestyle/citation"
	"github.com/lehigh-university-libraries/citestyle/locale"
	"github.com/lehigh-university-libraries/citestyle/style"
)

type fakeStyle struct{ name string }

func (f fakeStyle) Name() string       { return f.name }
func (f fakeStyle) PluginName() string { return "Fake" + f.name }
func (f fakeStyle) MessageKey() string { return "plugins.fake" }
func (f fakeStyle) Cite(io.Writer, *citation.Citation, *style.Options) error {
	return nil
}

func TestRegistry(t *testing.T) {
	r := style.NewRegistry()
	r.Register(fakeStyle{name: "Beta"})
	r.Register(fakeStyle{name: "alpha"})

	assert.Equal(t, []string{"alpha", "beta"}, r.List())

	s, ok := r.Get("BETA")
	require.True(t, ok)
	assert.Equal(t, "Beta", s.Name())

	s, ok = r.Get("fakealpha")
	require.True(t, ok)
	assert.Equal(t, "alpha", s.Name())

	_, err := r.Lookup("gamma")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "available: alpha, beta")
}

func TestTerminate(t *testing.T) {
	assert.Equal(t, "Title.", style.Terminate("Title", "."))
	assert.Equal(t, "Title?", style.Terminate("Title?", "."))
	assert.Equal(t, "et al.", style.Terminate(" et al. ", "."))
	assert.Equal(t, "", style.Terminate("  ", "."))
}

func TestOptions(t *testing.T) {
	catalog, err := locale.NewCatalog("pt_BR")
	require.NoError(t, err)

	opts := style.NewOptions(catalog)
	assert.False(t, opts.AccessDate.IsZero())
	assert.Equal(t, "pt-BR", opts.CurrentLocale())
	assert.Equal(t, "pt-BR", opts.PrimaryLocale(citation.Journal{}))
	assert.Equal(t, "en", opts.PrimaryLocale(citation.Journal{PrimaryLocale: "en_US"})[:2])

	opts.Locale = "es"
	assert.Equal(t, "es", opts.CurrentLocale())

	assert.Equal(t, "a < b", opts.Escape("a < b"))
	assert.Equal(t, "T", opts.Strong("T"))
	opts.HTML = true
	assert.Equal(t, "a &lt; b", opts.Escape("a < b"))
	assert.Equal(t, "<strong>T</strong>", opts.Strong("T"))
	assert.Equal(t, "<em>T &amp; U</em>", opts.Emphasis("T & U"))

	var empty style.Options
	assert.Equal(t, locale.BaseLocale, empty.CurrentLocale())
	assert.Equal(t, "key", empty.Tr("key"))
}
