package citation_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lehigh-university-libraries/citestyle/citation"
)

func TestParseName(t *testing.T) {
	tests := []struct {
		in   string
		want citation.Author
	}{
		{"Ada Lovelace", citation.Author{Given: "Ada", Family: "Lovelace"}},
		{"Lovelace, Ada King", citation.Author{Given: "Ada", Middle: "King", Family: "Lovelace"}},
		{"Maria da Silva", citation.Author{Given: "Maria", Family: "da Silva"}},
		{"João Carlos dos Santos Neto", citation.Author{Given: "João", Middle: "Carlos", Family: "dos Santos", Suffix: "Neto"}},
		{"Ludwig van Beethoven", citation.Author{Given: "Ludwig", Family: "van Beethoven"}},
		{"Martin Luther King Jr.", citation.Author{Given: "Martin", Middle: "Luther", Family: "King", Suffix: "Jr."}},
		{"Plato", citation.Author{Family: "Plato"}},
		{"  Ada   Lovelace ", citation.Author{Given: "Ada", Family: "Lovelace"}},
		{"", citation.Author{}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, citation.ParseName(tt.in))
		})
	}
}

func TestAuthorForms(t *testing.T) {
	a := citation.Author{Given: "Martin", Middle: "Luther", Family: "King", Suffix: "Jr."}
	assert.Equal(t, "King Jr., Martin Luther", a.Inverted())
	assert.Equal(t, "Martin Luther King Jr.", a.Direct())
	assert.Equal(t, "Plato", citation.Author{Family: "Plato"}.Inverted())
}

const sampleYAML = `journal:
  id: "1"
  title: Revista Brasileira de Testes
  issn: 1234-5678
  primary_locale: pt_BR
issue:
  volume: "12"
  number: "3"
  year: 2024
  date_published: "2024-09-15"
article:
  title: Sobre a formatação de datas
  pages: 10-20
  doi: 10.1234/rbt.v12i3.42
  authors:
    - Maria da Silva
    - given: John
      family: Smith
`

func TestLoadYAML(t *testing.T) {
	c, err := citation.Load(strings.NewReader(sampleYAML), "yaml")
	require.NoError(t, err)
	require.NoError(t, c.Validate())

	assert.Equal(t, "Revista Brasileira de Testes", c.Journal.Title)
	require.Len(t, c.Article.Authors, 2)
	assert.Equal(t, "da Silva", c.Article.Authors[0].Family)
	assert.Equal(t, "Smith", c.Article.Authors[1].Family)
	assert.Equal(t, "2024", c.Year())

	d, ok, err := c.PublicationDate()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, time.September, d.Month())
}

func TestLoadJSONSniffed(t *testing.T) {
	in := `{"journal": {"title": "J"}, "issue": {"year": 2020}, "article": {"title": "T", "authors": ["Ada Lovelace", {"given": "Alan", "family": "Turing"}]}}`
	c, err := citation.Load(strings.NewReader(in), "")
	require.NoError(t, err)
	require.NoError(t, c.Validate())
	assert.Equal(t, "Lovelace", c.Article.Authors[0].Family)
	assert.Equal(t, "Turing", c.Article.Authors[1].Family)

	d, ok, err := c.PublicationDate()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, 2020, d.Year())
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "article.yml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	c, err := citation.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "12", c.Issue.Volume)

	_, err = citation.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = citation.Load(strings.NewReader("x"), "xml")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	c := &citation.Citation{}
	err := c.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "article.title")
	assert.Contains(t, err.Error(), "journal.title")
	assert.Contains(t, err.Error(), "article.authors")
}

func TestPublicationDateInvalid(t *testing.T) {
	c := &citation.Citation{Issue: citation.Issue{DatePublished: "someday"}}
	_, _, err := c.PublicationDate()
	assert.Error(t, err)

	c = &citation.Citation{}
	_, ok, err := c.PublicationDate()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, "", c.Year())
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"On <i>Dates</i>", "On Dates"},
		{"H<sub>2</sub>O &amp; salt", "H2O & salt"},
		{"  spaced\n\tout  ", "spaced out"},
		{"<!-- note -->Title", "Title"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, citation.CleanText(tt.in), tt.in)
	}
}

func TestLoadNormalizesTitles(t *testing.T) {
	c, err := citation.Load(strings.NewReader(`
journal:
  title: "Revista <b>Brasileira</b>"
article:
  title: "Sobre <i>datas</i>"
  authors:
    - "Maria da Silva"
`), "yaml")
	require.NoError(t, err)
	assert.Equal(t, "Revista Brasileira", c.Journal.Title)
	assert.Equal(t, "Sobre datas", c.Article.Title)
}
