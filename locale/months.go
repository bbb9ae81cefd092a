package locale

import (
	"fmt"
	"io/fs"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// MonthNames maps a locale identifier to its twelve full month names,
// January first.
type MonthNames map[string][]string

// monthFile is the on-disk shape of a month table.
type monthFile struct {
	Locale string   `yaml:"locale"`
	Months []string `yaml:"months"`
}

// Lookup returns the month names for loc. Identifiers are compared in
// canonical form, so "pt_BR" finds a table stored under "pt-BR". When
// several keys share a canonical form the lexically first one wins.
func (m MonthNames) Lookup(loc string) ([]string, bool) {
	if names, ok := m[loc]; ok {
		return names, len(names) == 12
	}
	want := Canonical(loc)
	if want == "" {
		return nil, false
	}
	match := ""
	found := false
	for key := range m {
		if Canonical(key) != want {
			continue
		}
		if !found || key < match {
			match, found = key, true
		}
	}
	if !found {
		return nil, false
	}
	names := m[match]
	return names, len(names) == 12
}

// Validate checks that every table holds exactly twelve non-empty names.
func (m MonthNames) Validate() error {
	for loc, names := range m {
		if len(names) != 12 {
			return fmt.Errorf("month table %s: expected 12 names, got %d", loc, len(names))
		}
		for i, name := range names {
			if strings.TrimSpace(name) == "" {
				return fmt.Errorf("month table %s: month %d is empty", loc, i+1)
			}
		}
	}
	return nil
}

// Locales returns the identifiers present in the table.
func (m MonthNames) Locales() []string {
	out := make([]string, 0, len(m))
	for loc := range m {
		out = append(out, loc)
	}
	return out
}

// ParseMonthNames decodes a YAML month table. Two shapes are accepted: a
// single table with locale/months keys, or a map of locale to name list.
func ParseMonthNames(data []byte) (MonthNames, error) {
	var single monthFile
	if err := yaml.Unmarshal(data, &single); err == nil && single.Locale != "" {
		out := MonthNames{Canonical(single.Locale): single.Months}
		return out, out.Validate()
	}

	var multi map[string][]string
	if err := yaml.Unmarshal(data, &multi); err != nil {
		return nil, fmt.Errorf("parsing month table YAML: %w", err)
	}
	out := make(MonthNames, len(multi))
	for loc, names := range multi {
		out[Canonical(loc)] = names
	}
	return out, out.Validate()
}

// LoadMonthNamesFile reads a month table from a YAML file.
func LoadMonthNamesFile(path string) (MonthNames, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading month table: %w", err)
	}
	return ParseMonthNames(data)
}

// loadMonthDir reads every *.yaml table in dir of fsys.
func loadMonthDir(fsys fs.FS, dir string) (MonthNames, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("reading month directory: %w", err)
	}

	out := make(MonthNames)
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		data, err := fs.ReadFile(fsys, dir+"/"+entry.Name())
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", entry.Name(), err)
		}
		table, err := ParseMonthNames(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", entry.Name(), err)
		}
		for loc, names := range table {
			out[loc] = names
		}
	}
	return out, nil
}
