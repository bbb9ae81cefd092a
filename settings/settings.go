// Package settings persists per-journal plugin settings in
// $CITESTYLE_HOME/settings.yaml (default ~/.citestyle).
package settings

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/lehigh-university-libraries/citestyle/locale"
)

// EnvHome overrides the configuration directory.
const EnvHome = "CITESTYLE_HOME"

// configDirOverride holds a user-specified configuration directory.
var configDirOverride string

// SetConfigDir overrides the default configuration directory.
func SetConfigDir(dir string) {
	configDirOverride = dir
}

// ConfigDir returns the citestyle configuration directory.
func ConfigDir() (string, error) {
	if configDirOverride != "" {
		return configDirOverride, nil
	}
	if dir := os.Getenv(EnvHome); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(home, ".citestyle"), nil
}

// DefaultPath returns the settings file inside ConfigDir.
func DefaultPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "settings.yaml"), nil
}

// document is the file layout: journal ID -> plugin -> setting -> value.
// A value is a string or a locale -> string map.
type document struct {
	Journals map[string]map[string]map[string]any `yaml:"journals"`
}

// Store is a file-backed settings store. It is safe for concurrent use.
type Store struct {
	mu   sync.RWMutex
	path string
	doc  document
}

// Open loads the store at path. A missing file yields an empty store that
// is created on the first Set.
func Open(path string) (*Store, error) {
	s := &Store{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("settings file not found, starting empty", "path", path)
			return s, nil
		}
		return nil, fmt.Errorf("reading settings: %w", err)
	}

	if err := yaml.Unmarshal(data, &s.doc); err != nil {
		return nil, fmt.Errorf("parsing settings: %w", err)
	}
	return s, nil
}

// OpenDefault opens the store at DefaultPath.
func OpenDefault() (*Store, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return Open(path)
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Get returns a raw setting value.
func (s *Store) Get(journalID, plugin, name string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.doc.Journals[journalID][plugin][name]
	return v, ok
}

// GetString returns a plain string setting.
func (s *Store) GetString(journalID, plugin, name string) (string, bool) {
	v, ok := s.Get(journalID, plugin, name)
	if !ok {
		return "", false
	}
	str, ok := v.(string)
	return str, ok
}

// GetLocalized returns a localised setting as a locale -> value map with
// canonical locale keys. A plain string setting is not localised and
// reports false.
func (s *Store) GetLocalized(journalID, plugin, name string) (map[string]string, bool) {
	v, ok := s.Get(journalID, plugin, name)
	if !ok {
		return nil, false
	}
	raw, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	out := make(map[string]string, len(raw))
	for loc, val := range raw {
		if str, ok := val.(string); ok {
			out[locale.Canonical(loc)] = str
		}
	}
	return out, true
}

// Set stores value (a string or map[string]string) and writes the file.
func (s *Store) Set(journalID, plugin, name string, value any) error {
	switch v := value.(type) {
	case string:
	case map[string]string:
		m := make(map[string]any, len(v))
		for loc, val := range v {
			m[locale.Canonical(loc)] = val
		}
		value = m
	default:
		return fmt.Errorf("unsupported setting type %T", value)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.doc.Journals == nil {
		s.doc.Journals = make(map[string]map[string]map[string]any)
	}
	if s.doc.Journals[journalID] == nil {
		s.doc.Journals[journalID] = make(map[string]map[string]any)
	}
	if s.doc.Journals[journalID][plugin] == nil {
		s.doc.Journals[journalID][plugin] = make(map[string]any)
	}
	s.doc.Journals[journalID][plugin][name] = value

	return s.save()
}

// Names lists the settings stored for a journal's plugin, sorted.
func (s *Store) Names(journalID, plugin string) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var names []string
	for name := range s.doc.Journals[journalID][plugin] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// save writes the document atomically. Callers hold s.mu.
func (s *Store) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}

	data, err := yaml.Marshal(&s.doc)
	if err != nil {
		return fmt.Errorf("marshaling settings: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replacing settings: %w", err)
	}
	slog.Debug("saved settings", "path", s.path)
	return nil
}

// Localized picks the value for current, falling back to primary. Keys
// and arguments are compared in canonical form; empty values count as
// missing.
func Localized(values map[string]string, current, primary string) (string, bool) {
	if len(values) == 0 {
		return "", false
	}
	byCanonical := make(map[string]string, len(values))
	for loc, v := range values {
		byCanonical[locale.Canonical(loc)] = v
	}
	for _, loc := range []string{current, primary} {
		if v := strings.TrimSpace(byCanonical[locale.Canonical(loc)]); v != "" {
			return v, true
		}
	}
	return "", false
}
