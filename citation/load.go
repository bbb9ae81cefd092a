package citation

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load decodes a citation from r. ext selects the decoder ("json", or
// "yaml"/"yml"); when empty the content is sniffed. Text fields are
// cleaned with Normalize.
func Load(r io.Reader, ext string) (*Citation, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading citation: %w", err)
	}

	ext = strings.ToLower(strings.TrimPrefix(ext, "."))
	if ext == "" {
		ext = "yaml"
		if trimmed := strings.TrimSpace(string(data)); strings.HasPrefix(trimmed, "{") {
			ext = "json"
		}
	}

	var c Citation
	switch ext {
	case "json":
		if err := json.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("parsing citation JSON: %w", err)
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &c); err != nil {
			return nil, fmt.Errorf("parsing citation YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported citation file type %q", ext)
	}
	c.Normalize()
	return &c, nil
}

// LoadFile reads a citation from a .json, .yaml or .yml file.
func LoadFile(path string) (c *Citation, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening citation file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("closing citation file: %w", cerr)
		}
	}()
	return Load(f, filepath.Ext(path))
}
