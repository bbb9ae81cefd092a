package citation

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Author is a parsed personal name.
type Author struct {
	Given  string `yaml:"given,omitempty" json:"given,omitempty"`
	Middle string `yaml:"middle,omitempty" json:"middle,omitempty"`
	Family string `yaml:"family,omitempty" json:"family,omitempty"`
	Suffix string `yaml:"suffix,omitempty" json:"suffix,omitempty"`
}

var (
	// Suffixes that appear after a name
	suffixes = []string{"Jr.", "Jr", "Sr.", "Sr", "III", "II", "IV", "Neto", "Filho", "Júnior"}

	// Name particles that belong to the family name
	particles = []string{"van", "von", "de", "del", "della", "di", "da", "das", "do", "dos", "le", "la", "du", "der"}

	// Pattern for "Last, First Middle" format
	invertedNameRegex = regexp.MustCompile(`^([^,]+),\s*(.+)$`)

	multiSpaceRegex = regexp.MustCompile(`\s+`)
)

// ParseName splits a name in "First Middle Last" or "Last, First Middle"
// form. Particles such as "da" or "van" stay with the family name.
func ParseName(name string) Author {
	name = strings.TrimSpace(multiSpaceRegex.ReplaceAllString(name, " "))
	if name == "" {
		return Author{}
	}

	var a Author
	if matches := invertedNameRegex.FindStringSubmatch(name); matches != nil {
		a.Family = strings.TrimSpace(matches[1])
		rest, suffix := extractSuffix(strings.TrimSpace(matches[2]))
		a.Suffix = suffix

		parts := strings.Fields(rest)
		if len(parts) > 0 {
			a.Given = parts[0]
		}
		if len(parts) > 1 {
			a.Middle = strings.Join(parts[1:], " ")
		}
		return a
	}

	name, a.Suffix = extractSuffix(name)
	parts := strings.Fields(name)
	if len(parts) == 1 {
		a.Family = parts[0]
		return a
	}

	familyStart := len(parts) - 1
	for familyStart > 1 && isParticle(parts[familyStart-1]) {
		familyStart--
	}

	a.Given = parts[0]
	a.Family = strings.Join(parts[familyStart:], " ")
	if familyStart > 1 {
		a.Middle = strings.Join(parts[1:familyStart], " ")
	}
	return a
}

// extractSuffix strips a trailing generational suffix.
func extractSuffix(name string) (string, string) {
	for _, suffix := range suffixes {
		if strings.HasSuffix(name, ", "+suffix) {
			return strings.TrimSuffix(name, ", "+suffix), suffix
		}
		if strings.HasSuffix(name, " "+suffix) {
			return strings.TrimSuffix(name, " "+suffix), suffix
		}
	}
	return name, ""
}

func isParticle(word string) bool {
	lower := strings.ToLower(word)
	for _, p := range particles {
		if lower == p {
			return true
		}
	}
	return false
}

// GivenNames returns given and middle names joined.
func (a Author) GivenNames() string {
	return strings.TrimSpace(a.Given + " " + a.Middle)
}

// FamilyWithSuffix returns the family name followed by any suffix.
func (a Author) FamilyWithSuffix() string {
	if a.Suffix == "" {
		return a.Family
	}
	return a.Family + " " + a.Suffix
}

// Inverted returns "Family, Given Middle".
func (a Author) Inverted() string {
	given := a.GivenNames()
	family := a.FamilyWithSuffix()
	if given == "" {
		return family
	}
	return family + ", " + given
}

// Direct returns "Given Middle Family".
func (a Author) Direct() string {
	return strings.TrimSpace(a.GivenNames() + " " + a.FamilyWithSuffix())
}

// UnmarshalYAML accepts either a mapping or a plain name string.
func (a *Author) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*a = ParseName(node.Value)
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: author must be a string or mapping", node.Line)
	}
	type plain Author
	var p plain
	if err := node.Decode(&p); err != nil {
		return err
	}
	*a = Author(p)
	return nil
}

// UnmarshalJSON accepts either an object or a plain name string.
func (a *Author) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*a = ParseName(s)
		return nil
	}
	type plain Author
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return fmt.Errorf("decoding author: %w", err)
	}
	*a = Author(p)
	return nil
}
