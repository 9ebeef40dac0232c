package combiner

import (
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Placeholder values recognized in template fields. Each alias tuple
// supplies the substitutions for one copy of the template.
const (
	PlaceholderPS1 = "PS1"
	PlaceholderPS2 = "PS2"
)

// Alias is one substitution tuple: the device names replacing PS1 and PS2
// in a single expansion of the template.
type Alias []string

// ParseAliases decodes an alias file: a YAML list of tuples.
func ParseAliases(data []byte) ([]Alias, error) {
	var aliases []Alias
	if err := yaml.Unmarshal(data, &aliases); err != nil {
		return nil, fmt.Errorf("unmarshaling aliases: %w", err)
	}
	for i, alias := range aliases {
		if len(alias) < 2 {
			return nil, fmt.Errorf("alias %d has %d entries, need at least 2 (PS1 and PS2 substitutions)", i, len(alias))
		}
	}
	return aliases, nil
}

// LoadAliases reads and parses an alias file.
func LoadAliases(fsys afero.Fs, path string) ([]Alias, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("reading alias file '%s': %w", path, err)
	}
	aliases, err := ParseAliases(data)
	if err != nil {
		return nil, fmt.Errorf("parsing alias file '%s': %w", path, err)
	}
	return aliases, nil
}
