package pageconfig

import (
	"bytes"
	"fmt"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// Parse decodes a page configuration from YAML.
func Parse(data []byte) (Page, error) {
	var page Page
	if err := yaml.Unmarshal(data, &page); err != nil {
		return nil, fmt.Errorf("unmarshaling page config: %w", err)
	}
	return page, nil
}

// Load reads and parses a page configuration file.
func Load(fsys afero.Fs, path string) (Page, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("reading page config '%s': %w", path, err)
	}
	page, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parsing page config '%s': %w", path, err)
	}
	return page, nil
}

// Marshal encodes the page as YAML using two-space indentation.
func (p Page) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(p); err != nil {
		return nil, fmt.Errorf("marshaling page config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("marshaling page config: %w", err)
	}
	return buf.Bytes(), nil
}
