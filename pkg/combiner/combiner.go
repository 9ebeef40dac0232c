// Package combiner expands a page template over a list of device aliases
// and stitches the result between optional header and footer fragments.
// One invocation produces one generated page: header rows, then one copy
// of the template per alias tuple, then footer rows.
package combiner

import (
	"fmt"
	"io"

	"github.com/spf13/afero"

	"github.com/epics-tec/pagesmith/pkg/pageconfig"
)

// Inputs names the files consumed by one combine invocation. Header and
// Footer are optional; an empty path contributes no rows.
type Inputs struct {
	Template string
	Aliases  string
	Header   string
	Footer   string
}

// Combiner merges template, alias, header and footer files into a
// generated page.
type Combiner struct {
	fs afero.Fs
}

// New creates a Combiner reading through the given filesystem. A nil
// filesystem means the OS filesystem.
func New(fsys afero.Fs) *Combiner {
	if fsys == nil {
		fsys = afero.NewOsFs()
	}
	return &Combiner{fs: fsys}
}

// Combine runs one merge pass and writes the generated page as YAML to w.
func (c *Combiner) Combine(in Inputs, w io.Writer) error {
	page, err := c.Generate(in)
	if err != nil {
		return err
	}

	data, err := page.Marshal()
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing combined output: %w", err)
	}
	return nil
}

// Generate runs one merge pass and returns the generated page.
func (c *Combiner) Generate(in Inputs) (pageconfig.Page, error) {
	aliases, err := LoadAliases(c.fs, in.Aliases)
	if err != nil {
		return nil, err
	}

	template, err := pageconfig.Load(c.fs, in.Template)
	if err != nil {
		return nil, err
	}

	var header, footer pageconfig.Page
	if in.Header != "" {
		if header, err = pageconfig.Load(c.fs, in.Header); err != nil {
			return nil, err
		}
	}
	if in.Footer != "" {
		if footer, err = pageconfig.Load(c.fs, in.Footer); err != nil {
			return nil, err
		}
	}

	combined := make(pageconfig.Page, 0, len(header)+len(template)*len(aliases)+len(footer))
	combined = append(combined, header...)
	combined = append(combined, Expand(template, aliases)...)
	combined = append(combined, footer...)
	return combined, nil
}

// Expand repeats the template once per alias tuple, substituting the PS1
// and PS2 placeholders in each copy. The template itself is never
// modified.
func Expand(template pageconfig.Page, aliases []Alias) pageconfig.Page {
	out := make(pageconfig.Page, 0, len(template)*len(aliases))
	for _, alias := range aliases {
		block := template.Clone()
		for _, row := range block {
			for i := range row {
				substitute(&row[i], alias)
			}
		}
		out = append(out, block...)
	}
	return out
}

// substitute rewrites the placeholder values of a single field. Only
// exact matches on device_name and markup are replaced; everything else
// is left alone.
func substitute(field *pageconfig.Field, alias Alias) {
	switch field.DeviceName {
	case PlaceholderPS1:
		field.DeviceName = alias[0]
	case PlaceholderPS2:
		field.DeviceName = alias[1]
	}

	switch field.Markup {
	case PlaceholderPS1:
		field.Markup = alias[0]
	case PlaceholderPS2:
		field.Markup = alias[1]
	}
}
