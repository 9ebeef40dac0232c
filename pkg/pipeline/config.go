package pipeline

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// SextupolesTitleRow is the literal row the original SR-PS pipeline
// appends between the quadrupole and sextupole passes, byte for byte.
const SextupolesTitleRow = "- - {markup: Sextupoles, type: text, width: 13, wrap: clip}"

// Pass describes one combine invocation plus the literal lines appended
// to its output afterwards. A pass may name an earlier pass's output as
// its header, which is how multi-section pages are built up.
type Pass struct {
	Name        string   `yaml:"name" validate:"required"`
	Template    string   `yaml:"template" validate:"required"`
	Aliases     string   `yaml:"aliases" validate:"required"`
	Header      string   `yaml:"header,omitempty"`
	Footer      string   `yaml:"footer,omitempty"`
	Output      string   `yaml:"output" validate:"required"`
	AppendLines []string `yaml:"append_lines,omitempty"`
}

// Config is an ordered list of passes executed strictly in sequence.
type Config struct {
	Version string `yaml:"version,omitempty"`
	Passes  []Pass `yaml:"passes" validate:"required,min=1,dive"`
}

// LoadConfig reads and validates a pipeline configuration file.
func LoadConfig(fsys afero.Fs, path string) (*Config, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("reading pipeline config '%s': %w", path, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing pipeline config '%s': %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid pipeline config '%s': %w", path, err)
	}
	return &config, nil
}

// Validate checks the configuration for structural errors.
func (c *Config) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
	})

	if err := validate.Struct(c); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok {
			var problems []string
			for _, fe := range errs {
				problems = append(problems, fmt.Sprintf("%s fails %s constraint", fe.Namespace(), fe.Tag()))
			}
			return fmt.Errorf("%s", strings.Join(problems, "; "))
		}
		return err
	}

	names := lo.Map(c.Passes, func(p Pass, _ int) string { return p.Name })
	if dupes := lo.FindDuplicates(names); len(dupes) > 0 {
		return fmt.Errorf("duplicate pass names: %s", strings.Join(dupes, ", "))
	}

	outputs := lo.Map(c.Passes, func(p Pass, _ int) string { return p.Output })
	if dupes := lo.FindDuplicates(outputs); len(dupes) > 0 {
		return fmt.Errorf("multiple passes write the same output: %s", strings.Join(dupes, ", "))
	}

	return nil
}

// Marshal encodes the configuration as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("marshaling pipeline config: %w", err)
	}
	return data, nil
}

// DefaultConfig reproduces the original SR-PS generation pipeline: expand
// the general template over the quadrupole aliases, append the sextupole
// section title, then expand the same template over the sextupole aliases
// with the first output as the header.
func DefaultConfig() *Config {
	return &Config{
		Version: "1.0",
		Passes: []Pass{
			{
				Name:        "quads",
				Template:    "SR-PS-General-Template.yaml",
				Aliases:     "aliases-quads.yaml",
				Header:      "header.yaml",
				Footer:      "footer.yaml",
				Output:      "SR-PS-General_with_quads_From_template.yaml",
				AppendLines: []string{SextupolesTitleRow},
			},
			{
				Name:     "sexts",
				Template: "SR-PS-General-Template.yaml",
				Aliases:  "aliases-sexts.yaml",
				Header:   "SR-PS-General_with_quads_From_template.yaml",
				Footer:   "footer.yaml",
				Output:   "SR-PS-General.yaml",
			},
		},
	}
}
