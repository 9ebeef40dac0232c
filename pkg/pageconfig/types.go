package pageconfig

// Widget types understood by the terminal client.
const (
	TypeText    = "text"
	TypeDivider = "divider"
	TypeLED     = "LED"
	TypeGetPV   = "getPV"
	TypeSetPV   = "setPV"
	TypeButton  = "button"
)

// Page is a full page configuration: a list of rows, each holding the
// fields drawn side by side in that row.
type Page []Row

type Row []Field

// Field is a single widget slot in a row. Keys not modeled here are kept
// in Raw so round-tripping a page never loses data.
type Field struct {
	Type             string        `yaml:"type,omitempty" json:"type,omitempty"`
	Width            int           `yaml:"width,omitempty" json:"width,omitempty" validate:"gte=0"`
	Markup           string        `yaml:"markup,omitempty" json:"markup,omitempty"`
	Text             string        `yaml:"text,omitempty" json:"text,omitempty"`
	DeviceName       string        `yaml:"device_name,omitempty" json:"device_name,omitempty"`
	PVName           string        `yaml:"pv_name,omitempty" json:"pv_name,omitempty"`
	Unit             string        `yaml:"unit,omitempty" json:"unit,omitempty"`
	Enum             bool          `yaml:"enum,omitempty" json:"enum,omitempty"`
	DisplayPrecision *int          `yaml:"display_precision,omitempty" json:"display_precision,omitempty"`
	Scientific       bool          `yaml:"scientific,omitempty" json:"scientific,omitempty"`
	AlignText        string        `yaml:"align_text,omitempty" json:"align_text,omitempty" validate:"omitempty,oneof=left center right"`
	Wrap             string        `yaml:"wrap,omitempty" json:"wrap,omitempty"`
	Script           string        `yaml:"script,omitempty" json:"script,omitempty"`
	Enable           *bool         `yaml:"enable,omitempty" json:"enable,omitempty"`
	ClickValue       interface{}   `yaml:"click_value,omitempty" json:"click_value,omitempty"`
	RedValues        []interface{} `yaml:"red_values,omitempty" json:"red_values,omitempty"`
	GreenValues      []interface{} `yaml:"green_values,omitempty" json:"green_values,omitempty"`
	YellowValues     []interface{} `yaml:"yellow_values,omitempty" json:"yellow_values,omitempty"`
	ExcludeSelection bool          `yaml:"exclude_selection,omitempty" json:"exclude_selection,omitempty"`

	Raw map[string]interface{} `yaml:",inline" json:"-"`
}

// Enabled reports whether the field should be drawn. A missing enable key
// means enabled.
func (f Field) Enabled() bool {
	return f.Enable == nil || *f.Enable
}

// FullPVName returns the PV name with the device name prefix joined in,
// the same way the terminal client resolves it before connecting.
func (f Field) FullPVName() string {
	if f.DeviceName != "" && f.PVName != "" {
		return f.DeviceName + ":" + f.PVName
	}
	return f.PVName
}

// Label returns a human-readable identifier for the field, preferring the
// PV it is bound to.
func (f Field) Label() string {
	if pv := f.FullPVName(); pv != "" {
		return pv
	}
	if f.Markup != "" {
		return f.Markup
	}
	if f.Text != "" {
		return f.Text
	}
	return f.Type
}

// Clone returns a deep copy of the field.
func (f Field) Clone() Field {
	out := f
	if f.DisplayPrecision != nil {
		v := *f.DisplayPrecision
		out.DisplayPrecision = &v
	}
	if f.Enable != nil {
		v := *f.Enable
		out.Enable = &v
	}
	out.RedValues = cloneValues(f.RedValues)
	out.GreenValues = cloneValues(f.GreenValues)
	out.YellowValues = cloneValues(f.YellowValues)
	if f.Raw != nil {
		out.Raw = make(map[string]interface{}, len(f.Raw))
		for k, v := range f.Raw {
			out.Raw[k] = v
		}
	}
	return out
}

// Clone returns a deep copy of the page.
func (p Page) Clone() Page {
	out := make(Page, len(p))
	for i, row := range p {
		out[i] = make(Row, len(row))
		for j, field := range row {
			out[i][j] = field.Clone()
		}
	}
	return out
}

// Normalize applies the transformations the terminal client performs while
// loading a page: fields with enable: false are dropped and device names
// are folded into the PV name.
func (p Page) Normalize() Page {
	out := make(Page, 0, len(p))
	for _, row := range p {
		newRow := make(Row, 0, len(row))
		for _, field := range row {
			if !field.Enabled() {
				continue
			}
			f := field.Clone()
			f.PVName = f.FullPVName()
			f.DeviceName = ""
			f.Enable = nil
			newRow = append(newRow, f)
		}
		out = append(out, newRow)
	}
	return out
}

func cloneValues(in []interface{}) []interface{} {
	if in == nil {
		return nil
	}
	out := make([]interface{}, len(in))
	copy(out, in)
	return out
}
