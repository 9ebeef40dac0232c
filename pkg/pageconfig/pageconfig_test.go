package pageconfig

import (
	"strings"
	"testing"
)

const samplePage = `
- - {markup: Quadrupoles, type: text, width: 13, wrap: clip}
- - {markup: Device, type: text, width: 10}
  - {device_name: QF1, pv_name: Current, type: getPV, width: 12, unit: A}
  - {device_name: QF1, pv_name: Current-SP, type: setPV, width: 12, display_precision: 3}
  - {pv_name: QF1:Status, type: LED, width: 3, green_values: [1], red_values: [0]}
- - {type: divider, width: 40}
- - {markup: Disabled, type: text, width: 8, enable: false}
`

func TestParse(t *testing.T) {
	page, err := Parse([]byte(samplePage))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if len(page) != 4 {
		t.Fatalf("Expected 4 rows, got %d", len(page))
	}
	if len(page[1]) != 4 {
		t.Fatalf("Expected 4 fields in row 1, got %d", len(page[1]))
	}

	title := page[0][0]
	if title.Type != TypeText || title.Markup != "Quadrupoles" || title.Width != 13 {
		t.Errorf("Unexpected title field: %+v", title)
	}
	if title.Wrap != "clip" {
		t.Errorf("Expected wrap 'clip', got %q", title.Wrap)
	}

	pv := page[1][1]
	if pv.FullPVName() != "QF1:Current" {
		t.Errorf("Expected full PV name 'QF1:Current', got %q", pv.FullPVName())
	}

	sp := page[1][2]
	if sp.DisplayPrecision == nil || *sp.DisplayPrecision != 3 {
		t.Errorf("Expected display precision 3, got %v", sp.DisplayPrecision)
	}

	disabled := page[3][0]
	if disabled.Enabled() {
		t.Error("Expected field with enable: false to report disabled")
	}
}

func TestParseKeepsUnknownKeys(t *testing.T) {
	page, err := Parse([]byte(`- - {markup: x, type: text, width: 5, future_key: 7}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if got, ok := page[0][0].Raw["future_key"]; !ok || got != 7 {
		t.Errorf("Expected future_key preserved in Raw, got %v", page[0][0].Raw)
	}

	data, err := page.Marshal()
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if !strings.Contains(string(data), "future_key") {
		t.Errorf("Expected future_key to survive a round trip, got:\n%s", data)
	}
}

func TestParseInvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("{foo: [unclosed")); err == nil {
		t.Error("Expected error for invalid YAML, got nil")
	}
}

func TestNormalize(t *testing.T) {
	page, err := Parse([]byte(samplePage))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	normalized := page.Normalize()

	if len(normalized[3]) != 0 {
		t.Errorf("Expected disabled field to be dropped, got %d fields", len(normalized[3]))
	}
	if got := normalized[1][1].PVName; got != "QF1:Current" {
		t.Errorf("Expected device name folded into pv_name, got %q", got)
	}
	if normalized[1][1].DeviceName != "" {
		t.Error("Expected device_name cleared after normalization")
	}

	// The source page must not be touched.
	if page[1][1].PVName != "Current" || page[1][1].DeviceName != "QF1" {
		t.Error("Normalize modified the original page")
	}
}

func TestClone(t *testing.T) {
	page, err := Parse([]byte(samplePage))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	clone := page.Clone()
	clone[1][1].DeviceName = "changed"
	clone[1][3].GreenValues[0] = 99

	if page[1][1].DeviceName != "QF1" {
		t.Error("Clone shares field data with the original")
	}
	if page[1][3].GreenValues[0] == 99 {
		t.Error("Clone shares LED value slices with the original")
	}
}

func TestFieldLabel(t *testing.T) {
	tests := []struct {
		name  string
		field Field
		want  string
	}{
		{"pv with device", Field{DeviceName: "QF1", PVName: "Current"}, "QF1:Current"},
		{"bare pv", Field{PVName: "SR:Current"}, "SR:Current"},
		{"markup", Field{Type: TypeText, Markup: "Title"}, "Title"},
		{"button text", Field{Type: TypeButton, Text: "Reset"}, "Reset"},
		{"fallback", Field{Type: TypeDivider}, "divider"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.field.Label(); got != tt.want {
				t.Errorf("Label() = %q, want %q", got, tt.want)
			}
		})
	}
}
