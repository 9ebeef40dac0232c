package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/epics-tec/pagesmith/pkg/pageconfig"
)

func writeCombineFixtures(t *testing.T, dir string) {
	t.Helper()
	files := map[string]string{
		"template.yaml": `
- - {markup: PS1, type: text, width: 13}
  - {device_name: PS1, pv_name: Current, type: getPV, width: 12}
  - {device_name: PS2, pv_name: Current-SP, type: setPV, width: 12}
`,
		"aliases.yaml": "- [QF1, QF1-SP]\n- [QF2, QF2-SP]\n",
		"header.yaml":  "- - {markup: Quadrupoles, type: text, width: 13, wrap: clip}\n",
		"footer.yaml":  "- - {text: Exit, type: button, width: 8, script: exit.sh}\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("writing fixture %s: %v", name, err)
		}
	}
}

func TestCombineCommand(t *testing.T) {
	dir := t.TempDir()
	writeCombineFixtures(t, dir)
	outFile := filepath.Join(dir, "combined.yaml")

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"combine",
		"--tf", filepath.Join(dir, "template.yaml"),
		"--af", filepath.Join(dir, "aliases.yaml"),
		"--hf", filepath.Join(dir, "header.yaml"),
		"--ff", filepath.Join(dir, "footer.yaml"),
		"--of", outFile,
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("combine failed: %v", err)
	}
	if !strings.Contains(buf.String(), "written to") {
		t.Errorf("Expected confirmation message, got: %s", buf.String())
	}

	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatalf("reading output: %v", err)
	}
	page, err := pageconfig.Parse(data)
	if err != nil {
		t.Fatalf("output is not a valid page: %v", err)
	}

	// Header + 2 expanded blocks + footer.
	if len(page) != 4 {
		t.Fatalf("Expected 4 rows, got %d", len(page))
	}
	if page[1][0].Markup != "QF1" || page[2][0].Markup != "QF2" {
		t.Errorf("Expected alias substitution in markup, got %q and %q",
			page[1][0].Markup, page[2][0].Markup)
	}
	if page[1][1].DeviceName != "QF1" || page[1][2].DeviceName != "QF1-SP" {
		t.Errorf("Expected alias substitution in device names, got %q and %q",
			page[1][1].DeviceName, page[1][2].DeviceName)
	}
}

func TestCombineCommandStdout(t *testing.T) {
	dir := t.TempDir()
	writeCombineFixtures(t, dir)

	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"combine",
		"--tf", filepath.Join(dir, "template.yaml"),
		"--af", filepath.Join(dir, "aliases.yaml"),
		"--hf", "",
		"--ff", "",
		"--of", "",
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("combine failed: %v", err)
	}

	page, err := pageconfig.Parse(buf.Bytes())
	if err != nil {
		t.Fatalf("stdout is not a valid page: %v", err)
	}
	if len(page) != 2 {
		t.Errorf("Expected 2 expanded rows on stdout, got %d", len(page))
	}
}

func TestCombineCommandMissingInput(t *testing.T) {
	dir := t.TempDir()
	writeCombineFixtures(t, dir)

	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"combine",
		"--tf", filepath.Join(dir, "no-such-template.yaml"),
		"--af", filepath.Join(dir, "aliases.yaml"),
		"--hf", "",
		"--ff", "",
		"--of", "",
	})

	if err := rootCmd.Execute(); err == nil {
		t.Error("Expected error for missing template file, got nil")
	}
}
