// Package differ compares two generated pages semantically: rows and
// fields added, removed or modified, keyed by position and by the PV or
// markup the field is bound to. Its main use is reviewing template or
// alias edits by diffing a freshly generated page against the committed
// one.
package differ

import (
	"fmt"
	"reflect"

	"github.com/samber/lo"

	"github.com/epics-tec/pagesmith/pkg/pageconfig"
)

type DiffType string

const (
	DiffTypeAdded    DiffType = "added"
	DiffTypeRemoved  DiffType = "removed"
	DiffTypeModified DiffType = "modified"
)

type PageDiff struct {
	Type        DiffType    `json:"type"`
	Path        string      `json:"path"`
	Description string      `json:"description"`
	OldValue    interface{} `json:"old_value,omitempty"`
	NewValue    interface{} `json:"new_value,omitempty"`
}

type DiffResult struct {
	Changes    []PageDiff `json:"changes"`
	HasChanges bool       `json:"has_changes"`
	Summary    string     `json:"summary"`
}

// Compare reports the differences between two pages.
func Compare(oldPage, newPage pageconfig.Page) *DiffResult {
	result := &DiffResult{Changes: []PageDiff{}}

	rows := len(oldPage)
	if len(newPage) > rows {
		rows = len(newPage)
	}

	for i := 0; i < rows; i++ {
		switch {
		case i >= len(oldPage):
			result.Changes = append(result.Changes, PageDiff{
				Type:        DiffTypeAdded,
				Path:        fmt.Sprintf("rows[%d]", i),
				Description: fmt.Sprintf("Row added: %s", rowLabel(newPage[i])),
				NewValue:    newPage[i],
			})
		case i >= len(newPage):
			result.Changes = append(result.Changes, PageDiff{
				Type:        DiffTypeRemoved,
				Path:        fmt.Sprintf("rows[%d]", i),
				Description: fmt.Sprintf("Row removed: %s", rowLabel(oldPage[i])),
				OldValue:    oldPage[i],
			})
		default:
			compareRow(i, oldPage[i], newPage[i], result)
		}
	}

	result.HasChanges = len(result.Changes) > 0
	result.Summary = summarize(result)
	return result
}

func compareRow(rowIdx int, oldRow, newRow pageconfig.Row, result *DiffResult) {
	fields := len(oldRow)
	if len(newRow) > fields {
		fields = len(newRow)
	}

	for j := 0; j < fields; j++ {
		path := fmt.Sprintf("rows[%d].fields[%d]", rowIdx, j)
		switch {
		case j >= len(oldRow):
			result.Changes = append(result.Changes, PageDiff{
				Type:        DiffTypeAdded,
				Path:        path,
				Description: fmt.Sprintf("Field added: %s", newRow[j].Label()),
				NewValue:    newRow[j],
			})
		case j >= len(newRow):
			result.Changes = append(result.Changes, PageDiff{
				Type:        DiffTypeRemoved,
				Path:        path,
				Description: fmt.Sprintf("Field removed: %s", oldRow[j].Label()),
				OldValue:    oldRow[j],
			})
		case !reflect.DeepEqual(oldRow[j], newRow[j]):
			result.Changes = append(result.Changes, PageDiff{
				Type:        DiffTypeModified,
				Path:        fmt.Sprintf("%s(%s)", path, newRow[j].Label()),
				Description: fmt.Sprintf("Field changed: %s", describeFieldChange(oldRow[j], newRow[j])),
				OldValue:    oldRow[j],
				NewValue:    newRow[j],
			})
		}
	}
}

// describeFieldChange names the most interesting difference between two
// versions of a field.
func describeFieldChange(oldField, newField pageconfig.Field) string {
	switch {
	case oldField.FullPVName() != newField.FullPVName():
		return fmt.Sprintf("PV %s -> %s", orNone(oldField.FullPVName()), orNone(newField.FullPVName()))
	case oldField.Markup != newField.Markup:
		return fmt.Sprintf("markup %q -> %q", oldField.Markup, newField.Markup)
	case oldField.Type != newField.Type:
		return fmt.Sprintf("type %s -> %s", oldField.Type, newField.Type)
	case oldField.Width != newField.Width:
		return fmt.Sprintf("width %d -> %d", oldField.Width, newField.Width)
	default:
		return newField.Label()
	}
}

func rowLabel(row pageconfig.Row) string {
	if len(row) == 0 {
		return "(empty row)"
	}
	return row[0].Label()
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

func summarize(result *DiffResult) string {
	if !result.HasChanges {
		return "no differences"
	}
	counts := lo.CountValuesBy(result.Changes, func(d PageDiff) DiffType { return d.Type })
	return fmt.Sprintf("%d added, %d removed, %d modified",
		counts[DiffTypeAdded], counts[DiffTypeRemoved], counts[DiffTypeModified])
}
