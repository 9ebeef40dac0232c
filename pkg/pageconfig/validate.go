package pageconfig

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

var knownTypes = []string{TypeText, TypeDivider, TypeLED, TypeGetPV, TypeSetPV, TypeButton}

// Validate checks the page for errors the terminal client would reject at
// load time. All problems are reported, not just the first.
func (p Page) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
	})

	var problems []string
	for i, row := range p {
		for j, field := range row {
			at := fmt.Sprintf("row %d field %d (%s)", i, j, field.Label())
			for _, msg := range checkField(validate, field) {
				problems = append(problems, fmt.Sprintf("%s: %s", at, msg))
			}
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid page config:\n  %s", strings.Join(problems, "\n  "))
	}
	return nil
}

func checkField(validate *validator.Validate, field Field) []string {
	var problems []string

	if field.Type == "" {
		problems = append(problems, "missing widget type")
	} else if !lo.Contains(knownTypes, field.Type) {
		problems = append(problems, fmt.Sprintf("undefined widget type (%s)", field.Type))
	}

	if field.Width == 0 {
		problems = append(problems, "missing width")
	}

	switch field.Type {
	case TypeText:
		if field.Markup == "" {
			problems = append(problems, "text field has no markup")
		}
	case TypeGetPV, TypeSetPV, TypeLED:
		if field.PVName == "" {
			problems = append(problems, fmt.Sprintf("%s field has no pv_name", field.Type))
		}
	case TypeButton:
		if field.PVName == "" && field.Script == "" {
			problems = append(problems, "button has neither pv_name nor script")
		}
	}

	if err := validate.Struct(field); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range errs {
				problems = append(problems, fmt.Sprintf("%s fails %s constraint", fe.Field(), fe.Tag()))
			}
		} else {
			problems = append(problems, err.Error())
		}
	}

	return problems
}
