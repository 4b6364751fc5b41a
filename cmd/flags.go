package cmd

import (
	"fmt"
	"strings"

	"github.com/inovacc/focset/internal/model"
	"github.com/spf13/pflag"
)

var (
	_ pflag.Value = (*bodyPartValue)(nil)
	_ pflag.Value = (*classesValue)(nil)
	_ pflag.Value = (*outputFormat)(nil)
)

// bodyPartValue is a --body-part flag restricted to the known body parts.
type bodyPartValue model.BodyPart

func (v *bodyPartValue) String() string { return string(*v) }

func (v *bodyPartValue) Set(s string) error {
	b, err := model.ParseBodyPart(s)
	if err != nil {
		return err
	}

	*v = bodyPartValue(b)

	return nil
}

func (v *bodyPartValue) Type() string { return "bodypart" }

// classesValue collects repeated or comma separated --class flags.
type classesValue []model.Specialty

func (v *classesValue) String() string {
	out := make([]string, len(*v))
	for i, sp := range *v {
		out[i] = string(sp)
	}

	return strings.Join(out, ",")
}

func (v *classesValue) Set(s string) error {
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}

		sp, err := model.ParseSpecialty(field)
		if err != nil {
			return err
		}

		*v = append(*v, sp)
	}

	return nil
}

func (v *classesValue) Type() string { return "class" }

type outputFormat string

const (
	outputTable outputFormat = "table"
	outputJSON  outputFormat = "json"
	outputYAML  outputFormat = "yaml"
)

func (f *outputFormat) String() string { return string(*f) }

func (f *outputFormat) Set(s string) error {
	switch v := outputFormat(strings.ToLower(s)); v {
	case outputTable, outputJSON, outputYAML:
		*f = v

		return nil
	default:
		return fmt.Errorf("unknown output format %q (expected table, json or yaml)", s)
	}
}

func (f *outputFormat) Type() string { return "format" }
