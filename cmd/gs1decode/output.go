/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package main

import (
	"fmt"
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1code"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"io"
	"strings"
)

type formatter func(io.Writer, gs1code.Result) error

func formatterFor(name string) (formatter, error) {
	switch name {
	case "text":
		return writeText, nil
	case "yaml":
		return writeYAML, nil
	}
	return nil, errors.Errorf("unknown output format %q; use text or yaml", name)
}

type elementView struct {
	AI      string   `yaml:"ai"`
	Title   string   `yaml:"title,omitempty"`
	Values  []string `yaml:"values"`
	Decimal string   `yaml:"decimal,omitempty"`
}

type fragmentView struct {
	Offset int    `yaml:"offset"`
	Text   string `yaml:"text"`
}

type resultView struct {
	Symbology string         `yaml:"symbology,omitempty"`
	Elements  []elementView  `yaml:"elements"`
	Skipped   []fragmentView `yaml:"skipped,omitempty"`
	Halted    bool           `yaml:"halted,omitempty"`
}

func view(res gs1code.Result) resultView {
	v := resultView{
		Symbology: res.Symbology.Name,
		Elements:  make([]elementView, len(res.Elements)),
		Halted:    res.Halted,
	}
	for i, e := range res.Elements {
		v.Elements[i] = elementView{
			AI:     e.Identifier.Code(),
			Title:  e.Identifier.Title,
			Values: e.Values,
		}
		if d, ok := e.Decimal(); ok {
			v.Elements[i].Decimal = d.String()
		}
	}
	for _, f := range res.Skipped {
		v.Skipped = append(v.Skipped, fragmentView{Offset: f.Offset, Text: f.Text})
	}
	return v
}

func writeYAML(w io.Writer, res gs1code.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(view(res)); err != nil {
		return err
	}
	return enc.Close()
}

func writeText(w io.Writer, res gs1code.Result) error {
	v := view(res)
	b := &strings.Builder{}
	fmt.Fprintf(b, "symbology: %s\n", res.Symbology)
	for _, e := range v.Elements {
		fmt.Fprintf(b, "(%s)", e.AI)
		if e.Title != "" {
			fmt.Fprintf(b, " %s", e.Title)
		}
		fmt.Fprintf(b, ": %s", strings.Join(e.Values, " "))
		if e.Decimal != "" {
			fmt.Fprintf(b, " = %s", e.Decimal)
		}
		b.WriteByte('\n')
	}
	for _, f := range v.Skipped {
		fmt.Fprintf(b, "skipped at %d: %q\n", f.Offset, f.Text)
	}
	if v.Halted {
		b.WriteString("decoding halted before the end of the data\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}
