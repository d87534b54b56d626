/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package ai

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"io"
	"regexp"
	"strconv"
)

// variableLength is the YAML spelling of Variable.
const variableLength = "variable"

// tableDocument is the YAML form of a Registry:
//
//	identifiers:
//	  - prefix: "01"
//	    length: 16
//	    pattern: ^01([0-9]{14})
//	    title: GTIN
//	  - prefix: "10"
//	    length: variable
//	    pattern: ^10([!-z]{1,20})
type tableDocument struct {
	Identifiers []tableEntry `yaml:"identifiers"`
}

type tableEntry struct {
	Prefix     string         `yaml:"prefix"`
	Additional string         `yaml:"additional,omitempty"`
	Length     *contentLength `yaml:"length"`
	Pattern    string         `yaml:"pattern"`
	Title      string         `yaml:"title,omitempty"`
}

type contentLength int

func (l *contentLength) UnmarshalYAML(node *yaml.Node) error {
	if node.Value == variableLength {
		*l = Variable
		return nil
	}
	n, err := strconv.Atoi(node.Value)
	if err != nil {
		return errors.Errorf("line %d: length must be an integer or %q, not %q",
			node.Line, variableLength, node.Value)
	}
	*l = contentLength(n)
	return nil
}

func (l contentLength) MarshalYAML() (interface{}, error) {
	if l == Variable {
		return variableLength, nil
	}
	return int(l), nil
}

// LoadYAML reads a YAML AI table from r and returns a Registry holding its
// entries in document order.
func LoadYAML(r io.Reader) (*Registry, error) {
	var doc tableDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "unable to parse AI table")
	}
	if len(doc.Identifiers) == 0 {
		return nil, errors.New("AI table has no identifiers")
	}

	ids := make([]ApplicationIdentifier, len(doc.Identifiers))
	for i, e := range doc.Identifiers {
		if e.Length == nil {
			return nil, errors.Errorf("identifier %d (%s%s) is missing its length",
				i, e.Prefix, e.Additional)
		}
		if e.Pattern == "" {
			return nil, errors.Errorf("identifier %d (%s%s) is missing its pattern",
				i, e.Prefix, e.Additional)
		}
		re, err := regexp.Compile(e.Pattern)
		if err != nil {
			return nil, errors.Wrapf(err, "identifier %d (%s%s) has a bad pattern",
				i, e.Prefix, e.Additional)
		}
		ids[i] = ApplicationIdentifier{
			Prefix:               e.Prefix,
			AdditionalIdentifier: e.Additional,
			ContentLength:        int(*e.Length),
			Regex:                re,
			Title:                e.Title,
		}
	}

	return NewRegistry(ids...)
}

// WriteYAML writes the Registry as a YAML AI table which LoadYAML accepts.
func (r *Registry) WriteYAML(w io.Writer) error {
	doc := tableDocument{Identifiers: make([]tableEntry, len(r.all))}
	for i, id := range r.all {
		l := contentLength(id.ContentLength)
		doc.Identifiers[i] = tableEntry{
			Prefix:     id.Prefix,
			Additional: id.AdditionalIdentifier,
			Length:     &l,
			Pattern:    id.Regex.String(),
			Title:      id.Title,
		}
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return errors.Wrap(err, "unable to write AI table")
	}
	return errors.Wrap(enc.Close(), "unable to write AI table")
}
