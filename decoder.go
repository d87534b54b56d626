/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package gs1code

import (
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1code/ai"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"strings"
	"sync"
)

// Decoder decodes element strings using a registry of AIs.
//
// A Decoder isn't modified after NewDecoder returns it, so a single Decoder
// may decode scans from several goroutines at once.
type Decoder struct {
	registry    *ai.Registry
	symbologies []Symbology
	log         *logrus.Entry
}

// Option configures a Decoder.
type Option func(*Decoder) error

// WithRegistry sets the AIs the Decoder recognizes; the default is
// ai.Default().
func WithRegistry(r *ai.Registry) Option {
	return func(d *Decoder) error {
		if r == nil {
			return errors.New("registry is nil")
		}
		d.registry = r
		return nil
	}
}

// WithLogger sets the logger the Decoder reports skipped data to, at debug
// level; the default is logrus' standard logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(d *Decoder) error {
		if l == nil {
			return errors.New("logger is nil")
		}
		d.log = l.WithField("component", "gs1code")
		return nil
	}
}

// WithSymbologies replaces the symbology identifiers the Decoder strips; the
// default is Symbologies(). Without arguments, nothing is stripped.
func WithSymbologies(symbologies ...Symbology) Option {
	return func(d *Decoder) error {
		for i, s := range symbologies {
			if s.Identifier == "" {
				return errors.Errorf("symbology %d (%q) has no identifier", i, s.Name)
			}
		}
		d.symbologies = append([]Symbology(nil), symbologies...)
		return nil
	}
}

// NewDecoder returns a new Decoder configured by the given options.
func NewDecoder(opts ...Option) (*Decoder, error) {
	d := &Decoder{
		registry:    ai.Default(),
		symbologies: Symbologies(),
		log:         logrus.StandardLogger().WithField("component", "gs1code"),
	}
	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, errors.Wrap(err, "invalid decoder option")
		}
	}
	return d, nil
}

// Registry returns the AIs the Decoder recognizes.
func (d *Decoder) Registry() *ai.Registry {
	return d.registry
}

var (
	defaultOnce    sync.Once
	defaultDecoder *Decoder
)

// Decode decodes raw with the default AI registry. See Decoder.Decode.
func Decode(raw string) Result {
	defaultOnce.Do(func() {
		d, err := NewDecoder()
		if err != nil {
			panic(err)
		}
		defaultDecoder = d
	})
	return defaultDecoder.Decode(raw)
}

// Decode strips the symbology identifier from raw, if it has one, then reads
// elements until the data is exhausted.
//
// Decode works on any input: data that can't be read as an element is
// returned in Result.Skipped and decoding continues after it, so every byte of
// the data, other than group separators, ends up in an Element or a Fragment.
// The single exception is an AI registered with a length of 0, which can't
// make progress; decoding stops there and sets Result.Halted.
func (d *Decoder) Decode(raw string) Result {
	var res Result
	res.Symbology, raw = stripSymbology(d.symbologies, raw)

	x := extractor{registry: d.registry}
	debug := d.log.Logger.IsLevelEnabled(logrus.DebugLevel)

	// every step consumes at least one byte, so this bounds the loop even
	// if an extraction were to misreport its progress
	for pos, steps := 0, 0; pos < len(raw) && steps <= len(raw); steps++ {
		st := x.next(raw, pos)
		if st.element != nil {
			res.Elements = append(res.Elements, *st.element)
		}
		res.Skipped = append(res.Skipped, st.skipped...)

		if debug {
			for _, f := range st.skipped {
				d.log.WithFields(logrus.Fields{
					"offset": f.Offset,
					"text":   f.Text,
				}).Debug("gs1code: skipped data")
			}
		}

		pos += st.consumed
		if st.halted || (st.consumed == 0 && !st.done) {
			res.Halted = true
			if debug {
				d.log.WithFields(logrus.Fields{
					"offset":    pos,
					"remaining": len(raw) - pos,
				}).Debug("gs1code: no progress possible, stopping")
			}
			break
		}
		if st.done {
			break
		}
	}

	if debug {
		d.log.WithFields(logrus.Fields{
			"symbology": res.Symbology.Identifier,
			"elements":  len(res.Elements),
			"skipped":   len(res.Skipped),
		}).Debug("gs1code: decoded scan")
	}
	return res
}

// Encode returns the element string of elements: each element's AI followed by
// its values, with a group separator after every element whose length isn't
// predefined, except the last. Decoding the result with the same Decoder
// yields the same elements.
//
// It returns an error if a value has characters outside the GS1 character
// sets, as those can't be encoded.
func (d *Decoder) Encode(elements []Element) (string, error) {
	b := &strings.Builder{}
	for i, e := range elements {
		for _, v := range e.Values {
			if !ai.IsEncodable(v) && !ai.IsCompPartEncodable(v) {
				return "", errors.Errorf("element %d %s: value %q has characters "+
					"outside the GS1 character sets", i, e.Identifier.Code(), v)
			}
		}

		b.WriteString(e.Identifier.Code())
		for _, v := range e.Values {
			b.WriteString(v)
		}

		if i == len(elements)-1 {
			break
		}
		if _, fixed := d.registry.ElementLength(e.Identifier.Key()); !fixed {
			b.WriteByte(GroupSeparator)
		}
	}
	return b.String(), nil
}
