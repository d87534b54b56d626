/* Apache v2 license
 * Copyright (C) 2019 Intel Corporation
 *
 * SPDX-License-Identifier: Apache-2.0
 */

package gs1code

import (
	"github.com/intel/rsp-sw-toolkit-im-suite-gs1code/ai"
	"github.com/shopspring/decimal"
	"strings"
)

// GroupSeparator terminates variable length elements.
const GroupSeparator = '\x1d'

// Element is a single AI and the values captured from its data.
type Element struct {
	Identifier ai.ApplicationIdentifier
	// Values holds the AI's capture groups, in order.
	Values []string
	// Raw is the text the AI's pattern matched, AI included.
	Raw string
	// Offset is the position of Raw in the decoded data, after the
	// symbology identifier.
	Offset int
}

// Decimal returns the first value scaled by the decimal position encoded in
// the AI. See DecimalValue.
func (e Element) Decimal() (decimal.Decimal, bool) {
	return DecimalValue(e.Identifier, e.Values)
}

// DecimalAt works like Decimal, but scales the value at index i.
//
// This is useful for AIs like (393n), in which the first value is an ISO
// currency code and the second is the amount.
func (e Element) DecimalAt(i int) (decimal.Decimal, bool) {
	return decimalAt(e.Identifier, e.Values, i)
}

// String returns the element in its human readable form, e.g. "(10)LOT42".
func (e Element) String() string {
	b := &strings.Builder{}
	b.WriteByte('(')
	b.WriteString(e.Identifier.Code())
	b.WriteByte(')')
	for _, v := range e.Values {
		b.WriteString(v)
	}
	return b.String()
}

// Fragment is a piece of the data that couldn't be decoded as an element.
type Fragment struct {
	Offset int
	Text   string
}

// Result holds everything recovered from a scan.
type Result struct {
	// Symbology is the identifier stripped from the scan, if any.
	Symbology Symbology
	Elements  []Element
	Skipped   []Fragment
	// Halted is set if decoding stopped before the end of the data because
	// an element had no length; the remaining data is not in Skipped.
	Halted bool
}

// SkippedText returns the text of the skipped fragments, in order.
func (r Result) SkippedText() []string {
	out := make([]string, len(r.Skipped))
	for i := range r.Skipped {
		out[i] = r.Skipped[i].Text
	}
	return out
}

// Element returns the first element with the given AI code.
func (r Result) Element(code string) (Element, bool) {
	for _, e := range r.Elements {
		if e.Identifier.Code() == code {
			return e, true
		}
	}
	return Element{}, false
}

// String returns the decoded elements in human readable form, e.g.
// "(01)12345678901231(10)LOT42".
func (r Result) String() string {
	b := &strings.Builder{}
	for _, e := range r.Elements {
		b.WriteString(e.String())
	}
	return b.String()
}
